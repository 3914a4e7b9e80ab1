package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// PromptError reports that an interactive answer could not be read.
type PromptError struct {
	Prompt string
	Err    error
}

func (e *PromptError) Error() string {
	if errors.Is(e.Err, io.EOF) {
		return "no input provided"
	}
	return fmt.Sprintf("read input: %v", e.Err)
}

func (e *PromptError) Unwrap() error {
	return e.Err
}

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	out    io.Writer
	reader *bufio.Reader
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{out: out, reader: bufio.NewReader(in)}
}

// Ask prints prompt and returns the next line without its line ending.
// A final line without a trailing newline is still returned; EOF before
// any input is a *PromptError.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", &PromptError{Prompt: prompt, Err: err}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskPair asks two questions in order.
func (p *Prompter) AskPair(first, second string) (string, string, error) {
	a, err := p.Ask(first)
	if err != nil {
		return "", "", err
	}
	b, err := p.Ask(second)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}
