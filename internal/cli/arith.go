package cli

import (
	"encoding/json"
	"math"

	"github.com/spf13/cobra"

	"github.com/alvinjchua888/mermaidexamples/internal/arith"
)

const (
	promptFirstNumber  = "Enter the first number: "
	promptSecondNumber = "Enter the second number: "
)

// ArithResult is the JSON payload for add and subtract.
type ArithResult struct {
	Operation string  `json:"operation"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Result    float64 `json:"result"`
}

// MarshalJSON encodes non-finite values as "inf", "-inf" or "nan" strings,
// which encoding/json cannot represent as numbers.
func (r ArithResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string     `json:"operation"`
		X         jsonNumber `json:"x"`
		Y         jsonNumber `json:"y"`
		Result    jsonNumber `json:"result"`
	}{r.Operation, jsonNumber(r.X), jsonNumber(r.Y), jsonNumber(r.Result)})
}

type jsonNumber float64

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(arith.FormatFloat(f))
	}
	return json.Marshal(f)
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add [x y]",
		Short: "Add two numbers",
		Long: `Add two numbers and print the sum.

Prompts for both numbers when they are not given as arguments.

Examples:
  namedb add
  namedb add 3 4.5
  namedb add 3 4.5 --format json`,
		Args:          exactlyZeroOrTwo,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(rootOpts, "add", args, cmd)
		},
	}
}

// NewSubtractCommand creates the subtract command.
func NewSubtractCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "subtract [x y]",
		Short: "Subtract the second number from the first",
		Long: `Subtract the second number from the first and print the result.

Prompts for both numbers when they are not given as arguments.

Examples:
  namedb subtract
  namedb subtract 10 4.5
  namedb subtract -- -2 -5`,
		Args:          exactlyZeroOrTwo,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(rootOpts, "subtract", args, cmd)
		},
	}
}

func runArith(opts *RootOptions, op string, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	a, b, err := operands(f, args, cmd)
	if err != nil {
		return f.Fail(err)
	}

	x, y, err := arith.ParseOperands(a, b)
	if err != nil {
		return f.Fail(err)
	}

	result := ArithResult{Operation: op, X: x, Y: y}
	var line string
	switch op {
	case "add":
		result.Result = arith.Add(x, y)
		line = arith.SumLine(result.Result)
	default:
		result.Result = arith.Subtract(x, y)
		line = arith.DifferenceLine(x, y, result.Result)
	}

	if f.IsJSON() {
		return f.Success(result)
	}
	return f.Success(line)
}

// operands returns the two raw operands from args or from the prompts.
func operands(f *OutputFormatter, args []string, cmd *cobra.Command) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	p := NewPrompter(cmd.InOrStdin(), f.PromptWriter())
	return p.AskPair(promptFirstNumber, promptSecondNumber)
}
