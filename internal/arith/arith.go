// Package arith implements the two-number addition and subtraction prompts.
//
// Operands arrive as raw text lines; results are rendered the way the
// original scripts printed floats, so integral values keep a trailing ".0".
package arith

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InvalidInputMessage is reported for any operand that is not a number.
const InvalidInputMessage = "Invalid input. Please enter numeric values."

// InputError reports an operand that could not be parsed as a number.
type InputError struct {
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return InvalidInputMessage
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError returns true if err is or wraps an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// ParseOperands parses both operands as float64. The first bad operand
// wins.
func ParseOperands(a, b string) (float64, float64, error) {
	x, err := parseOperand(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseOperand(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseOperand accepts decimal notation plus inf/infinity/nan. Hex floats
// are rejected; values beyond float64 range become ±Inf.
func parseOperand(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if isHex(text) {
		return 0, &InputError{Value: s, Err: errHexNotSupported}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &InputError{Value: s, Err: err}
	}
	return v, nil
}

var errHexNotSupported = errors.New("hexadecimal notation not supported")

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// Add returns x + y.
func Add(x, y float64) float64 {
	return x + y
}

// Subtract returns x - y.
func Subtract(x, y float64) float64 {
	return x - y
}

// SumLine renders the addition result.
func SumLine(sum float64) string {
	return "The sum is: " + FormatFloat(sum)
}

// DifferenceLine renders the subtraction result.
func DifferenceLine(x, y, result float64) string {
	return fmt.Sprintf("The result of %s - %s is %s", FormatFloat(x), FormatFloat(y), FormatFloat(result))
}

// FormatFloat renders f as the shortest decimal that round-trips,
// keeping ".0" on integral values: 7 -> "7.0", 5.5 -> "5.5".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); f != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
