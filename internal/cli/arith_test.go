package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand_Prompts(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{"positive", "3\n4.5\n", "The sum is: 7.5"},
		{"negative", "-2\n-5\n", "The sum is: -7.0"},
		{"zero", "0\n0\n", "The sum is: 0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.stdin, "add")
			require.NoError(t, err)
			assert.Contains(t, out, promptFirstNumber)
			assert.Contains(t, out, promptSecondNumber)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestAddCommand_Args(t *testing.T) {
	out, _, err := runCLI(t, "", "add", "3", "4.5")
	require.NoError(t, err)
	assert.Equal(t, "The sum is: 7.5\n", out)
}

func TestSubtractCommand_Prompts(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{"positive", "10\n4.5\n", "The result of 10.0 - 4.5 is 5.5"},
		{"negative", "-2\n-5\n", "The result of -2.0 - -5.0 is 3.0"},
		{"zero", "0\n0\n", "The result of 0.0 - 0.0 is 0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.stdin, "subtract")
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSubtractCommand_NegativeArgsAfterDoubleDash(t *testing.T) {
	out, _, err := runCLI(t, "", "subtract", "--", "-2", "-5")
	require.NoError(t, err)
	assert.Equal(t, "The result of -2.0 - -5.0 is 3.0\n", out)
}

func TestArithCommands_InvalidInput(t *testing.T) {
	for _, op := range []string{"add", "subtract"} {
		t.Run(op, func(t *testing.T) {
			out, _, err := runCLI(t, "abc\n5\n", op)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.True(t, IsReported(err))
			assert.Contains(t, out, "Invalid input. Please enter numeric values.")
			assert.NotContains(t, out, "The sum is")
			assert.NotContains(t, out, "The result of")
		})
	}
}

func TestArithCommands_NoInput(t *testing.T) {
	out, _, err := runCLI(t, "", "add")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error: no input provided")
}

func TestArithCommands_WrongArgCount(t *testing.T) {
	_, _, err := runCLI(t, "", "add", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 0 or 2 arg(s)")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.False(t, IsReported(err))
}

func TestAddCommand_JSON(t *testing.T) {
	out, _, err := runCLI(t, "", "--format", "json", "add", "3", "4.5")
	require.NoError(t, err)

	var resp struct {
		Status  string      `json:"status"`
		Data    ArithResult `json:"data"`
		TraceID string      `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ArithResult{Operation: "add", X: 3, Y: 4.5, Result: 7.5}, resp.Data)
	assert.Len(t, resp.TraceID, 36)
}

func TestSubtractCommand_JSONPromptsGoToStderr(t *testing.T) {
	out, errOut, err := runCLI(t, "10\n4.5\n", "--format", "json", "subtract")
	require.NoError(t, err)
	assert.Contains(t, errOut, promptFirstNumber)
	assert.NotContains(t, out, promptFirstNumber)

	var resp struct {
		Data ArithResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 5.5, resp.Data.Result)
}

func TestArithCommands_JSONNonFinite(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"overflow", []string{"add", "1e308", "1e308"}, `{"operation":"add","x":1e+308,"y":1e+308,"result":"inf"}`},
		{"inf_minus_inf", []string{"subtract", "inf", "inf"}, `{"operation":"subtract","x":"inf","y":"inf","result":"nan"}`},
		{"negative_inf", []string{"add", "--", "-inf", "1"}, `{"operation":"add","x":"-inf","y":1,"result":"-inf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", append([]string{"--format", "json"}, tt.args...)...)
			require.NoError(t, err)

			var resp struct {
				Status  string          `json:"status"`
				Data    json.RawMessage `json:"data"`
				TraceID string          `json:"trace_id"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "ok", resp.Status)
			assert.NotEmpty(t, resp.TraceID)
			assert.JSONEq(t, tt.want, string(resp.Data))
		})
	}
}

func TestArithCommands_TextNonFinite(t *testing.T) {
	out, _, err := runCLI(t, "", "add", "1e308", "1e308")
	require.NoError(t, err)
	assert.Equal(t, "The sum is: inf\n", out)
}
