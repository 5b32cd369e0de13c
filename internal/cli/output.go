package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer
	Err io.Writer
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// NewFormatter builds a formatter from the command's output flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Success outputs a successful operation result. In quiet mode only the
// value's ID is printed, when it has one.
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.Out, idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return f.WriteJSON(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	_, err := fmt.Fprintf(f.Out, "%+v\n", data)
	return err
}

// WriteJSON encodes v as one JSON document on the output stream
func (f *OutputFormatter) WriteJSON(v any) error {
	return json.NewEncoder(f.Out).Encode(v)
}

// Printf writes human-readable output; it is silent in quiet and JSON modes
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.Quiet || f.JSON {
		return
	}
	fmt.Fprintf(f.Out, format, args...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.WriteJSON(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.Err, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.Err, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns a *CommandError carrying the matching exit code
func (f *OutputFormatter) Fail(err error, suggestion ...string) error {
	return f.FailWithCode(ExitCode(err), ErrorCodeFor(err), err, suggestion...)
}

// FailWithCode reports err under an explicit code and exit status
func (f *OutputFormatter) FailWithCode(exitCode int, code string, err error, suggestion ...string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), strings.Join(suggestion, " ")); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: exitCode, Err: err}
}
