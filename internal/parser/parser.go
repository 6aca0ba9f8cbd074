// Package parser puts os.Args and the environment into the Invocation structure and validates it for any issues
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/UnendingLoop/ValidateOutput/internal/model"
)

const (
	AppName   = "validate-output"
	DebugEnv  = "VALIDATE_OUTPUT_DEBUG"
	FormatEnv = "VALIDATE_OUTPUT_FORMAT"
)

// ParseArgs parses the arguments without the program name. Every argument is
// positional, so patterns like "-?\d+" or "--help" are taken as they are.
// Presentation options come from the environment; getenv may be nil.
func ParseArgs(args []string, getenv func(string) string) (*model.Invocation, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	// ровно два позиционных аргумента: паттерн и файл
	if len(args) != 2 {
		return nil, model.NewError(model.KindUsage, "", fmt.Errorf("expected 2 arguments, got %d", len(args)))
	}

	inv := model.Invocation{
		Pattern:    args[0],
		OutputFile: args[1],
		Format:     model.FormatText,
		Verbose:    getenv(DebugEnv) == "1",
	}

	if format := strings.ToLower(getenv(FormatEnv)); format != "" {
		inv.Format = model.OutputFormat(format)
	}
	switch inv.Format {
	case model.FormatText, model.FormatJSON:
	default:
		return nil, model.NewError(model.KindUsage, "", fmt.Errorf("unknown %s %q, use 'text' or 'json'", FormatEnv, getenv(FormatEnv)))
	}

	return &inv, nil
}

// PrintEnvUsage writes the environment variables understood by the CLI to w.
func PrintEnvUsage(w io.Writer) {
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintf(w, "  %s=text|json  output format (default: text)\n", FormatEnv)
	fmt.Fprintf(w, "  %s=1           write debug logs to stderr\n", DebugEnv)
}
