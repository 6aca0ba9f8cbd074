// Package appmode provides 2 ways to run the validator: one-shot CLI validation and the HTTP validator node
package appmode

import (
	"errors"
	"fmt"
	"io"

	"github.com/UnendingLoop/ValidateOutput/internal/logger"
	"github.com/UnendingLoop/ValidateOutput/internal/model"
	"github.com/UnendingLoop/ValidateOutput/internal/parser"
	"github.com/UnendingLoop/ValidateOutput/internal/processor"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	ExitValid   = 0
	ExitInvalid = 1
)

// RunValidate runs one validation and returns the process exit code.
// Keywords go to stdout, diagnostics to stderr.
func RunValidate(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	inv, err := parser.ParseArgs(args, getenv)
	if err != nil {
		reportError(stderr, err)
		return ExitInvalid
	}

	log := zap.NewNop()
	if inv.Verbose {
		log = logger.New(stderr, logger.DebugLevel)
	}
	defer func() { _ = log.Sync() }()

	log.Debug("validating", zap.String("pattern", inv.Pattern), zap.String("file", inv.OutputFile))
	res, err := processor.New(stdin, log).Validate(inv.Pattern, inv.OutputFile)
	if err != nil {
		reportError(stderr, err)
		return ExitInvalid
	}

	if err := writeResult(stdout, inv.Format, res); err != nil {
		fmt.Fprintf(stderr, "Error writing result: %v\n", err)
		return ExitInvalid
	}
	return ExitValid
}

func reportError(stderr io.Writer, err error) {
	fmt.Fprintln(stderr, err.Error())

	// для ошибки использования дополнительно печатаем причину и переменные окружения
	var vErr *model.ValidationError
	if errors.As(err, &vErr) && vErr.Kind == model.KindUsage {
		if vErr.Err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", vErr.Err)
		}
		parser.PrintEnvUsage(stderr)
	}
}

func writeResult(stdout io.Writer, format model.OutputFormat, res *model.ValidationResult) error {
	switch format {
	case model.FormatJSON:
		return json.NewEncoder(stdout).Encode(res)
	default:
		for _, keyword := range res.Keywords {
			if _, err := fmt.Fprintln(stdout, keyword); err != nil {
				return err
			}
		}
		return nil
	}
}
