package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/UnendingLoop/ValidateOutput/internal/model"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	cases := []struct {
		name    string
		err     *model.ValidationError
		wantMsg string
		wantIs  error
	}{
		{
			name:    "usage",
			err:     model.NewError(model.KindUsage, "", cause),
			wantMsg: "Usage: validate-output <pattern> <output_file>",
			wantIs:  model.ErrUsage,
		},
		{
			name:    "file not found",
			err:     model.NewError(model.KindFileNotFound, "out.txt", cause),
			wantMsg: "Error: File not found: out.txt",
			wantIs:  model.ErrFileNotFound,
		},
		{
			name:    "read error",
			err:     model.NewError(model.KindRead, "out.txt", cause),
			wantMsg: "Error reading file: boom",
			wantIs:  model.ErrRead,
		},
		{
			name:    "invalid pattern",
			err:     model.NewError(model.KindInvalidPattern, "", cause),
			wantMsg: "Error: Invalid regex pattern: boom",
			wantIs:  model.ErrInvalidPattern,
		},
		{
			name:    "no match",
			err:     model.NewError(model.KindNoMatch, "", nil),
			wantMsg: "Error: No keywords matched",
			wantIs:  model.ErrNoMatch,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("validate: %w", tt.err)

			require.Equal(t, tt.wantMsg, tt.err.Error())
			require.ErrorIs(t, wrapped, tt.wantIs)
			require.Equal(t, tt.err.Kind, model.KindOf(wrapped))
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := model.NewError(model.KindRead, "x", cause)

	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, model.ErrNoMatch)
	require.Equal(t, model.ErrorKind(0), model.KindOf(cause))
	require.Equal(t, "ReadError", model.KindRead.String())
}
