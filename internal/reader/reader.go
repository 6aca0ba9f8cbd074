// Package reader loads the whole validated text from a file or stdin
package reader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/UnendingLoop/ValidateOutput/internal/model"
)

// StdinName is the path that selects stdin instead of a file.
const StdinName = "-"

func ReadInput(stdin io.Reader, fileName string) (string, error) {
	switch fileName {
	case StdinName:
		return readStdIn(stdin)
	default:
		return readFile(fileName)
	}
}

func readStdIn(stdin io.Reader) (string, error) {
	if stdin == nil {
		return "", model.NewError(model.KindRead, StdinName, errors.New("stdin is not available"))
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", model.NewError(model.KindRead, StdinName, err)
	}
	return decode(StdinName, raw)
}

func readFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", classifyOpenErr(fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", model.NewError(model.KindRead, fileName, fmt.Errorf("%q is a directory", fileName))
	}

	// открываем файл для чтения
	file, err := os.Open(fileName)
	if err != nil {
		return "", classifyOpenErr(fileName, err)
	}
	defer file.Close()

	// читаем целиком
	raw, err := io.ReadAll(file)
	if err != nil {
		return "", model.NewError(model.KindRead, fileName, err)
	}
	return decode(fileName, raw)
}

func classifyOpenErr(fileName string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return model.NewError(model.KindFileNotFound, fileName, err)
	}
	return model.NewError(model.KindRead, fileName, err)
}

// decode checks the bytes are UTF-8 and folds line endings.
func decode(fileName string, raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", model.NewError(model.KindRead, fileName, fmt.Errorf("%q is not valid UTF-8 text", fileName))
	}
	return FoldLineEndings(string(raw)), nil
}

// FoldLineEndings turns CRLF and lone CR line endings into LF.
func FoldLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
