// Package input acquires the text to analyze.
package input

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// ReadText returns the first positional argument if one was given,
// otherwise it drains the reader (standard input in production) into a
// single string. The reader is consumed exactly once, entirely.
func ReadText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("stdin is not valid UTF-8")
	}
	return string(data), nil
}
