package input

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
)

func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func ReadStdin() (string, error) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadClipboard pulls the current clipboard contents into the paste
// screen. An unreadable clipboard is an error; an empty one is not.
func ReadClipboard() (string, error) {
	return clipboard.ReadAll()
}
