package input

import (
	"os"
	"path/filepath"
)

type Mode int

const (
	ModePaste Mode = iota
	ModeFile
	ModePipe
)

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "FILE"
	case ModePipe:
		return "PIPE"
	default:
		return "PASTE"
	}
}

// Source is where the initial text came from. Text may be empty for
// ModePaste; the paste screen collects it.
type Source struct {
	Mode     Mode
	FileName string
	Text     string
}

// Detect picks the input source: a file argument wins, then piped
// stdin, otherwise the interactive paste screen.
func Detect(args []string) (*Source, error) {
	if len(args) > 0 {
		fileName := args[0]
		text, err := ReadFile(fileName)
		if err != nil {
			return nil, err
		}
		return &Source{
			Mode:     ModeFile,
			FileName: filepath.Base(fileName),
			Text:     text,
		}, nil
	}

	if !isTerminal(os.Stdin) {
		text, err := ReadStdin()
		if err != nil {
			return nil, err
		}
		return &Source{Mode: ModePipe, Text: text}, nil
	}

	return &Source{Mode: ModePaste}, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
