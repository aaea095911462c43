package clip

import "errors"

// Memory keeps copied text in-process. Used by tests and as a last
// resort in environments without any clipboard access.
type Memory struct {
	Contents string
	Writes   int
}

func (*Memory) Name() string { return "memory" }

func (m *Memory) Copy(text string) error {
	m.Contents = text
	m.Writes++
	return nil
}

// Failing always refuses the copy. Test double for the fallback chain.
type Failing struct {
	Calls int
}

func (*Failing) Name() string { return "failing" }

func (f *Failing) Copy(string) error {
	f.Calls++
	return errors.New("copy refused")
}
