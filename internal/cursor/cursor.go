// Package cursor holds the parsed lines and the position of the next
// line to copy.
package cursor

import "errors"

var (
	ErrEmptyInput        = errors.New("no usable lines")
	ErrExhausted         = errors.New("no more lines")
	ErrNoPrevious        = errors.New("no previous line")
	ErrInvalidLineNumber = errors.New("line number out of range")
)

// Cursor steps through an ordered list of lines. The index points at the
// next line to copy; index == len(lines) means every line has been copied.
type Cursor struct {
	lines []string
	index int
}

// Reset loads a new set of lines and rewinds to the first one.
// Rejects empty input so a session can never exist without lines.
func (c *Cursor) Reset(lines []string) error {
	if len(lines) == 0 {
		return ErrEmptyInput
	}
	c.lines = lines
	c.index = 0
	return nil
}

// Restore rebuilds cursor state from a persisted session. The index is
// clamped into [0, len(lines)] in case the snapshot is stale.
func (c *Cursor) Restore(lines []string, index int) error {
	if err := c.Reset(lines); err != nil {
		return err
	}
	if index < 0 {
		index = 0
	}
	if index > len(lines) {
		index = len(lines)
	}
	c.index = index
	return nil
}

// CurrentAndAdvance returns the line at the cursor and moves past it.
// Empty entries are skipped; the splitter removes them, but the cursor
// must not depend on that. The caller is expected to persist the new
// index right after.
func (c *Cursor) CurrentAndAdvance() (string, error) {
	for c.index < len(c.lines) && c.lines[c.index] == "" {
		c.index++
	}
	if c.index >= len(c.lines) {
		return "", ErrExhausted
	}
	line := c.lines[c.index]
	c.index++
	return line, nil
}

// Retreat undoes the last copy and prepares to redo it: the index moves
// back two positions (clamped at zero) so the following CurrentAndAdvance
// re-copies the previous line and lands one position back overall.
func (c *Cursor) Retreat() error {
	if c.index <= 0 {
		return ErrNoPrevious
	}
	c.index -= 2
	if c.index < 0 {
		c.index = 0
	}
	return nil
}

// JumpTo positions the cursor on line n (1-based). It does not copy;
// the next CurrentAndAdvance returns line n.
func (c *Cursor) JumpTo(n int) error {
	if n < 1 || n > len(c.lines) {
		return ErrInvalidLineNumber
	}
	c.index = n - 1
	return nil
}

// Progress reports the cursor position and the total line count.
func (c *Cursor) Progress() (index, total int) {
	return c.index, len(c.lines)
}

// Percent is the share of lines copied so far, floored.
func (c *Cursor) Percent() int {
	if len(c.lines) == 0 {
		return 0
	}
	return c.index * 100 / len(c.lines)
}

// Clear drops all lines and returns the cursor to the empty state.
func (c *Cursor) Clear() {
	c.lines = nil
	c.index = 0
}

func (c *Cursor) Lines() []string { return c.lines }

func (c *Cursor) Index() int { return c.index }

func (c *Cursor) Len() int { return len(c.lines) }

func (c *Cursor) Empty() bool { return len(c.lines) == 0 }

// Exhausted reports whether every line has been copied in sequence.
func (c *Cursor) Exhausted() bool {
	return len(c.lines) > 0 && c.index >= len(c.lines)
}
