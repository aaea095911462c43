// Package clip copies text to the system clipboard, trying an ordered
// list of mechanisms until one succeeds.
package clip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

var (
	ErrEmptyText   = errors.New("nothing to copy")
	ErrUnavailable = errors.New("clipboard unavailable")
)

// PrimeText is the placeholder written during the permission priming
// flow.
const PrimeText = "Fast Copy"

// Copier is a single clipboard mechanism.
type Copier interface {
	Name() string
	Copy(text string) error
}

// Adapter tries each Copier in order and succeeds on the first one that
// does. The list stays open for extension; call sites never change.
type Adapter struct {
	copiers []Copier
	logger  *zap.Logger
}

// New builds an adapter over the given mechanisms, first one preferred.
func New(logger *zap.Logger, copiers ...Copier) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{copiers: copiers, logger: logger}
}

// NewSystem builds the default chain: the native clipboard binding
// first, external clipboard tools as the fallback.
func NewSystem(logger *zap.Logger) *Adapter {
	return New(logger, Native{}, Command{})
}

// Copy writes text through the first working mechanism. Empty text is
// rejected before any mechanism runs.
func (a *Adapter) Copy(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	text = sanitize(text)

	var lastErr error
	for _, c := range a.copiers {
		if err := c.Copy(text); err != nil {
			a.logger.Debug("clipboard mechanism failed", zap.String("mechanism", c.Name()), zap.Error(err))
			lastErr = err
			continue
		}
		return nil
	}

	if lastErr == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// Native copies through the atotto clipboard binding.
type Native struct{}

func (Native) Name() string { return "native" }

func (Native) Copy(text string) error {
	return clipboard.WriteAll(text)
}
