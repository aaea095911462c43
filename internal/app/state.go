// Package app holds the application state object: the line cursor, the
// persisted session, and the actions bound to the UI surface. The UI
// layer dispatches here and renders whatever this package decides.
package app

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AlhosienIbrahim/Fast-Copy/internal/clip"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/config"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/cursor"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/dialog"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/splitter"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/store"
)

// Screen selects the top-level view.
type Screen int

const (
	ScreenInput Screen = iota
	ScreenStepping
	ScreenHelp
)

// Clipboard is the copy surface the state needs; *clip.Adapter
// satisfies it, tests substitute doubles.
type Clipboard interface {
	Copy(text string) error
}

// State owns the session. Everything mutates through its methods, all
// of which run on the UI event flow; persistence is best effort and
// never interrupts the user.
type State struct {
	Cursor     cursor.Cursor
	SessionID  string
	Screen     Screen
	PrevScreen Screen
	Theme      string
	Permission string

	// StatusMsg shows in the title bar; LastAction drives the brief
	// pulse on the control that just fired, cleared by a UI tick.
	StatusMsg  string
	LastAction string

	store     *store.Store
	cfg       *config.Config
	clipboard Clipboard
	dialogs   dialog.Service
	logger    *zap.Logger
}

func NewState(st *store.Store, cfg *config.Config, clipboard Clipboard, dialogs dialog.Service, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{
		Screen:     ScreenInput,
		Theme:      cfg.Theme(),
		Permission: cfg.Permission(),
		store:      st,
		cfg:        cfg,
		clipboard:  clipboard,
		dialogs:    dialogs,
		logger:     logger,
	}
}

// RestoreSession resumes the last persisted session, if any. Returns
// whether something was restored.
func (s *State) RestoreSession() bool {
	snap := s.store.Load()
	if snap == nil {
		return false
	}
	if err := s.Cursor.Restore(snap.Lines, snap.Index); err != nil {
		return false
	}
	s.SessionID = snap.ID
	s.Screen = ScreenStepping
	s.StatusMsg = "Resumed session (" + strconv.Itoa(len(snap.Lines)) + " lines)"
	return true
}

// ConfirmInput parses the pasted text and starts a new session. Empty
// input keeps the user on the paste screen with a retry prompt.
func (s *State) ConfirmInput(raw string) {
	lines := splitter.Split(raw)
	if len(lines) == 0 {
		s.dialogs.Alert(dialog.KindError, "No lines found", "Paste or type at least one non-empty line, then confirm again.")
		return
	}
	if err := s.Cursor.Reset(lines); err != nil {
		s.dialogs.Alert(dialog.KindError, "No lines found", "Paste or type at least one non-empty line, then confirm again.")
		return
	}
	s.SessionID = uuid.NewString()
	s.saveSession()
	s.Screen = ScreenStepping
	s.flash("confirm", "Loaded "+strconv.Itoa(len(lines))+" lines")
}

// CopyNext copies the line at the cursor and advances past it.
func (s *State) CopyNext() {
	s.advanceAndCopy("next")
}

// CopyPrevious steps the cursor back (the double decrement that undoes
// the last copy) and re-copies from there.
func (s *State) CopyPrevious() {
	if err := s.Cursor.Retreat(); err != nil {
		if errors.Is(err, cursor.ErrNoPrevious) {
			s.dialogs.Alert(dialog.KindInfo, "At the first line", "There is no earlier line to copy.")
		}
		return
	}
	s.advanceAndCopy("previous")
}

// CopyByNumber prompts for a 1-based line number and copies that line.
func (s *State) CopyByNumber() {
	if s.Cursor.Empty() {
		return
	}
	s.dialogs.PromptNumber(1, s.Cursor.Len(), "Copy line number", func(r dialog.NumberResult) {
		if !r.Confirmed {
			return
		}
		if err := s.Cursor.JumpTo(r.Value); err != nil {
			s.dialogs.Alert(dialog.KindError, "Invalid line number", "Pick a line between 1 and "+strconv.Itoa(s.Cursor.Len())+".")
			return
		}
		s.advanceAndCopy("jump")
	})
}

// CopyAll copies every line in one shot, newline separated.
func (s *State) CopyAll() {
	if s.Cursor.Empty() {
		return
	}
	text := strings.Join(s.Cursor.Lines(), "\n")
	if err := s.clipboard.Copy(text); err != nil {
		s.reportCopyFailure(err)
		return
	}
	s.flash("all", "Copied all "+strconv.Itoa(s.Cursor.Len())+" lines")
}

// Reset asks for confirmation, then clears the session and returns to
// the paste screen. The theme preference survives resets.
func (s *State) Reset() {
	if s.Cursor.Empty() {
		s.Screen = ScreenInput
		return
	}
	s.dialogs.Confirm("Start over?", "This clears the current lines and the saved session.", func(ok bool) {
		if !ok {
			return
		}
		s.Cursor.Clear()
		s.store.Clear()
		s.SessionID = ""
		s.Screen = ScreenInput
		s.flash("reset", "Session cleared")
	})
}

// ToggleTheme flips between light and dark and persists the choice.
func (s *State) ToggleTheme() {
	if s.Theme == config.ThemeLight {
		s.Theme = config.ThemeDark
	} else {
		s.Theme = config.ThemeLight
	}
	s.cfg.SaveTheme(s.Theme)
	s.flash("theme", "Theme: "+s.Theme)
}

// PermissionKnown reports whether clipboard access has already been
// confirmed working; while false the UI shows the priming affordance.
func (s *State) PermissionKnown() bool {
	return s.Permission == config.PermissionGranted
}

// ShowPermissionBanner reports whether the priming affordance should
// be visible: only while the permission state is still unknown.
func (s *State) ShowPermissionBanner() bool {
	return s.Permission == config.PermissionUnset
}

// PrimePermission performs a test copy of a placeholder. Success is
// recorded; failure offers retry or decline, and declining records the
// denial so the affordance stops nagging.
func (s *State) PrimePermission() {
	if err := s.clipboard.Copy(clip.PrimeText); err != nil {
		s.logger.Warn("clipboard priming failed", zap.Error(err))
		s.dialogs.Confirm("Clipboard access failed", "The test copy did not reach the clipboard. Try again?", func(retry bool) {
			if retry {
				s.PrimePermission()
				return
			}
			s.Permission = config.PermissionDenied
			s.cfg.SavePermission(config.PermissionDenied)
		})
		return
	}
	s.Permission = config.PermissionGranted
	s.cfg.SavePermission(config.PermissionGranted)
	s.dialogs.Alert(dialog.KindSuccess, "Clipboard ready", "Clipboard access is working.")
}

// ToggleHelp switches the help screen on and off.
func (s *State) ToggleHelp() {
	if s.Screen == ScreenHelp {
		s.Screen = s.PrevScreen
		return
	}
	s.PrevScreen = s.Screen
	s.Screen = ScreenHelp
}

// ClearFlash drops the pulse marker once the UI tick fires.
func (s *State) ClearFlash() {
	s.LastAction = ""
}

func (s *State) advanceAndCopy(action string) {
	line, err := s.Cursor.CurrentAndAdvance()
	if err != nil {
		if errors.Is(err, cursor.ErrExhausted) {
			s.dialogs.Alert(dialog.KindInfo, "All lines copied", "Every line has been copied. Jump to a line or reset to start over.")
		}
		return
	}

	// The cursor has already advanced; if the process dies between the
	// clipboard write and the save below, a reload re-offers this line.
	// Accepted: persistence here is best effort, not transactional.
	if err := s.clipboard.Copy(line); err != nil {
		s.reportCopyFailure(err)
		s.saveSession()
		return
	}

	idx, total := s.Cursor.Progress()
	s.flash(action, "Copied line "+strconv.Itoa(idx)+"/"+strconv.Itoa(total))
	s.saveSession()
}

func (s *State) reportCopyFailure(err error) {
	s.logger.Warn("clipboard copy failed", zap.Error(err))
	text := "Every copy mechanism failed. Press a to test and set up clipboard access."
	if errors.Is(err, clip.ErrEmptyText) {
		text = "There was nothing to copy."
	}
	s.dialogs.Alert(dialog.KindError, "Copy failed", text)
}

func (s *State) saveSession() {
	s.store.Save(s.SessionID, s.Cursor.Lines(), s.Cursor.Index())
}

func (s *State) flash(action, msg string) {
	s.LastAction = action
	s.StatusMsg = msg
}
