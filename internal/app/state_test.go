package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlhosienIbrahim/Fast-Copy/internal/clip"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/config"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/dialog"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/store"
)

type fixture struct {
	state   *State
	clip    *clip.Memory
	dialogs *dialog.Stub
	store   *store.Store
	cfg     *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.New(t.TempDir(), zap.NewNop())
	cfg := config.Load(t.TempDir(), zap.NewNop())
	mem := &clip.Memory{}
	dialogs := &dialog.Stub{}
	return &fixture{
		state:   NewState(st, cfg, clip.New(nil, mem), dialogs, zap.NewNop()),
		clip:    mem,
		dialogs: dialogs,
		store:   st,
		cfg:     cfg,
	}
}

func TestConfirmInputStartsSession(t *testing.T) {
	f := newFixture(t)

	f.state.ConfirmInput("a\n\nb\n c \n")

	require.Equal(t, ScreenStepping, f.state.Screen)
	require.Equal(t, []string{"a", "b", "c"}, f.state.Cursor.Lines())
	require.NotEmpty(t, f.state.SessionID)

	snap := f.store.Load()
	require.NotNil(t, snap)
	require.Equal(t, []string{"a", "b", "c"}, snap.Lines)
	require.Equal(t, 0, snap.Index)
}

func TestConfirmInputEmpty(t *testing.T) {
	f := newFixture(t)

	f.state.ConfirmInput("   \n\n  ")

	require.Equal(t, ScreenInput, f.state.Screen)
	alert := f.dialogs.LastAlert()
	require.NotNil(t, alert)
	require.Equal(t, dialog.KindError, alert.Kind)
}

func TestCopyNextSequence(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb\nc")

	f.state.CopyNext()
	require.Equal(t, "a", f.clip.Contents)
	require.Equal(t, 1, f.state.Cursor.Index())
	require.Equal(t, "Copied line 1/3", f.state.StatusMsg)

	f.state.CopyNext()
	require.Equal(t, "b", f.clip.Contents)

	f.state.CopyNext()
	require.Equal(t, "c", f.clip.Contents)
	require.True(t, f.state.Cursor.Exhausted())

	// One more: informational alert, clipboard untouched.
	f.state.CopyNext()
	require.Equal(t, "c", f.clip.Contents)
	alert := f.dialogs.LastAlert()
	require.NotNil(t, alert)
	require.Equal(t, dialog.KindInfo, alert.Kind)
	require.Equal(t, "All lines copied", alert.Title)
}

func TestCopyNextPersistsCursor(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb")
	f.state.CopyNext()

	snap := f.store.Load()
	require.NotNil(t, snap)
	require.Equal(t, 1, snap.Index)
}

func TestCopyPreviousRecopiesFirstLine(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb\nc")
	f.state.CopyNext()
	f.state.CopyNext()
	require.Equal(t, 2, f.state.Cursor.Index())

	// Double decrement clamps to 0, so the first line comes back.
	f.state.CopyPrevious()
	require.Equal(t, "a", f.clip.Contents)
	require.Equal(t, 1, f.state.Cursor.Index())
}

func TestCopyPreviousAtStart(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb")

	f.state.CopyPrevious()
	alert := f.dialogs.LastAlert()
	require.NotNil(t, alert)
	require.Equal(t, dialog.KindInfo, alert.Kind)
	require.Equal(t, 0, f.state.Cursor.Index())
}

func TestCopyByNumber(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb\nc")

	f.dialogs.Numbers = []dialog.NumberResult{{Confirmed: true, Value: 2}}
	f.state.CopyByNumber()

	require.Equal(t, "b", f.clip.Contents)
	require.Equal(t, 2, f.state.Cursor.Index())
}

func TestCopyByNumberOutOfRange(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb\nc")
	f.state.CopyNext()
	before := f.state.Cursor.Index()

	f.dialogs.Numbers = []dialog.NumberResult{{Confirmed: true, Value: 5}}
	f.state.CopyByNumber()

	require.Equal(t, before, f.state.Cursor.Index())
	alert := f.dialogs.LastAlert()
	require.NotNil(t, alert)
	require.Equal(t, dialog.KindError, alert.Kind)
}

func TestCopyByNumberCancelled(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb")

	f.dialogs.Numbers = []dialog.NumberResult{{}}
	f.state.CopyByNumber()

	require.Empty(t, f.clip.Contents)
	require.Equal(t, 0, f.state.Cursor.Index())
}

func TestCopyAll(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb\nc")

	f.state.CopyAll()
	require.Equal(t, "a\nb\nc", f.clip.Contents)
	require.Equal(t, 0, f.state.Cursor.Index(), "copy-all must not move the cursor")
}

func TestResetConfirmed(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb")
	f.state.CopyNext()

	f.dialogs.Confirms = []bool{true}
	f.state.Reset()

	require.Equal(t, ScreenInput, f.state.Screen)
	require.True(t, f.state.Cursor.Empty())
	require.Empty(t, f.state.SessionID)
	require.Nil(t, f.store.Load())
}

func TestResetDeclined(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a\nb")

	f.dialogs.Confirms = []bool{false}
	f.state.Reset()

	require.Equal(t, ScreenStepping, f.state.Screen)
	require.False(t, f.state.Cursor.Empty())
	require.NotNil(t, f.store.Load())
}

func TestResetSparesTheme(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a")
	f.state.ToggleTheme()
	require.Equal(t, config.ThemeLight, f.state.Theme)

	f.dialogs.Confirms = []bool{true}
	f.state.Reset()

	require.Equal(t, config.ThemeLight, f.cfg.Theme())
}

func TestRestoreSession(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir, zap.NewNop())
	st.Save("old-id", []string{"a", "b", "c"}, 2)

	cfg := config.Load(t.TempDir(), zap.NewNop())
	s := NewState(st, cfg, clip.New(nil, &clip.Memory{}), &dialog.Stub{}, zap.NewNop())

	require.True(t, s.RestoreSession())
	require.Equal(t, ScreenStepping, s.Screen)
	require.Equal(t, "old-id", s.SessionID)
	require.Equal(t, 2, s.Cursor.Index())
}

func TestRestoreSessionNothingSaved(t *testing.T) {
	f := newFixture(t)
	require.False(t, f.state.RestoreSession())
	require.Equal(t, ScreenInput, f.state.Screen)
}

func TestCopyFailureAlertsAndKeepsGoing(t *testing.T) {
	st := store.New(t.TempDir(), zap.NewNop())
	cfg := config.Load(t.TempDir(), zap.NewNop())
	dialogs := &dialog.Stub{}
	s := NewState(st, cfg, clip.New(nil, &clip.Failing{}), dialogs, zap.NewNop())

	s.ConfirmInput("a\nb")
	s.CopyNext()

	alert := dialogs.LastAlert()
	require.NotNil(t, alert)
	require.Equal(t, dialog.KindError, alert.Kind)
	// The advance still happened and was persisted (accepted race).
	require.Equal(t, 1, s.Cursor.Index())
	snap := st.Load()
	require.NotNil(t, snap)
	require.Equal(t, 1, snap.Index)
}

func TestPrimePermissionGranted(t *testing.T) {
	f := newFixture(t)

	f.state.PrimePermission()

	require.Equal(t, clip.PrimeText, f.clip.Contents)
	require.True(t, f.state.PermissionKnown())
	require.Equal(t, config.PermissionGranted, f.cfg.Permission())
	alert := f.dialogs.LastAlert()
	require.NotNil(t, alert)
	require.Equal(t, dialog.KindSuccess, alert.Kind)
}

func TestPrimePermissionRetryThenDecline(t *testing.T) {
	st := store.New(t.TempDir(), zap.NewNop())
	cfgDir := t.TempDir()
	cfg := config.Load(cfgDir, zap.NewNop())
	failing := &clip.Failing{}
	dialogs := &dialog.Stub{Confirms: []bool{true, false}}
	s := NewState(st, cfg, clip.New(nil, failing), dialogs, zap.NewNop())

	s.PrimePermission()

	// First failure retried once, second failure declined.
	require.Equal(t, 2, failing.Calls)
	require.Equal(t, config.PermissionDenied, s.Permission)
	require.Equal(t, config.PermissionDenied, config.Load(cfgDir, zap.NewNop()).Permission())
}

func TestToggleTheme(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, config.ThemeDark, f.state.Theme)

	f.state.ToggleTheme()
	require.Equal(t, config.ThemeLight, f.state.Theme)
	require.Equal(t, config.ThemeLight, f.cfg.Theme())

	f.state.ToggleTheme()
	require.Equal(t, config.ThemeDark, f.state.Theme)
}

func TestToggleHelpReturnsToPreviousScreen(t *testing.T) {
	f := newFixture(t)
	f.state.ConfirmInput("a")

	f.state.ToggleHelp()
	require.Equal(t, ScreenHelp, f.state.Screen)
	f.state.ToggleHelp()
	require.Equal(t, ScreenStepping, f.state.Screen)
}
