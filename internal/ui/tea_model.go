package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AlhosienIbrahim/Fast-Copy/internal/app"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/dialog"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/input"
)

const flashDuration = 450 * time.Millisecond

type clearFlashMsg struct{}

type Model struct {
	State   *app.State
	Dialogs *dialog.Queue
	Width   int
	Height  int

	styles     Styles
	textarea   textarea.Model
	prompt     textinput.Model
	activeReq  *dialog.Request
	lastScreen app.Screen
}

func NewModel(state *app.State, dialogs *dialog.Queue) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste your lines here…"
	ta.CharLimit = 0
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 8
	ti.Width = 12

	return Model{
		State:      state,
		Dialogs:    dialogs,
		Width:      80,
		Height:     24,
		styles:     NewStyles(PaletteFor(state.Theme)),
		textarea:   ta,
		prompt:     ti,
		lastScreen: state.Screen,
	}
}

// SetInitialText preloads the paste screen, e.g. from a file argument.
func (m *Model) SetInitialText(text string) {
	m.textarea.SetValue(text)
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.textarea.SetWidth(Max(msg.Width-8, 20))
		m.textarea.SetHeight(Max(msg.Height-9, 3))
		return m, nil
	case clearFlashMsg:
		m.State.ClearFlash()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastScreen = m.State.Screen

	var next tea.Model
	var cmd tea.Cmd
	if m.Dialogs.Active() != nil {
		next, cmd = m.handleDialogKey(msg)
	} else {
		switch m.State.Screen {
		case app.ScreenInput:
			next, cmd = m.handleInputKey(msg)
		case app.ScreenHelp:
			next, cmd = m.handleHelpKey(msg)
		default:
			next, cmd = m.handleSteppingKey(msg)
		}
	}

	model := next.(Model)
	model.syncAfterDispatch()
	return model, tea.Batch(cmd, model.flashCmd())
}

// syncAfterDispatch reconciles UI-side state with whatever the action
// just did: focuses a freshly opened numeric prompt, clears the paste
// screen after a reset, and re-derives styles after a theme toggle.
func (m *Model) syncAfterDispatch() {
	active := m.Dialogs.Active()
	if active != m.activeReq {
		m.activeReq = active
		if active != nil && active.IsPrompt() {
			m.prompt.SetValue("")
			m.prompt.Focus()
		}
	}

	if m.lastScreen == app.ScreenStepping && m.State.Screen == app.ScreenInput {
		m.textarea.SetValue("")
		m.textarea.Focus()
	}

	m.styles = NewStyles(PaletteFor(m.State.Theme))
}

func (m Model) flashCmd() tea.Cmd {
	if m.State.LastAction == "" {
		return nil
	}
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	req := m.Dialogs.Active()

	switch {
	case IsKey(msg, KeyCtrlC):
		return m, tea.Quit
	case IsKey(msg, KeyEsc):
		m.Dialogs.Dismiss()
	case IsKey(msg, KeyEnter):
		if req.IsPrompt() {
			req.Input = m.prompt.Value()
		}
		m.Dialogs.Accept()
	case req.IsConfirm() && IsKey(msg, KeyY):
		m.Dialogs.Accept()
	case req.IsConfirm() && IsKey(msg, KeyN):
		m.Dialogs.Dismiss()
	default:
		if req.IsPrompt() {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			req.Input = m.prompt.Value()
			return m, cmd
		}
		if !req.IsConfirm() {
			// Any key closes a plain alert.
			m.Dialogs.Accept()
		}
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case IsKey(msg, KeyCtrlC):
		return m, tea.Quit
	case IsKey(msg, KeyCtrlD):
		m.State.ConfirmInput(m.textarea.Value())
	case IsKey(msg, KeyCtrlV):
		text, err := input.ReadClipboard()
		if err != nil {
			m.Dialogs.Alert(dialog.KindError, "Clipboard read failed", "Could not read the clipboard contents.")
			return m, nil
		}
		if strings.TrimSpace(text) != "" {
			m.textarea.InsertString(text)
		}
	case IsKey(msg, KeyEsc) && !m.State.Cursor.Empty():
		m.State.Screen = app.ScreenStepping
	default:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSteppingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case IsKey(msg, KeyQ, KeyCtrlC):
		return m, tea.Quit
	case IsKey(msg, KeyC, KeyEnter, KeySpace):
		m.State.CopyNext()
	case IsKey(msg, KeyShiftC):
		m.State.CopyPrevious()
	case IsKey(msg, KeyG):
		m.State.CopyByNumber()
	case IsKey(msg, KeyCtrlY):
		m.State.CopyAll()
	case IsKey(msg, KeyCtrlX):
		m.State.Reset()
	case IsKey(msg, KeyT):
		m.State.ToggleTheme()
	case IsKey(msg, KeyA):
		m.State.PrimePermission()
	case IsKey(msg, KeyQuestion):
		m.State.ToggleHelp()
	}
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case IsKey(msg, KeyCtrlC):
		return m, tea.Quit
	case IsKey(msg, KeyEsc, KeyQuestion, KeyQ):
		m.State.ToggleHelp()
	}
	return m, nil
}

func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	w := Max(m.Width-2, 40)
	h := Max(m.Height, 10)

	var content string
	switch m.State.Screen {
	case app.ScreenInput:
		content = m.renderInput(w, h)
	case app.ScreenHelp:
		content = m.renderHelp(w, h)
	default:
		content = m.renderStepping(w, h)
	}

	if req := m.Dialogs.Active(); req != nil {
		promptView := ""
		if req.IsPrompt() {
			promptView = m.prompt.View()
		}
		modal := RenderDialog(req, promptView, m.styles, w)
		content = overlayCentered(splitLines(content), splitLines(modal), w, h-2)
	}

	return Frame(content, m.Width, m.Height, m.styles.Frame)
}

func (m Model) renderInput(w, h int) string {
	titleBar := RenderTitleBar(m.State, m.styles, w)
	footer := RenderFooter(m.State, m.styles, m.Dialogs.Active() != nil, w)
	header := " " + m.styles.InputHeader.Render("Paste the text to copy line by line, then press Ctrl+D")

	bodyH := h - 5
	body := m.textarea.View()
	bodyLines := splitLines(body)
	if len(bodyLines) > bodyH {
		bodyLines = bodyLines[:bodyH]
	}

	return titleBar + "\n" + header + "\n" + strings.Join(bodyLines, "\n") + "\n" + footer
}

func (m Model) renderStepping(w, h int) string {
	titleBar := RenderTitleBar(m.State, m.styles, w)
	footer := RenderFooter(m.State, m.styles, m.Dialogs.Active() != nil, w)
	progress := RenderProgress(m.State, m.styles, w)
	divider := Divider(m.styles, w)

	extra := 0
	banner := ""
	if m.State.ShowPermissionBanner() {
		banner = RenderPermissionBanner(m.styles, w) + "\n"
		extra = 1
	}

	listH := h - 6 - extra
	if listH < 3 {
		listH = 3
	}
	list := RenderLineList(m.State, m.styles, listH, w)

	return titleBar + "\n" + banner + list + "\n" + divider + "\n" + progress + "\n" + footer
}

func (m Model) renderHelp(w, h int) string {
	titleBar := RenderTitleBar(m.State, m.styles, w)
	footer := RenderFooter(m.State, m.styles, false, w)

	help := RenderHelp(m.State.Theme, w)
	helpLines := splitLines(help)
	maxH := h - 4
	if len(helpLines) > maxH {
		helpLines = helpLines[:maxH]
	}

	return titleBar + "\n" + strings.Join(helpLines, "\n") + "\n" + footer
}

func splitLines(s string) []string {
	var lines []string
	var current []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, string(current))
			current = nil
		} else if s[i] != '\r' {
			current = append(current, s[i])
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

func overlayCentered(bg, modal []string, w, h int) string {
	result := make([]string, len(bg))
	copy(result, bg)

	top := (h - len(modal)) / 2
	if top < 0 {
		top = 0
	}

	for i, line := range modal {
		row := top + i
		if row >= len(result) {
			break
		}
		pad := (w - lipgloss.Width(line)) / 2
		if pad < 0 {
			pad = 0
		}
		result[row] = strings.Repeat(" ", pad) + line
	}

	return strings.Join(result, "\n")
}
