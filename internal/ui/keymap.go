package ui

import tea "github.com/charmbracelet/bubbletea"

const (
	KeyEnter     = "enter"
	KeySpace     = " "
	KeyEsc       = "esc"
	KeyQ         = "q"
	KeyQuestion  = "?"
	KeyC         = "c"
	KeyShiftC    = "C"
	KeyG         = "g"
	KeyT         = "t"
	KeyA         = "a"
	KeyY         = "y"
	KeyN         = "n"
	KeyCtrlC     = "ctrl+c"
	KeyCtrlD     = "ctrl+d"
	KeyCtrlV     = "ctrl+v"
	KeyCtrlX     = "ctrl+x"
	KeyCtrlY     = "ctrl+y"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyTab       = "tab"
	KeyBackspace = "backspace"
)

func IsKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

type HelpSection struct {
	Title string
	Items []HelpItem
}

type HelpItem struct {
	Key  string
	Desc string
}

func GetHelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Copying",
			Items: []HelpItem{
				{"c/Enter", "Copy current line and advance"},
				{"C", "Step back and re-copy previous line"},
				{"g", "Copy a specific line by number"},
				{"Ctrl+Y", "Copy all lines at once"},
			},
		},
		{
			Title: "Session",
			Items: []HelpItem{
				{"Ctrl+X", "Reset (clears lines and saved session)"},
				{"Ctrl+D", "Confirm pasted text (paste screen)"},
				{"Ctrl+V", "Pull clipboard into paste screen"},
			},
		},
		{
			Title: "Appearance",
			Items: []HelpItem{
				{"t", "Toggle light/dark theme"},
				{"a", "Test clipboard access"},
			},
		},
		{
			Title: "General",
			Items: []HelpItem{
				{"?", "Toggle help"},
				{"q", "Quit"},
			},
		},
	}
}

func FooterHints(screen int, dialogActive bool) string {
	if dialogActive {
		return "Enter:ok  ESC:cancel"
	}

	const (
		screenInput    = 0
		screenStepping = 1
		screenHelp     = 2
	)

	switch screen {
	case screenInput:
		return "Paste text  Ctrl+D:confirm  Ctrl+V:from clipboard  Ctrl+C:quit"
	case screenStepping:
		return "c:copy next  C:previous  g:by number  Ctrl+Y:all  Ctrl+X:reset  t:theme  ?:help  q:quit"
	case screenHelp:
		return "ESC/?:close"
	default:
		return ""
	}
}
