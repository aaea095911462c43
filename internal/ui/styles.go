package ui

import "github.com/charmbracelet/lipgloss"

// Palette is one theme's color set. Two presets ship: dark and light.
type Palette struct {
	Name        string
	Description string

	Accent  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Info    lipgloss.Color

	Bg       lipgloss.Color
	BgPanel  lipgloss.Color
	BgSelect lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextBright    lipgloss.Color

	Border  lipgloss.Color
	Divider lipgloss.Color
}

var Presets = map[string]Palette{
	"dark": {
		Name:          "dark",
		Description:   "Dark background, blue accent (default)",
		Accent:        lipgloss.Color("#4E9AF1"),
		Error:         lipgloss.Color("#E54B4B"),
		Success:       lipgloss.Color("#6B9B6B"),
		Info:          lipgloss.Color("#D4915D"),
		Bg:            lipgloss.Color("#0C0C10"),
		BgPanel:       lipgloss.Color("#2A2A38"),
		BgSelect:      lipgloss.Color("#1E1E28"),
		TextPrimary:   lipgloss.Color("#D0D0DC"),
		TextSecondary: lipgloss.Color("#8888A0"),
		TextMuted:     lipgloss.Color("#505068"),
		TextBright:    lipgloss.Color("#EEEEF8"),
		Border:        lipgloss.Color("#282838"),
		Divider:       lipgloss.Color("#303040"),
	},
	"light": {
		Name:          "light",
		Description:   "Light background, blue accent",
		Accent:        lipgloss.Color("#1A6FD4"),
		Error:         lipgloss.Color("#C02B2B"),
		Success:       lipgloss.Color("#2E7D32"),
		Info:          lipgloss.Color("#A8652F"),
		Bg:            lipgloss.Color("#F6F6F8"),
		BgPanel:       lipgloss.Color("#E2E2EA"),
		BgSelect:      lipgloss.Color("#D8E4F4"),
		TextPrimary:   lipgloss.Color("#2A2A34"),
		TextSecondary: lipgloss.Color("#5A5A70"),
		TextMuted:     lipgloss.Color("#9898AC"),
		TextBright:    lipgloss.Color("#101018"),
		Border:        lipgloss.Color("#C4C4D2"),
		Divider:       lipgloss.Color("#CCCCDA"),
	},
}

// PaletteFor resolves a theme name, falling back to dark.
func PaletteFor(theme string) Palette {
	if p, ok := Presets[theme]; ok {
		return p
	}
	return Presets["dark"]
}

// Styles are the derived lipgloss styles for one palette. Rebuilt when
// the theme toggles.
type Styles struct {
	Logo     Style
	Bar      lipgloss.Style
	BarText  lipgloss.Style
	BarDim   lipgloss.Style
	BarHot   lipgloss.Style
	BarFlash lipgloss.Style

	Divider lipgloss.Style

	LineNum     lipgloss.Style
	LineNumHot  lipgloss.Style
	LineCurrent lipgloss.Style
	LineDone    lipgloss.Style
	LinePending lipgloss.Style
	Pointer     lipgloss.Style

	ProgressFill  lipgloss.Style
	ProgressEmpty lipgloss.Style
	ProgressText  lipgloss.Style

	Empty  lipgloss.Style
	Footer lipgloss.Style
	Flash  lipgloss.Style
	Banner lipgloss.Style

	ModalBorder  lipgloss.Style
	ModalTitle   lipgloss.Style
	ModalError   lipgloss.Style
	ModalSuccess lipgloss.Style
	ModalText    lipgloss.Style
	ModalDim     lipgloss.Style
	ModalInvalid lipgloss.Style

	InputHeader lipgloss.Style
	Frame       lipgloss.Style
}

// Style aliases lipgloss.Style for the two-part logo.
type Style struct {
	Mark lipgloss.Style
	Text lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Logo: Style{
			Mark: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
			Text: lipgloss.NewStyle().Foreground(p.TextBright).Bold(true),
		},
		Bar:      lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.TextPrimary),
		BarText:  lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.TextSecondary),
		BarDim:   lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.TextMuted),
		BarHot:   lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.Accent).Bold(true),
		BarFlash: lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.TextBright).Bold(true),

		Divider: lipgloss.NewStyle().Foreground(p.Divider),

		LineNum:     lipgloss.NewStyle().Foreground(p.TextMuted),
		LineNumHot:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		LineCurrent: lipgloss.NewStyle().Background(p.BgSelect).Foreground(p.TextBright).Bold(true),
		LineDone:    lipgloss.NewStyle().Foreground(p.TextMuted),
		LinePending: lipgloss.NewStyle().Foreground(p.TextPrimary),
		Pointer:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),

		ProgressFill:  lipgloss.NewStyle().Foreground(p.Accent),
		ProgressEmpty: lipgloss.NewStyle().Foreground(p.Divider),
		ProgressText:  lipgloss.NewStyle().Foreground(p.TextSecondary),

		Empty:  lipgloss.NewStyle().Foreground(p.TextMuted),
		Footer: lipgloss.NewStyle().Foreground(p.TextMuted),
		Flash:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Banner: lipgloss.NewStyle().Foreground(p.Info).Bold(true),

		ModalBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(1, 2),
		ModalTitle:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		ModalError:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		ModalSuccess: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		ModalText:    lipgloss.NewStyle().Foreground(p.TextPrimary),
		ModalDim:     lipgloss.NewStyle().Foreground(p.TextMuted),
		ModalInvalid: lipgloss.NewStyle().Foreground(p.Error),

		InputHeader: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Frame:       lipgloss.NewStyle().Foreground(p.Border),
	}
}
