package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AlhosienIbrahim/Fast-Copy/internal/app"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/dialog"
)

func RenderTitleBar(st *app.State, s Styles, width int) string {
	var parts []string

	parts = append(parts, s.BarFlash.Render("fastcopy"))

	sep := s.BarDim.Render(" │ ")

	if !st.Cursor.Empty() {
		idx, total := st.Cursor.Progress()
		counts := s.BarHot.Render(Itoa(idx)) + s.BarDim.Render("/"+Itoa(total))
		parts = append(parts, counts)
	}

	parts = append(parts, s.BarText.Render(st.Theme))

	left := strings.Join(parts, sep)

	var right string
	if st.StatusMsg != "" {
		right = s.BarHot.Render("✓ ") + s.BarFlash.Render(st.StatusMsg)
	}

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	padding := width - leftW - rightW
	if padding < 1 {
		padding = 1
	}

	content := left + s.Bar.Render(strings.Repeat(" ", padding)) + right
	contentW := lipgloss.Width(content)
	if contentW < width {
		content += s.Bar.Render(strings.Repeat(" ", width-contentW))
	}

	return content
}

// RenderProgress draws the copied-so-far bar with an i/n (p%) readout.
func RenderProgress(st *app.State, s Styles, width int) string {
	idx, total := st.Cursor.Progress()
	percent := st.Cursor.Percent()

	text := " " + Itoa(idx) + "/" + Itoa(total) + " (" + Itoa(percent) + "%)"
	barW := width - lipgloss.Width(text) - 2
	if barW < 10 {
		barW = 10
	}

	filled := barW * percent / 100
	if filled > barW {
		filled = barW
	}
	bar := s.ProgressFill.Render(strings.Repeat("█", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("░", barW-filled))

	return " " + bar + s.ProgressText.Render(text)
}

// RenderLineList shows a window of lines around the cursor. The next
// line to copy carries the pointer; already-copied lines are dimmed.
func RenderLineList(st *app.State, s Styles, height, width int) string {
	lines := st.Cursor.Lines()
	if len(lines) == 0 {
		return RenderEmpty(s, height, width)
	}
	index := st.Cursor.Index()

	lineNumW := len(Itoa(len(lines))) + 1
	if lineNumW < 4 {
		lineNumW = 4
	}

	start := index - height/2
	if start > len(lines)-height {
		start = len(lines) - height
	}
	if start < 0 {
		start = 0
	}
	end := Min(start+height, len(lines))

	var b strings.Builder
	for i := start; i < end; i++ {
		current := i == index && !st.Cursor.Exhausted()

		pointer := "  "
		numStyle := s.LineNum
		lineStyle := s.LinePending
		switch {
		case current:
			pointer = s.Pointer.Render("▶ ")
			numStyle = s.LineNumHot
			lineStyle = s.LineCurrent
		case i < index:
			lineStyle = s.LineDone
		}

		num := numStyle.Render(PadLeft(Itoa(i+1), lineNumW))
		text := Truncate(lines[i], Max(width-lineNumW-4, 8))

		b.WriteString(pointer)
		b.WriteString(num)
		b.WriteString(" ")
		b.WriteString(lineStyle.Render(text))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	for i := end - start; i < height; i++ {
		b.WriteString("\n")
	}

	return b.String()
}

func RenderEmpty(s Styles, height, width int) string {
	var b strings.Builder
	mid := height / 2
	for i := 0; i < height; i++ {
		if i == mid {
			b.WriteString(CenterText("No lines loaded. Press Ctrl+X to paste new text", width, s.Empty))
		}
		if i < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderPermissionBanner is the affordance shown while clipboard access
// has not been confirmed.
func RenderPermissionBanner(s Styles, width int) string {
	return CenterText("Clipboard access not verified. Press a to test it", width, s.Banner)
}

type footerHint struct {
	action string
	text   string
}

var steppingHints = []footerHint{
	{"next", "c:copy next"},
	{"previous", "C:previous"},
	{"jump", "g:by number"},
	{"all", "Ctrl+Y:all"},
	{"reset", "Ctrl+X:reset"},
	{"theme", "t:theme"},
	{"", "?:help"},
	{"", "q:quit"},
}

// RenderFooter shows key hints; the hint of the action that just fired
// pulses in the accent color until the flash tick clears it.
func RenderFooter(st *app.State, s Styles, dialogActive bool, width int) string {
	if dialogActive || st.Screen != app.ScreenStepping {
		return " " + s.Footer.Render(FooterHints(int(st.Screen), dialogActive))
	}

	parts := make([]string, 0, len(steppingHints))
	for _, h := range steppingHints {
		if h.action != "" && h.action == st.LastAction {
			parts = append(parts, s.Flash.Render(h.text))
			continue
		}
		parts = append(parts, s.Footer.Render(h.text))
	}
	return " " + strings.Join(parts, s.Footer.Render("  "))
}

// RenderDialog draws the pending modal. promptView is the live text
// input view for numeric prompts, empty otherwise.
func RenderDialog(req *dialog.Request, promptView string, s Styles, width int) string {
	boxW := Min(width-8, 56)
	if boxW < 24 {
		boxW = 24
	}
	innerW := boxW - 6

	titleStyle := s.ModalTitle
	switch req.Kind {
	case dialog.KindError:
		titleStyle = s.ModalError
	case dialog.KindSuccess:
		titleStyle = s.ModalSuccess
	}

	var b strings.Builder

	switch {
	case req.IsPrompt():
		b.WriteString(titleStyle.Render(req.Label))
		b.WriteString("\n\n")
		b.WriteString(promptView)
		if req.Invalid != "" {
			b.WriteString("\n")
			b.WriteString(s.ModalInvalid.Render(req.Invalid))
		}
		b.WriteString("\n\n")
		b.WriteString(s.ModalDim.Render("Enter:copy  ESC:cancel"))
	case req.IsConfirm():
		b.WriteString(titleStyle.Render(req.Title))
		b.WriteString("\n\n")
		b.WriteString(wrapText(req.Text, innerW))
		b.WriteString("\n\n")
		b.WriteString(s.ModalDim.Render("y/Enter:yes  n/ESC:no"))
	default:
		b.WriteString(titleStyle.Render(req.Title))
		if req.Text != "" {
			b.WriteString("\n\n")
			b.WriteString(wrapText(req.Text, innerW))
		}
		b.WriteString("\n\n")
		b.WriteString(s.ModalDim.Render("Enter/ESC:close"))
	}

	return s.ModalBorder.Width(boxW).Render(s.ModalText.Render(b.String()))
}

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	line := ""
	for _, word := range strings.Fields(text) {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) > width {
			out.WriteString(line)
			out.WriteString("\n")
			line = word
			continue
		}
		line += " " + word
	}
	out.WriteString(line)
	return out.String()
}
