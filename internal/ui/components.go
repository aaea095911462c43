package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func SmallLogo(s Styles) string {
	return s.Logo.Mark.Render("⧉") + " " + s.Logo.Text.Render("FAST COPY")
}

func Divider(s Styles, width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

// Frame draws the outer rounded border around the whole screen.
func Frame(content string, width, height int, border lipgloss.Style) string {
	lines := strings.Split(content, "\n")
	var b strings.Builder

	topLeft := border.Render("╭")
	topRight := border.Render("╮")
	bottomLeft := border.Render("╰")
	bottomRight := border.Render("╯")
	vertical := border.Render("│")

	contentW := width - 2

	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}

		lineW := lipgloss.Width(line)
		padding := contentW - lineW
		if padding < 0 {
			padding = 0
			line = TruncateVisual(line, contentW)
		}

		switch i {
		case 0:
			b.WriteString(topLeft)
			b.WriteString(line)
			b.WriteString(strings.Repeat(" ", padding))
			b.WriteString(topRight)
		case height - 1:
			b.WriteString(bottomLeft)
			b.WriteString(line)
			b.WriteString(strings.Repeat(" ", padding))
			b.WriteString(bottomRight)
		default:
			b.WriteString(vertical)
			b.WriteString(line)
			b.WriteString(strings.Repeat(" ", padding))
			b.WriteString(vertical)
		}

		if i < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func TruncateVisual(s string, maxW int) string {
	if lipgloss.Width(s) <= maxW {
		return s
	}
	for len(s) > 0 && lipgloss.Width(s) > maxW-3 {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func Truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		if len(s) <= maxLen {
			return s
		}
		return s[:maxLen]
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w < width {
		s = s + strings.Repeat(" ", width-w)
	}
	return s
}

func PadLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w < width {
		s = strings.Repeat(" ", width-w) + s
	}
	return s
}

func CenterText(text string, width int, style lipgloss.Style) string {
	textW := lipgloss.Width(text)
	if textW >= width {
		return style.Render(TruncateVisual(text, width))
	}
	pad := (width - textW) / 2
	return strings.Repeat(" ", pad) + style.Render(text) + strings.Repeat(" ", width-textW-pad)
}

func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + Itoa(-n)
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
