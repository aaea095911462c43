package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderHelp renders the key reference as markdown through glamour,
// falling back to plain text when the renderer cannot be built.
func RenderHelp(theme string, width int) string {
	md := helpMarkdown()

	style := glamour.WithStandardStyle("dark")
	if theme == "light" {
		style = glamour.WithStandardStyle("light")
	}

	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(Min(width-4, 76)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Fast Copy\n\n")
	b.WriteString("Paste multi-line text, then copy it line by line.\n")

	for _, section := range GetHelpSections() {
		b.WriteString("\n## " + section.Title + "\n\n")
		for _, item := range section.Items {
			b.WriteString("- `" + item.Key + "`: " + item.Desc + "\n")
		}
	}

	return b.String()
}
