package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AlhosienIbrahim/Fast-Copy/internal/ui"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Run:   runThemes,
	}
}

func runThemes(cmd *cobra.Command, args []string) {
	names := make([]string, 0, len(ui.Presets))
	for name := range ui.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	maxLen := 0
	for _, name := range names {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}

	fmt.Println("Available themes:")
	for _, name := range names {
		fmt.Printf("  %-*s  %s\n", maxLen, name, ui.Presets[name].Description)
	}
	fmt.Println()
	fmt.Println("Switch with the t key inside fastcopy, or pass --theme for one run.")
}
