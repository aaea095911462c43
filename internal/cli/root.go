// Package cli wires the command line surface: the interactive root
// command plus the version and themes helpers.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlhosienIbrahim/Fast-Copy/internal/app"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/clip"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/config"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/dialog"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/input"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/store"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/ui"
)

const appName = "fastcopy"

// Execute runs the CLI with the given application logger.
func Execute(logger *zap.Logger) error {
	var themeFlag string

	rootCmd := &cobra.Command{
		Use:   "fastcopy [file]",
		Short: "Copy multi-line text to the clipboard one line at a time",
		Long: `fastcopy steps through pasted, piped or file-loaded text and copies
it to the system clipboard line by line. The session survives restarts.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, themeFlag, logger)
		},
	}
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "theme for this run (light or dark); does not change the saved preference")

	rootCmd.AddCommand(newVersionCmd(), newThemesCmd())

	return rootCmd.Execute()
}

func run(args []string, themeFlag string, logger *zap.Logger) error {
	source, err := input.Detect(args)
	if err != nil {
		return err
	}

	cfg := config.Load(config.DefaultDir(appName), logger)
	st := store.New(store.DefaultDir(appName), logger)
	dialogs := &dialog.Queue{}
	state := app.NewState(st, cfg, clip.NewSystem(logger), dialogs, logger)

	if themeFlag == config.ThemeLight || themeFlag == config.ThemeDark {
		state.Theme = themeFlag
	} else if themeFlag != "" {
		return fmt.Errorf("unknown theme %q (expected light or dark)", themeFlag)
	}

	model := ui.NewModel(state, dialogs)

	switch source.Mode {
	case input.ModeFile, input.ModePipe:
		// Explicit input starts a fresh session over any saved one.
		state.ConfirmInput(source.Text)
		if state.Screen == app.ScreenInput {
			model.SetInitialText(source.Text)
		}
	default:
		state.RestoreSession()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if source.Mode == input.ModePipe {
		// Stdin was consumed by the pipe; key events need the TTY.
		opts = append(opts, tea.WithInputTTY())
	}

	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
