package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gesturebackup/internal/config"
	"gesturebackup/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit the source folder and extension filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
			return errors.New("the settings editor needs an interactive terminal")
		}

		cfg, err := config.Load(v, cfgFile)
		if err != nil && !errors.Is(err, config.ErrNoSource) {
			return err
		}

		final, err := tea.NewProgram(settings.New(cfgFile, cfg.AppConfig), tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(settings.Model); ok && m.Saved() {
			fmt.Fprintf(cmd.OutOrStdout(), "Settings saved to %s\n", cfgFile)
		}
		return nil
	},
}
