package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/fretchord/chord"
	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/sound"
	"github.com/jsphweid/fretchord/tui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive fretboard in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMatcher()
		if err != nil {
			return err
		}

		// log lines would tear the screen
		p := sound.NewPlayer(zap.NewNop(), sound.Settings{
			Enabled:  settings.Sound.Enabled,
			Octave:   settings.Sound.Octave,
			Duration: settings.Sound.Duration,
		})
		model := tui.New(fretboard.Standard(), chord.NewCachedMatcher(m, settings.Matcher.CacheTTL), p)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return errors.Wrap(err, "tui failed")
		}
		return nil
	},
}
