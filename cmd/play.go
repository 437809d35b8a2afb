package cmd

import (
	"fmt"
	"time"

	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/note"
	"github.com/spf13/cobra"
)

var (
	playOctave   int
	playDuration time.Duration
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playOctave, "octave", "o", -1, "octave to play a named note in (default from config)")
	playCmd.Flags().DurationVarP(&playDuration, "duration", "d", 0, "how long to hold the note (default from config)")
}

var playCmd = &cobra.Command{
	Use:   "play <note|string:fret>",
	Short: "Plays a single note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPlayer()
		p.SetEnabled(true)

		duration := playDuration
		if duration <= 0 {
			duration = p.DefaultDuration()
		}

		name, octave := args[0], playOctave
		if c, err := parseCoordinate(args[0]); err == nil {
			key, err := fretboard.Standard().MidiKey(c)
			if err != nil {
				return err
			}
			name, octave = note.FromMidiKey(key)
		}
		if octave < 0 {
			octave = p.DefaultOctave()
		}

		res, err := p.Play(name, octave, duration)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %dms\n", res.Status, res.Note, res.Duration)
		return nil
	},
}
