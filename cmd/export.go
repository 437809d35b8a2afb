package cmd

import (
	"os"
	"sort"

	"github.com/jsphweid/fretchord/constants"
	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/note"
	"github.com/jsphweid/fretchord/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportPositions []string
	exportOctave    int
	exportOut       string
	exportBPM       float64
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringSliceVarP(&exportPositions, "position", "p", nil, "string:fret position (repeatable)")
	exportCmd.Flags().IntVar(&exportOctave, "octave", 3, "octave of the lowest note when notes are given by name")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "chord.mid", "file to write")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", 120, "tempo of the file")
}

var exportCmd = &cobra.Command{
	Use:   "export [notes...]",
	Short: "Writes a strummed chord to a MIDI file",
	Example: `  fretchord export -p 1:3 -p 2:2 -p 3:0 -p 4:1 -p 5:0 -o c.mid
  fretchord export A C E G --octave 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := exportKeys(args)
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return errors.Wrap(err, "could not create output file")
		}
		defer f.Close()

		opts := sample.DefaultOptions()
		opts.BPM = exportBPM
		opts.Velocity = uint8(settings.MIDI.Velocity)
		if err := sample.Write(f, keys, opts); err != nil {
			return err
		}
		logger.Info("Wrote MIDI file", zap.String("file", exportOut), zap.Int("notes", len(keys)))
		return nil
	},
}

// exportKeys voices positions as played, and named notes stacked upwards
// from exportOctave in the order given.
func exportKeys(args []string) ([]uint8, error) {
	if len(exportPositions) > 0 {
		t := fretboard.Standard()
		coords, err := parseCoordinates(t, exportPositions)
		if err != nil {
			return nil, err
		}
		keys := make([]uint8, 0, len(coords))
		for _, c := range coords {
			k, _ := t.MidiKey(c)
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		return keys, nil
	}

	if len(args) == 0 {
		return nil, errors.New("give notes or --position")
	}
	var keys []uint8
	for _, n := range note.Unique(args) {
		base, err := note.MidiKey(n, exportOctave)
		if err != nil {
			return nil, err
		}
		k := int(base)
		for len(keys) > 0 && k <= int(keys[len(keys)-1]) {
			k += 12
		}
		if k > constants.MaxMidiKey {
			return nil, errors.Errorf("stacking %s puts it above MIDI key %d, try a lower --octave", n, constants.MaxMidiKey)
		}
		keys = append(keys, uint8(k))
	}
	return keys, nil
}
