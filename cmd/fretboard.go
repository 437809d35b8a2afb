package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretchord/constants"
	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/model"
	"github.com/spf13/cobra"
)

var (
	fretboardFrets     int
	fretboardPositions []string
	fretboardFormat    string
)

func init() {
	rootCmd.AddCommand(fretboardCmd)
	fretboardCmd.Flags().IntVar(&fretboardFrets, "frets", 12, "highest fret to draw")
	fretboardCmd.Flags().StringSliceVarP(&fretboardPositions, "position", "p", nil, "string:fret position to highlight (repeatable)")
	fretboardCmd.Flags().StringVarP(&fretboardFormat, "format", "f", formatText, "output format: text, json or yaml")
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Draws the note at every position of the standard-tuned neck",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(fretboardFormat); err != nil {
			return err
		}
		t := fretboard.Standard()
		if fretboardFormat != formatText {
			return encode(cmd.OutOrStdout(), fretboardFormat, model.FretboardResponse{
				Strings: t,
				Frets:   constants.NumFrets,
				Markers: fretboard.Markers(),
			})
		}

		coords, err := parseCoordinates(t, fretboardPositions)
		if err != nil {
			return err
		}
		sel := fretboard.NewSelection(t)
		for _, c := range coords {
			if !sel.Has(c) {
				_, _ = sel.Toggle(c)
			}
		}

		frets := fretboardFrets
		if frets < 0 || frets > constants.MaxFret {
			frets = constants.MaxFret
		}
		drawFretboard(cmd, sel, frets)
		return nil
	},
}

func drawFretboard(cmd *cobra.Command, sel *fretboard.Selection, frets int) {
	out := cmd.OutOrStdout()
	t := sel.Tuning()

	var header strings.Builder
	header.WriteString("    ")
	for fret := 0; fret <= frets; fret++ {
		fmt.Fprintf(&header, "%-4d", fret)
	}
	fmt.Fprintln(out, strings.TrimRight(header.String(), " "))

	for s := len(t) - 1; s >= 0; s-- {
		var row strings.Builder
		fmt.Fprintf(&row, "%-2s| ", t[s].Name)
		for fret := 0; fret <= frets; fret++ {
			n := fretboard.ResolvePitchClass(t, s, fret)
			if sel.Len() > 0 && !sel.Has(model.Coordinate{String: s, Fret: fret}) {
				n = "-"
			}
			fmt.Fprintf(&row, "%-4s", n)
		}
		fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
	}

	var markers strings.Builder
	markers.WriteString("    ")
	for fret := 0; fret <= frets; fret++ {
		switch fretboard.MarkerAt(fret) {
		case fretboard.SingleMarker:
			markers.WriteString("*   ")
		case fretboard.DoubleMarker:
			markers.WriteString("**  ")
		default:
			markers.WriteString("    ")
		}
	}
	fmt.Fprintln(out, strings.TrimRight(markers.String(), " "))

	if sel.Len() > 0 {
		fmt.Fprintf(out, "\nNotes: %s\n", strings.Join(sel.PitchClasses(), " "))
	}
}
