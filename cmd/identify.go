package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/midi"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	identifyPositions []string
	identifyMidiFile  string
	identifyEach      bool
	identifyFormat    string
)

func init() {
	rootCmd.AddCommand(identifyCmd)
	identifyCmd.Flags().StringSliceVarP(&identifyPositions, "position", "p", nil, "string:fret position, string 0 is low E (repeatable)")
	identifyCmd.Flags().StringVar(&identifyMidiFile, "midi", "", "read notes from a MIDI file")
	identifyCmd.Flags().BoolVar(&identifyEach, "each", false, "with --midi, identify every change of held notes")
	identifyCmd.Flags().StringVarP(&identifyFormat, "format", "f", formatText, "output format: text, json or yaml")
}

var identifyCmd = &cobra.Command{
	Use:   "identify [notes...]",
	Short: "Names the chord formed by notes or fretboard positions",
	Example: `  fretchord identify C E G
  fretchord identify -p 1:3 -p 2:2 -p 3:0 -p 4:1 -p 5:0
  fretchord identify --midi song.mid --each`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(identifyFormat); err != nil {
			return err
		}
		m, err := newMatcher()
		if err != nil {
			return err
		}

		if identifyMidiFile != "" {
			return identifyMidi(cmd, m.Recognize)
		}

		notes := args
		if len(identifyPositions) > 0 {
			resolved, err := resolvePositions(fretboard.Standard(), identifyPositions)
			if err != nil {
				return err
			}
			notes = append(notes, resolved...)
		}
		if len(notes) < 2 {
			return errors.New("at least 2 notes are required for chord recognition")
		}

		for _, n := range notes {
			if !note.IsPitchClass(n) {
				logger.Warn("Unknown note will not match any chord", zap.String("note", n))
			}
		}

		return printRecognition(cmd.OutOrStdout(), identifyFormat, model.RecognitionResponse{
			RecognizedChords: m.Recognize(notes),
			UniqueNotes:      note.Unique(notes),
			TotalNotes:       len(notes),
		})
	},
}

func identifyMidi(cmd *cobra.Command, recognize func([]string) []model.MatchResult) error {
	s, err := midi.ReadMidiFile(identifyMidiFile)
	if err != nil {
		return err
	}

	if !identifyEach {
		notes := midi.PitchClasses(s)
		return printRecognition(cmd.OutOrStdout(), identifyFormat, model.RecognitionResponse{
			RecognizedChords: recognize(notes),
			UniqueNotes:      notes,
			TotalNotes:       len(notes),
		})
	}

	snapshots := midi.Snapshots(s)
	logger.Debug("Read MIDI file", zap.String("file", identifyMidiFile), zap.Int("snapshots", len(snapshots)))
	for _, snap := range snapshots {
		notes := snap.Notes()
		if len(notes) < 2 {
			continue
		}
		if identifyFormat == formatText {
			fmt.Fprintf(cmd.OutOrStdout(), "@%d ", snap.Tick)
		}
		err := printRecognition(cmd.OutOrStdout(), identifyFormat, model.RecognitionResponse{
			RecognizedChords: recognize(notes),
			UniqueNotes:      notes,
			TotalNotes:       len(notes),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func parseCoordinate(s string) (model.Coordinate, error) {
	str, fret, ok := strings.Cut(s, ":")
	if !ok {
		return model.Coordinate{}, errors.Errorf("position %q is not string:fret", s)
	}
	si, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(err, "position %q", s)
	}
	fi, err := strconv.Atoi(strings.TrimSpace(fret))
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(err, "position %q", s)
	}
	return model.Coordinate{String: si, Fret: fi}, nil
}

func parseCoordinates(t fretboard.Tuning, raw []string) ([]model.Coordinate, error) {
	res := make([]model.Coordinate, 0, len(raw))
	for _, r := range raw {
		c, err := parseCoordinate(r)
		if err != nil {
			return nil, err
		}
		if err := t.Validate(c); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func resolvePositions(t fretboard.Tuning, raw []string) ([]string, error) {
	coords, err := parseCoordinates(t, raw)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(coords))
	for _, c := range coords {
		n, _ := t.Lookup(c)
		res = append(res, n)
	}
	return res, nil
}
