package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/fretchord/listen"
	"github.com/jsphweid/fretchord/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenFormat string

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().Int("port", 0, "MIDI input port number")
	listenCmd.Flags().StringVarP(&listenFormat, "format", "f", formatText, "output format: text, json or yaml")
	cobra.CheckErr(v.BindPFlag("midi.in_port", listenCmd.Flags().Lookup("port")))
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Identifies chords played on a MIDI keyboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(listenFormat); err != nil {
			return err
		}
		m, err := newMatcher()
		if err != nil {
			return err
		}
		defer midi.CloseDriver()

		out := cmd.OutOrStdout()
		l := listen.New(logger.Named("listen"), m, settings.MIDI.Debounce, func(res listen.Result) {
			if len(res.Notes) < 2 {
				return
			}
			err := printRecognition(out, listenFormat, model.RecognitionResponse{
				RecognizedChords: res.Chords,
				UniqueNotes:      res.Notes,
				TotalNotes:       len(res.Notes),
			})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return listen.Run(ctx, l, settings.MIDI.InPort)
	},
}
