package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/server"
	"github.com/jsphweid/fretchord/sound"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("address", "", "address to listen on (default :8080)")
	cobra.CheckErr(v.BindPFlag("server.address", serveCmd.Flags().Lookup("address")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord recognition HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMatcher()
		if err != nil {
			return err
		}

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		s, err := server.New(server.Options{
			Logger:         logger.Named("server"),
			Matcher:        m,
			CacheTTL:       settings.Matcher.CacheTTL,
			Tuning:         fretboard.Standard(),
			Player:         newPlayer(),
			SessionTTL:     settings.Sessions.TTL,
			AllowedOrigins: settings.Server.AllowedOrigins,
			Registry:       registry,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return s.ListenAndServe(ctx, settings.Server.Address)
	},
}

func newPlayer() *sound.Player {
	return sound.NewPlayer(logger.Named("sound"), sound.Settings{
		Enabled:  settings.Sound.Enabled,
		Octave:   settings.Sound.Octave,
		Duration: settings.Sound.Duration,
		Velocity: uint8(settings.MIDI.Velocity),
	})
}
