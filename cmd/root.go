package cmd

import (
	"github.com/jsphweid/fretchord/catalog"
	"github.com/jsphweid/fretchord/chord"
	"github.com/jsphweid/fretchord/config"
	"github.com/jsphweid/fretchord/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile  string
	verbose  bool
	v        = config.New()
	settings config.Settings
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fretchord",
	Short: "Identifies guitar chords from fretboard positions",
	Long: `fretchord names the chord formed by a set of notes, either given
directly or as string:fret positions on a standard-tuned guitar.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ReadFile(v, cfgFile); err != nil {
			return err
		}
		var err error
		settings, err = config.Load(v)
		if err != nil {
			return err
		}

		if verbose {
			settings.Log.Level = zapcore.DebugLevel.String()
		}
		logger, err = logging.New(logging.Config{Level: settings.Log.Level, Development: settings.Log.Development})
		if err != nil {
			return err
		}
		logger.Debug("Loaded configuration", zap.String("file", v.ConfigFileUsed()), zap.String("catalog", settings.Catalog))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./fretchord.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().String("catalog", catalog.Standard, "chord catalog to match against")
	rootCmd.PersistentFlags().Bool("strict", false, "only penalize extra notes, never reward missing ones")
	cobra.CheckErr(v.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog")))
	cobra.CheckErr(v.BindPFlag("matcher.strict_penalty", rootCmd.PersistentFlags().Lookup("strict")))
}

func newMatcher() (*chord.Matcher, error) {
	c, err := catalog.Get(settings.Catalog)
	if err != nil {
		return nil, errors.Wrap(err, "could not load catalog")
	}
	opts := []chord.Option{chord.WithMaxResults(settings.Matcher.MaxResults)}
	if settings.Matcher.StrictPenalty {
		opts = append(opts, chord.WithStrictPenalty())
	}
	return chord.NewMatcher(c, opts...), nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
