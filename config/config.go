package config

import (
	"strings"
	"time"

	"github.com/jsphweid/fretchord/catalog"
	"github.com/jsphweid/fretchord/constants"
	"github.com/jsphweid/fretchord/note"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var ErrInvalid = errors.New("invalid configuration")

type LogSettings struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type MatcherSettings struct {
	StrictPenalty bool          `mapstructure:"strict_penalty"`
	MaxResults    int           `mapstructure:"max_results"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

type ServerSettings struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type SessionSettings struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type SoundSettings struct {
	Enabled  bool          `mapstructure:"enabled"`
	Octave   int           `mapstructure:"octave"`
	Duration time.Duration `mapstructure:"duration"`
}

type MIDISettings struct {
	InPort   int           `mapstructure:"in_port"`
	Debounce time.Duration `mapstructure:"debounce"`
	Velocity int           `mapstructure:"velocity"`
}

type Settings struct {
	Log      LogSettings     `mapstructure:"log"`
	Catalog  string          `mapstructure:"catalog"`
	Matcher  MatcherSettings `mapstructure:"matcher"`
	Server   ServerSettings  `mapstructure:"server"`
	Sessions SessionSettings `mapstructure:"sessions"`
	Sound    SoundSettings   `mapstructure:"sound"`
	MIDI     MIDISettings    `mapstructure:"midi"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("catalog", catalog.Standard)
	v.SetDefault("matcher.strict_penalty", false)
	v.SetDefault("matcher.max_results", constants.MaxResults)
	v.SetDefault("matcher.cache_ttl", 10*time.Minute)
	v.SetDefault("server.address", constants.DefaultAddress)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("sessions.ttl", 30*time.Minute)
	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.octave", 4)
	v.SetDefault("sound.duration", 500*time.Millisecond)
	v.SetDefault("midi.in_port", 0)
	v.SetDefault("midi.debounce", 150*time.Millisecond)
	v.SetDefault("midi.velocity", 100)
}

// New returns a viper instance with defaults set and FRETCHORD_* environment
// variables bound, e.g. FRETCHORD_SERVER_ADDRESS.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads path if given, otherwise looks for fretchord.yaml in the
// usual places. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "error reading config file %s", path)
		}
		return nil
	}

	v.SetConfigName("fretchord")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/fretchord")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "error reading config file")
	}
	return nil
}

func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, errors.Wrap(err, "error unmarshaling config")
	}
	return s, s.Validate()
}

func (s Settings) Validate() error {
	if _, err := zapcore.ParseLevel(s.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalid, "log.level %q", s.Log.Level)
	}
	if _, err := catalog.Get(s.Catalog); err != nil {
		return errors.Wrapf(ErrInvalid, "catalog %q, want one of %v", s.Catalog, catalog.Names())
	}
	if s.Matcher.MaxResults <= 0 {
		return errors.Wrapf(ErrInvalid, "matcher.max_results must be positive, got %d", s.Matcher.MaxResults)
	}
	if s.Matcher.CacheTTL <= 0 {
		return errors.Wrapf(ErrInvalid, "matcher.cache_ttl must be positive, got %v", s.Matcher.CacheTTL)
	}
	if s.Sessions.TTL <= 0 {
		return errors.Wrapf(ErrInvalid, "sessions.ttl must be positive, got %v", s.Sessions.TTL)
	}
	if s.Sound.Octave < note.MinOctave || s.Sound.Octave > note.MaxOctave {
		return errors.Wrapf(ErrInvalid, "sound.octave %d not in [%d, %d]", s.Sound.Octave, note.MinOctave, note.MaxOctave)
	}
	if s.Sound.Duration < 0 {
		return errors.Wrapf(ErrInvalid, "sound.duration must not be negative")
	}
	if s.MIDI.InPort < 0 {
		return errors.Wrapf(ErrInvalid, "midi.in_port must not be negative")
	}
	if s.MIDI.Debounce < 0 {
		return errors.Wrapf(ErrInvalid, "midi.debounce must not be negative")
	}
	if s.MIDI.Velocity < 1 || s.MIDI.Velocity > 127 {
		return errors.Wrapf(ErrInvalid, "midi.velocity %d not in [1, 127]", s.MIDI.Velocity)
	}
	return nil
}
