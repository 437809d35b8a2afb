package sample

import (
	"io"

	"github.com/jsphweid/fretchord/constants"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Options struct {
	// ticks between successive string attacks
	Strum uint32
	// ticks the full chord rings before release
	Hold     uint32
	Velocity uint8
	Channel  uint8
	BPM      float64
}

func DefaultOptions() Options {
	return Options{Strum: 60, Hold: 1920, Velocity: 100, BPM: 120}
}

// Create renders keys as a single strummed chord, lowest key first in the
// order given.
func Create(keys []uint8, opts Options) (*smf.SMF, error) {
	if len(keys) == 0 {
		return nil, errors.New("no notes to write")
	}
	for _, key := range keys {
		if key > constants.MaxMidiKey {
			return nil, errors.Errorf("key %d is above the MIDI range", key)
		}
	}

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(960)

	var track smf.Track
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(opts.BPM))
	for i, key := range keys {
		var delta uint32
		if i > 0 {
			delta = opts.Strum
		}
		track.Add(delta, midi.NoteOn(opts.Channel, key, opts.Velocity))
	}
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = opts.Hold
		}
		track.Add(delta, midi.NoteOff(opts.Channel, key))
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return res, nil
}

func Write(w io.Writer, keys []uint8, opts Options) error {
	s, err := Create(keys, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}
