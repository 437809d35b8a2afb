package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

const (
	StatusPlaying = "playing"
	StatusMuted   = "muted"
	StatusError   = "error"
)

type Settings struct {
	Enabled  bool
	Octave   int
	Duration time.Duration
	Channel  uint8
	Velocity uint8
}

// Player stands in for a synthesizer: it builds the MIDI message a real
// output would receive and logs it instead of making a sound.
type Player struct {
	logger   *zap.Logger
	settings Settings

	mu      sync.RWMutex
	enabled bool
	onPlay  func(status string)
}

func NewPlayer(logger *zap.Logger, s Settings) *Player {
	if s.Velocity == 0 {
		s.Velocity = 100
	}
	return &Player{logger: logger, settings: s, enabled: s.Enabled}
}

// OnPlay registers a hook called with the outcome of every play request.
func (p *Player) OnPlay(fn func(status string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onPlay = fn
}

func (p *Player) Enabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.enabled
}

func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

func (p *Player) DefaultOctave() int {
	return p.settings.Octave
}

func (p *Player) DefaultDuration() time.Duration {
	return p.settings.Duration
}

func (p *Player) report(status string) {
	p.mu.RLock()
	fn := p.onPlay
	p.mu.RUnlock()
	if fn != nil {
		fn(status)
	}
}

// Play "plays" a pitch class in an octave. Unknown notes and octaves come
// back with StatusError and the reason.
func (p *Player) Play(name string, octave int, duration time.Duration) (model.PlayNoteResponse, error) {
	res := model.PlayNoteResponse{
		Note:     fmt.Sprintf("%s%d", note.Normalize(name), octave),
		Duration: int(duration.Milliseconds()),
	}

	key, err := note.MidiKey(name, octave)
	if err != nil {
		p.logger.Warn("Note not found in frequency table", zap.String("note", res.Note), zap.Error(err))
		res.Status = StatusError
		p.report(res.Status)
		return res, err
	}

	res.Status = p.play(key, duration)
	return res, nil
}

// PlayPosition plays the pitch sounding at a fretboard coordinate.
func (p *Player) PlayPosition(t fretboard.Tuning, c model.Coordinate) (model.PlayNoteResponse, error) {
	key, err := t.MidiKey(c)
	if err != nil {
		return model.PlayNoteResponse{Status: StatusError}, err
	}
	name, octave := note.FromMidiKey(key)
	res := model.PlayNoteResponse{
		Note:     fmt.Sprintf("%s%d", name, octave),
		Duration: int(p.settings.Duration.Milliseconds()),
	}
	res.Status = p.play(key, p.settings.Duration)
	return res, nil
}

func (p *Player) play(key uint8, duration time.Duration) string {
	if !p.Enabled() {
		p.report(StatusMuted)
		return StatusMuted
	}

	name, octave := note.FromMidiKey(key)
	freq, _ := note.Frequency(name, octave)
	msg := midi.NoteOn(p.settings.Channel, key, p.settings.Velocity)
	p.logger.Info("Playing note",
		zap.String("note", fmt.Sprintf("%s%d", name, octave)),
		zap.Float64("frequency", freq),
		zap.Duration("duration", duration),
		zap.String("message", msg.String()))

	p.report(StatusPlaying)
	return StatusPlaying
}
