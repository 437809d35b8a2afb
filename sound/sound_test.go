package sound

import (
	"testing"
	"time"

	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedPlayer(enabled bool) (*Player, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewPlayer(zap.New(core), Settings{Enabled: enabled, Octave: 4, Duration: 500 * time.Millisecond})
	return p, logs
}

func TestPlayLogsTheNote(t *testing.T) {
	p, logs := newObservedPlayer(true)

	res, err := p.Play("A", 4, 250*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, model.PlayNoteResponse{Status: StatusPlaying, Note: "A4", Duration: 250}, res)

	entries := logs.FilterMessage("Playing note").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "A4", fields["note"])
		assert.Equal(t, 440.0, fields["frequency"])
	}
}

func TestPlayNormalizesFlats(t *testing.T) {
	p, _ := newObservedPlayer(true)
	res, err := p.Play("Bb", 3, time.Second)
	assert.NoError(t, err)
	assert.Equal(t, "A#3", res.Note)
}

func TestPlayUnknownNote(t *testing.T) {
	p, logs := newObservedPlayer(true)

	res, err := p.Play("H", 4, time.Second)
	assert.True(t, errors.Is(err, note.ErrUnknownNote))
	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, "H4", res.Note)
	assert.Equal(t, 0, logs.FilterMessage("Playing note").Len())
}

func TestMutedPlayerStaysQuiet(t *testing.T) {
	p, logs := newObservedPlayer(false)

	res, err := p.Play("C", 4, time.Second)
	assert.NoError(t, err)
	assert.Equal(t, StatusMuted, res.Status)
	assert.Equal(t, 0, logs.Len())

	assert.True(t, p.Toggle())
	res, _ = p.Play("C", 4, time.Second)
	assert.Equal(t, StatusPlaying, res.Status)
}

func TestPlayPosition(t *testing.T) {
	p, _ := newObservedPlayer(true)
	var statuses []string
	p.OnPlay(func(status string) { statuses = append(statuses, status) })

	res, err := p.PlayPosition(fretboard.Standard(), model.Coordinate{String: 0, Fret: 0})
	assert.NoError(t, err)
	assert.Equal(t, "E2", res.Note)
	assert.Equal(t, 500, res.Duration)

	_, err = p.PlayPosition(fretboard.Standard(), model.Coordinate{String: 0, Fret: 30})
	assert.True(t, errors.Is(err, fretboard.ErrOutOfRange))
	assert.Equal(t, []string{StatusPlaying}, statuses)
}
