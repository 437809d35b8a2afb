// Package listen recognizes chords played live on a MIDI input device.
package listen

import (
	"context"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretchord/chord"
	fcmidi "github.com/jsphweid/fretchord/midi"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

// Result is what was held when the input settled.
type Result struct {
	Keys   []uint8
	Notes  []string
	Chords []model.MatchResult
}

// Listener tracks held keys and runs recognition once the input has been
// quiet for the debounce interval.
type Listener struct {
	logger     *zap.Logger
	recognizer chord.Recognizer
	onResult   func(Result)
	debounced  func(func())

	mu   sync.Mutex
	held map[uint8]int
}

func New(logger *zap.Logger, r chord.Recognizer, wait time.Duration, onResult func(Result)) *Listener {
	l := &Listener{
		logger:     logger,
		recognizer: r,
		onResult:   onResult,
		held:       make(map[uint8]int),
	}
	if wait > 0 {
		l.debounced = debounce.New(wait)
	} else {
		l.debounced = func(f func()) { f() }
	}
	return l
}

// Handle updates the held keys from a note message. Anything else is ignored.
func (l *Listener) Handle(msg midi.Message) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		l.mu.Lock()
		l.held[key]++
		l.mu.Unlock()
	case msg.GetNoteEnd(&ch, &key):
		l.mu.Lock()
		if l.held[key] > 1 {
			l.held[key]--
		} else {
			delete(l.held, key)
		}
		l.mu.Unlock()
	default:
		return
	}
	l.debounced(l.emit)
}

// Held returns the sounding keys in ascending order.
func (l *Listener) Held() []uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return util.GetSortedKeys(l.held)
}

func (l *Listener) emit() {
	snap := fcmidi.Snapshot{Keys: l.Held()}
	res := Result{Keys: snap.Keys, Notes: snap.Notes()}
	res.Chords = l.recognizer.Recognize(res.Notes)

	fields := []zap.Field{zap.Strings("notes", res.Notes), zap.Int("matches", len(res.Chords))}
	if len(res.Chords) > 0 {
		fields = append(fields, zap.String("best", res.Chords[0].Name), zap.Int("confidence", res.Chords[0].Confidence))
	}
	l.logger.Debug("Input settled", fields...)

	if l.onResult != nil {
		l.onResult(res)
	}
}

// Run feeds the given input port into l until ctx is cancelled. A driver
// must have been registered by the caller.
func Run(ctx context.Context, l *Listener, port int) error {
	in, err := midi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't find MIDI input port %d", port)
	}
	l.logger.Info("Listening for MIDI input", zap.Int("port", port), zap.String("device", in.String()))

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		l.Handle(msg)
	})
	if err != nil {
		return errors.Wrap(err, "could not listen to MIDI input")
	}

	<-ctx.Done()
	stop()
	return nil
}
