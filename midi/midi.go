package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"

	"github.com/jsphweid/fretchord/note"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = errors.Errorf("Error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}
	return res, nil
}

type reducedEvent struct {
	absTicks  int64
	isNoteOff bool
	key       uint8
}

// Snapshot is the set of keys sounding from Tick until the next snapshot.
type Snapshot struct {
	Tick         int64
	Microseconds int64
	Keys         []uint8
}

func (s Snapshot) Notes() []string {
	res := make([]string, 0, len(s.Keys))
	for _, k := range s.Keys {
		name, _ := note.FromMidiKey(k)
		res = append(res, name)
	}
	return note.Unique(res)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%d: %v", s.Tick, s.Notes())
}

// Snapshots walks every track and returns the distinct sets of held keys in
// time order, skipping silence.
func Snapshots(s *smf.SMF) []Snapshot {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var channel, key, velocity uint8
			switch {
			case ev.Message.GetNoteStart(&channel, &key, &velocity):
				events = append(events, reducedEvent{absTicks: absTicks, key: key})
			case ev.Message.GetNoteEnd(&channel, &key):
				events = append(events, reducedEvent{absTicks: absTicks, isNoteOff: true, key: key})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].absTicks != events[j].absTicks {
			return events[i].absTicks < events[j].absTicks
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	var res []Snapshot
	pressed := make(map[uint8]int)
	for i, evt := range events {
		if evt.isNoteOff {
			if pressed[evt.key] > 1 {
				pressed[evt.key]--
			} else {
				delete(pressed, evt.key)
			}
		} else {
			pressed[evt.key]++
		}

		lastAtTick := i == len(events)-1 || events[i+1].absTicks != evt.absTicks
		if !lastAtTick || len(pressed) == 0 {
			continue
		}

		keys := make([]uint8, 0, len(pressed))
		for k := range pressed {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		if len(res) > 0 && slices.Equal(res[len(res)-1].Keys, keys) {
			continue
		}
		res = append(res, Snapshot{Tick: evt.absTicks, Microseconds: s.TimeAt(evt.absTicks), Keys: keys})
	}
	return res
}

// PitchClasses returns every pitch class played anywhere in the file, in
// order of first appearance.
func PitchClasses(s *smf.SMF) []string {
	var res []string
	for _, snap := range Snapshots(s) {
		res = append(res, snap.Notes()...)
	}
	return note.Unique(res)
}
