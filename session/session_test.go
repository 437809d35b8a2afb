package session

import (
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(fretboard.Standard(), time.Minute)
	sess := store.Create()

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, store.Len())
}

func TestGetUnknown(t *testing.T) {
	store := NewStore(fretboard.Standard(), time.Minute)

	_, err := store.Get("not-a-uuid")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = store.Get("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDelete(t *testing.T) {
	store := NewStore(fretboard.Standard(), time.Minute)
	sess := store.Create()

	require.NoError(t, store.Delete(sess.ID))
	_, err := store.Get(sess.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(store.Delete(sess.ID), ErrNotFound))
	// a read after delete must not bring the session back
	assert.Equal(t, 0, store.Len())
}

func TestSessionsExpire(t *testing.T) {
	store := NewStore(fretboard.Standard(), 20*time.Millisecond)
	sess := store.Create()

	// reads push expiry back, so only look once the ttl has passed
	time.Sleep(50 * time.Millisecond)
	_, err := store.Get(sess.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetExtendsExpiry(t *testing.T) {
	store := NewStore(fretboard.Standard(), 60*time.Millisecond)
	sess := store.Create()

	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, err := store.Get(sess.ID)
		require.NoError(t, err)
	}
}

func TestToggleAndSnapshot(t *testing.T) {
	sess := NewStore(fretboard.Standard(), time.Minute).Create()

	on, err := sess.Toggle(model.Coordinate{String: 1, Fret: 3})
	require.NoError(t, err)
	assert.True(t, on)
	sess.Toggle(model.Coordinate{String: 2, Fret: 2})
	sess.Toggle(model.Coordinate{String: 4, Fret: 1})

	positions, notes := sess.Snapshot()
	assert.Len(t, positions, 3)
	assert.Equal(t, []string{"C", "E"}, notes)

	sess.Clear()
	positions, notes = sess.Snapshot()
	assert.Empty(t, positions)
	assert.Empty(t, notes)
}

func TestConcurrentToggles(t *testing.T) {
	sess := NewStore(fretboard.Standard(), time.Minute).Create()

	var wg sync.WaitGroup
	for s := 0; s < 6; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			for fret := 0; fret < 5; fret++ {
				sess.Toggle(model.Coordinate{String: s, Fret: fret})
			}
		}(s)
	}
	wg.Wait()

	positions, _ := sess.Snapshot()
	assert.Len(t, positions, 30)
}
