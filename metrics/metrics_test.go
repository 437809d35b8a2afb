package metrics

import (
	"testing"

	"github.com/jsphweid/fretchord/catalog"
	"github.com/jsphweid/fretchord/chord"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentCountsRecognitions(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	r := m.Instrument(chord.NewMatcher(catalog.Default()), "api")
	res := r.Recognize([]string{"C", "E", "G"})
	assert.Equal(t, "C Major", res[0].Name)
	r.Recognize([]string{"C", "E"})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecognitionTotal.WithLabelValues("api")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExactMatchTotal.WithLabelValues("api")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RecognitionTotal.WithLabelValues("cli")))
}

func TestObservePlay(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObservePlay("playing")
	m.ObservePlay("playing")
	m.ObservePlay("error")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotesPlayed.WithLabelValues("playing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotesPlayed.WithLabelValues("error")))
}

func TestTrackGauge(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)

	require.NoError(t, m.TrackGauge("fretchord_test_gauge", "test", func() float64 { return 3 }))
	assert.Error(t, m.TrackGauge("fretchord_test_gauge", "test", func() float64 { return 3 }))

	families, err := registry.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "fretchord_test_gauge" {
			found = true
			assert.Equal(t, 3.0, f.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.True(t, found)
}

func TestRegisteringTwiceFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	require.NoError(t, err)
	_, err = New(registry)
	assert.Error(t, err)
}
