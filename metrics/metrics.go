// Package metrics holds the Prometheus metrics for chord recognition.
package metrics

import (
	"time"

	"github.com/jsphweid/fretchord/chord"
	"github.com/jsphweid/fretchord/model"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RecognitionTotal    *prometheus.CounterVec
	RecognitionDuration *prometheus.HistogramVec
	MatchesReturned     *prometheus.HistogramVec
	ExactMatchTotal     *prometheus.CounterVec
	NotesPlayed         *prometheus.CounterVec

	registry *prometheus.Registry
}

func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, errors.Wrap(err, "failed to register fretchord metrics")
	}
	return m, nil
}

func (m *Metrics) initMetrics() {
	m.RecognitionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fretchord_recognitions_total",
			Help: "Chord recognitions performed, partitioned by the surface that asked.",
		},
		[]string{"source"},
	)
	m.RecognitionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fretchord_recognition_duration_seconds",
			Help:    "Time taken to score a note set against the catalog.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"source"},
	)
	m.MatchesReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fretchord_matches_returned",
			Help:    "Number of candidate chords returned per recognition.",
			Buckets: prometheus.LinearBuckets(0, 1, 7),
		},
		[]string{"source"},
	)
	m.ExactMatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fretchord_exact_matches_total",
			Help: "Recognitions whose best candidate was an exact match.",
		},
		[]string{"source"},
	)
	m.NotesPlayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fretchord_notes_played_total",
			Help: "Play-note requests partitioned by outcome.",
		},
		[]string{"status"},
	)
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.RecognitionTotal.Describe(ch)
	m.RecognitionDuration.Describe(ch)
	m.MatchesReturned.Describe(ch)
	m.ExactMatchTotal.Describe(ch)
	m.NotesPlayed.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.RecognitionTotal.Collect(ch)
	m.RecognitionDuration.Collect(ch)
	m.MatchesReturned.Collect(ch)
	m.ExactMatchTotal.Collect(ch)
	m.NotesPlayed.Collect(ch)
}

// TrackGauge exposes a value computed at scrape time, such as the number of
// live sessions.
func (m *Metrics) TrackGauge(name, help string, fn func() float64) error {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, fn)
	if err := m.registry.Register(g); err != nil {
		return errors.Wrapf(err, "failed to register gauge %s", name)
	}
	return nil
}

func (m *Metrics) ObserveRecognition(source string, took time.Duration, results []model.MatchResult) {
	m.RecognitionTotal.WithLabelValues(source).Inc()
	m.RecognitionDuration.WithLabelValues(source).Observe(took.Seconds())
	m.MatchesReturned.WithLabelValues(source).Observe(float64(len(results)))
	if len(results) > 0 && results[0].IsExactMatch {
		m.ExactMatchTotal.WithLabelValues(source).Inc()
	}
}

func (m *Metrics) ObservePlay(status string) {
	m.NotesPlayed.WithLabelValues(status).Inc()
}

type instrumented struct {
	next    chord.Recognizer
	metrics *Metrics
	source  string
}

// Instrument wraps r so every call is recorded under source.
func (m *Metrics) Instrument(r chord.Recognizer, source string) chord.Recognizer {
	return &instrumented{next: r, metrics: m, source: source}
}

func (i *instrumented) Recognize(observed []string) []model.MatchResult {
	start := time.Now()
	res := i.next.Recognize(observed)
	i.metrics.ObserveRecognition(i.source, time.Since(start), res)
	return res
}
