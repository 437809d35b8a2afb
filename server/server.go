package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretchord/catalog"
	"github.com/jsphweid/fretchord/chord"
	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/metrics"
	"github.com/jsphweid/fretchord/session"
	"github.com/jsphweid/fretchord/sound"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Options struct {
	Logger         *zap.Logger
	Matcher        *chord.Matcher
	CacheTTL       time.Duration
	Tuning         fretboard.Tuning
	Player         *sound.Player
	SessionTTL     time.Duration
	AllowedOrigins []string
	Registry       *prometheus.Registry
}

type Server struct {
	logger   *zap.Logger
	catalog  *catalog.Catalog
	tuning   fretboard.Tuning
	player   *sound.Player
	sessions *session.Store
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	origins  []string

	recognizeAPI     chord.Recognizer
	recognizeSession chord.Recognizer
}

func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Matcher == nil {
		return nil, errors.New("matcher is required")
	}
	if opts.Tuning == nil {
		opts.Tuning = fretboard.Standard()
	}
	if opts.Player == nil {
		opts.Player = sound.NewPlayer(opts.Logger.Named("sound"), sound.Settings{Enabled: false, Octave: 4})
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}

	m, err := metrics.New(opts.Registry)
	if err != nil {
		return nil, err
	}

	s := &Server{
		logger:   opts.Logger,
		catalog:  opts.Matcher.Catalog(),
		tuning:   opts.Tuning,
		player:   opts.Player,
		sessions: session.NewStore(opts.Tuning, opts.SessionTTL),
		registry: opts.Registry,
		metrics:  m,
		origins:  opts.AllowedOrigins,
	}

	cached := chord.NewCachedMatcher(opts.Matcher, opts.CacheTTL)
	s.recognizeAPI = m.Instrument(cached, "api")
	s.recognizeSession = m.Instrument(cached, "session")
	s.player.OnPlay(m.ObservePlay)

	err = m.TrackGauge("fretchord_sessions_active", "Fretboard sessions currently held in memory.", func() float64 {
		return float64(s.sessions.Len())
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	// full paths on the root router so a wrong method is a 405, not a 404
	router.HandleFunc("/api/", s.handleRoot).Methods("GET")
	router.HandleFunc("/api/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/api/recognize-chord", s.handleRecognize).Methods("POST")
	router.HandleFunc("/api/play-note", s.handlePlayNote).Methods("POST")
	router.HandleFunc("/api/note-info/{note}", s.handleNoteInfo).Methods("GET")
	router.HandleFunc("/api/catalog", s.handleCatalog).Methods("GET")
	router.HandleFunc("/api/fretboard", s.handleFretboard).Methods("GET")
	router.HandleFunc("/api/sessions", s.handleCreateSession).Methods("POST")
	router.HandleFunc("/api/sessions/{id}", s.handleGetSession).Methods("GET")
	router.HandleFunc("/api/sessions/{id}", s.handleDeleteSession).Methods("DELETE")
	router.HandleFunc("/api/sessions/{id}/toggle", s.handleToggle).Methods("POST")
	router.HandleFunc("/api/sessions/{id}/selection", s.handleClearSelection).Methods("DELETE")

	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	origins := s.origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Guitar Fretboard Chord Recognition API started",
			zap.String("address", addr),
			zap.String("catalog", s.catalog.Name()),
			zap.Int("chords", s.catalog.Len()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown failed")
	}
	s.logger.Info("Server stopped")
	return nil
}
