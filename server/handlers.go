package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretchord/constants"
	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
	"github.com/jsphweid/fretchord/session"
	"go.uber.org/zap"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Could not encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, model.ErrorResponse{Error: detail})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Guitar Fretboard Chord Recognition API is running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":       "healthy",
		"chord_engine": "initialized",
		"midi_service": "initialized",
		"catalog":      s.catalog.Name(),
		"catalog_size": s.catalog.Len(),
		"sound":        s.player.Enabled(),
	})
}

func (s *Server) resolvePositions(positions []model.Position) ([]string, error) {
	res := make([]string, 0, len(positions))
	for _, p := range positions {
		n, err := s.tuning.Lookup(p.Coordinate)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func (s *Server) handleRecognize(w http.ResponseWriter, r *http.Request) {
	var input model.RecognitionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, "Could not parse request body: "+err.Error())
		return
	}

	notes := input.Notes
	if len(notes) == 0 && len(input.SelectedPositions) > 0 {
		resolved, err := s.resolvePositions(input.SelectedPositions)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		notes = resolved
	}

	if len(notes) < constants.MinChordNotes {
		s.writeError(w, http.StatusBadRequest, "At least 2 notes are required for chord recognition")
		return
	}

	results := s.recognizeAPI.Recognize(notes)
	s.logger.Debug("Recognized chords",
		zap.Strings("notes", notes),
		zap.Int("matches", len(results)))

	s.writeJSON(w, http.StatusOK, model.RecognitionResponse{
		RecognizedChords: results,
		UniqueNotes:      note.Unique(notes),
		TotalNotes:       len(notes),
	})
}

func (s *Server) handlePlayNote(w http.ResponseWriter, r *http.Request) {
	var input model.PlayNoteRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, "Could not parse request body: "+err.Error())
		return
	}

	octave := s.player.DefaultOctave()
	if input.Octave != nil {
		octave = *input.Octave
	}
	duration := s.player.DefaultDuration()
	if input.Duration != nil {
		if *input.Duration < 0 {
			s.writeError(w, http.StatusBadRequest, "duration must not be negative")
			return
		}
		duration = time.Duration(*input.Duration) * time.Millisecond
	}

	// unknown notes are reported in the body, not as a failed request
	res, _ := s.player.Play(input.Note, octave, duration)
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleNoteInfo(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["note"]
	octave := 4
	if raw := r.URL.Query().Get("octave"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "octave must be an integer")
			return
		}
		octave = parsed
	}

	key := fmt.Sprintf("%s%d", note.Normalize(name), octave)
	freq, err := note.Frequency(name, octave)
	if err != nil {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Note %s not found", key))
		return
	}
	s.writeJSON(w, http.StatusOK, model.NoteInfo{Note: key, Frequency: &freq, Available: true})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	entries := s.catalog.Entries()
	if category := r.URL.Query().Get("category"); category != "" {
		entries = s.catalog.ByCategory(category)
	}
	s.writeJSON(w, http.StatusOK, model.CatalogResponse{
		Name:       s.catalog.Name(),
		Categories: s.catalog.Categories(),
		Chords:     entries,
	})
}

func (s *Server) handleFretboard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, model.FretboardResponse{
		Strings: s.tuning,
		Frets:   constants.NumFrets,
		Markers: fretboard.Markers(),
	})
}

func (s *Server) sessionView(sess *session.Session) model.SessionResponse {
	positions, notes := sess.Snapshot()
	return model.SessionResponse{
		ID:               sess.ID,
		Positions:        positions,
		UniqueNotes:      notes,
		RecognizedChords: s.recognizeSession.Recognize(notes),
	}
}

func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return sess, true
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	s.logger.Debug("Created session", zap.String("session", sess.ID))
	s.writeJSON(w, http.StatusCreated, s.sessionView(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.lookupSession(w, r); ok {
		s.writeJSON(w, http.StatusOK, s.sessionView(sess))
	}
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var input model.ToggleRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, "Could not parse request body: "+err.Error())
		return
	}
	if input.String == nil || input.Fret == nil {
		s.writeError(w, http.StatusBadRequest, "string and fret are required")
		return
	}

	c := model.Coordinate{String: *input.String, Fret: *input.Fret}
	on, err := sess.Toggle(c)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if on {
		s.player.PlayPosition(s.tuning, c)
	}
	s.writeJSON(w, http.StatusOK, s.sessionView(sess))
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.lookupSession(w, r); ok {
		sess.Clear()
		s.writeJSON(w, http.StatusOK, s.sessionView(sess))
	}
}
