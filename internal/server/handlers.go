package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vovakirdan/dinorun/internal/scores"
	"github.com/vovakirdan/dinorun/internal/storage"
)

const maxBodyBytes = 4 << 10

func (s *Server) handleCreateScore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var sub scores.Submission
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&sub); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sub = scores.Normalize(sub.PlayerName, sub.Score, sub.Level)
	now := s.now().UTC()
	entry := storage.ScoreEntry{
		ID:         s.newID(),
		PlayerName: sub.PlayerName,
		Score:      sub.Score,
		Level:      sub.Level,
		CreatedAt:  now,
	}

	if err := s.store.SaveScore(r.Context(), entry); err != nil {
		s.logger.Error("failed to save score", "player", entry.PlayerName, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save score")
		return
	}

	writeData(w, http.StatusCreated, toRunResult(entry))
}

func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"))

	entries, err := s.store.TopScores(r.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list scores", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list scores")
		return
	}

	list := make([]scores.RunResult, 0, len(entries))
	for _, e := range entries {
		list = append(list, toRunResult(e))
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "ok")
}

// parseLimit reads the limit query value. Missing or invalid values give
// DefaultLimit; large ones are capped at MaxLimit.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	return min(n, MaxLimit)
}

func toRunResult(e storage.ScoreEntry) scores.RunResult {
	return scores.RunResult{
		ID:         e.ID,
		PlayerName: e.PlayerName,
		Score:      e.Score,
		Level:      e.Level,
		Date:       e.CreatedAt,
		Timestamp:  e.CreatedAt.UnixMilli(),
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	writeEnvelope(w, status, scores.Envelope{Success: true, Data: raw})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeEnvelope(w, status, scores.Envelope{Success: false, Error: msg})
}

func writeEnvelope(w http.ResponseWriter, status int, env scores.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client went away; nothing left to do
	json.NewEncoder(w).Encode(env)
}
