package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BradWyatt-code/strangel-oracle/internal/oracle"
	"github.com/BradWyatt-code/strangel-oracle/internal/store"
)

type seekRequest struct {
	SessionID string `json:"session_id"`
	Persona   string `json:"persona"`
	Petition  string `json:"petition"`
}

type blessingResponse struct {
	ID                   string  `json:"id"`
	Persona              string  `json:"persona"`
	PersonaName          string  `json:"persona_name"`
	Type                 string  `json:"type"`
	Outcome              string  `json:"outcome"`
	Message              string  `json:"message"`
	SecondaryMessage     string  `json:"secondary_message,omitempty"`
	ReleasedEssence      string  `json:"released_essence,omitempty"`
	Intensity            float64 `json:"intensity"`
	IntensityDescription string  `json:"intensity_description"`
	DurationMinutes      int     `json:"duration_minutes"`
	RecordedAt           string  `json:"recorded_at"`
	Recorded             bool    `json:"recorded"`
	Note                 string  `json:"note,omitempty"`
}

func (s *Server) handleSeek(w http.ResponseWriter, r *http.Request) {
	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	s.seek(w, req)
}

// handleTouch is the Woman with Heart's only interaction. You do not speak.
// You touch.
func (s *Server) handleTouch(w http.ResponseWriter, r *http.Request) {
	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	req.Persona = string(oracle.WomanWithHeart)
	req.Petition = ""
	s.seek(w, req)
}

// personaFixed serves the dedicated petition/confess/invoke routes, where the
// persona is decided by the path.
func (s *Server) personaFixed(id oracle.PersonaID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req seekRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		req.Persona = string(id)
		s.seek(w, req)
	}
}

func (s *Server) seek(w http.ResponseWriter, req seekRequest) {
	if req.SessionID == "" {
		http.Error(w, `{"error":"session_id required"}`, http.StatusBadRequest)
		return
	}
	id, err := oracle.ParsePersonaID(req.Persona)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	engine, err := s.dispatcher.EngineFor(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	blessing := engine.Generate(req.Petition, time.Now())
	outcome := oracle.RecordedOutcome(blessing)

	s.logger.Info("blessing sought",
		zap.String("session_id", req.SessionID),
		zap.String("persona", string(id)),
		zap.String("outcome", string(outcome)),
		zap.Float64("intensity", blessing.Intensity.Value()))

	recorded, note := s.record(store.LedgerEntry{
		ID:         blessing.ID.String(),
		SessionID:  req.SessionID,
		Persona:    string(id),
		Petition:   req.Petition,
		Response:   blessing.Message,
		Outcome:    string(outcome),
		Intensity:  blessing.Intensity.Value(),
		BestowedAt: blessing.BestowedAt,
	})

	persona, _ := oracle.Describe(id)
	writeJSON(w, http.StatusOK, blessingResponse{
		ID:                   blessing.ID.String(),
		Persona:              string(id),
		PersonaName:          persona.Name,
		Type:                 string(blessing.Type),
		Outcome:              string(outcome),
		Message:              blessing.Message,
		SecondaryMessage:     blessing.SecondaryMessage,
		ReleasedEssence:      blessing.ReleasedEssence,
		Intensity:            blessing.Intensity.Value(),
		IntensityDescription: blessing.Intensity.Description(),
		DurationMinutes:      int(blessing.Duration.Minutes()),
		RecordedAt:           blessing.BestowedAt.Format(time.RFC3339),
		Recorded:             recorded,
		Note:                 note,
	})
}

func (s *Server) handleConsult(w http.ResponseWriter, r *http.Request) {
	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, `{"error":"session_id required"}`, http.StatusBadRequest)
		return
	}
	id, err := oracle.ParsePersonaID(req.Persona)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if s.consultant == nil {
		http.Error(w, `{"error":"no generative provider configured"}`, http.StatusServiceUnavailable)
		return
	}

	result, err := s.consultant.Consult(r.Context(), id, req.Petition)
	if err != nil {
		s.logger.Error("consultation failed",
			zap.String("session_id", req.SessionID),
			zap.String("persona", string(id)),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, err)
		return
	}

	now := time.Now().UTC()
	entryID := newEntryID()
	recorded, note := s.record(store.LedgerEntry{
		ID:         entryID,
		SessionID:  req.SessionID,
		Persona:    string(id),
		Petition:   req.Petition,
		Response:   result.Message,
		Outcome:    string(result.Outcome),
		Intensity:  result.Intensity.Value(),
		BestowedAt: now,
	})

	persona, _ := oracle.Describe(id)
	writeJSON(w, http.StatusOK, blessingResponse{
		ID:                   entryID,
		Persona:              string(id),
		PersonaName:          persona.Name,
		Outcome:              string(result.Outcome),
		Message:              result.Message,
		Intensity:            result.Intensity.Value(),
		IntensityDescription: result.Intensity.Description(),
		RecordedAt:           now.Format(time.RFC3339),
		Recorded:             recorded,
		Note:                 note,
	})
}

// record appends to the soul ledger. The blessing has already been computed;
// a ledger failure never discards it, the caller is just told recording did
// not succeed.
func (s *Server) record(entry store.LedgerEntry) (bool, string) {
	if err := s.db.Append(entry); err != nil {
		s.logger.Warn("ledger append failed",
			zap.String("session_id", entry.SessionID),
			zap.String("persona", entry.Persona),
			zap.Error(err))
		return false, fmt.Sprintf("ledger unavailable: %v", err)
	}
	return true, ""
}

func (s *Server) handlePresence(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	presence := make(map[string]bool, len(oracle.AllPersonaIDs))
	for _, id := range oracle.AllPersonaIDs {
		engine, err := s.dispatcher.EngineFor(id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		presence[string(id)] = engine.IsPresent(now)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"timestamp":    now.UTC().Format(time.RFC3339),
		"presence":     presence,
		"ambient_mood": oracle.AmbientMood(now),
	})
}

type personaInfo struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Aspect            string   `json:"aspect"`
	Function          string   `json:"function"`
	Disposition       string   `json:"disposition"`
	Domains           []string `json:"domains"`
	Manifestations    []string `json:"manifestations"`
	RitualInstruction string   `json:"ritual_instruction"`
	IsPresent         bool     `json:"is_present"`
	CurrentMood       string   `json:"current_mood"`
}

func (s *Server) personaInfo(id oracle.PersonaID, now time.Time) (personaInfo, error) {
	p, err := oracle.Describe(id)
	if err != nil {
		return personaInfo{}, err
	}
	engine, err := s.dispatcher.EngineFor(id)
	if err != nil {
		return personaInfo{}, err
	}
	return personaInfo{
		ID:                string(p.ID),
		Name:              p.Name,
		Title:             p.Title,
		Aspect:            p.Aspect,
		Function:          p.Function,
		Disposition:       p.Disposition,
		Domains:           p.Domains,
		Manifestations:    p.Manifestations,
		RitualInstruction: p.RitualInstruction,
		IsPresent:         engine.IsPresent(now),
		CurrentMood:       engine.Disposition(now),
	}, nil
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	infos := make([]personaInfo, 0, len(oracle.AllPersonaIDs))
	for _, id := range oracle.AllPersonaIDs {
		info, err := s.personaInfo(id, now)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		infos = append(infos, info)
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handlePersona(w http.ResponseWriter, r *http.Request) {
	id, err := oracle.ParsePersonaID(chi.URLParam(r, "persona"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	info, err := s.personaInfo(id, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleSessionLedger(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	entries, err := s.db.GetBySession(sessionID)
	if err != nil {
		s.logger.Error("ledger query failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, fmt.Errorf("ledger unavailable: %w", err))
		return
	}
	if entries == nil {
		entries = []store.LedgerEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"summary":    oracle.Summarize(entries),
		"entries":    entries,
	})
}

func (s *Server) handlePersonaLedger(w http.ResponseWriter, r *http.Request) {
	id, err := oracle.ParsePersonaID(chi.URLParam(r, "persona"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.db.GetByPersona(string(id), limit)
	if err != nil {
		s.logger.Error("ledger query failed", zap.String("persona", string(id)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, fmt.Errorf("ledger unavailable: %w", err))
		return
	}
	if entries == nil {
		entries = []store.LedgerEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"persona": string(id),
		"entries": entries,
	})
}

func newEntryID() string {
	return uuid.NewString()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	// Unknown-persona errors already carry the enumerated valid identifiers.
	if errors.Is(err, oracle.ErrUnknownPersona) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
