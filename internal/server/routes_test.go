package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestSeekBlessing(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "POST", "/api/oracle/seek",
		`{"session_id":"sess-001","persona":"Furies","petition":"I lied"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["persona"] != "Furies" {
		t.Errorf("persona = %v, want Furies", resp["persona"])
	}
	if resp["outcome"] != "Judged" {
		t.Errorf("outcome = %v, want Judged", resp["outcome"])
	}
	if resp["message"] == "" {
		t.Error("empty message")
	}
	if resp["recorded"] != true {
		t.Errorf("recorded = %v, want true", resp["recorded"])
	}
	if resp["intensity"].(float64) != 0.7 {
		t.Errorf("intensity = %v, want 0.7", resp["intensity"])
	}
}

func TestSeekUnknownPersona(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "POST", "/api/oracle/seek",
		`{"session_id":"sess-001","persona":"Zeus"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	// Error payload enumerates the valid identifiers
	for _, name := range []string{"WomanWithHeart", "Fox", "Furies", "Nokso"} {
		if !strings.Contains(resp["error"], name) {
			t.Errorf("error %q does not list %s", resp["error"], name)
		}
	}
}

func TestSeekMissingSession(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "POST", "/api/oracle/seek", `{"persona":"Fox"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestTouchHeart(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "POST", "/api/oracle/touch", `{"session_id":"sess-001"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["persona"] != "WomanWithHeart" {
		t.Errorf("persona = %v, want WomanWithHeart", resp["persona"])
	}
	if resp["outcome"] != "Touched" {
		t.Errorf("outcome = %v, want Touched", resp["outcome"])
	}
	if resp["released_essence"] == nil || resp["released_essence"] == "" {
		t.Error("touch released no essence")
	}
}

func TestPersonaFixedRoutes(t *testing.T) {
	srv := testServer(t)

	cases := map[string]string{
		"/api/oracle/petition/fox": "Fox",
		"/api/oracle/confess":      "Furies",
		"/api/oracle/invoke/nokso": "Nokso",
	}
	for path, persona := range cases {
		w := doJSON(t, srv, "POST", path, `{"session_id":"sess-001","petition":"hear me"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d; body: %s", path, w.Code, w.Body.String())
		}
		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["persona"] != persona {
			t.Errorf("%s: persona = %v, want %s", path, resp["persona"], persona)
		}
	}
}

func TestSessionLedger(t *testing.T) {
	srv := testServer(t)

	// Two judgments and a touch for one session, one judgment elsewhere
	doJSON(t, srv, "POST", "/api/oracle/confess", `{"session_id":"sess-001","petition":"one"}`)
	doJSON(t, srv, "POST", "/api/oracle/confess", `{"session_id":"sess-001","petition":"two"}`)
	doJSON(t, srv, "POST", "/api/oracle/touch", `{"session_id":"sess-001"}`)
	doJSON(t, srv, "POST", "/api/oracle/confess", `{"session_id":"sess-002","petition":"other"}`)

	w := doJSON(t, srv, "GET", "/api/ledger/sess-001", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		SessionID string `json:"session_id"`
		Summary   struct {
			TotalJudgments      int            `json:"total_judgments"`
			TotalTouches        int            `json:"total_touches"`
			EncountersByPersona map[string]int `json:"encounters_by_persona"`
			FirstEncounter      *string        `json:"first_encounter"`
		} `json:"summary"`
		Entries []map[string]any `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.SessionID != "sess-001" {
		t.Errorf("session_id = %q", resp.SessionID)
	}
	if len(resp.Entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(resp.Entries))
	}
	if resp.Summary.TotalJudgments != 2 {
		t.Errorf("total_judgments = %d, want 2", resp.Summary.TotalJudgments)
	}
	if resp.Summary.TotalTouches != 1 {
		t.Errorf("total_touches = %d, want 1", resp.Summary.TotalTouches)
	}
	if resp.Summary.EncountersByPersona["Furies"] != 2 {
		t.Errorf("encounters = %v", resp.Summary.EncountersByPersona)
	}
	if resp.Summary.FirstEncounter == nil {
		t.Error("first_encounter is null with entries present")
	}
}

func TestSessionLedgerEmpty(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "GET", "/api/ledger/nobody", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Summary struct {
			FirstEncounter *string `json:"first_encounter"`
		} `json:"summary"`
		Entries []map[string]any `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Entries == nil {
		t.Error("entries should be an empty array, not null")
	}
	if resp.Summary.FirstEncounter != nil {
		t.Errorf("first_encounter = %v, want null", resp.Summary.FirstEncounter)
	}
}

func TestPersonaLedger(t *testing.T) {
	srv := testServer(t)

	doJSON(t, srv, "POST", "/api/oracle/confess", `{"session_id":"sess-001"}`)
	doJSON(t, srv, "POST", "/api/oracle/confess", `{"session_id":"sess-002"}`)

	w := doJSON(t, srv, "GET", "/api/ledger/personas/Furies?limit=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Persona string           `json:"persona"`
		Entries []map[string]any `json:"entries"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Persona != "Furies" {
		t.Errorf("persona = %q", resp.Persona)
	}
	if len(resp.Entries) != 1 {
		t.Errorf("len(entries) = %d, want 1 (limit)", len(resp.Entries))
	}
}

func TestPresence(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "GET", "/api/oracle/presence", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Presence    map[string]bool `json:"presence"`
		AmbientMood string          `json:"ambient_mood"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Presence) != 4 {
		t.Errorf("presence has %d personas, want 4", len(resp.Presence))
	}
	// Always-present personas
	if !resp.Presence["WomanWithHeart"] || !resp.Presence["Furies"] {
		t.Errorf("presence = %v", resp.Presence)
	}
	if resp.AmbientMood == "" {
		t.Error("empty ambient mood")
	}
}

func TestPersonas(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "GET", "/api/oracle/personas", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var infos []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &infos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(infos) != 4 {
		t.Fatalf("len(personas) = %d, want 4", len(infos))
	}
	for _, info := range infos {
		if info["name"] == "" || info["ritual_instruction"] == "" || info["current_mood"] == "" {
			t.Errorf("incomplete persona info: %v", info)
		}
	}
}

func TestPersonaDetail(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "GET", "/api/oracle/personas/fox", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var info map[string]any
	json.Unmarshal(w.Body.Bytes(), &info)
	if info["name"] != "The Fox" {
		t.Errorf("name = %v, want The Fox", info["name"])
	}

	w = doJSON(t, srv, "GET", "/api/oracle/personas/Zeus", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown persona status = %d, want 400", w.Code)
	}
}

func TestConsultNoProvider(t *testing.T) {
	srv := testServer(t) // consultant is nil

	w := doJSON(t, srv, "POST", "/api/oracle/consult",
		`{"session_id":"sess-001","persona":"Fox"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestConsultRecordsEntry(t *testing.T) {
	srv := testServerWithConsultant(t, mockConsultant("Ha. Not today."))

	w := doJSON(t, srv, "POST", "/api/oracle/consult",
		`{"session_id":"sess-001","persona":"Fox","petition":"help me"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["outcome"] != "Denied" {
		t.Errorf("outcome = %v, want Denied", resp["outcome"])
	}
	if resp["recorded"] != true {
		t.Errorf("recorded = %v, want true", resp["recorded"])
	}

	// The consultation landed in the ledger
	lw := doJSON(t, srv, "GET", "/api/ledger/sess-001", "")
	var ledger struct {
		Summary struct {
			TotalDenials int `json:"total_denials"`
		} `json:"summary"`
	}
	json.Unmarshal(lw.Body.Bytes(), &ledger)
	if ledger.Summary.TotalDenials != 1 {
		t.Errorf("total_denials = %d, want 1", ledger.Summary.TotalDenials)
	}
}
