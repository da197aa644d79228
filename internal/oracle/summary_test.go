package oracle

import (
	"testing"
	"time"

	"github.com/BradWyatt-code/strangel-oracle/internal/store"
)

func ledgerEntry(id, persona string, outcome Outcome, at time.Time) store.LedgerEntry {
	return store.LedgerEntry{
		ID:         id,
		SessionID:  "sess-001",
		Persona:    persona,
		Response:   "a response",
		Outcome:    string(outcome),
		Intensity:  0.5,
		BestowedAt: at,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalBlessings != 0 || s.TotalDenials != 0 || s.TotalJudgments != 0 ||
		s.TotalDisruptions != 0 || s.TotalTouches != 0 {
		t.Errorf("empty summary has nonzero counts: %+v", s)
	}
	if s.FirstEncounter != nil || s.LastEncounter != nil {
		t.Errorf("empty summary has encounter timestamps: %+v", s)
	}
	if len(s.EncountersByPersona) != 0 {
		t.Errorf("empty summary has persona counts: %+v", s)
	}
}

func TestSummarizeCounts(t *testing.T) {
	base := time.Date(2026, 1, 12, 21, 0, 0, 0, time.UTC)
	entries := []store.LedgerEntry{
		ledgerEntry("e1", "Fox", OutcomeBlessed, base),
		ledgerEntry("e2", "Furies", OutcomeJudged, base.Add(time.Minute)),
		ledgerEntry("e3", "Fox", OutcomeBlessed, base.Add(2*time.Minute)),
	}

	s := Summarize(entries)
	if s.TotalBlessings != 2 {
		t.Errorf("TotalBlessings = %d, want 2", s.TotalBlessings)
	}
	if s.TotalJudgments != 1 {
		t.Errorf("TotalJudgments = %d, want 1", s.TotalJudgments)
	}
	if s.TotalDenials != 0 || s.TotalDisruptions != 0 || s.TotalTouches != 0 {
		t.Errorf("other counts nonzero: %+v", s)
	}
	if s.EncountersByPersona["Fox"] != 2 || s.EncountersByPersona["Furies"] != 1 {
		t.Errorf("EncountersByPersona = %v", s.EncountersByPersona)
	}
	if s.FirstEncounter == nil || !s.FirstEncounter.Equal(base) {
		t.Errorf("FirstEncounter = %v, want %v", s.FirstEncounter, base)
	}
	if s.LastEncounter == nil || !s.LastEncounter.Equal(base.Add(2*time.Minute)) {
		t.Errorf("LastEncounter = %v, want %v", s.LastEncounter, base.Add(2*time.Minute))
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	base := time.Date(2026, 1, 12, 21, 0, 0, 0, time.UTC)
	entries := []store.LedgerEntry{
		ledgerEntry("e1", "Nokso", OutcomeDisrupted, base.Add(time.Hour)),
		ledgerEntry("e2", "WomanWithHeart", OutcomeTouched, base),
		ledgerEntry("e3", "Fox", OutcomeDenied, base.Add(30*time.Minute)),
	}
	reversed := []store.LedgerEntry{entries[2], entries[1], entries[0]}

	a := Summarize(entries)
	b := Summarize(reversed)

	if a.TotalDisruptions != b.TotalDisruptions || a.TotalTouches != b.TotalTouches || a.TotalDenials != b.TotalDenials {
		t.Errorf("summaries differ by order: %+v vs %+v", a, b)
	}
	if !a.FirstEncounter.Equal(*b.FirstEncounter) || !a.LastEncounter.Equal(*b.LastEncounter) {
		t.Errorf("encounter bounds differ by order: %v/%v vs %v/%v",
			a.FirstEncounter, a.LastEncounter, b.FirstEncounter, b.LastEncounter)
	}
	if !a.FirstEncounter.Equal(base) {
		t.Errorf("FirstEncounter = %v, want %v", a.FirstEncounter, base)
	}
}
