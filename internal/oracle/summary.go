package oracle

import (
	"time"

	"github.com/BradWyatt-code/strangel-oracle/internal/store"
)

// LedgerSummary aggregates one session's ledger entries. Derived on demand,
// never stored.
type LedgerSummary struct {
	TotalBlessings      int            `json:"total_blessings"`
	TotalDenials        int            `json:"total_denials"`
	TotalJudgments      int            `json:"total_judgments"`
	TotalDisruptions    int            `json:"total_disruptions"`
	TotalTouches        int            `json:"total_touches"`
	EncountersByPersona map[string]int `json:"encounters_by_persona"`
	FirstEncounter      *time.Time     `json:"first_encounter"`
	LastEncounter       *time.Time     `json:"last_encounter"`
}

// Summarize computes the summary for a set of ledger entries. Pure and
// order-independent; an empty input yields zero counts and nil encounter
// timestamps.
func Summarize(entries []store.LedgerEntry) LedgerSummary {
	summary := LedgerSummary{
		EncountersByPersona: make(map[string]int),
	}
	if len(entries) == 0 {
		return summary
	}

	first := entries[0].BestowedAt
	last := entries[0].BestowedAt
	for _, e := range entries {
		switch Outcome(e.Outcome) {
		case OutcomeBlessed:
			summary.TotalBlessings++
		case OutcomeDenied:
			summary.TotalDenials++
		case OutcomeJudged:
			summary.TotalJudgments++
		case OutcomeDisrupted:
			summary.TotalDisruptions++
		case OutcomeTouched:
			summary.TotalTouches++
		}
		summary.EncountersByPersona[e.Persona]++

		if e.BestowedAt.Before(first) {
			first = e.BestowedAt
		}
		if e.BestowedAt.After(last) {
			last = e.BestowedAt
		}
	}
	summary.FirstEncounter = &first
	summary.LastEncounter = &last
	return summary
}
