package oracle

import (
	"fmt"
	"time"
)

// Engine generates responses for one Strangel. Each of the four has its own
// policy: when it is present, what mood it is in, and how it answers.
//
// Implementations are computation-only. The caller supplies now so that
// time-of-day behavior is testable without touching the system clock.
type Engine interface {
	ID() PersonaID
	Generate(petition string, now time.Time) *Blessing
	IsPresent(now time.Time) bool
	Disposition(now time.Time) string
}

// ErrNoEngine is returned when no engine is registered for a persona.
// Unreachable with the closed set of four, but checked so the contract
// survives new personas.
var ErrNoEngine = fmt.Errorf("no engine registered")

// Dispatcher maps each persona to its engine.
type Dispatcher struct {
	engines map[PersonaID]Engine
}

// NewDispatcher builds the fixed persona-to-engine mapping, all engines
// sharing the given randomness source.
func NewDispatcher(r Rand) *Dispatcher {
	d := &Dispatcher{engines: make(map[PersonaID]Engine)}
	for _, e := range []Engine{
		NewHeartBearer(r),
		NewFox(r),
		NewFuries(r),
		NewNokso(r),
	} {
		d.engines[e.ID()] = e
	}
	return d
}

// EngineFor resolves a persona to its engine.
func (d *Dispatcher) EngineFor(id PersonaID) (Engine, error) {
	e, ok := d.engines[id]
	if !ok {
		return nil, fmt.Errorf("%w for persona %q", ErrNoEngine, id)
	}
	return e, nil
}

// Outcome is the recorded vocabulary of the soul ledger, derived from but
// distinct from the blessing type.
type Outcome string

const (
	OutcomeBlessed   Outcome = "Blessed"
	OutcomeDenied    Outcome = "Denied"
	OutcomeJudged    Outcome = "Judged"
	OutcomeDisrupted Outcome = "Disrupted"
	OutcomeTouched   Outcome = "Touched"
)

// AllOutcomes lists the recorded vocabulary.
var AllOutcomes = []Outcome{OutcomeBlessed, OutcomeDenied, OutcomeJudged, OutcomeDisrupted, OutcomeTouched}

// RecordedOutcome maps a blessing to its ledger outcome. The Woman with
// Heart's responses are always recorded as a touch. A trick is recorded as
// blessed; whether it helped is something the seeker learns later.
func RecordedOutcome(b *Blessing) Outcome {
	if b.Source == WomanWithHeart {
		return OutcomeTouched
	}
	switch b.Type {
	case TypeSilence:
		return OutcomeDenied
	case TypeJudgment:
		return OutcomeJudged
	case TypeDisruption:
		return OutcomeDisrupted
	default:
		return OutcomeBlessed
	}
}

// AmbientMood describes the city's hour for the presence report.
func AmbientMood(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 4:
		return "The city sleeps. The Strangels are closer."
	case hour < 7:
		return "The hour of the threshold. Anything can cross."
	case hour < 12:
		return "Daylight presses. They retreat to edges."
	case hour < 17:
		return "The afternoon haze. They watch from shadows."
	case hour < 20:
		return "The golden hour. The Woman with Heart is strongest."
	case hour < 23:
		return "Night falls. The Fox begins to move."
	default:
		return "The Furies circle. Judgment hangs in the air."
	}
}
