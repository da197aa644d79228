package oracle

import "time"

// FuriesEngine is the Furies' judgment engine (Alecto, Megaera, Tisiphone).
//
// They appear as seagulls now. They judge all the same. Three voices, one
// verdict.
type FuriesEngine struct {
	rand Rand
}

// NewFuries creates the engine with the given randomness source.
func NewFuries(r Rand) *FuriesEngine {
	return &FuriesEngine{rand: r}
}

// ID implements Engine.
func (f *FuriesEngine) ID() PersonaID { return Furies }

var alectoJudgments = []string{
	"ALECTO speaks: Your anger is justified. But justification is not absolution.",
	"ALECTO speaks: You buried your rage. We can smell where you buried it.",
	"ALECTO speaks: The fury you feel is borrowed. Return it to its source.",
}

var megaeraJudgments = []string{
	"MEGAERA speaks: You wanted what wasn't yours. The wanting itself was the sin.",
	"MEGAERA speaks: Envy is a mirror. What you covet in others lives dormant in you.",
	"MEGAERA speaks: You compare yourself to shadows. Stop measuring against ghosts.",
}

var tisiphoneJudgments = []string{
	"TISIPHONE speaks: What you did cannot be undone. But its weight can be carried differently.",
	"TISIPHONE speaks: The debt exists. We are not here to collect, only to remind.",
	"TISIPHONE speaks: Guilt without action is self-indulgence. What will you do?",
}

var unitedJudgments = []string{
	"WE SPEAK AS ONE: You came seeking judgment. Here it is: you are not as guilty as you fear, nor as innocent as you hope.",
	"WE SPEAK AS ONE: The scales balance differently than you expected. Live with the true weight.",
	"WE SPEAK AS ONE: Your conscience brought you here. We have nothing to add to what it already knows.",
}

var furiesDispositions = []string{
	"Circling. Watching. The verdict forms slowly.",
	"Restless. Something has drawn their attention.",
	"Still. The judgment has already been made. You just don't know it yet.",
	"Thunder in the skull. They are close.",
}

const furiesSecondary = "The seagulls wheel overhead. They will be watching."

// Generate implements Engine. One Fury speaks per quartile, or all three
// together.
func (f *FuriesEngine) Generate(petition string, now time.Time) *Blessing {
	var message string
	switch roll := f.rand.Float64(); {
	case roll < 0.25:
		message = pick(f.rand, alectoJudgments)
	case roll < 0.5:
		message = pick(f.rand, megaeraJudgments)
	case roll < 0.75:
		message = pick(f.rand, tisiphoneJudgments)
	default:
		message = pick(f.rand, unitedJudgments)
	}

	b := NewBlessing(Furies, TypeJudgment, Strong, message, now)
	b.SecondaryMessage = furiesSecondary
	return b
}

// IsPresent implements Engine. The Furies are always watching.
func (f *FuriesEngine) IsPresent(now time.Time) bool { return true }

// Disposition implements Engine.
func (f *FuriesEngine) Disposition(now time.Time) string {
	return pick(f.rand, furiesDispositions)
}
