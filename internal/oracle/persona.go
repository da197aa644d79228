package oracle

import (
	"fmt"
	"strings"
)

// PersonaID identifies one of the four Strangels.
type PersonaID string

const (
	WomanWithHeart PersonaID = "WomanWithHeart"
	Fox            PersonaID = "Fox"
	Furies         PersonaID = "Furies"
	Nokso          PersonaID = "Nokso"
)

// AllPersonaIDs lists the fixed persona set in declaration order.
var AllPersonaIDs = []PersonaID{WomanWithHeart, Fox, Furies, Nokso}

// ErrUnknownPersona is returned for identifiers outside the fixed set.
var ErrUnknownPersona = fmt.Errorf("unknown persona")

// ParsePersonaID resolves a case-insensitive identifier string.
func ParsePersonaID(s string) (PersonaID, error) {
	for _, id := range AllPersonaIDs {
		if strings.EqualFold(s, string(id)) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPersona, s, PersonaIDNames())
}

// PersonaIDNames returns the valid identifiers as a comma-separated string,
// for error payloads.
func PersonaIDNames() string {
	names := make([]string, len(AllPersonaIDs))
	for i, id := range AllPersonaIDs {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}

// Persona is the static descriptor for a Strangel. Built once at process
// start, never mutated.
type Persona struct {
	ID                PersonaID
	Name              string
	Title             string
	Aspect            string
	Function          string
	Disposition       string
	Domains           []string
	Manifestations    []string
	RitualInstruction string
}

var personas = map[PersonaID]Persona{
	WomanWithHeart: {
		ID:          WomanWithHeart,
		Name:        "The Woman with Heart",
		Title:       "She Who Bears",
		Aspect:      "Devotion without irony",
		Function:    "Bearing emotional surplus",
		Disposition: "Quietly radiant. Inexhaustibly burdened.",
		Domains: []string{
			"Comfort",
			"Absorption",
			"Release",
			"The unnamed",
			"The overlooked",
		},
		Manifestations: []string{
			"Hospital waiting rooms at 3 a.m.",
			"The last car of late-night trains",
			"Back pews of churches that no longer hold services",
			"Anywhere people sit with what they cannot say",
		},
		RitualInstruction: "You do not pray to her. You do not speak. You touch.",
	},
	Fox: {
		ID:          Fox,
		Name:        "The Fox",
		Title:       "Murat Askarov, The Possessed",
		Aspect:      "Cunning without cruelty",
		Function:    "Destabilizing certainty",
		Disposition: "Quiet, curious, observant. A wildness under the calm.",
		Domains: []string{
			"Luck",
			"Trickery",
			"Crossing",
			"Riddles",
			"The space between worlds",
		},
		Manifestations: []string{
			"A rickshaw moving against traffic",
			"Amber eyes in subway windows",
			"Laughter from empty alleys",
			"The feeling of being watched and liked",
		},
		RitualInstruction: "Petition him with a question. Accept that he may not answer, or may answer wrong on purpose.",
	},
	Furies: {
		ID:          Furies,
		Name:        "The Furies",
		Title:       "Alecto, Megaera, Tisiphone",
		Aspect:      "Judgment without mercy",
		Function:    "Enforcing moral consequence",
		Disposition: "Thunder in the skull. Ancient and unimpressed.",
		Domains: []string{
			"Wrath",
			"Envy",
			"Vengeance",
			"Conscience",
			"The debt that must be paid",
		},
		Manifestations: []string{
			"Seagulls watching from lampposts",
			"Three shadows where one should fall",
			"The sound of wings in courtrooms",
			"Dreams of being followed",
		},
		RitualInstruction: "Confess what weighs on you. They will judge. They always judge.",
	},
	Nokso: {
		ID:          Nokso,
		Name:        "Nok'so",
		Title:       "The Falcon, The Disruptor",
		Aspect:      "Protection through chaos",
		Function:    "Breaking what needs breaking",
		Disposition: "Sharp. Sudden. Gone before you understand.",
		Domains: []string{
			"Protection",
			"Disruption",
			"Childhood",
			"Memory",
			"The strike that saves",
		},
		Manifestations: []string{
			"A falcon circling buildings",
			"The moment before an accident doesn't happen",
			"Childhood memories surfacing unbidden",
			"Things falling from shelves",
		},
		RitualInstruction: "Invoke her when you need something broken. She will decide if you're right.",
	},
}

// Describe returns the static descriptor for a persona.
func Describe(id PersonaID) (Persona, error) {
	p, ok := personas[id]
	if !ok {
		return Persona{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPersona, id, PersonaIDNames())
	}
	return p, nil
}
