package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/BradWyatt-code/strangel-oracle/internal/llm"
)

// ErrConsultationFailed wraps failures of the external generative-text call.
// No retry, no fallback text; the caller decides what to do.
var ErrConsultationFailed = fmt.Errorf("consultation failed")

// silenceMarker is the Woman with Heart's held silence.
const silenceMarker = "..."

// consultMaxTokens caps the length of any Strangel's reply.
const consultMaxTokens = 150

// Consultation is what the consultant returns: the Strangel's words, the
// outcome as it will be recorded, and a classified intensity.
type Consultation struct {
	Message   string
	Outcome   Outcome
	Intensity Intensity
}

// Consultant delegates a Strangel's words to a generative-text provider,
// then classifies the reply locally.
type Consultant struct {
	client llm.Client
	rand   Rand
}

// NewConsultant creates a consultant over the given provider.
func NewConsultant(client llm.Client, r Rand) *Consultant {
	return &Consultant{client: client, rand: r}
}

// Consult asks the persona to respond to the petition. Cancellation of ctx
// aborts the external call and surfaces here.
func (c *Consultant) Consult(ctx context.Context, id PersonaID, petition string) (*Consultation, error) {
	prompt, ok := personaPrompts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPersona, id, PersonaIDNames())
	}

	resp, err := c.client.Complete(ctx, llm.Request{
		System:      prompt,
		User:        userMessage(id, petition),
		Temperature: temperature(id),
		MaxTokens:   consultMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: persona %s: %v", ErrConsultationFailed, id, err)
	}

	message := resp.Content
	if message == "" {
		message = silenceMarker
	}

	return &Consultation{
		Message:   message,
		Outcome:   classify(id, message),
		Intensity: c.intensity(id, message),
	}, nil
}

func userMessage(id PersonaID, petition string) string {
	switch id {
	case WomanWithHeart:
		if petition != "" {
			return petition
		}
		return "I touch your image. I seek your blessing."
	case Fox:
		if strings.TrimSpace(petition) == "" {
			return "I petition you, Fox. I seek your aid."
		}
		return "I petition you, Fox: " + petition
	case Furies:
		if strings.TrimSpace(petition) == "" {
			return "I stand before you for judgment."
		}
		return "I confess: " + petition
	case Nokso:
		if petition != "" {
			return petition
		}
		return "I invoke you, Nok'so."
	}
	if petition != "" {
		return petition
	}
	return "I seek communion."
}

// Each Strangel has different predictability.
func temperature(id PersonaID) float32 {
	switch id {
	case WomanWithHeart:
		return 0.7 // gentle variation
	case Fox:
		return 1.2 // highly unpredictable
	case Furies:
		return 0.5 // more consistent judgment
	case Nokso:
		return 0.9 // sharp but varied
	}
	return 0.8
}

func classify(id PersonaID, message string) Outcome {
	lower := strings.ToLower(message)
	switch id {
	case WomanWithHeart:
		return OutcomeTouched
	case Fox:
		if strings.Contains(lower, "ha") || strings.Contains(lower, "no") || strings.Contains(lower, "not today") {
			return OutcomeDenied
		}
		return OutcomeBlessed
	case Furies:
		return OutcomeJudged
	case Nokso:
		return OutcomeDisrupted
	}
	return OutcomeBlessed
}

func (c *Consultant) intensity(id PersonaID, message string) Intensity {
	// Silence is more intense for the Woman with Heart.
	if id == WomanWithHeart && message == silenceMarker {
		return Overwhelming
	}

	var base float64
	switch id {
	case WomanWithHeart:
		base = 0.4
	case Fox:
		base = 0.6
	case Furies:
		base = 0.8
	case Nokso:
		base = 0.9
	default:
		base = 0.5
	}

	lengthBonus := float64(len(message)) / 100.0
	if lengthBonus > 0.2 {
		lengthBonus = 0.2
	}
	noise := (c.rand.Float64() - 0.5) * 0.2
	return Intensity(clamp(base+lengthBonus+noise, 0.1, 1.0))
}
