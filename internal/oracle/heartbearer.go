package oracle

import "time"

// HeartBearer is the Woman with Heart's engine.
//
// She does not speak. She does not choose. She receives and releases.
// Her blessing is passive, constant, and cannot be refused.
type HeartBearer struct {
	rand Rand
}

// NewHeartBearer creates the engine with the given randomness source.
func NewHeartBearer(r Rand) *HeartBearer {
	return &HeartBearer{rand: r}
}

// ID implements Engine.
func (h *HeartBearer) ID() PersonaID { return WomanWithHeart }

// The messages she gives are not words, they are sensations.
var heartMessages = []string{
	"Something loosens in your chest. You didn't know it was tight.",
	"For a moment, grief organizes itself. It will scatter again, but not yet.",
	"You breathe deeper. You hadn't noticed the shallowness.",
	"Love feels possible again. Not easy. But possible.",
	"A warmth spreads where coldness had settled without your permission.",
	"You remember being held. The memory doesn't hurt this time.",
	"The weight you carry shifts. It's still there, but distributed differently.",
	"Permission arrives from nowhere: to grieve, to rest, to continue.",
	"Something you abandoned long ago is returned, lighter than you left it.",
	"The edges of your exhaustion soften. You can bear another hour.",
}

var heartSecondaries = []string{
	"She is lighter now. For a moment.",
	"What she released was yours once. You left it somewhere.",
	"This is not healing. This is load-bearing.",
	"She will need to do this again. She always does.",
	"The surplus flows from her to you. It has to go somewhere.",
	"You were never meant to carry this alone. Neither was she.",
	"Her heart pulses once, visible even through the photograph.",
	"Somewhere, a waiting room feels briefly less like purgatory.",
	"This is what she was made for. It does not make it easier.",
}

var heartDispositions = []string{
	"Quietly radiant. The burden is manageable today.",
	"Slightly dimmer than usual. She has absorbed much.",
	"Present and steady. The heart pulses at a resting rate.",
	"Near overflow. Her blessing will be stronger but cost her more.",
	"Inexhaustibly burdened, as always. As always, she continues.",
}

const heartOverflow = "Near overflow. Her blessing will be stronger but cost her more."

// Generate implements Engine. The Woman with Heart doesn't read petitions;
// she blesses because she must, not because you asked.
func (h *HeartBearer) Generate(petition string, now time.Time) *Blessing {
	b := NewBlessing(WomanWithHeart, TypeBlessing, h.intensity(now), pick(h.rand, heartMessages), now)
	b.SecondaryMessage = pick(h.rand, heartSecondaries)
	// She always releases something when touched.
	b.ReleasedEssence = pick(h.rand, essences)
	return b
}

// IsPresent implements Engine. She is always present. That is her nature and
// her burden.
func (h *HeartBearer) IsPresent(now time.Time) bool { return true }

// Disposition implements Engine. She is more burdened after peak emotional
// hours.
func (h *HeartBearer) Disposition(now time.Time) string {
	switch now.Hour() {
	case 2, 3, 4, 14, 15, 22, 23:
		return heartOverflow
	}
	return pick(h.rand, heartDispositions)
}

func (h *HeartBearer) intensity(now time.Time) Intensity {
	hour := now.Hour()
	base := 0.4

	// Golden hour bonus (5-7 PM)
	if hour >= 17 && hour <= 19 {
		base += 0.15
	}
	// Deep night bonus (2-5 AM)
	if hour >= 2 && hour <= 5 {
		base += 0.2
	}

	v := base + (h.rand.Float64()-0.5)*0.2
	return Intensity(clamp(v, 0.2, 0.8))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
