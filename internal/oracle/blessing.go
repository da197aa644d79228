package oracle

import (
	"time"

	"github.com/google/uuid"
)

// BlessingType is the categorical nature of a Strangel's response.
type BlessingType string

const (
	// TypeBlessing is a positive blessing: comfort, luck, protection.
	TypeBlessing BlessingType = "Blessing"
	// TypeJudgment is neither purely good nor bad, but true.
	TypeJudgment BlessingType = "Judgment"
	// TypeSilence is a refusal or withholding.
	TypeSilence BlessingType = "Silence"
	// TypeDisruption unsettles, breaks open.
	TypeDisruption BlessingType = "Disruption"
	// TypeTrick is the Fox's specialty, meaning unclear.
	TypeTrick BlessingType = "Trick"
)

// Blessing is one Strangel's response: an outcome, an intensity, and a
// potency window that decays from the moment it is bestowed.
type Blessing struct {
	ID               uuid.UUID
	Source           PersonaID
	Type             BlessingType
	Intensity        Intensity
	Message          string
	SecondaryMessage string    // empty when absent
	ReleasedEssence  string    // only the Woman with Heart releases
	BestowedAt       time.Time // UTC
	Duration         time.Duration
}

// NewBlessing creates a blessing bestowed at now. Duration scales with
// intensity: 5 minutes at zero, 65 at full.
func NewBlessing(source PersonaID, typ BlessingType, intensity Intensity, message string, now time.Time) *Blessing {
	return &Blessing{
		ID:         uuid.New(),
		Source:     source,
		Type:       typ,
		Intensity:  intensity,
		Message:    message,
		BestowedAt: now.UTC(),
		Duration:   blessingDuration(intensity),
	}
}

func blessingDuration(intensity Intensity) time.Duration {
	minutes := intensity.Value()*60 + 5
	return time.Duration(minutes * float64(time.Minute))
}

// Active reports whether the blessing still holds at now.
func (b *Blessing) Active(now time.Time) bool {
	return now.Before(b.BestowedAt.Add(b.Duration))
}

// RemainingStrength is the decayed potency at now: the intensity scaled
// linearly down over the active window, zero once expired.
func (b *Blessing) RemainingStrength(now time.Time) float64 {
	if !b.Active(now) {
		return 0
	}
	elapsed := now.Sub(b.BestowedAt)
	remaining := 1 - elapsed.Seconds()/b.Duration.Seconds()
	return remaining * b.Intensity.Value()
}

// Essences of emotional surplus the Woman with Heart absorbs and releases.
var essences = []string{
	"grief left in waiting rooms",
	"love that outlived its welcome",
	"hope abandoned at thresholds",
	"faith shed like old skin",
	"tenderness no one claimed",
	"sincerity punished into silence",
	"devotion that exceeded its object",
	"belief outgrown but not forgotten",
	"joy too fragile to keep",
	"longing that found no home",
}
