package oracle

import "fmt"

// Intensity is the strength of a blessing, in [0,1].
type Intensity float64

// Named bands. HeartTouch is the Woman with Heart's constant gentle touch.
const (
	Whisper      Intensity = 0.1
	Gentle       Intensity = 0.3
	HeartTouch   Intensity = 0.4
	Present      Intensity = 0.5
	Strong       Intensity = 0.7
	Overwhelming Intensity = 0.9
)

// ErrInvalidIntensity is returned when a value falls outside [0,1]. Internal
// callers always clamp first, so seeing this indicates a programming error.
var ErrInvalidIntensity = fmt.Errorf("intensity must be between 0 and 1")

// NewIntensity validates v into an Intensity. The range is closed on both ends.
func NewIntensity(v float64) (Intensity, error) {
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidIntensity, v)
	}
	return Intensity(v), nil
}

// Value returns the raw float.
func (i Intensity) Value() float64 { return float64(i) }

// Description renders the band as felt experience.
func (i Intensity) Description() string {
	switch {
	case i < 0.2:
		return "barely perceptible"
	case i < 0.4:
		return "gentle, like a held breath"
	case i < 0.6:
		return "present and undeniable"
	case i < 0.8:
		return "strong, almost too much"
	default:
		return "overwhelming, the edges of self blur"
	}
}
