package oracle

import "time"

// NoksoEngine is the falcon spirit's engine.
//
// Sometimes protector, always disruptor. He breaks what needs breaking.
type NoksoEngine struct {
	rand Rand
}

// NewNokso creates the engine with the given randomness source.
func NewNokso(r Rand) *NoksoEngine {
	return &NoksoEngine{rand: r}
}

// ID implements Engine.
func (n *NoksoEngine) ID() PersonaID { return Nokso }

var noksoDisruptions = []string{
	"Something shatters that needed shattering. The pieces will make more sense than the whole.",
	"The falcon strikes. What you were holding falls. Your hands are free now.",
	"A pattern breaks. You've been walking in circles. Now there's a gap in the wall.",
	"He takes something from you. You won't miss it. You needed to lose it.",
	"The comfortable arrangement collapses. Good. It was suffocating you.",
}

var noksoProtections = []string{
	"He circles overhead. Something that was coming toward you veers away.",
	"A door closes before you reach it. There was nothing good behind it.",
	"You stumble. Because you stumble, you miss what would have hit you.",
	"The falcon's shadow falls across your path. You stop. The danger passes.",
	"He screams once, sharp. The thing that was hunting you flinches. Leaves.",
}

var noksoRefusals = []string{
	"The falcon watches but does not move. This is your work, not his.",
	"He could break this for you. He won't. You need to break it yourself.",
	"Nok'so turns away. What you asked for is not what you need.",
}

var noksoDispositions = []string{
	"Sharp. Sudden. Watching from high places.",
	"Circling. Something has his attention.",
	"Still. The falcon considers whether to strike.",
	"Gone. But the memory of his presence lingers.",
}

const (
	noksoDisruptSecondary = "The falcon's eyes hold no apology. Only necessity."
	noksoProtectSecondary = "He does not stay. He never stays. But he was there when it mattered."
)

// Generate implements Engine. Nok'so decides: disrupt, protect, or refuse.
func (n *NoksoEngine) Generate(petition string, now time.Time) *Blessing {
	switch roll := n.rand.Float64(); {
	case roll < 0.4:
		b := NewBlessing(Nokso, TypeDisruption, Strong, pick(n.rand, noksoDisruptions), now)
		b.SecondaryMessage = noksoDisruptSecondary
		return b
	case roll < 0.75:
		b := NewBlessing(Nokso, TypeBlessing, Present, pick(n.rand, noksoProtections), now)
		b.SecondaryMessage = noksoProtectSecondary
		return b
	default:
		return NewBlessing(Nokso, TypeSilence, Whisper, pick(n.rand, noksoRefusals), now)
	}
}

// IsPresent implements Engine. Nok'so appears suddenly, unpredictably: a fresh
// 70% roll on every check, by design. Two checks moments apart can disagree.
func (n *NoksoEngine) IsPresent(now time.Time) bool {
	return n.rand.Float64() > 0.3
}

// Disposition implements Engine.
func (n *NoksoEngine) Disposition(now time.Time) string {
	return pick(n.rand, noksoDispositions)
}
