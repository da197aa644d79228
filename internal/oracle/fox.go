package oracle

import "time"

// FoxEngine is the Fox's engine (Murat Askarov, the possessed).
//
// Unpredictable. Sometimes helps, sometimes doesn't. His responses are
// riddles, his blessings are gambles.
type FoxEngine struct {
	rand Rand
}

// NewFox creates the engine with the given randomness source.
func NewFox(r Rand) *FoxEngine {
	return &FoxEngine{rand: r}
}

// ID implements Engine.
func (f *FoxEngine) ID() PersonaID { return Fox }

var foxResponses = []string{
	"In my country, foxes walk like men. Here, men run like foxes. So who's the animal, you think?",
	"You want blessing? Blessing is for those who don't ask. You asked. This changes things.",
	"I see what you carry. It's heavy, yes? But is it yours? Maybe you picked up someone else's bag.",
	"The answer is yes. Or no. Depends on what you do next. I only see the crossroads, not the choice.",
	"My passenger laughs. This is good sign. Or very bad. Hard to tell with foxes.",
	"You came to me because you want permission. I don't give permission. I give... possibilities.",
	"Three paths: one safe, one fast, one true. I won't tell you which is which. More fun this way.",
}

var foxRefusals = []string{
	"Not today. The fox sleeps. Come back when you have something interesting.",
	"You smell like certainty. The fox doesn't like certainty. Try again with more doubt.",
	"I could help. I won't. Not because I can't. Because you need to find this yourself.",
}

var foxDispositions = []string{
	"Curious. Watching. The passenger stirs.",
	"Playful and dangerous. A good night for riddles.",
	"Quiet. The fox considers whether to engage.",
	"Alert. Something has caught his attention.",
}

const foxTrickSecondary = "The fox's eyes flash amber. Was that help or mischief? You won't know until later."

// Generate implements Engine. 70% help, 30% refuse; one in five helps is a
// trick.
func (f *FoxEngine) Generate(petition string, now time.Time) *Blessing {
	if f.rand.Float64() <= 0.3 {
		return NewBlessing(Fox, TypeSilence, Whisper, pick(f.rand, foxRefusals), now)
	}

	typ := TypeBlessing
	secondary := ""
	if f.rand.Float64() < 0.2 {
		typ = TypeTrick
		secondary = foxTrickSecondary
	}

	intensity := Intensity(f.rand.Float64()*0.5 + 0.3)
	b := NewBlessing(Fox, typ, intensity, pick(f.rand, foxResponses), now)
	b.SecondaryMessage = secondary
	return b
}

// IsPresent implements Engine. The Fox moves at night.
func (f *FoxEngine) IsPresent(now time.Time) bool {
	hour := now.Hour()
	return hour >= 20 || hour <= 5
}

// Disposition implements Engine.
func (f *FoxEngine) Disposition(now time.Time) string {
	return pick(f.rand, foxDispositions)
}
