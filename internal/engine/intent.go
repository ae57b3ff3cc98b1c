package engine

const (
	DefaultIntentMin = 6
	DefaultIntentMax = 10
)

// IntentGenerator rolls enemy intents uniformly from [min, max].
type IntentGenerator struct {
	rng      RNG
	min, max int
}

func NewIntentGenerator(rng RNG, min, max int) IntentGenerator {
	return IntentGenerator{rng: rng, min: min, max: max}
}

func (g IntentGenerator) Next() int {
	return g.min + g.rng.Intn(g.max-g.min+1)
}
