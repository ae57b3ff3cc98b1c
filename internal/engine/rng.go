package engine

import "math/rand"

// RNG is the only source of randomness in a battle: shuffles and enemy
// intents both draw from it. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// NewRNG returns a deterministic generator for seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// shuffle is an in-place Fisher-Yates permutation.
func shuffle(cards []Card, rng RNG) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
