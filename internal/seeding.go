package internal

import (
	"math/rand"
	"time"
)

const (
	SeedRandom = iota
	SeedSingle = iota
)

// A Shuffler permutes the contenders of a round in place.
// The resulting order is the pairing order of the round.
type Shuffler func(items []*Item)

// Returns a Shuffler for the given seeding mode.
//
// SeedRandom shuffles with an rng seeded by rngSeed.
// SeedSingle keeps the given order which makes the pairings
// follow the item order.
func SeededShuffler(seedingMode int, rngSeed int64) Shuffler {
	if seedingMode == SeedSingle {
		return func(items []*Item) {}
	}

	return RandomShuffler(rand.New(rand.NewSource(rngSeed)))
}

func RandomShuffler(rng *rand.Rand) Shuffler {
	return func(items []*Item) {
		shuffle(items, rng)
	}
}

func newTimeSeededShuffler() Shuffler {
	return SeededShuffler(SeedRandom, time.Now().UnixNano())
}

func shuffle[S ~[]E, E any](slice S, rng *rand.Rand) {
	rng.Shuffle(
		len(slice),
		func(i, j int) { slice[i], slice[j] = slice[j], slice[i] },
	)
}
