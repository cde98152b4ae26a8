package core

import (
	"math/rand"
	"time"
)

// Shuffles the slice in place with a Fisher-Yates shuffle
// from a seeded source. The same seed always results in the
// same order.
func SeededShuffle[S ~[]E, E any](slice S, rngSeed int64) {
	rng := rand.New(rand.NewSource(rngSeed))
	shuffle(slice, rng)
}

// Shuffles the slice in place from a time seeded source
func Shuffle[S ~[]E, E any](slice S) {
	SeededShuffle(slice, time.Now().UnixNano())
}

func shuffle[S ~[]E, E any](slice S, rng *rand.Rand) {
	rng.Shuffle(
		len(slice),
		func(i, j int) { slice[i], slice[j] = slice[j], slice[i] },
	)
}
