package bot

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource is the randomness the easy and medium tiers draw from.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// NewLockedSource returns a time-seeded source that is safe for concurrent use.
func NewLockedSource() RandomSource {
	src := &rand.LockedSource{}
	src.Seed(uint64(time.Now().UnixNano()))

	return rand.New(src)
}
