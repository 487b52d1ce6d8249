package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spotplatform/seedgen/pkg/types"
)

// randBetween returns a uniform int in [min, max].
func randBetween(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// randRange samples a count from a configured inclusive range.
func randRange(r *rand.Rand, rg types.Range) int {
	return randBetween(r, rg.Min, rg.Max)
}

// weightedIndex picks an index with probability proportional to its weight.
func weightedIndex(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// sampleIndices returns k distinct indices drawn without replacement from
// [0, n). k is clamped to n.
func sampleIndices(r *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	return r.Perm(n)[:k]
}

// choice returns a uniform element of items, which must be non-empty.
func choice[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// pastTimestamp returns a moment between startDaysAgo and endDaysAgo before
// now, with random hour/minute jitter.
func pastTimestamp(r *rand.Rand, now time.Time, startDaysAgo, endDaysAgo int) time.Time {
	days := randBetween(r, endDaysAgo, startDaysAgo)
	hours := r.Intn(24)
	minutes := r.Intn(60)
	return now.Add(-time.Duration(days)*24*time.Hour -
		time.Duration(hours)*time.Hour -
		time.Duration(minutes)*time.Minute)
}

// laterTimestamp returns a moment up to thirty days after createdAt, used for
// audit update fields.
func laterTimestamp(r *rand.Rand, createdAt time.Time) time.Time {
	days := r.Intn(31)
	hours := r.Intn(24)
	return createdAt.Add(time.Duration(days)*24*time.Hour + time.Duration(hours)*time.Hour)
}

// newID derives a UUID from the pipeline's random source so seeded runs are
// fully reproducible.
func newID(r *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// math/rand readers cannot fail
		panic(fmt.Sprintf("uuid from rand: %v", err))
	}
	return id
}

func ptr[T any](v T) *T {
	return &v
}
