package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive min-max pair for per-entity count configuration.
// The textual form is "min-max", e.g. "5-15".
type Range struct {
	Min int
	Max int
}

// Decode implements envconfig.Decoder.
func (r *Range) Decode(value string) error {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid range %q (expected min-max)", value)
	}

	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("invalid range %q: %w", value, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("invalid range %q: %w", value, err)
	}

	r.Min = min
	r.Max = max
	return r.Validate()
}

// Validate checks the pair is ordered and non-negative.
func (r Range) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("range min %d must not be negative", r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("range max %d is below min %d", r.Max, r.Min)
	}
	return nil
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
