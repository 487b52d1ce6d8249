package types

import "testing"

func TestRangeDecode(t *testing.T) {
	var r Range
	if err := r.Decode("5-15"); err != nil {
		t.Fatalf("Decode returned unexpected error: %v", err)
	}
	if r.Min != 5 || r.Max != 15 {
		t.Fatalf("expected 5-15, got %d-%d", r.Min, r.Max)
	}

	if err := r.Decode(" 0 - 3 "); err != nil {
		t.Fatalf("Decode with spaces returned error: %v", err)
	}
	if r.Min != 0 || r.Max != 3 {
		t.Fatalf("expected 0-3, got %d-%d", r.Min, r.Max)
	}
}

func TestRangeDecodeInvalid(t *testing.T) {
	cases := []string{"", "5", "abc", "5-abc", "10-5", "-1-3"}
	for _, input := range cases {
		var r Range
		if err := r.Decode(input); err == nil {
			t.Fatalf("expected error decoding %q", input)
		}
	}
}

func TestRangeValidate(t *testing.T) {
	if err := (Range{Min: 1, Max: 1}).Validate(); err != nil {
		t.Fatalf("single-value range should validate: %v", err)
	}
	if err := (Range{Min: 3, Max: 1}).Validate(); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if err := (Range{Min: -1, Max: 1}).Validate(); err == nil {
		t.Fatal("expected error for negative min")
	}
}

func TestRangeString(t *testing.T) {
	if got := (Range{Min: 2, Max: 7}).String(); got != "2-7" {
		t.Fatalf("unexpected string form %q", got)
	}
}
