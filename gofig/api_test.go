package gofig

import (
	"testing"
)

func TestConfig(t *testing.T) {
	ok := []Config{{A: 4}, {A: 4, B: 4}, {A: 4, B: 8}, {A: 8}, {A: 8, B: 4}, {A: 8, B: 8}}
	for _, cfg := range ok {
		if err := cfg.Validate(); err != nil {
			t.Fatalf("(%s) unexpected error: %v", cfg.Label(), err)
		}
	}
	for _, cfg := range []Config{{}, {A: 6}, {A: 4, B: 6}, {A: 8, B: 1}} {
		if cfg.Validate() == nil {
			t.Fatalf("expected error for A=%d B=%d", cfg.A, cfg.B)
		}
	}

	if label := (Config{A: 8, B: 4}).Label(); label != "84" {
		t.Fatalf("got label %q", label)
	}
}

func TestCounts(t *testing.T) {
	counts := Counts{1, 2, 6, 19}
	if counts.Total() != 28 {
		t.Fatalf("got total %d", counts.Total())
	}
	if !counts.IsEqual(KnownCounts4) {
		t.Fatal("prefix compare failed")
	}
	if counts.IsEqual(KnownCounts8) {
		t.Fatal("prefix compare matched the wrong table")
	}
	if (Counts{}).IsEqual(KnownCounts4) == false {
		t.Fatal("empty counts compare equal to everything")
	}
}

func TestKnownCountsSelection(t *testing.T) {
	if KnownCounts(Config{A: 4, B: 4}) != nil {
		t.Fatal("non-zero B has no reference table")
	}
	if got := KnownCounts(Config{A: 8}); got[1] != 4 {
		t.Fatalf("got %v", got[:2])
	}
	if got := KnownCounts(Config{A: 4}); got[1] != 2 {
		t.Fatalf("got %v", got[:2])
	}
}
