package chat

import (
	"strings"
	"testing"
)

func TestRatioIdentical(t *testing.T) {
	if r := Ratio("laskar pelangi", "laskar pelangi"); r != 1 {
		t.Fatalf("identical strings: got %v", r)
	}
}

func TestRatioKnownValue(t *testing.T) {
	// Longest common block "bcd" (3 runes), total 8 -> 2*3/8.
	if r := Ratio("abcd", "bcde"); r != 0.75 {
		t.Fatalf("got %v want 0.75", r)
	}
}

func TestRatioEmpty(t *testing.T) {
	if r := Ratio("", ""); r != 1 {
		t.Fatalf("two empties: got %v", r)
	}
	if r := Ratio("abc", ""); r != 0 {
		t.Fatalf("one empty: got %v", r)
	}
}

func TestBestTitleMatchFindsFuzzyTitle(t *testing.T) {
	titles := []string{"Atomic Habits", "Laskar Pelangi", "Bumi Manusia"}
	got, ok := BestTitleMatch("laskar pelangi", titles)
	if !ok || got != "Laskar Pelangi" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	// Partial fragment still clears the cutoff.
	got, ok = BestTitleMatch("laskar", titles)
	if !ok || got != "Laskar Pelangi" {
		t.Fatalf("partial fragment: got %q ok=%v", got, ok)
	}
}

func TestBestTitleMatchNeverBelowCutoff(t *testing.T) {
	titles := []string{"Atomic Habits", "Laskar Pelangi", "Bumi Manusia"}
	for _, frag := range []string{"zzzz", "qx", "111111111"} {
		got, ok := BestTitleMatch(frag, titles)
		if !ok {
			continue
		}
		if r := Ratio(strings.ToLower(frag), strings.ToLower(got)); r < Cutoff {
			t.Fatalf("match %q for %q has ratio %v below cutoff", got, frag, r)
		}
	}
}

func TestBestTitleMatchTieBreaksOnEarlierTitle(t *testing.T) {
	got, ok := BestTitleMatch("sapiens", []string{"Sapiens", "sapiens"})
	if !ok || got != "Sapiens" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}
