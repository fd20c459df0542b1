package chat

import (
	"testing"
	"time"
)

func TestFormatDateID(t *testing.T) {
	d := time.Date(2025, time.May, 3, 10, 0, 0, 0, time.UTC)
	if got := FormatDateID(d); got != "3 Mei 2025" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDateIDPadded(d); got != "03 Mei 2025" {
		t.Fatalf("padded: got %q", got)
	}
}

func TestFormatDateIDMonthBounds(t *testing.T) {
	jan := time.Date(2026, time.January, 17, 0, 0, 0, 0, time.UTC)
	if got := FormatDateID(jan); got != "17 Januari 2026" {
		t.Fatalf("got %q", got)
	}
	des := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	if got := FormatDateID(des); got != "31 Desember 2025" {
		t.Fatalf("got %q", got)
	}
}
