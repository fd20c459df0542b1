package chat

import "testing"

func TestNormalizeBookQueryStock(t *testing.T) {
	got := NormalizeBookQuery("apakah ada stok buku Laskar Pelangi")
	if got != "laskar pelangi" {
		t.Fatalf("unexpected fragment: %q", got)
	}
}

func TestNormalizeBookQueryDueDate(t *testing.T) {
	got := NormalizeBookQuery("kapan saya harus mengembalikan buku itu")
	if got != "itu" {
		t.Fatalf("unexpected fragment: %q", got)
	}
}

// Removal is substring-based, not word-boundary aware: a noise token strips
// mid-word occurrences too. That fuzziness is part of the contract.
func TestNormalizeBookQueryStripsInsideWords(t *testing.T) {
	got := NormalizeBookQuery("stokista")
	if got != "ista" {
		t.Fatalf("expected mid-word strip, got %q", got)
	}
}

func TestNormalizeBookQueryIdempotent(t *testing.T) {
	inputs := []string{
		"apakah ada stok buku Laskar Pelangi",
		"kapan saya harus mengembalikan buku itu",
		"Bumi Manusia",
	}
	for _, in := range inputs {
		once := NormalizeBookQuery(in)
		if twice := NormalizeBookQuery(once); twice != once {
			t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
