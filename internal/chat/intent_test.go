package chat

import "testing"

func TestClassifyStock(t *testing.T) {
	cases := []string{
		"apakah ada stok buku Laskar Pelangi",
		"Is there stock availability for Sapiens?",
		"buku tersedia apa saja?",
	}
	for _, msg := range cases {
		if got := Classify(msg); got != IntentStock {
			t.Fatalf("classify %q: got %v want IntentStock", msg, got)
		}
	}
}

func TestClassifyDueDate(t *testing.T) {
	cases := []string{
		"kapan saya harus mengembalikan buku itu",
		"sampai kapan pengembalian bukunya?",
		"deadline buku saya",
	}
	for _, msg := range cases {
		if got := Classify(msg); got != IntentDueDate {
			t.Fatalf("classify %q: got %v want IntentDueDate", msg, got)
		}
	}
}

func TestClassifyStockWinsOverDueDate(t *testing.T) {
	// Both keyword sets match; stock is checked first.
	if got := Classify("kapan ada stok buku Sapiens?"); got != IntentStock {
		t.Fatalf("expected IntentStock on mixed keywords, got %v", got)
	}
}

func TestClassifyNone(t *testing.T) {
	if got := Classify("jam buka perpustakaan hari ini?"); got != IntentNone {
		t.Fatalf("expected IntentNone, got %v", got)
	}
}
