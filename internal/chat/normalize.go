package chat

import "strings"

// Token removal is plain substring replacement, not word-boundary aware, and
// the order matters: earlier tokens can eat parts of later ones. Due-date and
// stock disambiguation depends on this exact behavior.
var noiseTokens = []string{
	"stok", "stock", "tersedia", "availability", "yang tersedia", "apakah",
	"buku", "ada", "semua", "?", ".", "saya", "kapan", "pengembalian",
	"mengembalikan", "harus", "waktu", "kembalikan", "mengembalikannya",
	"pengembalikannya",
}

// NormalizeBookQuery strips filler words from a message, leaving the probable
// book-title fragment.
func NormalizeBookQuery(message string) string {
	m := strings.ToLower(message)
	for _, tok := range noiseTokens {
		m = strings.ReplaceAll(m, tok, "")
	}
	return strings.TrimSpace(m)
}
