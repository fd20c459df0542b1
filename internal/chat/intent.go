package chat

import "strings"

type Intent int

const (
	IntentNone Intent = iota
	IntentStock
	IntentDueDate
)

var stockKeywords = []string{
	"stok", "stock", "tersedia", "availability", "ada stok", "buku tersedia", "stock buku",
}

var dueDateKeywords = []string{
	"kapan", "sampai kapan", "pengembalian", "mengembalikan", "deadline buku", "waktu kembalikan",
}

// Classify inspects the raw message for intent keywords. Stock is checked
// first and wins when a message matches both sets.
func Classify(message string) Intent {
	m := strings.ToLower(message)
	if containsAny(m, stockKeywords) {
		return IntentStock
	}
	if containsAny(m, dueDateKeywords) {
		return IntentDueDate
	}
	return IntentNone
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
