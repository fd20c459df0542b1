package chat

import (
	"fmt"
	"time"
)

// Go's time formatting never consults the platform locale, so Indonesian
// month names are spelled out explicitly.
var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateID renders a long-form Indonesian date, e.g. "3 Mei 2025".
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// FormatDateIDPadded is the fixed-width variant, e.g. "03 Mei 2025".
func FormatDateIDPadded(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}
