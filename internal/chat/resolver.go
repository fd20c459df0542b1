package chat

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"librify/internal/models"
	"librify/internal/providers"
)

// ReplyNotLoggedIn gates the whole /chat endpoint; the HTTP layer returns it
// with a 400 when no user id is supplied.
const ReplyNotLoggedIn = "⚠️ Anda belum login. Silakan login untuk menggunakan fitur ini."

const (
	replyStockFound     = "📚 Buku '%s' tersedia %d stok."
	replyStockNotFound  = "❌ Maaf, saya tidak menemukan buku terkait '%s'."
	replyLoginRequired  = "⚠️ Untuk mengecek pengembalian, silakan login terlebih dahulu."
	replyNoLoans        = "✅ Kamu tidak memiliki buku yang sedang dipinjam."
	replyNoLoanForTitle = "✅ Kamu tidak memiliki pinjaman untuk buku tersebut."
	replyDueDate        = "🗕️ Buku '%s' harus dikembalikan sebelum %s."
	replyUrgent         = "\n⚠️ Segera kembalikan atau ajukan perpanjangan!"
	replyError          = "❌ Terjadi kesalahan: %s"
)

// urgencyDays is the days-remaining threshold at or below which the due-date
// reply carries the return-now note.
const urgencyDays = 2

// Resolver routes a chat message: special library queries are answered from
// the store, everything else goes to the LLM fallback.
type Resolver struct {
	catalog Catalog
	loans   Loans
	llm     providers.LLMProvider
	now     func() time.Time
}

func NewResolver(catalog Catalog, loans Loans, llm providers.LLMProvider) *Resolver {
	return &Resolver{catalog: catalog, loans: loans, llm: llm, now: time.Now}
}

// Reply produces the final answer for a message. Every path ends in a reply
// string; failures are embedded in the text, never raised.
func (r *Resolver) Reply(ctx context.Context, message, userID string) string {
	if reply, ok := r.ResolveSpecial(ctx, message, userID); ok {
		return reply
	}
	return r.AskFallback(ctx, message)
}

// ResolveSpecial answers stock and due-date questions. ok=false means no
// special intent matched and the caller should fall through to the LLM.
func (r *Resolver) ResolveSpecial(ctx context.Context, message, userID string) (string, bool) {
	switch Classify(message) {
	case IntentStock:
		fragment := NormalizeBookQuery(message)
		titles, err := r.catalog.ListBookTitles(ctx)
		if err != nil {
			return fmt.Sprintf(replyError, err), true
		}
		title, ok := BestTitleMatch(fragment, titles)
		if !ok {
			return fmt.Sprintf(replyStockNotFound, fragment), true
		}
		stock, err := r.catalog.GetBookStock(ctx, title)
		if err != nil {
			return fmt.Sprintf(replyError, err), true
		}
		return fmt.Sprintf(replyStockFound, title, stock), true
	case IntentDueDate:
		if userID == "" {
			return replyLoginRequired, true
		}
		return r.resolveDueDateReply(ctx, userID, NormalizeBookQuery(message)), true
	}
	return "", false
}

func (r *Resolver) resolveDueDateReply(ctx context.Context, userID, fragment string) string {
	dues, err := OutstandingLoans(ctx, r.catalog, r.loans, userID)
	if err != nil {
		return fmt.Sprintf(replyError, err)
	}
	if len(dues) == 0 {
		return replyNoLoans
	}

	fragment = strings.TrimSpace(strings.ToLower(fragment))
	var matched *models.LoanDue
	if fragment != "" {
		for i := range dues {
			if strings.Contains(strings.ToLower(dues[i].Title), fragment) {
				matched = &dues[i]
				break
			}
		}
	}
	// Disambiguation shortcut: with a single outstanding loan, answer for it
	// even when the fragment matched nothing.
	if matched == nil && len(dues) == 1 {
		matched = &dues[0]
	}
	if matched == nil {
		return replyNoLoanForTitle
	}

	reply := fmt.Sprintf(replyDueDate, matched.Title, FormatDateID(matched.DueDate))
	if daysUntil(r.now(), matched.DueDate) <= urgencyDays {
		reply += replyUrgent
	}
	return reply
}

// daysUntil floors toward negative infinity, so an overdue loan an hour past
// due counts as -1 days, not 0.
func daysUntil(now, due time.Time) int {
	return int(math.Floor(due.Sub(now).Hours() / 24))
}
