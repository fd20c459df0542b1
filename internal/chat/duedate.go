package chat

import (
	"context"
	"log"

	"librify/internal/models"
)

// Catalog is the read-only view of the book collection the chat path needs.
type Catalog interface {
	ListBookTitles(ctx context.Context) ([]string, error)
	GetBookStock(ctx context.Context, title string) (int, error)
	GetBookByID(ctx context.Context, bookID string) (models.Book, error)
}

// Loans is the read-only view of borrowing records.
type Loans interface {
	ListOutstandingLoans(ctx context.Context, userID string) ([]models.Loan, error)
}

// OutstandingLoans lists a user's not-yet-returned loans with their book
// references resolved to titles. A loan with a missing book reference, an
// unresolvable book, or no due date is skipped with a log line; one bad
// record must not sink the whole lookup.
func OutstandingLoans(ctx context.Context, catalog Catalog, loans Loans, userID string) ([]models.LoanDue, error) {
	list, err := loans.ListOutstandingLoans(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.LoanDue, 0, len(list))
	for _, l := range list {
		if l.BookID == "" {
			log.Printf("loan skipped loan_id=%s reason=missing_book_reference", l.LoanID)
			continue
		}
		b, err := catalog.GetBookByID(ctx, l.BookID)
		if err != nil {
			log.Printf("loan skipped loan_id=%s book_id=%s err=%v", l.LoanID, l.BookID, err)
			continue
		}
		if b.Title == "" || l.DueDate.IsZero() {
			log.Printf("loan skipped loan_id=%s reason=incomplete_record", l.LoanID)
			continue
		}
		out = append(out, models.LoanDue{
			LoanID:  l.LoanID,
			UserID:  l.UserID,
			Title:   b.Title,
			DueDate: l.DueDate,
		})
	}
	return out, nil
}
