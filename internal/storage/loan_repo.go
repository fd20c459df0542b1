package storage

import (
	"context"
	"fmt"

	"librify/internal/models"
)

type LoanRepo struct {
	db *DB
}

func NewLoanRepo(db *DB) *LoanRepo {
	return &LoanRepo{db: db}
}

// ListOutstandingLoans returns the user's not-yet-returned loans in store
// order; callers that need a particular ordering sort themselves.
func (r *LoanRepo) ListOutstandingLoans(ctx context.Context, userID string) ([]models.Loan, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT loan_id::text, book_id::text, user_id, due_date, is_returned, created_at
FROM loans
WHERE user_id=$1 AND is_returned=false`, userID)
	if err != nil {
		return nil, fmt.Errorf("list outstanding loans: %w", err)
	}
	defer rows.Close()

	out := make([]models.Loan, 0)
	for rows.Next() {
		var l models.Loan
		if err := rows.Scan(&l.LoanID, &l.BookID, &l.UserID, &l.DueDate, &l.IsReturned, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loans: %w", err)
	}
	return out, nil
}

// ListLoansDueWithin returns outstanding loans across all users whose due
// date falls within the next windowDays (overdue loans included).
func (r *LoanRepo) ListLoansDueWithin(ctx context.Context, windowDays int) ([]models.Loan, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT loan_id::text, book_id::text, user_id, due_date, is_returned, created_at
FROM loans
WHERE is_returned=false AND due_date <= NOW() + make_interval(days => $1)
ORDER BY due_date ASC`, windowDays)
	if err != nil {
		return nil, fmt.Errorf("list loans due within: %w", err)
	}
	defer rows.Close()

	out := make([]models.Loan, 0)
	for rows.Next() {
		var l models.Loan
		if err := rows.Scan(&l.LoanID, &l.BookID, &l.UserID, &l.DueDate, &l.IsReturned, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan due loan: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
