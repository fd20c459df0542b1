package activities

import (
	"context"
	"fmt"
	"log"

	"librify/internal/chat"
	"librify/internal/config"
	"librify/internal/models"
	"librify/internal/storage"

	"github.com/google/uuid"
)

type Activities struct {
	cfg         config.Config
	catalogRepo *storage.CatalogRepo
	loanRepo    *storage.LoanRepo
	notifRepo   *storage.NotificationRepo
}

func New(cfg config.Config, db *storage.DB) *Activities {
	return &Activities{
		cfg:         cfg,
		catalogRepo: storage.NewCatalogRepo(db),
		loanRepo:    storage.NewLoanRepo(db),
		notifRepo:   storage.NewNotificationRepo(db),
	}
}

// ScanDueLoansActivity lists outstanding loans inside the reminder window
// with their titles resolved. Loans with a broken book reference are skipped
// the same way the chat lookup skips them.
func (a *Activities) ScanDueLoansActivity(ctx context.Context, in ScanDueLoansInput) (ScanDueLoansOutput, error) {
	windowDays := in.WindowDays
	if windowDays <= 0 {
		windowDays = 2
	}
	loans, err := a.loanRepo.ListLoansDueWithin(ctx, windowDays)
	if err != nil {
		return ScanDueLoansOutput{}, err
	}
	out := ScanDueLoansOutput{Loans: make([]DueLoan, 0, len(loans))}
	for _, l := range loans {
		if l.BookID == "" || l.DueDate.IsZero() {
			log.Printf("reminder scan skipped loan_id=%s reason=incomplete_record", l.LoanID)
			continue
		}
		b, err := a.catalogRepo.GetBookByID(ctx, l.BookID)
		if err != nil || b.Title == "" {
			log.Printf("reminder scan skipped loan_id=%s book_id=%s err=%v", l.LoanID, l.BookID, err)
			continue
		}
		out.Loans = append(out.Loans, DueLoan{
			LoanID:  l.LoanID,
			UserID:  l.UserID,
			BookID:  l.BookID,
			Title:   b.Title,
			DueDate: l.DueDate,
		})
	}
	return out, nil
}

func (a *Activities) WriteReminderActivity(ctx context.Context, in WriteReminderInput) (WriteReminderOutput, error) {
	message := fmt.Sprintf("📚 Buku '%s' harus dikembalikan sebelum %s.", in.Loan.Title, chat.FormatDateID(in.Loan.DueDate))
	written, err := a.notifRepo.InsertReminder(ctx, models.Notification{
		NotificationID: uuid.NewString(),
		UserID:         in.Loan.UserID,
		LoanID:         in.Loan.LoanID,
		Message:        message,
		DueDate:        in.Loan.DueDate,
	})
	if err != nil {
		return WriteReminderOutput{}, err
	}
	return WriteReminderOutput{Written: written}, nil
}
