package activities

import "time"

type DueLoan struct {
	LoanID  string    `json:"loan_id"`
	UserID  string    `json:"user_id"`
	BookID  string    `json:"book_id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
}

type ScanDueLoansInput struct {
	WindowDays int `json:"window_days"`
}

type ScanDueLoansOutput struct {
	Loans []DueLoan `json:"loans"`
}

type WriteReminderInput struct {
	Loan DueLoan `json:"loan"`
}

type WriteReminderOutput struct {
	Written bool `json:"written"`
}
