package models

import "time"

type Book struct {
	BookID    string    `json:"book_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

// Loan rows are written by the borrowing flow elsewhere; this service only
// reads them.
type Loan struct {
	LoanID     string    `json:"loan_id"`
	BookID     string    `json:"book_id"`
	UserID     string    `json:"user_id"`
	DueDate    time.Time `json:"due_date"`
	IsReturned bool      `json:"is_returned"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoanDue is an outstanding loan with its book reference already resolved.
type LoanDue struct {
	LoanID  string    `json:"loan_id"`
	UserID  string    `json:"user_id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
}

type ChatMessage struct {
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Notification struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	LoanID         string    `json:"loan_id"`
	Message        string    `json:"message"`
	DueDate        time.Time `json:"due_date"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
