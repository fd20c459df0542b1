package storage

import (
	"context"
	"fmt"

	"librify/internal/models"
)

type NotificationRepo struct {
	db *DB
}

func NewNotificationRepo(db *DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// InsertReminder writes a due-date reminder, at most one per loan per day.
// Returns true when a row was written.
func (r *NotificationRepo) InsertReminder(ctx context.Context, n models.Notification) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
INSERT INTO notifications (notification_id, user_id, loan_id, message, due_date)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (
  SELECT 1 FROM notifications
  WHERE loan_id=$3 AND created_at::date = CURRENT_DATE
)`,
		n.NotificationID, n.UserID, n.LoanID, n.Message, n.DueDate,
	)
	if err != nil {
		return false, fmt.Errorf("insert reminder: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *NotificationRepo) ListNotificationsByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT notification_id::text, user_id, loan_id::text, message, due_date, created_at
FROM notifications
WHERE user_id=$1
ORDER BY created_at DESC
LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.NotificationID, &n.UserID, &n.LoanID, &n.Message, &n.DueDate, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
