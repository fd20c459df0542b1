package storage

import (
	"context"
	"fmt"

	"librify/internal/models"
)

type ChatRepo struct {
	db *DB
}

func NewChatRepo(db *DB) *ChatRepo {
	return &ChatRepo{db: db}
}

func (r *ChatRepo) InsertMessage(ctx context.Context, m models.ChatMessage) error {
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO chat_messages (message_id, user_id, role, content)
VALUES ($1, $2, $3, $4)`,
		m.MessageID, m.UserID, m.Role, m.Content,
	)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *ChatRepo) ListMessagesByUser(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT message_id::text, user_id, role, content, created_at
FROM chat_messages
WHERE user_id=$1
ORDER BY created_at DESC
LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	out := make([]models.ChatMessage, 0)
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.MessageID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
