package database

import (
	"context"
	"time"
)

const chatColumns = "message_id, user_id, message, response, created_at"

func scanChat(row interface{ Scan(dest ...any) error }) (ChatMessage, error) {
	var m ChatMessage
	err := row.Scan(&m.MessageID, &m.UserID, &m.Message, &m.Response, &m.CreatedAt)
	return m, err
}

// InsertChatMessage appends one exchange to the user's history.
func (q *Queries) InsertChatMessage(ctx context.Context, userID, message, response string) (ChatMessage, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO chat_messages (user_id, message, response)
		 VALUES ($1, $2, $3)
		 RETURNING `+chatColumns,
		userID, message, response)
	return scanChat(row)
}

// ListRecentChatMessages returns the latest exchanges, newest first.
func (q *Queries) ListRecentChatMessages(ctx context.Context, userID string, limit int32) ([]ChatMessage, error) {
	rows, err := q.db.Query(ctx,
		`SELECT `+chatColumns+` FROM chat_messages
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []ChatMessage{}
	for rows.Next() {
		m, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// DeleteChatMessages clears a user's history and reports how many rows went.
func (q *Queries) DeleteChatMessages(ctx context.Context, userID string) (int64, error) {
	tag, err := q.db.Exec(ctx,
		`DELETE FROM chat_messages WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CountChatMessagesSince counts exchanges created at or after a point in
// time, used to enforce the daily assistant quota.
func (q *Queries) CountChatMessagesSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx,
		`SELECT count(*) FROM chat_messages
		 WHERE user_id = $1 AND created_at >= $2`, userID, since).Scan(&n)
	return n, err
}
