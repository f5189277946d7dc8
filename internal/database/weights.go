package database

import "context"

const weightColumns = "entry_id, user_id, weight_kg, date, note, created_at"

func scanWeight(row interface{ Scan(dest ...any) error }) (WeightEntry, error) {
	var w WeightEntry
	err := row.Scan(&w.EntryID, &w.UserID, &w.WeightKg, &w.Date, &w.Note, &w.CreatedAt)
	return w, err
}

// UpsertWeight records a measurement for a day, replacing any earlier
// value logged on the same date.
func (q *Queries) UpsertWeight(ctx context.Context, userID string, weightKg float64, date string, note *string) (WeightEntry, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO weight_entries (user_id, weight_kg, date, note)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   weight_kg = EXCLUDED.weight_kg,
		   note = EXCLUDED.note
		 RETURNING `+weightColumns,
		userID, weightKg, date, note)
	return scanWeight(row)
}

// ListWeights returns measurements newest first, capped at limit.
func (q *Queries) ListWeights(ctx context.Context, userID string, limit int32) ([]WeightEntry, error) {
	rows, err := q.db.Query(ctx,
		`SELECT `+weightColumns+` FROM weight_entries
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []WeightEntry{}
	for rows.Next() {
		w, err := scanWeight(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, w)
	}
	return entries, rows.Err()
}

// GetLatestWeight returns the most recently logged measurement.
func (q *Queries) GetLatestWeight(ctx context.Context, userID string) (WeightEntry, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+weightColumns+` FROM weight_entries
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, userID)
	return scanWeight(row)
}

// GetWeightByDate returns the measurement logged for one calendar day.
func (q *Queries) GetWeightByDate(ctx context.Context, userID, date string) (WeightEntry, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+weightColumns+` FROM weight_entries
		 WHERE user_id = $1 AND date = $2`, userID, date)
	return scanWeight(row)
}
