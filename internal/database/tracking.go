package database

import "context"

const trackingColumns = `tracking_id, user_id, date, meals, total_calories,
	water_intake_ml, notes, created_at`

func scanTracking(row interface{ Scan(dest ...any) error }) (DailyTracking, error) {
	var t DailyTracking
	err := row.Scan(&t.TrackingID, &t.UserID, &t.Date, &t.Meals, &t.TotalCalories,
		&t.WaterIntakeMl, &t.Notes, &t.CreatedAt)
	return t, err
}

// GetDailyTracking fetches the tracking row for one calendar day.
func (q *Queries) GetDailyTracking(ctx context.Context, userID, date string) (DailyTracking, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+trackingColumns+` FROM daily_tracking
		 WHERE user_id = $1 AND date = $2`, userID, date)
	return scanTracking(row)
}

// InsertDailyTracking creates the checklist for a day. Meals start
// unconsumed and the consumed-calorie total starts at zero.
func (q *Queries) InsertDailyTracking(ctx context.Context, userID, date string, meals []TrackedMeal) (DailyTracking, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO daily_tracking (user_id, date, meals, total_calories, water_intake_ml)
		 VALUES ($1, $2, $3, 0, 0)
		 RETURNING `+trackingColumns,
		userID, date, meals)
	return scanTracking(row)
}

// UpdateDailyTrackingMeals replaces the day's checklist and total.
func (q *Queries) UpdateDailyTrackingMeals(ctx context.Context, trackingID string, meals []TrackedMeal, totalCalories float64) (DailyTracking, error) {
	row := q.db.QueryRow(ctx,
		`UPDATE daily_tracking SET meals = $2, total_calories = $3
		 WHERE tracking_id = $1
		 RETURNING `+trackingColumns,
		trackingID, meals, totalCalories)
	return scanTracking(row)
}

// ListTrackingHistory returns the most recent days, newest first.
func (q *Queries) ListTrackingHistory(ctx context.Context, userID string, limit int32) ([]DailyTracking, error) {
	rows, err := q.db.Query(ctx,
		`SELECT `+trackingColumns+` FROM daily_tracking
		 WHERE user_id = $1 ORDER BY date DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []DailyTracking{}
	for rows.Next() {
		t, err := scanTracking(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, t)
	}
	return history, rows.Err()
}
