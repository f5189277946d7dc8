package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const mealPlanColumns = `plan_id, user_id, title, goal, target_calories, plan,
	is_favorite, created_at, updated_at`

func scanMealPlan(row interface{ Scan(dest ...any) error }) (MealPlan, error) {
	var m MealPlan
	err := row.Scan(&m.PlanID, &m.UserID, &m.Title, &m.Goal, &m.TargetCalories,
		&m.Plan, &m.IsFavorite, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// InsertMealPlanParams carries a new saved plan.
type InsertMealPlanParams struct {
	UserID         string
	Title          string
	Goal           string
	TargetCalories float64
	Plan           map[string]any
}

// InsertMealPlan stores a generated plan for a user.
func (q *Queries) InsertMealPlan(ctx context.Context, arg InsertMealPlanParams) (MealPlan, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO meal_plans (user_id, title, goal, target_calories, plan)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+mealPlanColumns,
		arg.UserID, arg.Title, arg.Goal, arg.TargetCalories, arg.Plan)
	return scanMealPlan(row)
}

// ListMealPlans returns every plan of a user, newest first.
func (q *Queries) ListMealPlans(ctx context.Context, userID string) ([]MealPlan, error) {
	rows, err := q.db.Query(ctx,
		`SELECT `+mealPlanColumns+` FROM meal_plans
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []MealPlan{}
	for rows.Next() {
		m, err := scanMealPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, m)
	}
	return plans, rows.Err()
}

// GetMealPlan fetches one plan by primary key.
func (q *Queries) GetMealPlan(ctx context.Context, planID string) (MealPlan, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+mealPlanColumns+` FROM meal_plans WHERE plan_id = $1`, planID)
	return scanMealPlan(row)
}

// DeleteMealPlan removes a plan.
func (q *Queries) DeleteMealPlan(ctx context.Context, planID string) error {
	_, err := q.db.Exec(ctx, `DELETE FROM meal_plans WHERE plan_id = $1`, planID)
	return err
}

// ToggleMealPlanFavorite flips the favorite flag and returns the new value.
func (q *Queries) ToggleMealPlanFavorite(ctx context.Context, planID string) (bool, error) {
	var fav bool
	err := q.db.QueryRow(ctx,
		`UPDATE meal_plans SET is_favorite = NOT is_favorite, updated_at = now()
		 WHERE plan_id = $1 RETURNING is_favorite`, planID).Scan(&fav)
	return fav, err
}

// UpsertActiveMealPlan records which saved plan drives daily tracking.
func (q *Queries) UpsertActiveMealPlan(ctx context.Context, userID, planID string) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO user_settings (user_id, active_meal_plan_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET
		   active_meal_plan_id = EXCLUDED.active_meal_plan_id,
		   updated_at = now()`,
		userID, planID)
	return err
}

// GetActiveMealPlanID returns the active plan id, or nil when the user
// never picked one.
func (q *Queries) GetActiveMealPlanID(ctx context.Context, userID string) (*string, error) {
	var planID *string
	err := q.db.QueryRow(ctx,
		`SELECT active_meal_plan_id FROM user_settings WHERE user_id = $1`,
		userID).Scan(&planID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return planID, err
}
