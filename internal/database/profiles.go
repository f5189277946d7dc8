package database

import "context"

const profileColumns = `profile_id, user_id, name, age, gender, weight_kg, height_cm,
	target_weight_kg, activity_level, goal, dietary_restrictions, created_at, updated_at`

func scanProfile(row interface{ Scan(dest ...any) error }) (UserProfile, error) {
	var p UserProfile
	err := row.Scan(&p.ProfileID, &p.UserID, &p.Name, &p.Age, &p.Gender, &p.WeightKg,
		&p.HeightCm, &p.TargetWeightKg, &p.ActivityLevel, &p.Goal,
		&p.DietaryRestrictions, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// UpsertProfileParams carries a full profile write. Nil optionals clear
// the corresponding column, matching a full-form submit from the app.
type UpsertProfileParams struct {
	UserID              string
	Name                string
	Age                 *int32
	Gender              *string
	WeightKg            *float64
	HeightCm            *float64
	TargetWeightKg      *float64
	ActivityLevel       *string
	Goal                *string
	DietaryRestrictions []string
}

// UpsertProfile creates or replaces the profile attached to a user.
func (q *Queries) UpsertProfile(ctx context.Context, arg UpsertProfileParams) (UserProfile, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO user_profiles
		   (user_id, name, age, gender, weight_kg, height_cm, target_weight_kg,
		    activity_level, goal, dietary_restrictions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id) DO UPDATE SET
		   name = EXCLUDED.name,
		   age = EXCLUDED.age,
		   gender = EXCLUDED.gender,
		   weight_kg = EXCLUDED.weight_kg,
		   height_cm = EXCLUDED.height_cm,
		   target_weight_kg = EXCLUDED.target_weight_kg,
		   activity_level = EXCLUDED.activity_level,
		   goal = EXCLUDED.goal,
		   dietary_restrictions = EXCLUDED.dietary_restrictions,
		   updated_at = now()
		 RETURNING `+profileColumns,
		arg.UserID, arg.Name, arg.Age, arg.Gender, arg.WeightKg, arg.HeightCm,
		arg.TargetWeightKg, arg.ActivityLevel, arg.Goal, arg.DietaryRestrictions)
	return scanProfile(row)
}

// GetProfileByUserID fetches the profile for an account.
func (q *Queries) GetProfileByUserID(ctx context.Context, userID string) (UserProfile, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID)
	return scanProfile(row)
}

// UpdateProfileName syncs the display name into the profile row, if any.
func (q *Queries) UpdateProfileName(ctx context.Context, userID, name string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE user_profiles SET name = $2, updated_at = now() WHERE user_id = $1`,
		userID, name)
	return err
}
