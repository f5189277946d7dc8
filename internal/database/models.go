package database

import "time"

// User is one row of the users table.
type User struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserProfile carries the dietary profile attached to a user account.
// Optional fields stay nil when the user never filled them in.
type UserProfile struct {
	ProfileID           string    `json:"profile_id"`
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	Age                 *int32    `json:"age,omitempty"`
	Gender              *string   `json:"gender,omitempty"`
	WeightKg            *float64  `json:"weight,omitempty"`
	HeightCm            *float64  `json:"height,omitempty"`
	TargetWeightKg      *float64  `json:"target_weight,omitempty"`
	ActivityLevel       *string   `json:"activity_level,omitempty"`
	Goal                *string   `json:"goal,omitempty"`
	DietaryRestrictions []string  `json:"dietary_restrictions,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// MealPlan is a saved AI-generated plan. Plan holds the generated JSON
// document exactly as the model produced it.
type MealPlan struct {
	PlanID         string         `json:"plan_id"`
	UserID         string         `json:"user_id"`
	Title          string         `json:"title"`
	Goal           string         `json:"goal"`
	TargetCalories float64        `json:"target_calories"`
	Plan           map[string]any `json:"plan"`
	IsFavorite     bool           `json:"is_favorite"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TrackedMeal is one checklist entry inside a daily tracking row.
type TrackedMeal struct {
	MealType   string   `json:"mealType"`
	FoodName   string   `json:"foodName"`
	Calories   float64  `json:"calories"`
	Protein    *float64 `json:"protein,omitempty"`
	Carbs      *float64 `json:"carbs,omitempty"`
	Fat        *float64 `json:"fat,omitempty"`
	IsConsumed bool     `json:"isConsumed"`
}

// DailyTracking is the per-day consumption checklist. Date is a
// YYYY-MM-DD calendar key in the configured timezone.
type DailyTracking struct {
	TrackingID    string        `json:"tracking_id"`
	UserID        string        `json:"user_id"`
	Date          string        `json:"date"`
	Meals         []TrackedMeal `json:"meals"`
	TotalCalories float64       `json:"total_calories"`
	WaterIntakeMl *float64      `json:"water_intake,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// WeightEntry is one weight measurement, at most one per calendar day.
type WeightEntry struct {
	EntryID   string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	WeightKg  float64   `json:"weight"`
	Date      string    `json:"date"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Food is one reference entry in the food catalog.
type Food struct {
	FoodID      string   `json:"food_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Calories    float64  `json:"calories"`
	ProteinG    float64  `json:"protein"`
	CarbsG      float64  `json:"carbs"`
	FatG        float64  `json:"fat"`
	Portion     string   `json:"portion"`
	Description *string  `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Recipe      []string `json:"recipe,omitempty"`
}

// ChatMessage is one stored exchange with the assistant.
type ChatMessage struct {
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
