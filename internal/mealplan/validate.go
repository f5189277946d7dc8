package mealplan

import "encoding/json"

// GeneratedPlan is the typed view of a model response. Only the days
// list is guaranteed by validation; everything below it is best-effort
// model output, so optional fields stay pointers.
type GeneratedPlan struct {
	Days    []DayPlan    `json:"days"`
	Summary *PlanSummary `json:"summary,omitempty"`
}

// DayPlan is one day's worth of meals.
type DayPlan struct {
	Day           int     `json:"day"`
	TotalCalories float64 `json:"totalCalories"`
	Meals         []Meal  `json:"meals"`
}

// Meal is one eating occasion within a day.
type Meal struct {
	Type          string  `json:"type"`
	Time          string  `json:"time"`
	Foods         []Food  `json:"foods"`
	TotalCalories float64 `json:"totalCalories"`
	Notes         string  `json:"notes"`
}

// Food is a single dish with its macros and optional recipe.
type Food struct {
	Name     string  `json:"name"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Recipe   *Recipe `json:"recipe,omitempty"`
}

// Recipe carries preparation details for a food.
type Recipe struct {
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// PlanSummary is the trailing summary block of a generated plan.
type PlanSummary struct {
	Goal            string   `json:"goal"`
	AverageCalories float64  `json:"averageCalories"`
	Budget          string   `json:"budget"`
	Tips            []string `json:"tips,omitempty"`
}

// ParsePlan decodes sanitized model text into a loose document.
// A non-nil error here means the text is not JSON at all.
func ParsePlan(text string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ValidatePlan checks the minimum shape a plan must have before anyone
// trusts it: a days field holding a non-empty list. Deeper fields are
// left to the typed decoder, which propagates their optionality.
func ValidatePlan(doc map[string]any) bool {
	days, ok := doc["days"].([]any)
	return ok && len(days) > 0
}

// DecodePlan converts a validated loose document into the typed view.
func DecodePlan(doc map[string]any) (*GeneratedPlan, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var plan GeneratedPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
