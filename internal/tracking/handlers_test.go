package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutriplan/internal/database"
)

func TestConsumedCalories(t *testing.T) {
	meals := []database.TrackedMeal{
		{MealType: "Sáng", FoodName: "Phở bò", Calories: 350, IsConsumed: true},
		{MealType: "Trưa", FoodName: "Cơm gạo lứt", Calories: 400, IsConsumed: false},
		{MealType: "Tối", FoodName: "Canh chua cá", Calories: 150, IsConsumed: true},
	}

	assert.InDelta(t, 500, ConsumedCalories(meals), 1e-9)
}

func TestConsumedCaloriesEmpty(t *testing.T) {
	assert.Zero(t, ConsumedCalories(nil))
	assert.Zero(t, ConsumedCalories([]database.TrackedMeal{{Calories: 300}}))
}

func TestParseLimit(t *testing.T) {
	assert.EqualValues(t, 7, parseLimit("", 7))
	assert.EqualValues(t, 30, parseLimit("30", 7))
	assert.EqualValues(t, 7, parseLimit("abc", 7))
	assert.EqualValues(t, 7, parseLimit("-5", 7))
	assert.EqualValues(t, 7, parseLimit("0", 7))
}
