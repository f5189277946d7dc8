package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePlan(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]any
		want bool
	}{
		{"nil days", map[string]any{}, false},
		{"days not array", map[string]any{"days": "monday"}, false},
		{"empty days", map[string]any{"days": []any{}}, false},
		{"one day", map[string]any{"days": []any{map[string]any{"day": 1}}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidatePlan(tc.doc))
		})
	}
}

func TestParsePlanRejectsProse(t *testing.T) {
	_, err := ParsePlan("Xin lỗi, tôi không thể tạo kế hoạch.")
	assert.Error(t, err)
}

func TestDecodePlan(t *testing.T) {
	doc, err := ParsePlan(`{
		"days": [
			{
				"day": 1,
				"totalCalories": 1500,
				"meals": [
					{
						"type": "Sáng",
						"time": "07:00",
						"foods": [
							{
								"name": "Phở gà",
								"portion": "1 tô",
								"calories": 350,
								"protein": 22,
								"carbs": 48,
								"fat": 7,
								"recipe": {
									"ingredients": ["bánh phở", "thịt gà"],
									"instructions": ["nấu nước dùng", "chan phở"]
								}
							}
						],
						"totalCalories": 350,
						"notes": "nhẹ nhàng"
					}
				]
			}
		],
		"summary": {"goal": "giảm cân", "averageCalories": 1500, "budget": "tiết kiệm"}
	}`)
	require.NoError(t, err)
	require.True(t, ValidatePlan(doc))

	plan, err := DecodePlan(doc)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)

	day := plan.Days[0]
	assert.Equal(t, 1, day.Day)
	require.Len(t, day.Meals, 1)
	assert.Equal(t, "Sáng", day.Meals[0].Type)
	require.Len(t, day.Meals[0].Foods, 1)
	require.NotNil(t, day.Meals[0].Foods[0].Recipe)
	assert.Len(t, day.Meals[0].Foods[0].Recipe.Ingredients, 2)

	require.NotNil(t, plan.Summary)
	assert.Equal(t, "giảm cân", plan.Summary.Goal)
}

func TestDecodePlanTolerantOfMissingOptionalFields(t *testing.T) {
	doc, err := ParsePlan(`{"days": [{"day": 1, "meals": []}]}`)
	require.NoError(t, err)

	plan, err := DecodePlan(doc)
	require.NoError(t, err)
	assert.Nil(t, plan.Summary)
	assert.Empty(t, plan.Days[0].Meals)
}
