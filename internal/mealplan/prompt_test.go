package mealplan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptDeterministic(t *testing.T) {
	a := BuildPrompt(GoalWeightLoss, BudgetMedium, "ít cay", 7)
	b := BuildPrompt(GoalWeightLoss, BudgetMedium, "ít cay", 7)
	assert.Equal(t, a, b)
}

func TestBuildPromptWeightLossDefaults(t *testing.T) {
	prompt := BuildPrompt(GoalWeightLoss, BudgetMedium, "", 7)

	assert.Contains(t, prompt, "1500 kcal")
	assert.Contains(t, prompt, "giảm cân")
	assert.Contains(t, prompt, "7 ngày")
	assert.Contains(t, prompt, "trung bình")
	assert.Contains(t, prompt, "100,000đ - 200,000đ/ngày")
}

func TestBuildPromptUnknownGoalFallsBackToMaintenance(t *testing.T) {
	prompt := BuildPrompt("bulking", BudgetMedium, "", 7)

	assert.Contains(t, prompt, "duy trì cân nặng")
	assert.Contains(t, prompt, "2000 kcal")
}

func TestBuildPromptUnknownBudgetFallsBackToMedium(t *testing.T) {
	prompt := BuildPrompt(GoalMuscleGain, "premium", "", 7)

	assert.Contains(t, prompt, "trung bình")
	assert.Contains(t, prompt, "tăng cơ")
	assert.Contains(t, prompt, "2500 kcal")
}

func TestBuildPromptZeroDaysDefaultsToSeven(t *testing.T) {
	prompt := BuildPrompt(GoalMaintenance, BudgetLow, "", 0)
	assert.Contains(t, prompt, "7 ngày")
}

func TestBuildPromptNotesHandling(t *testing.T) {
	withNotes := BuildPrompt(GoalMaintenance, BudgetLow, "không ăn hải sản", 3)
	assert.Contains(t, withNotes, "Ghi chú từ người dùng: không ăn hải sản")
	assert.Contains(t, withNotes, "CHÚ Ý GHI CHÚ NGƯỜI DÙNG: không ăn hải sản")

	noNotes := BuildPrompt(GoalMaintenance, BudgetLow, "   ", 3)
	assert.NotContains(t, noNotes, "Ghi chú từ người dùng")
	assert.Contains(t, noNotes, "Không có yêu cầu đặc biệt")
}

func TestBuildPromptEmbedsExampleJSON(t *testing.T) {
	prompt := BuildPrompt(GoalWeightLoss, BudgetHigh, "", 7)

	assert.Contains(t, prompt, `"days": [`)
	assert.Contains(t, prompt, `"goal": "giảm cân"`)
	assert.Contains(t, prompt, `"averageCalories": 1500`)
	assert.Contains(t, prompt, `"budget": "cao cấp"`)
}

func TestValidBudget(t *testing.T) {
	for _, b := range []string{BudgetLow, BudgetMedium, BudgetHigh} {
		assert.True(t, ValidBudget(b), b)
	}
	assert.False(t, ValidBudget("premium"))
	assert.False(t, ValidBudget(""))
	assert.False(t, ValidBudget(strings.ToUpper(BudgetLow)))
}
