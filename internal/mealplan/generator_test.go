package mealplan

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriplan/internal/gemini"
)

type stubTextGen struct {
	text      string
	err       error
	gotModel  string
	gotPrompt string
	gotCfg    gemini.GenerationConfig
}

func (s *stubTextGen) GenerateText(_ context.Context, model, prompt string, cfg gemini.GenerationConfig) (string, error) {
	s.gotModel = model
	s.gotPrompt = prompt
	s.gotCfg = cfg
	return s.text, s.err
}

func newTestGenerator(stub *stubTextGen) *Generator {
	g := NewGenerator(stub)
	g.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

const validPlanJSON = `{"days": [{"day": 1, "meals": []}]}`

func TestGenerateRejectsMissingGoal(t *testing.T) {
	g := newTestGenerator(&stubTextGen{})
	_, err := g.Generate(context.Background(), PlanRequest{Budget: BudgetLow})

	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidRequest, perr.Kind)
	assert.Equal(t, "Goal is required", perr.Message)
}

func TestGenerateRejectsUnknownBudget(t *testing.T) {
	g := newTestGenerator(&stubTextGen{})
	_, err := g.Generate(context.Background(), PlanRequest{Goal: GoalWeightLoss, Budget: "premium"})

	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidRequest, perr.Kind)
}

func TestGenerateDefaultsBudgetAndDays(t *testing.T) {
	stub := &stubTextGen{text: validPlanJSON}
	g := newTestGenerator(stub)

	res, err := g.Generate(context.Background(), PlanRequest{Goal: GoalWeightLoss})
	require.NoError(t, err)

	assert.Equal(t, BudgetMedium, res.Metadata.Budget)
	assert.Contains(t, stub.gotPrompt, "7 ngày")
	assert.Equal(t, "gemini-1.5-flash", stub.gotModel)
	assert.InDelta(t, 0.7, stub.gotCfg.Temperature, 1e-9)
	assert.InDelta(t, 0.8, stub.gotCfg.TopP, 1e-9)
	assert.Equal(t, 40, stub.gotCfg.TopK)
}

func TestGenerateStripsFenceBeforeParsing(t *testing.T) {
	stub := &stubTextGen{text: "```json\n" + validPlanJSON + "\n```"}
	g := newTestGenerator(stub)

	res, err := g.Generate(context.Background(), PlanRequest{Goal: GoalMaintenance})
	require.NoError(t, err)
	assert.Contains(t, res.MealPlan, "days")
}

func TestGenerateMapsTimeout(t *testing.T) {
	stub := &stubTextGen{err: gemini.ErrTimeout}
	g := newTestGenerator(stub)

	_, err := g.Generate(context.Background(), PlanRequest{Goal: GoalMaintenance})
	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindUpstreamTimeout, perr.Kind)
}

func TestGenerateMalformedOutputTruncatesRawText(t *testing.T) {
	long := strings.Repeat("à", 500)
	stub := &stubTextGen{text: long}
	g := newTestGenerator(stub)

	_, err := g.Generate(context.Background(), PlanRequest{Goal: GoalWeightLoss})
	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindMalformedOutput, perr.Kind)
	assert.LessOrEqual(t, len([]rune(perr.RawText)), 203)
	assert.True(t, strings.HasSuffix(perr.RawText, "..."))
}

func TestGenerateRejectsEmptyDays(t *testing.T) {
	stub := &stubTextGen{text: `{"days": []}`}
	g := newTestGenerator(stub)

	_, err := g.Generate(context.Background(), PlanRequest{Goal: GoalWeightLoss})
	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidStructure, perr.Kind)
	assert.Equal(t, "Invalid meal plan structure", perr.Message)
}

func TestGenerateMetadata(t *testing.T) {
	stub := &stubTextGen{text: validPlanJSON}
	g := newTestGenerator(stub)

	res, err := g.Generate(context.Background(), PlanRequest{
		Goal:      GoalMuscleGain,
		Budget:    BudgetHigh,
		UserNotes: "nhiều protein",
		Days:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, GoalMuscleGain, res.Metadata.Goal)
	assert.Equal(t, BudgetHigh, res.Metadata.Budget)
	assert.Equal(t, "nhiều protein", res.Metadata.UserNotes)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), res.Metadata.GeneratedAt)
	assert.Contains(t, stub.gotPrompt, "3 ngày")
}
