package mealplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nutriplan/internal/gemini"
)

const (
	planModel = "gemini-1.5-flash"

	// rawTextLimit caps how much model output is echoed back in error
	// responses.
	rawTextLimit = 200
)

// PlanRequest is the caller's input to plan generation.
type PlanRequest struct {
	Goal      string `json:"goal"`
	Budget    string `json:"budget"`
	UserNotes string `json:"userNotes"`
	Days      int    `json:"days"`
}

// Metadata records the resolved inputs of a successful generation.
type Metadata struct {
	Goal        string    `json:"goal"`
	Budget      string    `json:"budget"`
	UserNotes   string    `json:"userNotes,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Result is a validated plan plus its generation metadata.
type Result struct {
	MealPlan map[string]any `json:"mealPlan"`
	Metadata Metadata       `json:"metadata"`
}

// Generator runs the full pipeline: validate the request, build the
// prompt, call the model, sanitize and validate the output.
type Generator struct {
	textGen gemini.TextGenerator
	model   string
	now     func() time.Time
}

// NewGenerator wires a generator to a model client.
func NewGenerator(textGen gemini.TextGenerator) *Generator {
	return &Generator{
		textGen: textGen,
		model:   planModel,
		now:     time.Now,
	}
}

// Generate produces a meal plan for the request. All failures come back
// as *Error so callers can map them to transport responses.
func (g *Generator) Generate(ctx context.Context, req PlanRequest) (*Result, error) {
	if req.Goal == "" {
		return nil, &Error{Kind: KindInvalidRequest, Message: "Goal is required"}
	}
	if req.Budget != "" && !ValidBudget(req.Budget) {
		return nil, &Error{Kind: KindInvalidRequest, Message: "Budget must be one of: low, medium, high"}
	}

	budget := req.Budget
	if budget == "" {
		budget = BudgetMedium
	}
	days := req.Days
	if days <= 0 {
		days = 7
	}

	prompt := BuildPrompt(req.Goal, budget, req.UserNotes, days)

	raw, err := g.textGen.GenerateText(ctx, g.model, prompt, gemini.GenerationConfig{
		Temperature: 0.7,
		TopP:        0.8,
		TopK:        40,
	})
	if err != nil {
		if errors.Is(err, gemini.ErrTimeout) {
			return nil, &Error{
				Kind:    KindUpstreamTimeout,
				Message: "Model request timed out",
				Details: err.Error(),
				err:     err,
			}
		}
		return nil, &Error{
			Kind:    KindUpstreamFailure,
			Message: "Failed to generate meal plan",
			Details: err.Error(),
			err:     err,
		}
	}

	cleaned := StripCodeFence(raw)

	doc, err := ParsePlan(cleaned)
	if err != nil {
		return nil, &Error{
			Kind:    KindMalformedOutput,
			Message: "Failed to parse meal plan from AI response",
			Details: err.Error(),
			RawText: truncateRunes(cleaned, rawTextLimit),
			err:     err,
		}
	}

	if !ValidatePlan(doc) {
		return nil, &Error{
			Kind:    KindInvalidStructure,
			Message: "Invalid meal plan structure",
			Details: "missing or empty days array",
			RawText: truncateRunes(cleaned, rawTextLimit),
		}
	}

	return &Result{
		MealPlan: doc,
		Metadata: Metadata{
			Goal:        req.Goal,
			Budget:      budget,
			UserNotes:   req.UserNotes,
			GeneratedAt: g.now().UTC(),
		},
	}, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return fmt.Sprintf("%s...", string(runes[:limit]))
}
