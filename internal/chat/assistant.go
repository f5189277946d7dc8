/*
Package chat implements the nutrition chat assistant: prompt assembly
with optional user context, the model call, and persistence of the
conversation history.
*/
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nutriplan/internal/gemini"
)

const chatModel = "gemini-2.0-flash-exp"

// ErrEmptyMessage is returned when the caller sends a blank message.
var ErrEmptyMessage = errors.New("message is required")

// ErrUpstream wraps any model failure so transports can map it.
var ErrUpstream = errors.New("chat model request failed")

// UserContext carries the profile facts woven into the prompt.
// Every field is optional; absent fields produce no context line.
type UserContext struct {
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Goal   *string  `json:"goal,omitempty"`
	Tdee   *float64 `json:"tdee,omitempty"`
}

// Assistant answers nutrition questions with the user's profile as
// context.
type Assistant struct {
	textGen gemini.TextGenerator
	model   string
}

// NewAssistant wires the assistant to a model client.
func NewAssistant(textGen gemini.TextGenerator) *Assistant {
	return &Assistant{textGen: textGen, model: chatModel}
}

// goalDisplay translates a goal enum value into its Vietnamese label
// for the chat prompt. Anything unrecognized reads as maintenance.
func goalDisplay(goal string) string {
	switch goal {
	case "weight_loss":
		return "Giảm cân"
	case "muscle_gain":
		return "Tăng cơ"
	default:
		return "Duy trì"
	}
}

// BuildChatPrompt renders the assistant prompt. Context lines appear
// only for fields that are actually set.
func BuildChatPrompt(message string, userCtx *UserContext) string {
	// Zero counts as absent, the same as a missing field.
	var lines []string
	if userCtx != nil {
		if userCtx.Weight != nil && *userCtx.Weight != 0 {
			lines = append(lines, fmt.Sprintf("- Cân nặng: %g kg", *userCtx.Weight))
		}
		if userCtx.Height != nil && *userCtx.Height != 0 {
			lines = append(lines, fmt.Sprintf("- Chiều cao: %g cm", *userCtx.Height))
		}
		if userCtx.Goal != nil && *userCtx.Goal != "" {
			lines = append(lines, fmt.Sprintf("- Mục tiêu: %s", goalDisplay(*userCtx.Goal)))
		}
		if userCtx.Tdee != nil && *userCtx.Tdee != 0 {
			lines = append(lines, fmt.Sprintf("- TDEE: %g kcal/ngày", *userCtx.Tdee))
		}
	}

	return fmt.Sprintf(`Bạn là chuyên gia dinh dưỡng AI của ứng dụng "Dinh Dưỡng Thông Minh".

THÔNG TIN NGƯỜI DÙNG:
%s

CÂU HỎI: %s

Hãy trả lời ngắn gọn (2-3 đoạn), thân thiện, bằng tiếng Việt. Ưu tiên món ăn Việt Nam.`,
		strings.Join(lines, "\n"), message)
}

// Reply answers one user message. The returned text is trimmed model
// output.
func (a *Assistant) Reply(ctx context.Context, message string, userCtx *UserContext) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	prompt := BuildChatPrompt(message, userCtx)
	text, err := a.textGen.GenerateText(ctx, a.model, prompt, gemini.GenerationConfig{
		Temperature:     0.8,
		MaxOutputTokens: 500,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return strings.TrimSpace(text), nil
}
