package chat

import (
	"context"
	"errors"
	"testing"

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

func ptr[T any](v T) *T { return &v }

func TestBuildChatPromptWithFullContext(t *testing.T) {
	prompt := BuildChatPrompt("Tôi nên ăn gì buổi sáng?", &UserContext{
		Weight: ptr(70.5),
		Height: ptr(170.0),
		Goal:   ptr("weight_loss"),
		Tdee:   ptr(1800.0),
	})

	assert.Contains(t, prompt, "- Cân nặng: 70.5 kg")
	assert.Contains(t, prompt, "- Chiều cao: 170 cm")
	assert.Contains(t, prompt, "- Mục tiêu: Giảm cân")
	assert.Contains(t, prompt, "- TDEE: 1800 kcal/ngày")
	assert.Contains(t, prompt, "CÂU HỎI: Tôi nên ăn gì buổi sáng?")
}

func TestBuildChatPromptOmitsAbsentFields(t *testing.T) {
	prompt := BuildChatPrompt("xin chào", &UserContext{Goal: ptr("muscle_gain")})

	assert.Contains(t, prompt, "- Mục tiêu: Tăng cơ")
	assert.NotContains(t, prompt, "Cân nặng")
	assert.NotContains(t, prompt, "Chiều cao")
	assert.NotContains(t, prompt, "TDEE")
}

func TestBuildChatPromptZeroValuesReadAsAbsent(t *testing.T) {
	prompt := BuildChatPrompt("xin chào", &UserContext{
		Weight: ptr(0.0),
		Height: ptr(0.0),
		Tdee:   ptr(0.0),
	})

	assert.NotContains(t, prompt, "Cân nặng")
	assert.NotContains(t, prompt, "Chiều cao")
	assert.NotContains(t, prompt, "TDEE")
}

func TestBuildChatPromptNilContext(t *testing.T) {
	prompt := BuildChatPrompt("xin chào", nil)

	assert.Contains(t, prompt, "CÂU HỎI: xin chào")
	assert.NotContains(t, prompt, "- Cân nặng")
}

func TestBuildChatPromptUnknownGoalReadsAsMaintenance(t *testing.T) {
	prompt := BuildChatPrompt("hi", &UserContext{Goal: ptr("bulking")})
	assert.Contains(t, prompt, "- Mục tiêu: Duy trì")
}

func TestReplyRejectsEmptyMessage(t *testing.T) {
	a := NewAssistant(&stubTextGen{})

	_, err := a.Reply(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestReplyUsesChatModelConfig(t *testing.T) {
	stub := &stubTextGen{text: "  Chào bạn!  "}
	a := NewAssistant(stub)

	reply, err := a.Reply(context.Background(), "xin chào", nil)
	require.NoError(t, err)

	assert.Equal(t, "Chào bạn!", reply)
	assert.Equal(t, "gemini-2.0-flash-exp", stub.gotModel)
	assert.InDelta(t, 0.8, stub.gotCfg.Temperature, 1e-9)
	assert.Equal(t, 500, stub.gotCfg.MaxOutputTokens)
}

func TestReplyWrapsUpstreamError(t *testing.T) {
	stub := &stubTextGen{err: errors.New("boom")}
	a := NewAssistant(stub)

	_, err := a.Reply(context.Background(), "xin chào", nil)
	assert.ErrorIs(t, err, ErrUpstream)
}
