package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriplan/internal/chat"
	"nutriplan/internal/gemini"
	"nutriplan/internal/mealplan"
)

type stubTextGen struct {
	text string
	err  error
}

func (s *stubTextGen) GenerateText(context.Context, string, string, gemini.GenerationConfig) (string, error) {
	return s.text, s.err
}

func newTestServer(stub *stubTextGen) *Server {
	return &Server{
		generator: mealplan.NewGenerator(stub),
		assistant: chat.NewAssistant(stub),
	}
}

func doJSON(t *testing.T, srv *Server, handler echo.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	e.Validator = &RequestValidator{validate: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHealthHandler(t *testing.T) {
	srv := newTestServer(&stubTextGen{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, srv.healthHandler(e.NewContext(req, rec)))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Server đang chạy", body["message"])
}

func TestGeneratePlanMissingGoal(t *testing.T) {
	srv := newTestServer(&stubTextGen{})

	rec, body := doJSON(t, srv, srv.generatePlanHandler, `{"budget":"low"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Goal is required", body["error"])
}

func TestGeneratePlanBadBudget(t *testing.T) {
	srv := newTestServer(&stubTextGen{})

	rec, body := doJSON(t, srv, srv.generatePlanHandler, `{"goal":"weight_loss","budget":"premium"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "Budget")
}

func TestGeneratePlanFencedOutput(t *testing.T) {
	srv := newTestServer(&stubTextGen{text: "```json\n{\"days\": [{\"day\": 1}]}\n```"})

	rec, body := doJSON(t, srv, srv.generatePlanHandler, `{"goal":"weight_loss"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "mealPlan")

	metadata, ok := body["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "weight_loss", metadata["goal"])
	assert.Equal(t, "medium", metadata["budget"])
}

func TestGeneratePlanProseOutput(t *testing.T) {
	srv := newTestServer(&stubTextGen{text: strings.Repeat("xin lỗi ", 100)})

	rec, body := doJSON(t, srv, srv.generatePlanHandler, `{"goal":"maintenance"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to parse meal plan from AI response", body["error"])
	assert.Contains(t, body, "details")

	rawText, ok := body["rawText"].(string)
	require.True(t, ok)
	assert.LessOrEqual(t, len([]rune(rawText)), 203)
}

func TestGeneratePlanTimeout(t *testing.T) {
	srv := newTestServer(&stubTextGen{err: gemini.ErrTimeout})

	rec, body := doJSON(t, srv, srv.generatePlanHandler, `{"goal":"maintenance"}`)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "Model request timed out", body["error"])
}

func TestGeneratePlanEmptyDays(t *testing.T) {
	srv := newTestServer(&stubTextGen{text: `{"days": []}`})

	rec, body := doJSON(t, srv, srv.generatePlanHandler, `{"goal":"muscle_gain"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Invalid meal plan structure", body["error"])
}

func TestChatMissingMessage(t *testing.T) {
	srv := newTestServer(&stubTextGen{})

	rec, body := doJSON(t, srv, srv.chatHandler, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Message is required", body["error"])
}

func TestChatSuccess(t *testing.T) {
	srv := newTestServer(&stubTextGen{text: "Ăn phở gà nhé!"})

	rec, body := doJSON(t, srv, srv.chatHandler, `{"message":"sáng ăn gì?","userContext":{"weight":70}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Ăn phở gà nhé!", body["response"])
}
