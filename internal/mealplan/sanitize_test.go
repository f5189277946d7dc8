package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"days\": []}\n```", `{"days": []}`},
		{"bare fence", "```\n{\"days\": []}\n```", `{"days": []}`},
		{"no fence", `{"days": []}`, `{"days": []}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"fence without closing", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
		{"prose untouched", "Sorry, I cannot do that.", "Sorry, I cannot do that."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFence(tc.in))
		})
	}
}

func TestStripCodeFenceIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"days\": [1]}\n```",
		`{"days": [1]}`,
		"plain text",
	}
	for _, in := range inputs {
		once := StripCodeFence(in)
		assert.Equal(t, once, StripCodeFence(once))
	}
}
