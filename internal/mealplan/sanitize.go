package mealplan

import "strings"

// StripCodeFence removes the markdown fence a model sometimes wraps
// around its JSON output, with or without a language tag. Input that
// carries no opening fence is returned unchanged apart from whitespace
// trimming, so the function is idempotent.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)

	rest, fenced := strings.CutPrefix(s, "```json")
	if !fenced {
		rest, fenced = strings.CutPrefix(s, "```")
	}
	if !fenced {
		return s
	}

	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "```")
	return strings.TrimSpace(rest)
}
