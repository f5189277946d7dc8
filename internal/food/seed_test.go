package food

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedFoodsShape(t *testing.T) {
	assert.Len(t, seedFoods, 50)

	perCategory := map[string]int{}
	seen := map[string]bool{}
	for _, f := range seedFoods {
		assert.NotEmpty(t, f.Name)
		assert.True(t, validCategories[f.Category], "unknown category %q for %s", f.Category, f.Name)
		assert.Greater(t, f.Calories, 0.0, f.Name)
		assert.NotEmpty(t, f.Portion, f.Name)
		assert.False(t, seen[f.Name], "duplicate food %s", f.Name)
		seen[f.Name] = true
		perCategory[f.Category]++
	}

	for category, n := range perCategory {
		assert.Equal(t, 10, n, category)
	}
}
