/*
Package food serves the reference food catalog: listing, category
filtering, cached name search, and the idempotent built-in seed.
*/
package food

import (
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"nutriplan/internal/database"
)

const searchCacheSize = 256

var validCategories = map[string]bool{
	"main":  true,
	"side":  true,
	"snack": true,
	"drink": true,
	"fruit": true,
}

// Handler owns the catalog endpoints. Search results are cached per
// normalized term; the cache resets on seed.
type Handler struct {
	queries     *database.Queries
	searchCache *lru.Cache[string, []database.Food]
}

// NewHandler wires the catalog against storage.
func NewHandler(queries *database.Queries) (*Handler, error) {
	cache, err := lru.New[string, []database.Food](searchCacheSize)
	if err != nil {
		return nil, err
	}
	return &Handler{queries: queries, searchCache: cache}, nil
}

// ListHandler returns the full catalog.
func (h *Handler) ListHandler(c echo.Context) error {
	foods, err := h.queries.ListFoods(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("food list failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load foods"})
	}
	return c.JSON(http.StatusOK, foods)
}

// ByCategoryHandler filters the catalog by one of the fixed categories.
func (h *Handler) ByCategoryHandler(c echo.Context) error {
	category := c.Param("category")
	if !validCategories[category] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Category must be one of: main, side, snack, drink, fruit"})
	}

	foods, err := h.queries.ListFoodsByCategory(c.Request().Context(), category)
	if err != nil {
		log.Error().Err(err).Msg("food category list failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load foods"})
	}
	return c.JSON(http.StatusOK, foods)
}

// SearchHandler looks up foods by case-insensitive name substring.
// Repeated terms hit the in-process cache.
func (h *Handler) SearchHandler(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("q"))
	if term == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query parameter q is required"})
	}

	key := strings.ToLower(term)
	if cached, ok := h.searchCache.Get(key); ok {
		return c.JSON(http.StatusOK, cached)
	}

	foods, err := h.queries.SearchFoods(c.Request().Context(), term)
	if err != nil {
		log.Error().Err(err).Msg("food search failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Search failed"})
	}

	h.searchCache.Add(key, foods)
	return c.JSON(http.StatusOK, foods)
}

// SeedHandler loads the built-in catalog. A non-empty catalog makes it
// a no-op, and name conflicts are skipped, so re-running is safe.
func (h *Handler) SeedHandler(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.queries.CountFoods(ctx)
	if err != nil {
		log.Error().Err(err).Msg("food count failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Seed failed"})
	}
	if count > 0 {
		return c.JSON(http.StatusOK, map[string]any{"message": "Catalog already seeded", "count": count})
	}

	for _, f := range seedFoods {
		if err := h.queries.InsertFood(ctx, f); err != nil {
			log.Error().Err(err).Str("food", f.Name).Msg("food insert failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Seed failed"})
		}
	}

	h.searchCache.Purge()
	return c.JSON(http.StatusCreated, map[string]any{"message": "Catalog seeded", "count": len(seedFoods)})
}
