package database

import "context"

const foodColumns = `food_id, name, category, calories, protein_g, carbs_g, fat_g,
	portion, description, ingredients, recipe`

func scanFood(row interface{ Scan(dest ...any) error }) (Food, error) {
	var f Food
	err := row.Scan(&f.FoodID, &f.Name, &f.Category, &f.Calories, &f.ProteinG,
		&f.CarbsG, &f.FatG, &f.Portion, &f.Description, &f.Ingredients, &f.Recipe)
	return f, err
}

func (q *Queries) collectFoods(ctx context.Context, query string, args ...any) ([]Food, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// ListFoods returns the whole catalog ordered by name.
func (q *Queries) ListFoods(ctx context.Context) ([]Food, error) {
	return q.collectFoods(ctx,
		`SELECT `+foodColumns+` FROM foods ORDER BY name`)
}

// ListFoodsByCategory returns the catalog entries of one category.
func (q *Queries) ListFoodsByCategory(ctx context.Context, category string) ([]Food, error) {
	return q.collectFoods(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE category = $1 ORDER BY name`, category)
}

// SearchFoods matches names case-insensitively on a substring.
func (q *Queries) SearchFoods(ctx context.Context, term string) ([]Food, error) {
	return q.collectFoods(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE name ILIKE '%' || $1 || '%' ORDER BY name`, term)
}

// CountFoods reports the catalog size, used to keep seeding idempotent.
func (q *Queries) CountFoods(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, `SELECT count(*) FROM foods`).Scan(&n)
	return n, err
}

// InsertFoodParams carries one catalog entry.
type InsertFoodParams struct {
	Name        string
	Category    string
	Calories    float64
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	Portion     string
	Description *string
	Ingredients []string
	Recipe      []string
}

// InsertFood adds a catalog entry; duplicates by name are ignored.
func (q *Queries) InsertFood(ctx context.Context, arg InsertFoodParams) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO foods
		   (name, category, calories, protein_g, carbs_g, fat_g, portion,
		    description, ingredients, recipe)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (name) DO NOTHING`,
		arg.Name, arg.Category, arg.Calories, arg.ProteinG, arg.CarbsG, arg.FatG,
		arg.Portion, arg.Description, arg.Ingredients, arg.Recipe)
	return err
}
