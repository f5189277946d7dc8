package database

import "github.com/jackc/pgx/v5/pgxpool"

// Queries groups every SQL query against the application schema.
type Queries struct {
	db *pgxpool.Pool
}

// New wraps a connection pool in the query layer.
func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}
