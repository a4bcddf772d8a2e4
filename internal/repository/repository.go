package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Repository reads the catalog from Postgres. It satisfies loader.Source.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}
