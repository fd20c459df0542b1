package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"librify/internal/models"
)

type CatalogRepo struct {
	db *DB
}

func NewCatalogRepo(db *DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListBookTitles(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT COALESCE(title,'') FROM books`)
	if err != nil {
		return nil, fmt.Errorf("list book titles: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan book title: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book titles: %w", err)
	}
	return out, nil
}

// GetBookStock is an exact-title lookup. A title with no catalog row reports
// zero stock rather than an error.
func (r *CatalogRepo) GetBookStock(ctx context.Context, title string) (int, error) {
	var stock int
	err := r.db.Pool.QueryRow(ctx, `SELECT COALESCE(stock,0) FROM books WHERE title=$1 LIMIT 1`, title).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get book stock: %w", err)
	}
	return stock, nil
}

func (r *CatalogRepo) GetBookByID(ctx context.Context, bookID string) (models.Book, error) {
	var b models.Book
	err := r.db.Pool.QueryRow(ctx, `
SELECT book_id::text, COALESCE(title,''), COALESCE(author,''), COALESCE(stock,0), created_at
FROM books
WHERE book_id=$1`, bookID).
		Scan(&b.BookID, &b.Title, &b.Author, &b.Stock, &b.CreatedAt)
	if err != nil {
		return models.Book{}, fmt.Errorf("get book by id: %w", err)
	}
	return b, nil
}
