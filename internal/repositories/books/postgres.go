package books

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"favlib-backend/internal/models"
)

// PostgresRepository is the PostgreSQL-backed book store
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository instance
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, book *models.Book) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO books (id, image, title, subtitle, author, link, review, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		book.ID, book.Image, book.Title, book.Subtitle, book.Author,
		book.Link, book.Review, book.UserID, book.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListNewestFirst(ctx context.Context) ([]models.BookWithOwner, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.image, b.title, b.subtitle, b.author, b.link, b.review,
		        b.user_id, b.created_at, u.username
		 FROM books b
		 JOIN users u ON u.id = b.user_id
		 ORDER BY b.created_at DESC, b.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.BookWithOwner
	for rows.Next() {
		var b models.BookWithOwner
		if err := rows.Scan(&b.ID, &b.Image, &b.Title, &b.Subtitle, &b.Author,
			&b.Link, &b.Review, &b.UserID, &b.CreatedAt, &b.OwnerUsername); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}
