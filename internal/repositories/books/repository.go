// Package books persists book records, each owned by a user.
package books

import (
	"context"

	"favlib-backend/internal/models"
)

// Repository is the book store. Books are created via the add-book flow and
// read via the listing flow; there is no update or delete.
type Repository interface {
	Create(ctx context.Context, book *models.Book) error
	// ListNewestFirst returns every book ordered by creation time descending,
	// annotated with the owner's username. Full scan; fine at this scale.
	ListNewestFirst(ctx context.Context) ([]models.BookWithOwner, error)
}
