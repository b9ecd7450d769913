package books

import (
	"context"
	"sort"
	"sync"

	"favlib-backend/internal/models"
	"favlib-backend/internal/repositories/users"
)

// InMemoryRepository is a slice-backed book store for tests. Owner usernames
// are resolved through the given credential store, mirroring the SQL join.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users users.Repository
	books []models.Book
}

// NewInMemoryRepository creates an empty in-memory book store
func NewInMemoryRepository(users users.Repository) *InMemoryRepository {
	return &InMemoryRepository{users: users}
}

func (r *InMemoryRepository) Create(_ context.Context, book *models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = append(r.books, *book)
	return nil
}

func (r *InMemoryRepository) ListNewestFirst(ctx context.Context) ([]models.BookWithOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Walk in reverse insertion order so creation-time ties still come back
	// newest first after the stable sort.
	out := make([]models.BookWithOwner, 0, len(r.books))
	for i := len(r.books) - 1; i >= 0; i-- {
		b := r.books[i]
		owner, err := r.users.GetByID(ctx, b.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.BookWithOwner{Book: b, OwnerUsername: owner.Username})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
