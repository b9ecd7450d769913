package models

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a book submitted to the shared list. Image holds the
// hosted cover URL, never the raw upload payload.
type Book struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Image     string    `json:"image" db:"image"`
	Title     string    `json:"title" db:"title"`
	Subtitle  string    `json:"subtitle" db:"subtitle"`
	Author    string    `json:"author" db:"author"`
	Link      string    `json:"link" db:"link"`
	Review    string    `json:"review" db:"review"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BookWithOwner annotates a book with its owner's username for listings.
type BookWithOwner struct {
	Book
	OwnerUsername string
}
