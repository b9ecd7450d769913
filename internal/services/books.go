package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"favlib-backend/internal/apperr"
	"favlib-backend/internal/models"
	"favlib-backend/internal/repositories/books"
	"favlib-backend/internal/uploader"
)

// AddBookInput carries the fields of an add-book submission
type AddBookInput struct {
	Image    string
	Title    string
	Subtitle string
	Author   string
	Link     string
	Review   string
}

// BookService orchestrates cover upload and book persistence, and lists
// books with their owners' display names.
type BookService struct {
	books    books.Repository
	auth     *AuthService
	uploader uploader.ImageUploader
}

// NewBookService creates a new BookService instance
func NewBookService(repo books.Repository, auth *AuthService, up uploader.ImageUploader) *BookService {
	return &BookService{books: repo, auth: auth, uploader: up}
}

// AddBook uploads the cover, resolves the caller, and persists the book.
// Required fields are checked before the upload call so a bad submission
// never costs a round-trip to the image host. Upload and persistence are
// not transactional: a failed insert after a successful upload leaves an
// orphaned hosted image, which is logged for out-of-band cleanup.
func (s *BookService) AddBook(ctx context.Context, callerID uuid.UUID, in AddBookInput) (*models.Book, *models.User, error) {
	if callerID == uuid.Nil {
		return nil, nil, apperr.New(apperr.Auth, "No token provided.")
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	if in.Image == "" || in.Title == "" || in.Author == "" {
		return nil, nil, apperr.New(apperr.Validation, "Image, title, and author are required.")
	}

	imageURL, err := s.uploader.Upload(ctx, in.Image)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.Upload, "Failed to upload image.", err)
	}

	owner, err := s.auth.ResolveUser(ctx, callerID)
	if err != nil {
		return nil, nil, err
	}

	book := &models.Book{
		ID:        uuid.New(),
		Image:     imageURL,
		Title:     in.Title,
		Subtitle:  strings.TrimSpace(in.Subtitle),
		Author:    in.Author,
		Link:      strings.TrimSpace(in.Link),
		Review:    in.Review,
		UserID:    owner.ID,
		CreatedAt: time.Now(),
	}

	if err := s.books.Create(ctx, book); err != nil {
		log.Printf("WARNING: orphaned hosted image %s after failed insert: %v", imageURL, err)
		return nil, nil, apperr.Wrap(apperr.Internal, "Failed to add book.", err)
	}

	return book, owner, nil
}

// ListBooks returns every book, newest first, annotated with the owner's
// username only
func (s *BookService) ListBooks(ctx context.Context) ([]models.BookWithOwner, error) {
	list, err := s.books.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch books.", err)
	}
	return list, nil
}
