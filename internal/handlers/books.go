package handlers

import (
	"net/http"
	"time"

	"favlib-backend/internal/apperr"
	"favlib-backend/internal/dto"
	"favlib-backend/internal/models"
	"favlib-backend/internal/services"
	"favlib-backend/internal/utils"
)

// BooksHandler manages book-related endpoints
type BooksHandler struct {
	books *services.BookService
}

// NewBooksHandler creates a new BooksHandler instance
func NewBooksHandler(books *services.BookService) *BooksHandler {
	return &BooksHandler{books: books}
}

// AddBook handles POST /api/add-book
// @Summary Add a book
// @Description Upload the cover image and add the book to the shared list
// @Tags books
// @Accept json
// @Produce json
// @Param request body dto.AddBookRequest true "Book payload; image is a data URI or remote URL"
// @Success 200 {object} dto.AddBookResponse "Book added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or upload failure"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /api/add-book [post]
func (h *BooksHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Set by RequireSession
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	var req dto.AddBookRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	book, owner, err := h.books.AddBook(r.Context(), userID, services.AddBookInput{
		Image:    req.Image,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Author:   req.Author,
		Link:     req.Link,
		Review:   req.Review,
	})
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, apperr.Message(err))
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AddBookResponse{
		Book:    bookToDTO(book, owner.Username),
		Message: "Book added successfully.",
	})
}

// FetchBooks handles GET /api/fetch-books
// @Summary List all books
// @Description All books, newest first, each with the owner's username
// @Tags books
// @Produce json
// @Success 200 {object} dto.BookListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/fetch-books [get]
func (h *BooksHandler) FetchBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := h.books.ListBooks(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, apperr.Message(err))
		return
	}

	resp := dto.BookListResponse{Books: make([]dto.BookResponse, 0, len(list))}
	for i := range list {
		resp.Books = append(resp.Books, bookToDTO(&list[i].Book, list[i].OwnerUsername))
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

func bookToDTO(book *models.Book, ownerUsername string) dto.BookResponse {
	return dto.BookResponse{
		ID:        book.ID.String(),
		Image:     book.Image,
		Title:     book.Title,
		Subtitle:  book.Subtitle,
		Author:    book.Author,
		Link:      book.Link,
		Review:    book.Review,
		User:      dto.OwnerResponse{Username: ownerUsername},
		CreatedAt: book.CreatedAt.Format(time.RFC3339),
	}
}
