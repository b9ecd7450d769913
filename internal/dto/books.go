package dto

// AddBookRequest represents the request payload for adding a book. Image is
// the upload payload (data URI or remote URL) handed to the image host.
type AddBookRequest struct {
	Image    string `json:"image" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author" validate:"required"`
	Link     string `json:"link"`
	Review   string `json:"review"`
}

// OwnerResponse exposes the owner's username and nothing else
type OwnerResponse struct {
	Username string `json:"username"`
}

// BookResponse represents a book in API responses
type BookResponse struct {
	ID        string        `json:"id"`
	Image     string        `json:"image"`
	Title     string        `json:"title"`
	Subtitle  string        `json:"subtitle"`
	Author    string        `json:"author"`
	Link      string        `json:"link"`
	Review    string        `json:"review"`
	User      OwnerResponse `json:"user"`
	CreatedAt string        `json:"created_at"`
}

// AddBookResponse represents the response after a successful add-book
type AddBookResponse struct {
	Book    BookResponse `json:"book"`
	Message string       `json:"message"`
}

// BookListResponse represents the fetch-books response, newest first
type BookListResponse struct {
	Books []BookResponse `json:"books"`
}
