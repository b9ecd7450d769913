// Package client is the API client with the shared UI state: the current
// user, the book list, in-flight flags, and the last error message. State
// changes only through the declared operations; the session credential
// lives in the cookie jar, so a restarted flow can restore the session with
// FetchCurrentUser instead of re-entering credentials.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"favlib-backend/internal/dto"
)

// Store holds client-side state and issues the HTTP calls that mutate it.
// It does not guard against rapid duplicate submissions; the UI is expected
// to disable triggers while Loading is set.
type Store struct {
	baseURL string
	httpc   *http.Client

	mu           sync.Mutex
	user         *dto.UserResponse
	books        []dto.BookResponse
	loading      bool
	fetchingUser bool
	lastError    string
}

// New creates a Store talking to the API at baseURL
func New(baseURL string) (*Store, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Signup registers a new account and stores the created user
func (s *Store) Signup(ctx context.Context, username, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	var resp dto.AuthResponse
	err := s.doJSON(ctx, http.MethodPost, "/api/signup", dto.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		s.fail(err)
		return err
	}

	s.setUser(&resp.User)
	return nil
}

// Login authenticates and stores the logged-in user
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	var resp dto.AuthResponse
	err := s.doJSON(ctx, http.MethodPost, "/api/login", dto.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		s.fail(err)
		return err
	}

	s.setUser(&resp.User)
	return nil
}

// FetchCurrentUser restores the session from the jarred cookie. Meant to
// run once at application start.
func (s *Store) FetchCurrentUser(ctx context.Context) error {
	s.mu.Lock()
	s.fetchingUser = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.fetchingUser = false
		s.mu.Unlock()
	}()

	var resp dto.FetchUserResponse
	if err := s.doJSON(ctx, http.MethodGet, "/api/fetch-user", nil, &resp); err != nil {
		s.fail(err)
		return err
	}

	s.setUser(&resp.User)
	return nil
}

// Logout ends the session and resets the stored user
func (s *Store) Logout(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	var resp dto.MessageResponse
	if err := s.doJSON(ctx, http.MethodPost, "/api/logout", nil, &resp); err != nil {
		s.fail(err)
		return err
	}

	s.setUser(nil)
	return nil
}

// AddBook submits a book and returns the created record
func (s *Store) AddBook(ctx context.Context, req dto.AddBookRequest) (*dto.BookResponse, error) {
	var resp dto.AddBookResponse
	if err := s.doJSON(ctx, http.MethodPost, "/api/add-book", req, &resp); err != nil {
		s.fail(err)
		return nil, err
	}
	return &resp.Book, nil
}

// FetchBooks loads the shared list, newest first, and caches it
func (s *Store) FetchBooks(ctx context.Context) ([]dto.BookResponse, error) {
	var resp dto.BookListResponse
	if err := s.doJSON(ctx, http.MethodGet, "/api/fetch-books", nil, &resp); err != nil {
		s.fail(err)
		return nil, err
	}

	s.mu.Lock()
	s.books = resp.Books
	s.mu.Unlock()
	return resp.Books, nil
}

// CurrentUser returns the stored user, or nil when logged out
func (s *Store) CurrentUser() *dto.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Books returns the last fetched book list
func (s *Store) Books() []dto.BookResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.books
}

// Loading reports whether an auth operation is in flight
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// FetchingUser reports whether the initial session restore is in flight
func (s *Store) FetchingUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchingUser
}

// LastError returns the message of the most recent failure
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	if v {
		s.lastError = ""
	}
	s.mu.Unlock()
}

func (s *Store) setUser(u *dto.UserResponse) {
	s.mu.Lock()
	s.user = u
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}

// doJSON issues a JSON request and decodes the response. Non-2xx responses
// come back as an error carrying the server's message.
func (s *Store) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp dto.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return errors.New(errResp.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
