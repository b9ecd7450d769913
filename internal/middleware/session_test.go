package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"favlib-backend/internal/apperr"
	"favlib-backend/internal/config"
	"favlib-backend/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", TokenTTL: 7 * 24 * time.Hour}
}

// signAgedToken signs a token as if it had been issued `age` ago with the
// configured 7-day TTL.
func signAgedToken(t *testing.T, cfg *config.JWTConfig, userID uuid.UUID, age time.Duration) string {
	t.Helper()

	issued := time.Now().Add(-age)
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	tok, err := GenerateToken(userID, cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ValidateToken(tok, cfg)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: got %s want %s", claims.UserID, userID)
	}
}

func TestValidateToken_SevenDayWindow(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	// issued 6 days ago: still inside the 7-day window
	tok := signAgedToken(t, cfg, userID, 6*24*time.Hour)
	if _, err := ValidateToken(tok, cfg); err != nil {
		t.Fatalf("token at T+6d should be valid, got %v", err)
	}

	// issued 8 days ago: expired
	tok = signAgedToken(t, cfg, userID, 8*24*time.Hour)
	if _, err := ValidateToken(tok, cfg); err == nil {
		t.Fatal("token at T+8d should be invalid")
	}
}

func TestValidateToken_Rejections(t *testing.T) {
	cfg := testJWTConfig()

	cases := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"malformed", "not.a.jwt"},
		{"wrong secret", func() string {
			other := &config.JWTConfig{Secret: "other-secret", TokenTTL: time.Hour}
			tok, _ := GenerateToken(uuid.New(), other)
			return tok
		}()},
		{"unsigned", func() string {
			claims := SessionClaims{UserID: uuid.New(), RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}}
			tok, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
			return tok
		}()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateToken(tc.token, cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if apperr.KindOf(err) != apperr.Auth {
				t.Fatalf("expected auth error, got %v", err)
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	var gotID uuid.UUID
	var called bool
	handler := RequireSession(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}, cfg)

	// no cookie
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/fetch-user", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no cookie: expected 401, got %d", w.Code)
	}
	if called {
		t.Fatal("handler must not run without a token")
	}

	// garbage cookie
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/fetch-user", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	handler(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad cookie: expected 401, got %d", w.Code)
	}

	// valid cookie
	tok, err := GenerateToken(userID, cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/fetch-user", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok})
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid cookie: expected 200, got %d", w.Code)
	}
	if gotID != userID {
		t.Fatalf("context user id mismatch: got %s want %s", gotID, userID)
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	cfg := &config.Config{
		JWT:    config.JWTConfig{Secret: "s", TokenTTL: 7 * 24 * time.Hour},
		Cookie: config.CookieConfig{Secure: true},
	}

	w := httptest.NewRecorder()
	SetSessionCookie(w, "tok", cfg)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != "tok" {
		t.Fatalf("unexpected cookie %q=%q", c.Name, c.Value)
	}
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be HttpOnly, Secure, SameSite=Strict: %+v", c)
	}
	if c.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Fatalf("cookie MaxAge mismatch: %d", c.MaxAge)
	}

	w = httptest.NewRecorder()
	ClearSessionCookie(w, cfg)
	c = w.Result().Cookies()[0]
	if c.MaxAge >= 0 {
		t.Fatalf("clearing must expire the cookie, MaxAge=%d", c.MaxAge)
	}
}
