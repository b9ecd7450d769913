package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"favlib-backend/internal/apperr"
	"favlib-backend/internal/config"
	"favlib-backend/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "token"

// SessionClaims represents the claims in the session token
type SessionClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the given user, valid for the
// configured TTL (7 days by default)
func GenerateToken(userID uuid.UUID, cfg *config.JWTConfig) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken verifies signature and expiry and returns the claims.
// Missing, malformed, badly signed, and expired tokens all come back as an
// auth error; validity depends on nothing server-side.
func ValidateToken(tokenString string, cfg *config.JWTConfig) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, apperr.New(apperr.Auth, "No token provided.")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Auth, "Invalid token", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperr.New(apperr.Auth, "Invalid token")
}

// SetSessionCookie attaches the session token as an HTTP-only cookie
func SetSessionCookie(w http.ResponseWriter, token string, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   cfg.Cookie.Secure,
		MaxAge:   int(cfg.JWT.TokenTTL.Seconds()),
	})
}

// ClearSessionCookie expires the session cookie; the token itself stays
// valid until its expiry, there is no server-side revocation
func ClearSessionCookie(w http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   cfg.Cookie.Secure,
		MaxAge:   -1,
	})
}

// RequireSession verifies the session cookie on each request and attaches
// the resolved user id to the request context. Verification is stateless
// and per-request; nothing is cached.
func RequireSession(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "No token provided.")
			return
		}

		claims, err := ValidateToken(cookie.Value, cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, apperr.Message(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), claims.UserID)))
	}
}
