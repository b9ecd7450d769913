package handlers

import (
	"net/http"
	"time"

	"favlib-backend/internal/apperr"
	"favlib-backend/internal/config"
	"favlib-backend/internal/dto"
	"favlib-backend/internal/middleware"
	"favlib-backend/internal/models"
	"favlib-backend/internal/services"
	"favlib-backend/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	auth *services.AuthService
	cfg  *config.Config
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

func userToDTO(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a new account and start a session
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "User registration data"
// @Success 200 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate username/email"
// @Router /api/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SignupRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	user, token, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, apperr.Message(err))
		return
	}

	middleware.SetSessionCookie(w, token, h.cfg)
	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		User:    userToDTO(user),
		Message: "User created successfully.",
	})
}

// Login handles user login
// @Summary Log in
// @Description Verify credentials and start a session
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Logged in successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, apperr.Message(err))
		return
	}

	middleware.SetSessionCookie(w, token, h.cfg)
	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		User:    userToDTO(user),
		Message: "Logged in successfully.",
	})
}

// FetchUser returns the user behind the current session
// @Summary Fetch the current user
// @Description Resolve the session cookie to the logged-in user
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.FetchUserResponse "Current user, sans password"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 400 {object} dto.ErrorResponse "User not found"
// @Router /api/fetch-user [get]
func (h *AuthHandler) FetchUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Set by RequireSession
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	user, err := h.auth.ResolveUser(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, apperr.Message(err))
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.FetchUserResponse{User: userToDTO(user)})
}

// Logout ends the session client-side by expiring the cookie
// @Summary Log out
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.MessageResponse "Logged out successfully"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	middleware.ClearSessionCookie(w, h.cfg)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logged out successfully."})
}
