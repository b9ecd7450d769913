package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"favlib-backend/internal/config"
	"favlib-backend/internal/handlers"
	"favlib-backend/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(authHandler *handlers.AuthHandler, booksHandler *handlers.BooksHandler, healthHandler *handlers.HealthHandler, jwtCfg *config.JWTConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check routes
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("/api/signup", authHandler.Signup)
	mux.HandleFunc("/api/login", authHandler.Login)
	mux.HandleFunc("/api/fetch-user", middleware.RequireSession(authHandler.FetchUser, jwtCfg))
	mux.HandleFunc("/api/logout", authHandler.Logout)

	// Book routes
	mux.HandleFunc("/api/add-book", middleware.RequireSession(booksHandler.AddBook, jwtCfg))
	mux.HandleFunc("/api/fetch-books", booksHandler.FetchBooks)

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)

	return mux
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Favlib backend is running."))
}
