// @title Favlib Backend API
// @version 1.0
// @description Favlib Backend API for the shared personal book library

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"

	_ "favlib-backend/docs" // This is required for swagger
	"favlib-backend/internal/config"
	"favlib-backend/internal/handlers"
	"favlib-backend/internal/migrations"
	"favlib-backend/internal/repositories/books"
	"favlib-backend/internal/repositories/users"
	"favlib-backend/internal/routes"
	"favlib-backend/internal/services"
	"favlib-backend/internal/uploader"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dsn := cfg.GetDSN()

	// pgxpool + simple protocol (required behind PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "favlib-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// Boot-time ping; a dead database aborts startup
	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	// Schema migrations run over database/sql (goose requirement)
	{
		migrationDB, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("migrations: open: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrations.Up(ctx, migrationDB); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		cancel()
		migrationDB.Close()
	}

	// --- Services ---

	imageUploader, err := uploader.NewCloudinaryUploader(&cfg.Cloudinary)
	if err != nil {
		log.Fatalf("cloudinary: %v", err)
	}

	authService := services.NewAuthService(users.NewPostgresRepository(pool), &cfg.JWT)
	bookService := services.NewBookService(books.NewPostgresRepository(pool), authService, imageUploader)

	// --- HTTP Handlers ---

	authHandler := handlers.NewAuthHandler(authService, cfg)
	booksHandler := handlers.NewBooksHandler(bookService)
	healthHandler := handlers.NewHealthHandler(pool)

	mux := routes.SetupRoutes(authHandler, booksHandler, healthHandler, &cfg.JWT)

	// CORS: one configured client origin, cookies enabled
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
