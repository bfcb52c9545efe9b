// Package httpapi exposes the service over HTTP/JSON: a chi router with
// request-id, CORS, and bearer-token middleware in front of the auth, book,
// and category handlers.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mkravets/bookshelf/internal/logging"
	"github.com/mkravets/bookshelf/internal/server/models"
)

// UserService is the authentication surface the handlers need.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Authorize(ctx context.Context, token string) (*models.User, error)
}

// BookService is the book CRUD surface the handlers need.
type BookService interface {
	List(ctx context.Context) ([]*models.Book, error)
	Get(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, title string) (*models.Book, error)
	Update(ctx context.Context, id int64, title string) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryService is the category CRUD surface the handlers need.
type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, name, description string) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type Server struct {
	address    string
	logger     logging.Logger
	users      UserService
	books      BookService
	categories CategoryService
	corsOrigin string
}

func NewServer(a string, l logging.Logger, us UserService, bs BookService, cs CategoryService, corsOrigin string) (*Server, error) {
	return &Server{
		address:    a,
		logger:     l.With("module", "http_server"),
		users:      us,
		books:      bs,
		categories: cs,
		corsOrigin: corsOrigin,
	}, nil
}

// Router assembles the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	var origins []string
	for _, p := range strings.Split(s.corsOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(s.requestIDMiddleware)

	r.Post("/auth/signup", s.handleSignup)
	r.Post("/auth/token", s.handleToken)

	r.Group(func(r chi.Router) {
		r.Use(s.accessTokenMiddleware)

		r.Get("/auth/me", s.handleMe)

		r.Get("/books", s.handleListBooks)
		r.Post("/books", s.handleCreateBook)
		r.Get("/books/{id}", s.handleGetBook)
		r.Put("/books/{id}", s.handleUpdateBook)
		r.Delete("/books/{id}", s.handleDeleteBook)

		r.Get("/categories", s.handleListCategories)
		r.Post("/categories", s.handleCreateCategory)
		r.Get("/categories/{id}", s.handleGetCategory)
		r.Delete("/categories/{id}", s.handleDeleteCategory)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
