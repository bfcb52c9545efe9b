// Package server initializes and runs the application: it opens the
// database, applies migrations, wires the services, and starts the HTTP
// server with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mkravets/bookshelf/internal/logging"
	"github.com/mkravets/bookshelf/internal/server/auth"
	"github.com/mkravets/bookshelf/internal/server/config"
	"github.com/mkravets/bookshelf/internal/server/httpapi"
	"github.com/mkravets/bookshelf/internal/server/repositories/repomanager"
	"github.com/mkravets/bookshelf/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	bookService     *services.BookService
	categoryService *services.CategoryService
}

func NewApp(c *config.Config) (*App, error) {

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	sl := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := &repomanager.PostgresRepositoryManager{}
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	tokens, err := auth.NewTokenIssuer(c)
	if err != nil {
		return nil, fmt.Errorf("token issuer init error: %w", err)
	}

	us := services.NewUserService(db, rm, auth.NewBcryptHasher(), tokens)
	bs := services.NewBookService(db, rm)
	cs := services.NewCategoryService(db, rm)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		userService:     us,
		bookService:     bs,
		categoryService: cs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.userService, app.bookService, app.categoryService, app.config.CORSOrigin)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run() {

	ctx, cancelFunc := context.WithCancel(context.Background())

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
