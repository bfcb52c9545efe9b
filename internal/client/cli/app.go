// Package cli implements the interactive terminal client: a small REPL over
// the backend HTTP API with prompts for credentials and book data.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mkravets/bookshelf/internal/client/api"
	"github.com/mkravets/bookshelf/internal/client/config"
)

type App struct {
	config   *config.Config
	client   *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		client: api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.client.Authorized()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Bookshelf CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
