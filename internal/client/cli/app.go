// Package cli implements the interactive command-line client.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/akondrashov/stash/internal/client/api"
	"github.com/akondrashov/stash/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client
	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.IsLoggedIn()
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "logged in"
	}
	return "anonymous"
}
