package main

import (
	"log"

	"github.com/akondrashov/stash/internal/server"
	"github.com/akondrashov/stash/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
