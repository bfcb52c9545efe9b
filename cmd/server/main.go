package main

import (
	"log"

	"github.com/mkravets/bookshelf/internal/server"
	"github.com/mkravets/bookshelf/internal/server/config"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app, err := server.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run()

}
