// Command api runs the job board HTTP server.
package main

import (
	"log"

	"github.com/tariquek-git/CommonJobs/internal/config"
	"github.com/tariquek-git/CommonJobs/internal/server"
	"github.com/tariquek-git/CommonJobs/internal/storage"
)

// @title CommonJobs API
// @version 1.0
// @description Community job board: public feed, moderated submissions and click tracking.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}

	stores, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("Storage failed to initialize: %s", err)
	}

	srv := server.New(cfg, stores).HTTPServer()
	log.Printf("Listening on %s (env=%s)", srv.Addr, cfg.Env)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %s", err)
	}
}
