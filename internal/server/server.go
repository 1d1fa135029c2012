package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tariquek-git/CommonJobs/internal/ai"
	"github.com/tariquek-git/CommonJobs/internal/config"
	"github.com/tariquek-git/CommonJobs/internal/dedup"
	"github.com/tariquek-git/CommonJobs/internal/storage"
)

// Server wires configuration and storage into the HTTP surface.
type Server struct {
	cfg    *config.Config
	stores *storage.Bundle
	ai     *ai.Service
	dedup  *dedup.Deduper
}

// New constructs a Server over an already-opened storage bundle.
func New(cfg *config.Config, stores *storage.Bundle) *Server {
	return &Server{
		cfg:    cfg,
		stores: stores,
		ai:     ai.NewService(cfg.OpenAIKey, cfg.OpenAIModel),
		dedup:  dedup.New(cfg.ClickDedupWindow),
	}
}

// HTTPServer builds the http.Server ready to listen.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
