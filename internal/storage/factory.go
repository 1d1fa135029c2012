package storage

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tariquek-git/CommonJobs/internal/config"
	"github.com/tariquek-git/CommonJobs/internal/model"
)

// Bundle groups the stores one backend provides.
type Bundle struct {
	Provider string
	Jobs     JobStore
	Clicks   ClickStore
}

// New selects and constructs the storage backend named by the
// configuration. The postgres backend connects and migrates here so a
// misconfigured deployment fails at startup, not on first request.
func New(cfg *config.Config) (*Bundle, error) {
	switch cfg.StorageProvider {
	case config.ProviderPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DBConnStr), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := db.AutoMigrate(model.MigrateAble...); err != nil {
			return nil, fmt.Errorf("migrate tables: %w", err)
		}
		log.Println("storage: using postgres backend")
		return &Bundle{
			Provider: config.ProviderPostgres,
			Jobs:     NewGormJobStore(db),
			Clicks:   NewGormClickStore(db),
		}, nil

	case config.ProviderFile:
		log.Printf("storage: using file backend at %s", cfg.DataFile)
		return &Bundle{
			Provider: config.ProviderFile,
			Jobs:     NewFileJobStore(cfg.DataFile),
			Clicks:   NewFileClickStore(cfg.ClickDataFile),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}
