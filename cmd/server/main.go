package main

import (
	"log"

	"github.com/victoriaclean/backend/internal/config"
	"github.com/victoriaclean/backend/internal/db"
	"github.com/victoriaclean/backend/internal/handler"
	"github.com/victoriaclean/backend/internal/router"
	"github.com/victoriaclean/backend/internal/storage"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := db.EnsureAdmin(gdb, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("failed to ensure admin account: %v", err)
		}
	}

	backend, resolver, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	api := handler.NewAPI(cfg, gdb, backend, resolver)
	r := router.Setup(cfg, api)

	log.Printf("listening on %s (storage: %s)", cfg.ListenAddr, cfg.StorageDriver)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

// buildStorage wires the configured asset backend together with the URL
// resolver that matches how its objects are exposed.
func buildStorage(cfg config.AppConfig) (storage.Backend, *storage.Resolver, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMinio:
		backend, err := storage.NewMinioBackend(cfg.StorageEndpoint, cfg.StorageAccessKey,
			cfg.StorageSecretKey, cfg.StorageBucket, cfg.StorageUseSSL, cfg.MaxUploadBytes)
		if err != nil {
			return nil, nil, err
		}
		return backend, storage.NewResolver(cfg.StoragePublicBase, ""), nil
	default:
		backend := storage.NewLocalBackend(cfg.UploadDir, cfg.MaxUploadBytes)
		return backend, storage.NewResolver(cfg.BaseURL, cfg.UploadURLPath), nil
	}
}
