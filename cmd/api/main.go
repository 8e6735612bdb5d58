package main

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"ats-screener-backend/internal/extract"
	"ats-screener-backend/internal/llm/gemini"
	"ats-screener-backend/internal/results"
	"ats-screener-backend/internal/services/health"
	"ats-screener-backend/internal/shared/config"
	"ats-screener-backend/internal/shared/server"
	"ats-screener-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	var sqlDB *sql.DB
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			if !cfg.IsDevLike() {
				log.Fatalf("database connect: %v", err)
			}
			log.Printf("database connect failed, falling back to memory: %v", err)
		} else if err := db.RunMigrations(ctx, conn); err != nil {
			if !cfg.IsDevLike() {
				log.Fatalf("run migrations: %v", err)
			}
			log.Printf("migrations failed, falling back to memory: %v", err)
			conn.Close()
			conn = nil
		}
		sqlDB = conn
	}

	var repo results.Repo
	if sqlDB != nil {
		repo = &results.PGRepo{DB: sqlDB}
	} else {
		log.Printf("using in-memory result store")
		repo = results.NewMemoryRepo()
	}

	client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("llm client: %v", err)
	}

	svc := &results.Service{
		Repo:      repo,
		Extractor: extract.New(),
		LLM:       client,
	}
	router := server.NewRouter(cfg, server.Deps{
		Results: results.NewHandler(svc),
		Health:  health.NewService(sqlDB),
	})

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
