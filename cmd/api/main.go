package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/arjunsachdev/regretly/internal/config"
	"github.com/arjunsachdev/regretly/internal/database"
	regretlyHttp "github.com/arjunsachdev/regretly/internal/http"
	exportHandler "github.com/arjunsachdev/regretly/internal/http/export"
	"github.com/arjunsachdev/regretly/internal/http/importcsv"
	reportHandler "github.com/arjunsachdev/regretly/internal/http/report"
	settingsHandler "github.com/arjunsachdev/regretly/internal/http/settings"
	spendHandler "github.com/arjunsachdev/regretly/internal/http/spend"
	"github.com/arjunsachdev/regretly/internal/settings"
	"github.com/arjunsachdev/regretly/internal/spend"
	spendStore "github.com/arjunsachdev/regretly/internal/spend/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	settingsPath := cfg.Settings.Path
	if settingsPath == "" {
		settingsPath = settings.DefaultPath()
	}

	settingsStore, err := settings.Open(settingsPath)
	if err != nil {
		slog.Error("failed to open settings", "error", err)
		os.Exit(1)
	}

	sessions := spend.NewSessions(spendStore.New(db), settingsStore)

	var (
		spendsH   = spendHandler.NewHandler(sessions)
		reportH   = reportHandler.NewHandler(sessions)
		settingsH = settingsHandler.NewHandler(settingsStore)
		importH   = importcsv.NewHandler(sessions)
		exportH   = exportHandler.NewHandler(sessions)
	)

	router := regretlyHttp.New(spendsH, reportH, settingsH, importH, exportH, []byte(cfg.Auth.JWTSecret))

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
