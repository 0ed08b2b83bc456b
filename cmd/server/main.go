package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youruser/hearthdeck/internal/api"
	"github.com/youruser/hearthdeck/internal/cards"
	"github.com/youruser/hearthdeck/internal/config"
)

var cfgFile = flag.String("c", "./config.toml", "config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		slog.Error("[main] loading config failed", "file", *cfgFile, "err", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(config.ParseLevel(cfg.Log.Level))

	client := cards.NewClient(cfg.CardAPI.BaseURL, cfg.CardAPI.Locale, cfg.CardAPI.TimeoutDuration())
	store := cards.NewStore(client, cfg.Cache.TTLDuration())

	// Warm the catalog at startup, best-effort; handlers retry on demand.
	warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Ensure(warmCtx); err != nil {
		slog.Warn("[main] catalog warm-up failed, continuing", "err", err)
	}
	cancel()

	r := gin.Default()
	api.NewServer(store).Register(r)

	port := strconv.Itoa(cfg.Server.Port)
	if env := os.Getenv("PORT"); env != "" {
		port = env
	}
	slog.Info("[main] server started", "port", port, "config-file", *cfgFile)
	if err := r.Run(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("[main] server exited", "err", err)
		os.Exit(1)
	}
}
