package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/portfolio-dev/portfolio-api/internal/config"
	"github.com/portfolio-dev/portfolio-api/internal/logger"
	"github.com/portfolio-dev/portfolio-api/internal/router"
	"github.com/portfolio-dev/portfolio-api/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	// .env is optional; deployment usually injects the environment directly
	_ = godotenv.Load()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("setting up dependencies", "err", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	port := cfg.Public.HttpPort
	if port == 0 {
		port = 8080
	}

	logger.Log.Info("server started", "port", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), r); err != nil {
		logger.Log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
