package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"packtrack/cmd"
	"packtrack/internal/adapters/out/memory"
)

func main() {
	configs := getConfigs()

	snapshot, err := cmd.LoadSnapshot(configs.SnapshotPath)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	app := cmd.NewCompositionRoot(configs, memory.NewStore(snapshot), logger)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded, using environment: %v", err)
	}

	return cmd.Config{
		HTTPPort:             envOr("HTTP_PORT", "8080"),
		TestMode:             os.Getenv("TEST_MODE") == "true",
		SnapshotPath:         os.Getenv("SNAPSHOT_PATH"),
		LabelRefreshSchedule: envOr("LABEL_REFRESH_SCHEDULE", "*/30 * * * * *"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
