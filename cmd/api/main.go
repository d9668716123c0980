package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gen-git-26/FinSight/internal/archive"
	"github.com/gen-git-26/FinSight/internal/config"
	"github.com/gen-git-26/FinSight/internal/handler"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := archive.New(config.DataDirFromEnv())
	if err != nil {
		log.Fatalf("error opening archive directory: %v", err)
	}

	archiveHandler := handler.NewArchiveHandler(store)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/archives", archiveHandler.GetArchives)
	r.GET("/archives/:name", archiveHandler.GetArchive)
	r.GET("/health", archiveHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
