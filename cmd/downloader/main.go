package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gen-git-26/FinSight/internal/archive"
	"github.com/gen-git-26/FinSight/internal/config"
	"github.com/gen-git-26/FinSight/internal/download"
	"github.com/gen-git-26/FinSight/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	fromFlag := flag.String("from", "", "start date (YYYY-MM-DD)")
	toFlag := flag.String("to", "", "end date (YYYY-MM-DD), defaults to now")

	flag.Parse()

	if *fromFlag == "" {
		log.Fatal("from date is required")
	}

	from, err := time.Parse("2006-01-02", *fromFlag)
	if err != nil {
		log.Fatalf("invalid from date: %v", err)
	}

	to := time.Now().UTC()
	if *toFlag != "" {
		to, err = time.Parse("2006-01-02", *toFlag)
		if err != nil {
			log.Fatalf("invalid to date: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	store, err := archive.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("error opening archive directory: %v", err)
	}

	client := news.NewAlpacaClient(cfg.APIKeyID, cfg.APISecretKey)

	path, err := download.New(client, store).Run(from, to)
	if err != nil {
		log.Fatalf("error downloading news: %v", err)
	}

	slog.Info("download complete", "path", path)
}
