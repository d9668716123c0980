package download

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gen-git-26/FinSight/internal/archive"
	"github.com/gen-git-26/FinSight/pkg/news"
)

// Downloader drains every page of the news endpoint for a date range and
// persists the full result set as one archive file.
type Downloader struct {
	fetcher news.PageFetcher
	store   *archive.Store
}

func New(fetcher news.PageFetcher, store *archive.Store) *Downloader {
	return &Downloader{fetcher: fetcher, store: store}
}

// Run fetches all pages between from and to, then writes them to a single
// file and returns its path. Any page failure aborts the whole run; nothing
// is written until every page has been fetched.
func (d *Downloader) Run(from, to time.Time) (string, error) {
	slog.Info("downloading historical news", "from", from.Format("2006-01-02"), "to", to.Format("2006-01-02"))

	articles, pageToken, err := d.fetcher.FetchPage(from, to, "")
	if err != nil {
		return "", fmt.Errorf("fetch first page: %w", err)
	}
	slog.Info("fetched page", "articles", len(articles), "next_page_token", pageToken)

	for pageToken != "" {
		batch, next, err := d.fetcher.FetchPage(from, to, pageToken)
		if err != nil {
			return "", fmt.Errorf("fetch page: %w", err)
		}

		articles = append(articles, batch...)
		pageToken = next
		slog.Info("fetched page", "articles", len(batch), "total", len(articles), "next_page_token", pageToken)
	}

	path, err := d.store.Write(from, to, articles)
	if err != nil {
		return "", fmt.Errorf("persist articles: %w", err)
	}

	slog.Info("news archive written", "path", path, "articles", len(articles))
	return path, nil
}
