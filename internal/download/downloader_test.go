package download

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/gen-git-26/FinSight/internal/archive"
	"github.com/gen-git-26/FinSight/pkg/news"
)

type fakePage struct {
	articles  []news.Article
	nextToken string
	err       error
}

// fakeFetcher serves a bounded page sequence and records each token it saw.
type fakeFetcher struct {
	pages  []fakePage
	calls  int
	tokens []string
}

func (f *fakeFetcher) FetchPage(from, to time.Time, pageToken string) ([]news.Article, string, error) {
	f.tokens = append(f.tokens, pageToken)
	if f.calls >= len(f.pages) {
		return nil, "", errors.New("no more pages configured")
	}
	page := f.pages[f.calls]
	f.calls++
	return page.articles, page.nextToken, page.err
}

func article(headline string, hour int) news.Article {
	return news.Article{
		Headline:  headline,
		Summary:   "summary of " + headline,
		Content:   "content of " + headline,
		UpdatedAt: time.Date(2025, 4, 20, hour, 0, 0, 0, time.UTC),
	}
}

func testWindow() (time.Time, time.Time) {
	from := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC)
	return from, to
}

func TestRunSinglePage(t *testing.T) {
	dir := t.TempDir()
	store, err := archive.New(dir)
	assert.Equal(t, nil, err)

	fetcher := &fakeFetcher{pages: []fakePage{
		{articles: []news.Article{article("First", 9), article("Second", 10)}},
	}}

	from, to := testWindow()
	path, err := New(fetcher, store).Run(from, to)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, []string{""}, fetcher.tokens)
	assert.Equal(t, filepath.Join(dir, "news_2025-04-20_2025-04-21.json"), path)

	data, err := os.ReadFile(path)
	assert.Equal(t, nil, err)

	var parsed []map[string]string
	err = json.Unmarshal(data, &parsed)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(parsed))
	assert.Equal(t, "First", parsed[0]["headline"])
	assert.Equal(t, "Second", parsed[1]["headline"])
}

func TestRunMultiPage(t *testing.T) {
	dir := t.TempDir()
	store, err := archive.New(dir)
	assert.Equal(t, nil, err)

	fetcher := &fakeFetcher{pages: []fakePage{
		{articles: []news.Article{article("A", 1), article("B", 2)}, nextToken: "tok-1"},
		{articles: []news.Article{article("C", 3)}, nextToken: "tok-2"},
		{articles: []news.Article{article("D", 4)}},
	}}

	from, to := testWindow()
	path, err := New(fetcher, store).Run(from, to)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, fetcher.calls)
	assert.Equal(t, []string{"", "tok-1", "tok-2"}, fetcher.tokens)

	records, err := store.Read(filepath.Base(path))
	assert.Equal(t, nil, err)
	assert.Equal(t, 4, len(records))
	assert.Equal(t, "A", records[0].Headline)
	assert.Equal(t, "B", records[1].Headline)
	assert.Equal(t, "C", records[2].Headline)
	assert.Equal(t, "D", records[3].Headline)
}

func TestRunEmptyResult(t *testing.T) {
	dir := t.TempDir()
	store, err := archive.New(dir)
	assert.Equal(t, nil, err)

	fetcher := &fakeFetcher{pages: []fakePage{{}}}

	from, to := testWindow()
	path, err := New(fetcher, store).Run(from, to)

	assert.Equal(t, nil, err)

	records, err := store.Read(filepath.Base(path))
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(records))
}

func TestRunAbortsOnPageError(t *testing.T) {
	dir := t.TempDir()
	store, err := archive.New(dir)
	assert.Equal(t, nil, err)

	fetcher := &fakeFetcher{pages: []fakePage{
		{articles: []news.Article{article("A", 1)}, nextToken: "tok-1"},
		{err: errors.New("status 500: upstream down")},
	}}

	from, to := testWindow()
	path, err := New(fetcher, store).Run(from, to)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, "", path)
	assert.Equal(t, 2, fetcher.calls)

	entries, err := os.ReadDir(dir)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(entries))
}

func TestRunFirstPageError(t *testing.T) {
	dir := t.TempDir()
	store, err := archive.New(dir)
	assert.Equal(t, nil, err)

	fetcher := &fakeFetcher{pages: []fakePage{{err: errors.New("status 401: unauthorized")}}}

	from, to := testWindow()
	_, err = New(fetcher, store).Run(from, to)

	assert.NotEqual(t, nil, err)

	entries, err := os.ReadDir(dir)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(entries))
}
