package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gen-git-26/FinSight/pkg/news"
)

// Record is one article as stored on disk.
type Record struct {
	Headline string `json:"headline"`
	Date     string `json:"date"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}

// Info describes one archive file on disk.
type Info struct {
	Name      string
	Articles  int
	SizeBytes int64
}

// Store writes and reads news archive files under a single directory.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Write serializes the articles into a single pretty-printed JSON array named
// after the date range and returns the file path. Identical input yields
// byte-identical output.
func (s *Store) Write(from, to time.Time, articles []news.Article) (string, error) {
	records := make([]Record, 0, len(articles))
	for _, a := range articles {
		records = append(records, Record{
			Headline: a.Headline,
			Date:     a.UpdatedAt.UTC().Format(time.RFC3339),
			Summary:  a.Summary,
			Content:  a.Content,
		})
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode archive: %w", err)
	}

	name := fmt.Sprintf("news_%s_%s.json", from.UTC().Format("2006-01-02"), to.UTC().Format("2006-01-02"))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}

	return path, nil
}

// List returns the archive files currently on disk, sorted by name.
func (s *Store) List() ([]Info, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "news_*.json"))
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}

	infos := make([]Info, 0, len(matches))
	for _, path := range matches {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat archive: %w", err)
		}

		records, err := s.Read(filepath.Base(path))
		if err != nil {
			return nil, err
		}

		infos = append(infos, Info{
			Name:      filepath.Base(path),
			Articles:  len(records),
			SizeBytes: stat.Size(),
		})
	}

	return infos, nil
}

// Read loads one archive file by name. The name must be a bare file name
// inside the store directory.
func (s *Store) Read(name string) ([]Record, error) {
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("invalid archive name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode archive %s: %w", name, err)
	}

	return records, nil
}
