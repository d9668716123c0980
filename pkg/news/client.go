package news

import "time"

type Article struct {
	Headline  string
	Summary   string
	Content   string
	UpdatedAt time.Time
}

// PageFetcher returns one page of articles inside the given window together
// with the continuation token for the next page. An empty token means the
// last page was reached.
type PageFetcher interface {
	FetchPage(from, to time.Time, pageToken string) ([]Article, string, error)
}
