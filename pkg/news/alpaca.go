package news

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	alpacaNewsURL = "https://data.alpaca.markets/v1beta1/news"
	pageLimit     = 50
)

type AlpacaClient struct {
	keyID      string
	secretKey  string
	httpClient *http.Client
}

func NewAlpacaClient(keyID, secretKey string) *AlpacaClient {
	return &AlpacaClient{
		keyID:      keyID,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchPage issues a single GET against the Alpaca news endpoint. The window
// bounds are sent as UTC timestamps at second precision; pageToken, when
// non-empty, resumes pagination where the previous page left off.
func (c *AlpacaClient) FetchPage(from, to time.Time, pageToken string) ([]Article, string, error) {
	req, err := http.NewRequest(http.MethodGet, alpacaNewsURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("alpaca request: %w", err)
	}

	q := req.URL.Query()
	q.Set("start", from.UTC().Format("2006-01-02T15:04:05Z"))
	q.Set("end", to.UTC().Format("2006-01-02T15:04:05Z"))
	q.Set("limit", strconv.Itoa(pageLimit))
	q.Set("include_content", "true")
	q.Set("sort", "asc")
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Apca-Api-Key-Id", c.keyID)
	req.Header.Set("Apca-Api-Secret-Key", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("alpaca fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("alpaca fetch: status %d: %s", resp.StatusCode, body)
	}

	var raw alpacaResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, "", fmt.Errorf("alpaca decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.News))
	for _, item := range raw.News {
		updatedAt, err := time.Parse(time.RFC3339, item.UpdatedAt)
		if err != nil {
			updatedAt = time.Time{}
		}

		articles = append(articles, Article{
			Headline:  item.Headline,
			Summary:   item.Summary,
			Content:   item.Content,
			UpdatedAt: updatedAt,
		})
	}

	return articles, raw.NextPageToken, nil
}

type alpacaResponse struct {
	News          []alpacaArticle `json:"news"`
	NextPageToken string          `json:"next_page_token"`
}

type alpacaArticle struct {
	Headline  string `json:"headline"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at"`
}
