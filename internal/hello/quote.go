package hello

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const DefaultQuoteURL = "https://dummyjson.com/quotes/random"

type Quote struct {
	ID     int    `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

func (q Quote) String() string {
	return fmt.Sprintf("\"%s\" - By: %s", q.Quote, q.Author)
}

// QuoteClient fetches a random quote from a dummyjson style endpoint.
type QuoteClient struct {
	url string
	hc  *http.Client
}

func NewQuoteClient(url string, hc *http.Client) *QuoteClient {
	if url == "" {
		url = DefaultQuoteURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &QuoteClient{url: url, hc: hc}
}

func (c *QuoteClient) Random(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("get quote: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("get quote: status %d", resp.StatusCode)
	}

	var q Quote
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return Quote{}, fmt.Errorf("decode quote: %w", err)
	}
	if q.Quote == "" {
		return Quote{}, fmt.Errorf("decode quote: response has no quote")
	}
	return q, nil
}
