// Package cards supplies card metadata: the catalog model, the HTTP client
// that fetches it, and the TTL cache the rest of the system reads through.
package cards

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const maxFetchAttempts = 4

// Client fetches the card catalog from the metadata API.
type Client struct {
	baseURL string
	locale  string
	hc      *http.Client

	// RetryInterval overrides the initial backoff interval; tests and
	// impatient callers shrink it.
	RetryInterval time.Duration
}

func NewClient(baseURL, locale string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		locale:  locale,
		hc:      &http.Client{Timeout: timeout},
	}
}

// FetchCatalog downloads the full card list, retrying transient failures
// with exponential backoff. Context cancellation stops the retry loop.
func (c *Client) FetchCatalog(ctx context.Context) ([]Card, error) {
	bo := backoff.NewExponentialBackOff()
	if c.RetryInterval > 0 {
		bo.InitialInterval = c.RetryInterval
	}
	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		catalog, err := c.fetchOnce(ctx)
		if err == nil {
			slog.Info("[cards] catalog fetched", "cards", len(catalog), "locale", c.locale)
			return catalog, nil
		}
		lastErr = err
		slog.Warn("[cards] catalog fetch failed", "attempt", attempt, "err", err)
		if attempt == maxFetchAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(bo.NextBackOff()):
		}
	}
	return nil, fmt.Errorf("fetching card catalog: %w", lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) ([]Card, error) {
	u := c.baseURL + "/cards"
	if c.locale != "" {
		u += "?locale=" + url.QueryEscape(c.locale)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("card API returned %s", resp.Status)
	}
	var catalog []Card
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog json: %w", err)
	}
	return catalog, nil
}
