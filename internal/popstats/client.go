// Package popstats scrapes the PoP statistics site: it resolves Bitcoin
// addresses to pubkeys and extracts the statistics tables of a pubkey page.
package popstats

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"

	"github.com/dmagro/hemi-popstats/internal/config"
)

// Client issues single, non-retrying GET requests against the statistics site.
type Client struct {
	baseURL    string
	userAgent  string
	accept     string
	httpClient *http.Client
	params     *chaincfg.Params // network used to recognise addresses in auto mode
	logger     zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) (*Client, error) {
	params, err := NetParams(cfg.Network)
	if err != nil {
		return nil, err
	}
	ep := cfg.Endpoint
	return &Client{
		baseURL:    ep.BaseURL,
		userAgent:  ep.UserAgent,
		accept:     ep.Accept,
		httpClient: &http.Client{Timeout: ep.Timeout},
		params:     params,
		logger:     logger,
	}, nil
}

// PageURL returns the statistics page URL for a pubkey or address.
func (c *Client) PageURL(id string) string {
	return fmt.Sprintf("%s/pubkey/%s.html", c.baseURL, url.PathEscape(id))
}

// fetchPage GETs a page and parses it into a document. Exactly one request is
// made; the returned duration covers the full round trip including the body.
func (c *Client) fetchPage(ctx context.Context, pageURL string) (*goquery.Document, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, 0, &NetworkError{URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", c.accept)

	c.logger.Debug().Str("url", pageURL).Msg("fetching page")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, time.Since(start), &NetworkError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	latency := time.Since(start)
	if err != nil {
		return nil, latency, &NetworkError{URL: pageURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, latency, &NetworkError{
			URL:        pageURL,
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Err:        fmt.Errorf("HTTP %d", resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, latency, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	c.logger.Debug().
		Str("url", pageURL).
		Int("status", resp.StatusCode).
		Int64("latency_ms", latency.Milliseconds()).
		Msg("page fetched")

	return doc, latency, nil
}
