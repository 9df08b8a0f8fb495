// Package scraper fetches the live product array embedded in the
// sixsevendeals.com landing page.
package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/sixsevendeals/affiliate-api/internal/domain"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// The landing page declares its listings as a script-level constant.
const productsMarker = "const products = ["

var productsArray = regexp.MustCompile(`(?s)const products\s*=\s*(\[.*?\]);`)

var errNoProductScript = errors.New("no embedded product array found")

// Scraper performs a single bounded GET per call. Every failure mode
// (network, timeout, missing marker, malformed embed) comes back as a
// domain.FetchError; the caller decides what to serve instead.
type Scraper struct {
	url     string
	timeout time.Duration
}

func New(url string, timeout time.Duration) *Scraper {
	return &Scraper{url: url, timeout: timeout}
}

// Fetch scrapes the product array from the live site. One attempt, no
// retries.
func (s *Scraper) Fetch(ctx context.Context) ([]domain.RawProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{Op: s.url, Err: err}
	}

	c := colly.NewCollector(colly.UserAgent(defaultUserAgent))
	c.SetRequestTimeout(s.timeout)

	var blob string
	c.OnHTML("script", func(e *colly.HTMLElement) {
		if blob == "" && strings.Contains(e.Text, productsMarker) {
			blob = e.Text
		}
	})

	if err := c.Visit(s.url); err != nil {
		return nil, &domain.FetchError{Op: s.url, Err: err}
	}
	if blob == "" {
		return nil, &domain.FetchError{Op: s.url, Err: errNoProductScript}
	}

	raws, err := parseProducts(blob)
	if err != nil {
		return nil, &domain.FetchError{Op: s.url, Err: err}
	}
	return raws, nil
}

// parseProducts extracts the JSON array from a script body. The embed
// uses single-quoted strings, which are rewritten before decoding.
func parseProducts(script string) ([]domain.RawProduct, error) {
	m := productsArray.FindStringSubmatch(script)
	if m == nil {
		return nil, errNoProductScript
	}
	jsonText := strings.ReplaceAll(m[1], "'", `"`)

	var raws []domain.RawProduct
	if err := json.Unmarshal([]byte(jsonText), &raws); err != nil {
		return nil, fmt.Errorf("decode product array: %w", err)
	}
	return raws, nil
}
