// Package navfeed keeps the product catalog's NAVs current and advances due
// SIP mandates on a schedule.
package navfeed

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Quote is one scheme's latest NAV as published by the feed.
type Quote struct {
	SchemeCode string  `json:"schemeCode"`
	SchemeName string  `json:"schemeName"`
	NAV        float64 `json:"nav"`
	AsOf       string  `json:"asOf"`
}

type feedResponse struct {
	Status string  `json:"status"`
	Quotes []Quote `json:"quotes"`
}

// Client pulls NAVs from the configured feed endpoint.
type Client struct {
	http *resty.Client
	url  string
}

// NewClient builds a feed client for the given endpoint.
func NewClient(url string) *Client {
	return &Client{
		http: resty.New().SetTimeout(10 * time.Second),
		url:  url,
	}
}

// FetchLatest pulls the latest NAV list from the feed.
func (c *Client) FetchLatest() ([]Quote, error) {
	var out feedResponse
	resp, err := c.http.R().
		SetHeader("Accept", "application/json").
		SetResult(&out).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch NAV feed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("NAV feed returned status %d", resp.StatusCode())
	}
	return out.Quotes, nil
}
