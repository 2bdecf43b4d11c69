// Package azuracast fetches now-playing metadata from an AzuraCast station
// endpoint.
package azuracast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config describes how the now-playing client should be initialised.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues GET requests against a fixed AzuraCast now-playing endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// Station identifies the broadcasting station and its stream URL.
type Station struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Shortcode string `json:"shortcode"`
	ListenURL string `json:"listen_url"`
}

// Song is the track metadata inside a now-playing snapshot.
type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Art    string `json:"art"`
}

// Track is the currently playing song with its position.
type Track struct {
	Elapsed  int  `json:"elapsed"`
	Duration int  `json:"duration"`
	Song     Song `json:"song"`
}

// Live describes an in-progress live broadcast, when any.
type Live struct {
	IsLive       bool   `json:"is_live"`
	StreamerName string `json:"streamer_name"`
}

// NowPlaying is the payload served by the AzuraCast now-playing API.
type NowPlaying struct {
	Station    Station `json:"station"`
	NowPlaying Track   `json:"now_playing"`
	Live       *Live   `json:"live"`
}

// NewClient builds a Client for the configured endpoint.
func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.URL)
	if endpoint == "" {
		return nil, errors.New("azuracast: endpoint URL must not be empty")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		url:        endpoint,
		httpClient: httpClient,
	}, nil
}

// Fetch retrieves the current now-playing snapshot. Any non-success status
// or decode failure is returned as an error; callers treat that as "no data
// available".
func (c *Client) Fetch(ctx context.Context) (NowPlaying, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return NowPlaying{}, fmt.Errorf("azuracast: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NowPlaying{}, fmt.Errorf("azuracast: fetch now playing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return NowPlaying{}, fmt.Errorf("azuracast: endpoint returned status %s", resp.Status)
	}

	var payload NowPlaying
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return NowPlaying{}, fmt.Errorf("azuracast: decode response: %w", err)
	}

	return payload, nil
}
