// Package commentary turns match events into spoken lines without ever
// holding up the frame loop.
package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

var (
	// ErrUnavailable means no line could be produced for the event
	ErrUnavailable = errors.New("commentary unavailable")
	// ErrQueueFull means the event was dropped because generation is behind
	ErrQueueFull = errors.New("commentary queue full")
)

// Generator produces one line of commentary for a match event
type Generator interface {
	Generate(ctx context.Context, event, detail string) (string, error)
}

type generateRequest struct {
	Event   string `json:"event"`
	Context string `json:"context"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// HTTPGenerator asks a remote text service for each line
type HTTPGenerator struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPGenerator creates a generator posting to endpoint
func NewHTTPGenerator(endpoint, apiKey string, timeout time.Duration) *HTTPGenerator {
	return &HTTPGenerator{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate implements Generator
func (g *HTTPGenerator) Generate(ctx context.Context, event, detail string) (string, error) {
	body, err := json.Marshal(generateRequest{Event: event, Context: detail})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("commentary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", fmt.Errorf("%w: empty line", ErrUnavailable)
	}
	return out.Text, nil
}

type cacheKey struct {
	event, detail string
}

// CachedGenerator remembers lines per event and context, evicting the oldest
type CachedGenerator struct {
	inner Generator
	size  int

	mu      sync.Mutex
	entries map[cacheKey]string
	order   []cacheKey
}

// NewCachedGenerator wraps inner with a cache of at most size lines
func NewCachedGenerator(inner Generator, size int) *CachedGenerator {
	return &CachedGenerator{
		inner:   inner,
		size:    size,
		entries: make(map[cacheKey]string, size),
	}
}

// Generate implements Generator. Failures are not cached.
func (c *CachedGenerator) Generate(ctx context.Context, event, detail string) (string, error) {
	key := cacheKey{event, detail}

	c.mu.Lock()
	line, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return line, nil
	}

	line, err := c.inner.Generate(ctx, event, detail)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok && c.size > 0 {
		c.entries[key] = line
		c.order = append(c.order, key)
		for len(c.order) > c.size {
			delete(c.entries, c.order[0])
			c.order = c.order[1:]
		}
	}
	return line, nil
}

// Len returns the number of cached lines
func (c *CachedGenerator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
