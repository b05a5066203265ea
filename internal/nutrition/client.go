// Package nutrition provides a client for the free-text nutrition lookup API.
package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fitfuel/internal/model"
)

const (
	// DefaultBaseURL points at the CalorieNinjas nutrition endpoint.
	DefaultBaseURL = "https://api.calorieninjas.com/v1"

	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the API key is missing or invalid.
	ErrUnauthorized = errors.New("nutrition: unauthorized (check your API key)")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("nutrition: rate limited")
	// ErrNoItems indicates the query produced no usable food items.
	ErrNoItems = errors.New("nutrition: no food items recognized")
)

// Client fetches nutrition data for free-text food descriptions.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given API key.
// Returns nil if the key is empty.
func NewClient(apiKey, baseURL string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// lookupResponse is the raw API response envelope.
type lookupResponse struct {
	Items []model.FoodItem `json:"items"`
}

// Query resolves a free-text description ("1 bowl rice and 2 eggs") into
// food items. Failure surfaces as a single error with no partial results.
func (c *Client) Query(ctx context.Context, text string) ([]model.FoodItem, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint := c.baseURL + "/nutrition?query=" + url.QueryEscape(text)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("nutrition: creating request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nutrition: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("nutrition: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("nutrition: reading response: %w", err)
	}

	var parsed lookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("nutrition: parsing response: %w", err)
	}

	if len(parsed.Items) == 0 {
		return nil, ErrNoItems
	}
	return parsed.Items, nil
}
