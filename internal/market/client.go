package market

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Client fetches token records from the provider bound to a blockchain.
// Failures are logged here and returned to the caller; there is no retry
// and no caching between calls.
type Client struct {
	http      *http.Client
	endpoints map[Blockchain]endpoint
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		endpoints: defaultEndpoints,
	}
}

func (c *Client) FetchTokens(ctx context.Context, chain Blockchain) ([]TokenRecord, error) {
	ep, ok := c.endpoints[chain]
	if !ok {
		return nil, fmt.Errorf("no endpoint for blockchain %q", chain)
	}

	reqURL := ep.url
	if len(ep.params) > 0 {
		reqURL += "?" + ep.params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", ep.url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("ERROR: failed to fetch tokens from %s: %v", ep.url, err)
		return nil, fmt.Errorf("failed to fetch tokens from %s: %w", ep.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("ERROR: %s returned status %d", ep.url, resp.StatusCode)
		return nil, fmt.Errorf("%s returned status %d", ep.url, resp.StatusCode)
	}

	var tokens []TokenRecord
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		log.Printf("ERROR: failed to decode response from %s: %v", ep.url, err)
		return nil, fmt.Errorf("failed to decode response from %s: %w", ep.url, err)
	}

	return tokens, nil
}
