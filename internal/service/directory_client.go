package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"time"
)

// DirectoryClient wraps the national health facility registry API
type DirectoryClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	maxRetries  int
}

// NewDirectoryClient creates a new registry API client
func NewDirectoryClient() *DirectoryClient {
	baseURL := os.Getenv("DIRECTORY_API_URL")
	token := os.Getenv("DIRECTORY_API_TOKEN")
	if baseURL == "" || token == "" {
		log.Println("Warning: DIRECTORY_API_URL or DIRECTORY_API_TOKEN not set, center sync disabled")
	}

	return &DirectoryClient{
		baseURL:     baseURL,
		accessToken: token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		maxRetries: 3,
	}
}

// DirectoryFacility is a single facility in the registry
type DirectoryFacility struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Address string  `json:"address"`
	Phone   string  `json:"phone,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// FacilityPage is one page of the facility listing
type FacilityPage struct {
	Facilities []DirectoryFacility `json:"facilities"`
	Page       int                 `json:"page"`
	NextPage   int                 `json:"next_page"`
}

// IsConfigured returns true if base URL and access token are set
func (c *DirectoryClient) IsConfigured() bool {
	return c.baseURL != "" && c.accessToken != ""
}

// ListFacilities fetches one page of breast screening facilities
func (c *DirectoryClient) ListFacilities(ctx context.Context, page int) (*FacilityPage, error) {
	path := fmt.Sprintf("/facilities?category=breast_screening&page=%d", page)

	respBody, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result FacilityPage
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse facility page: %w", err)
	}
	return &result, nil
}

// doRequest performs an HTTP request with retry logic
func (c *DirectoryClient) doRequest(ctx context.Context, method, path string) ([]byte, error) {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[Directory] Retry attempt %d/%d for %s %s", attempt, c.maxRetries, method, path)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[Directory] Request failed (attempt %d): %v", attempt+1, err)
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			log.Printf("[Directory] Rate limited, retry %d/%d in %v", attempt+1, c.maxRetries, backoff)
			time.Sleep(backoff)
			lastErr = fmt.Errorf("rate limited")
			continue
		}

		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("registry API error %d: %s", resp.StatusCode, string(respBody))
		}

		return respBody, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
