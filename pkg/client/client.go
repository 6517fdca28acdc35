package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
)

// Client is the API client for the RytonStore service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListPackages retrieves the catalog, optionally filtered by a search query
func (c *Client) ListPackages(query string) ([]domain.Package, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}

	var response struct {
		Data []domain.Package `json:"data"`
	}
	if err := c.get("/api/v1/packages", params, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetPackage retrieves one package and its reviews by catalog index
func (c *Client) GetPackage(index int) (*domain.Package, []domain.Review, error) {
	var response struct {
		Data struct {
			Package *domain.Package `json:"package"`
			Reviews []domain.Review `json:"reviews"`
		} `json:"data"`
	}
	if err := c.get(fmt.Sprintf("/api/v1/packages/%d", index), nil, &response); err != nil {
		return nil, nil, err
	}
	return response.Data.Package, response.Data.Reviews, nil
}

// GetCategories retrieves tag usage counts
func (c *Client) GetCategories() ([]domain.TagCount, error) {
	var response struct {
		Data []domain.TagCount `json:"data"`
	}
	if err := c.get("/api/v1/categories", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// RefreshAll triggers a bulk metadata refresh and returns how many records changed
func (c *Client) RefreshAll() (int, error) {
	var response struct {
		Data struct {
			Updated int `json:"updated"`
		} `json:"data"`
	}
	if err := c.post("/api/v1/admin/packages/refresh", &response); err != nil {
		return 0, err
	}
	return response.Data.Updated, nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck() error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", nil, &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) get(path string, params url.Values, result interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, result interface{}) error {
	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
