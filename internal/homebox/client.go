// Package homebox is a typed HTTP client for the Homebox inventory
// API. It owns URL normalization, header construction (including the
// optional Cloudflare Access pair), and the two-tier error taxonomy;
// formatting of results is left to callers.
package homebox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const apiSuffix = "/api"

// NormalizeBaseURL strips one trailing slash and appends /api unless
// the URL already ends with it. Idempotent, so an already-normalized
// URL passes through unchanged.
func NormalizeBaseURL(raw string) string {
	base := strings.TrimSuffix(raw, "/")
	if strings.HasSuffix(base, apiSuffix) {
		return base
	}
	return base + apiSuffix
}

// Client talks to a single Homebox instance. Safe for concurrent use.
type Client struct {
	baseURL        string
	cfClientID     string
	cfClientSecret string
	httpClient     *http.Client
}

// NewClient builds a client for the given base URL. The URL is
// normalized once here; the Cloudflare Access credentials may both be
// empty when the instance is not behind an access proxy.
func NewClient(baseURL, cfClientID, cfClientSecret string) *Client {
	return &Client{
		baseURL:        NormalizeBaseURL(baseURL),
		cfClientID:     cfClientID,
		cfClientSecret: cfClientSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: otelhttp.NewTransport(&http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			}),
		},
	}
}

// BaseURL returns the normalized base URL the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// SearchItems runs a text search over the inventory.
func (c *Client) SearchItems(ctx context.Context, query string, page, pageSize int) (*ItemsPage, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("page", strconv.Itoa(page))
	params.Add("pageSize", strconv.Itoa(pageSize))
	return c.fetchItems(ctx, params)
}

// ItemsByLocation lists the items assigned to one location.
func (c *Client) ItemsByLocation(ctx context.Context, locationID string, page, pageSize int) (*ItemsPage, error) {
	params := url.Values{}
	params.Add("locations", locationID)
	params.Add("page", strconv.Itoa(page))
	params.Add("pageSize", strconv.Itoa(pageSize))
	return c.fetchItems(ctx, params)
}

func (c *Client) fetchItems(ctx context.Context, params url.Values) (*ItemsPage, error) {
	fullURL := fmt.Sprintf("%s/v1/items?%s", c.baseURL, params.Encode())

	var page ItemsPage
	if err := c.getJSON(ctx, fullURL, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetItem fetches a single item by ID.
func (c *Client) GetItem(ctx context.Context, itemID string) (*Item, error) {
	fullURL := fmt.Sprintf("%s/v1/items/%s", c.baseURL, url.PathEscape(itemID))

	var item Item
	if err := c.getJSON(ctx, fullURL, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListLocations fetches all locations.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	fullURL := fmt.Sprintf("%s/v1/locations", c.baseURL)

	var page LocationsPage
	if err := c.getJSON(ctx, fullURL, &page); err != nil {
		return nil, err
	}
	return page.Locations, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return &RequestError{Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// setHeaders applies the standard JSON headers plus the Cloudflare
// Access pair. The pair is all-or-nothing: a lone ID or secret adds
// neither header.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.cfClientID != "" && c.cfClientSecret != "" {
		req.Header.Set("CF-Access-Client-Id", c.cfClientID)
		req.Header.Set("CF-Access-Client-Secret", c.cfClientSecret)
	}
}
