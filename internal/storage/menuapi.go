package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"xoi-ngoc-web/internal/domain"
)

var ErrNotConfigured = errors.New("MENU_API_URL is not set")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MenuAPI fetches the menu document from the upstream menu API. One attempt
// per call: no retry, no backoff, no caching.
type MenuAPI struct {
	URL    string
	Client HTTPClient
}

func NewMenuAPI(url string, client HTTPClient) *MenuAPI {
	if client == nil {
		client = http.DefaultClient
	}
	return &MenuAPI{URL: url, Client: client}
}

func (m *MenuAPI) Fetch(ctx context.Context) (*domain.MenuData, error) {
	if m.URL == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	res, err := m.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch menu: status %d", res.StatusCode)
	}

	var data domain.MenuData
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode menu payload: %w", err)
	}

	return &data, nil
}
