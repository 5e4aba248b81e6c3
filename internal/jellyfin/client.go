// Package jellyfin provides a client for the Jellyfin media server API.
package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when an item doesn't exist on the server.
var ErrNotFound = errors.New("item not found")

// Client interacts with the Jellyfin REST API. Authentication uses the
// X-Emby-Token header.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Jellyfin client.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Users lists all server accounts.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/Users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// WatchedItems returns up to limit of the user's most recently played
// items of the given type, newest first, with provider ids attached.
func (c *Client) WatchedItems(ctx context.Context, userID, itemType string, limit int) ([]Item, error) {
	params := url.Values{
		"userId":           {userID},
		"isPlayed":         {"true"},
		"sortBy":           {"DatePlayed"},
		"sortOrder":        {"Descending"},
		"recursive":        {"true"},
		"includeItemTypes": {itemType},
		"limit":            {strconv.Itoa(limit)},
		"fields":           {"ProviderIds"},
	}
	var page itemsPage
	if err := c.get(ctx, "/Items", params, &page); err != nil {
		return nil, fmt.Errorf("list watched items: %w", err)
	}
	return page.Items, nil
}

// LibraryItems returns every library item of the given type with
// provider ids attached.
func (c *Client) LibraryItems(ctx context.Context, itemType string) ([]Item, error) {
	params := url.Values{
		"recursive":        {"true"},
		"includeItemTypes": {itemType},
		"fields":           {"ProviderIds"},
	}
	var page itemsPage
	if err := c.get(ctx, "/Items", params, &page); err != nil {
		return nil, fmt.Errorf("list library items: %w", err)
	}
	return page.Items, nil
}

// ItemInfo fetches a single item with provider ids, as visible to the
// given user. Used to resolve an episode's parent series.
func (c *Client) ItemInfo(ctx context.Context, userID, itemID string) (*Item, error) {
	params := url.Values{
		"userId": {userID},
		"fields": {"ProviderIds"},
	}
	var item Item
	if err := c.get(ctx, "/Items/"+itemID, params, &item); err != nil {
		return nil, fmt.Errorf("item info: %w", err)
	}
	return &item, nil
}

// Playlists lists the user's playlists.
func (c *Client) Playlists(ctx context.Context, userID string) ([]Item, error) {
	params := url.Values{
		"userId":           {userID},
		"includeItemTypes": {TypePlaylist},
		"recursive":        {"true"},
	}
	var page itemsPage
	if err := c.get(ctx, "/Items", params, &page); err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return page.Items, nil
}

// CreatePlaylist creates a playlist owned by the user with the given
// ordered items and returns its id.
func (c *Client) CreatePlaylist(ctx context.Context, userID, name string, itemIDs []string) (string, error) {
	body := createPlaylistRequest{
		Name:      name,
		UserID:    userID,
		IDs:       itemIDs,
		MediaType: "Mixed",
	}
	var created createPlaylistResponse
	if err := c.post(ctx, "/Playlists", body, &created); err != nil {
		return "", fmt.Errorf("create playlist: %w", err)
	}
	return created.ID, nil
}

// ReplacePlaylistItems replaces the playlist's item list wholesale in
// a single update call. There is no window where the playlist is empty.
func (c *Client) ReplacePlaylistItems(ctx context.Context, playlistID string, itemIDs []string) error {
	body := updatePlaylistRequest{IDs: itemIDs}
	if err := c.post(ctx, "/Playlists/"+playlistID, body, nil); err != nil {
		return fmt.Errorf("replace playlist items: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	req.Header.Set("X-Emby-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("jellyfin API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
