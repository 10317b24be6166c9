// Package api implements the HTTP client for the stash server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akondrashov/stash/internal/common"
)

// Client talks to the server's JSON API. It keeps the access token from
// the last successful login and attaches it to subsequent requests.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// IsLoggedIn reports whether a login token is present.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

// Logout drops the stored token.
func (c *Client) Logout() {
	c.token = ""
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Item struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates an account on the server.
func (c *Client) Register(ctx context.Context, email, password, name string) (*User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var tok tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &tok); err != nil {
		return err
	}
	c.token = tok.AccessToken
	return nil
}

// Profile returns the account behind the stored token.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, "/api/items/"+id, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) AddItem(ctx context.Context, name, description string) (*Item, error) {
	body := map[string]string{"name": name, "description": description}
	var item Item
	if err := c.do(ctx, http.MethodPost, "/api/items", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem sends a partial update. Nil fields are left untouched by the
// server.
func (c *Client) UpdateItem(ctx context.Context, id string, name, description *string) (*Item, error) {
	body := map[string]*string{"name": name, "description": description}
	var item Item
	if err := c.do(ctx, http.MethodPut, "/api/items/"+id, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/items/"+id, nil, nil)
}

// Ping checks server health.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, into any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromStatus(resp.StatusCode)
	}

	if into == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(into)
}

func errorFromStatus(code int) error {
	switch code {
	case http.StatusBadRequest:
		return common.ErrorValidation
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusForbidden:
		return common.ErrorForbidden
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusConflict:
		return common.ErrorConflict
	case http.StatusServiceUnavailable:
		return common.ErrorUnavailable
	default:
		return common.ErrorInternal
	}
}
