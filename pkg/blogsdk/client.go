package blogsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a client for the Inkwell API. It covers the unauthenticated
// endpoints; WithToken returns a Session for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10 second timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Session performs requests as an authenticated account.
type Session struct {
	client *Client
	token  string
}

// WithToken returns a Session that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Login exchanges a username and password for an access token.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{"username": {username}, "password": {password}}
	var out TokenResponse
	err := c.do(ctx, "", http.MethodPost, "/v1/auth/token", strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup creates a normal account.
func (c *Client) Signup(ctx context.Context, req CreateAccountRequest) (*AccountView, error) {
	var out AccountView
	if err := c.doJSON(ctx, "", http.MethodPost, "/v1/users/signup", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bootstrap creates the first owner account.
func (c *Client) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*BootstrapResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	var out BootstrapResponse
	err = c.do(ctx, "", http.MethodPost, "/v1/bootstrap", bytes.NewReader(body), map[string]string{
		"Content-Type":      "application/json",
		"X-Bootstrap-Token": token,
	}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPosts lists posts that are not soft-deleted.
func (c *Client) ListPosts(ctx context.Context, offset, limit int) ([]PostView, error) {
	var out []PostView
	if err := c.do(ctx, "", http.MethodGet, "/v1/posts"+pageQuery(offset, limit), nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost fetches a single post.
func (c *Client) GetPost(ctx context.Context, id int64) (*PostView, error) {
	var out PostView
	if err := c.do(ctx, "", http.MethodGet, postPath(id), nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/livez", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the caller's own account.
func (s *Session) Me(ctx context.Context) (*AccountView, error) {
	var out AccountView
	if err := s.client.do(ctx, s.token, http.MethodGet, "/v1/me", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAccounts lists the roster of a tier (TierUsers, TierStaff, ...).
func (s *Session) ListAccounts(ctx context.Context, tier string, offset, limit int) ([]AccountView, error) {
	var out []AccountView
	if err := s.client.do(ctx, s.token, http.MethodGet, "/v1/"+tier+pageQuery(offset, limit), nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAccount fetches an account by id.
func (s *Session) GetAccount(ctx context.Context, id int64) (*AccountView, error) {
	var out AccountView
	if err := s.client.do(ctx, s.token, http.MethodGet, accountPath(id), nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStaff creates a staff account. Requires a superuser session.
func (s *Session) CreateStaff(ctx context.Context, req CreateAccountRequest) (*AccountView, error) {
	var out AccountView
	if err := s.client.doJSON(ctx, s.token, http.MethodPost, "/v1/staff", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSuperuser creates a superuser account. Requires an owner session.
func (s *Session) CreateSuperuser(ctx context.Context, req CreateAccountRequest) (*AccountView, error) {
	var out AccountView
	if err := s.client.doJSON(ctx, s.token, http.MethodPost, "/v1/superusers", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAccount applies a partial update.
func (s *Session) UpdateAccount(ctx context.Context, id int64, req UpdateAccountRequest) (*AccountView, error) {
	var out AccountView
	if err := s.client.doJSON(ctx, s.token, http.MethodPatch, accountPath(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount hard-deletes an account.
func (s *Session) DeleteAccount(ctx context.Context, id int64) error {
	return s.client.do(ctx, s.token, http.MethodDelete, accountPath(id), nil, nil, nil, http.StatusNoContent)
}

// CreatePost creates a post.
func (s *Session) CreatePost(ctx context.Context, req CreatePostRequest) (*PostView, error) {
	var out PostView
	if err := s.client.doJSON(ctx, s.token, http.MethodPost, "/v1/posts", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost applies a partial update, including soft delete.
func (s *Session) UpdatePost(ctx context.Context, id int64, req UpdatePostRequest) (*PostView, error) {
	var out PostView
	if err := s.client.doJSON(ctx, s.token, http.MethodPatch, postPath(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost hard-deletes a post.
func (s *Session) DeletePost(ctx context.Context, id int64) error {
	return s.client.do(ctx, s.token, http.MethodDelete, postPath(id), nil, nil, nil, http.StatusNoContent)
}

func accountPath(id int64) string { return "/v1/accounts/" + strconv.FormatInt(id, 10) }
func postPath(id int64) string    { return "/v1/posts/" + strconv.FormatInt(id, 10) }

func pageQuery(offset, limit int) string {
	q := url.Values{}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) doJSON(ctx context.Context, token, method, path string, in, out any, expected int) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, token, method, path, bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"}, out, expected)
}

// do sends a request and decodes the response into out when the status
// matches expected. Any other status is returned as an *APIError.
func (c *Client) do(
	ctx context.Context,
	token, method, path string,
	body io.Reader,
	headers map[string]string,
	out any,
	expected int,
) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expected {
		if err := parseErrorResponse(resp, raw); err != nil {
			return err
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
