// Package client is a typed HTTP client for the LinkedList REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"linkedlist-backend/internal/auth"
	"linkedlist-backend/internal/database/models"

	"golang.org/x/net/publicsuffix"
)

// APIError is returned for every non-2xx response
type APIError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Status)
}

// Message returns the "error" field of the response body, if any
func (e *APIError) Message() string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}
	return body.Error
}

// IsNotFound reports whether the server answered 404
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client calls the REST API. The session cookie is kept in a cookie jar.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient uses a copy of h for requests. The copy falls back to the
// client's cookie jar when h has none and never follows redirects.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		hc := *h
		if hc.Jar == nil {
			hc.Jar = c.httpClient.Jar
		}
		hc.CheckRedirect = noRedirect
		c.httpClient = &hc
	}
}

// Auth routes answer with redirects meant for a browser
func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a client for the API served at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Jar:           jar,
			Timeout:       30 * time.Second,
			CheckRedirect: noRedirect,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetSessionToken stores a session token as if the server had set the cookie
func (c *Client) SetSessionToken(token string) {
	c.httpClient.Jar.SetCookies(c.baseURL, []*http.Cookie{{
		Name:  auth.SessionCookieName,
		Value: token,
		Path:  "/",
	}})
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: data}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}

// success is the body of deletes and link-label changes
type success struct {
	Success bool `json:"success"`
}

func (c *Client) mutate(ctx context.Context, method, path string) error {
	var res success
	if err := c.do(ctx, method, path, nil, &res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%s %s: server did not confirm", method, path)
	}
	return nil
}

// GetLinks returns every link, newest first
func (c *Client) GetLinks(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := c.do(ctx, http.MethodGet, "/api/links", nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *Client) GetLinkByID(ctx context.Context, id string) (*models.Link, error) {
	var link models.Link
	if err := c.do(ctx, http.MethodGet, "/api/links/"+escape(id), nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// GetFullLink returns a link with its notes and labels
func (c *Client) GetFullLink(ctx context.Context, id string) (*models.LinkFull, error) {
	var link models.LinkFull
	if err := c.do(ctx, http.MethodGet, "/api/links/"+escape(id)+"/full", nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *Client) CreateLink(ctx context.Context, in models.LinkInput) (*models.Link, error) {
	var link models.Link
	if err := c.do(ctx, http.MethodPost, "/api/links", in, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *Client) UpdateLink(ctx context.Context, id string, patch models.LinkPatch) (*models.Link, error) {
	var link models.Link
	if err := c.do(ctx, http.MethodPatch, "/api/links/"+escape(id), patch, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *Client) DeleteLink(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/links/"+escape(id))
}

func (c *Client) GetNotesByLink(ctx context.Context, linkID string) ([]models.Note, error) {
	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, "/api/links/"+escape(linkID)+"/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetLabelsByLink(ctx context.Context, linkID string) ([]models.Label, error) {
	var labels []models.Label
	if err := c.do(ctx, http.MethodGet, "/api/links/"+escape(linkID)+"/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (c *Client) AddLabelToLink(ctx context.Context, linkID, labelID string) error {
	return c.mutate(ctx, http.MethodPut, "/api/links/"+escape(linkID)+"/labels/"+escape(labelID))
}

func (c *Client) RemoveLabelFromLink(ctx context.Context, linkID, labelID string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/links/"+escape(linkID)+"/labels/"+escape(labelID))
}

func (c *Client) CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", in, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPatch, "/api/notes/"+escape(id), patch, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/notes/"+escape(id))
}

// GetLabels returns the labels of the current user
func (c *Client) GetLabels(ctx context.Context) ([]models.Label, error) {
	var labels []models.Label
	if err := c.do(ctx, http.MethodGet, "/api/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (c *Client) CreateLabel(ctx context.Context, name string) (*models.Label, error) {
	var label models.Label
	if err := c.do(ctx, http.MethodPost, "/api/labels", models.LabelInput{Name: name}, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

func (c *Client) UpdateLabel(ctx context.Context, id, name string) (*models.Label, error) {
	var label models.Label
	if err := c.do(ctx, http.MethodPatch, "/api/labels/"+escape(id), models.LabelInput{Name: name}, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/labels/"+escape(id))
}

func (c *Client) GetLinksByLabel(ctx context.Context, labelID string) ([]models.Link, error) {
	var links []models.Link
	if err := c.do(ctx, http.MethodGet, "/api/labels/"+escape(labelID)+"/links", nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// Me returns the identity behind the current session cookie
func (c *Client) Me(ctx context.Context) (*auth.MeResponse, error) {
	var me auth.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// Logout ends the session on the server and drops the local cookie
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String()+"/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET /auth/logout: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusFound && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}
