// Package remote is a client for a REST collection endpoint holding movie records.
//
// Every call is a single round trip. Nothing is retried; failures come back as
// *OperationError.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
)

// maxErrorBody bounds how much of a failed response body is kept for the error message.
const maxErrorBody = 512

type Client struct {
	base  string
	http  *http.Client
	token string
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sends the token as a bearer Authorization header.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout bounds each round trip. Zero leaves requests unbounded.
// The client in use is copied, so a shared one passed to WithHTTPClient is left alone.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// New returns a client for the collection at base, e.g. https://host/api/<bucket>/movies.
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Base returns the collection URL.
func (c *Client) Base() string {
	return c.base
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]entity.Movie, error) {
	var movies []entity.Movie
	if _, err := c.do(ctx, OpList, "", http.MethodGet, c.base, nil, &movies); err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []entity.Movie{}
	}
	return movies, nil
}

// Get fetches a single record.
func (c *Client) Get(ctx context.Context, id string) (*entity.Movie, error) {
	var movie entity.Movie
	if _, err := c.do(ctx, OpGet, id, http.MethodGet, c.itemURL(id), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Create posts a draft and returns the record with its server-assigned id.
func (c *Client) Create(ctx context.Context, draft request.MovieRequest) (*entity.Movie, error) {
	var movie entity.Movie
	if _, err := c.do(ctx, OpCreate, "", http.MethodPost, c.base, draft, &movie); err != nil {
		return nil, err
	}
	if movie.IsDraft() {
		return nil, &OperationError{Op: OpCreate, Err: errors.New("response carries no id")}
	}
	return &movie, nil
}

// Replace puts the full record under id. The returned movie is nil when the
// endpoint answers without a body.
func (c *Client) Replace(ctx context.Context, id string, movie request.MovieRequest) (*entity.Movie, error) {
	var updated entity.Movie
	decoded, err := c.do(ctx, OpUpdate, id, http.MethodPut, c.itemURL(id), movie, &updated)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}
	if updated.IsDraft() {
		updated.ID = id
	}
	return &updated, nil
}

// Delete removes the record under id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, OpDelete, id, http.MethodDelete, c.itemURL(id), nil, nil)
	return err
}

func (c *Client) itemURL(id string) string {
	return c.base + "/" + url.PathEscape(id)
}

// do performs one round trip. It reports whether a response body was decoded into out.
func (c *Client) do(ctx context.Context, op Operation, id, method, target string, body, out any) (decoded bool, err error) {
	start := time.Now()
	status := 0
	defer func() { observeRoundTrip(op, status, err, start) }()

	if op != OpList && op != OpCreate && id == "" {
		return false, &OperationError{Op: op, Err: errors.New("empty id")}
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return false, &OperationError{Op: op, ID: id, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return false, &OperationError{Op: op, ID: id, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return false, &OperationError{Op: op, ID: id, Err: err}
	}
	defer res.Body.Close()
	status = res.StatusCode

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return false, &OperationError{
			Op:     op,
			ID:     id,
			Status: res.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return false, nil
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return false, &OperationError{Op: op, ID: id, Status: status, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if op == OpUpdate {
			return false, nil
		}
		return false, &OperationError{Op: op, ID: id, Status: status, Err: errors.New("empty response body")}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, &OperationError{Op: op, ID: id, Status: status, Err: fmt.Errorf("decode body: %w", err)}
	}
	return true, nil
}
