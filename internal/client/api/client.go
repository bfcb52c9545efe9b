// Package api is a thin HTTP client for the bookshelf backend. It wraps the
// JSON endpoints the CLI uses and keeps the bearer token for authorized calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the server rejects the credentials or the
// stored access token.
var ErrUnauthorized = errors.New("unauthorized")

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Book struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Authorized reports whether a login succeeded earlier in this session.
func (c *Client) Authorized() bool {
	return c.token != ""
}

// Logout forgets the stored access token.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
			return errors.New(er.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Signup creates a new account.
func (c *Client) Signup(ctx context.Context, username, email string, password []byte) (*User, error) {
	in := map[string]string{"username": username, "email": email, "password": string(password)}
	var out User
	if err := c.do(ctx, http.MethodPost, "/auth/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for an access token. The token is kept inside
// the client and attached to every subsequent request.
func (c *Client) Login(ctx context.Context, username string, password []byte) error {
	in := map[string]string{"username": username, "password": string(password)}
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/token", in, &out); err != nil {
		return err
	}
	c.token = out.AccessToken
	return nil
}

// Me returns the account the stored token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBooks returns all books.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	var out []Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddBook creates a book with the given title.
func (c *Client) AddBook(ctx context.Context, title string) (*Book, error) {
	in := map[string]string{"title": title}
	var out Book
	if err := c.do(ctx, http.MethodPost, "/books", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBook removes a book by id.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil)
}
