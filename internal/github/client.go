// Package github is a minimal client for the GitHub issue-comment API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com"

	acceptHeader   = "application/vnd.github.v3+json"
	perPage        = 100
	requestTimeout = 30 * time.Second
)

// APIError reports a non-2xx response from the API.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}

// Client talks to one repository's issue comments.
type Client struct {
	baseURL string
	repo    string // owner/repo
	http    *http.Client
}

// NewClient builds a Client authenticated with a bearer token.
func NewClient(ctx context.Context, baseURL, repo, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = requestTimeout

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		repo:    repo,
		http:    httpClient,
	}
}

// Comment is an issue comment as returned by the API.
type Comment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
	User User   `json:"user"`
}

// User identifies a comment author or the authenticated account.
type User struct {
	Login string `json:"login"`
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", acceptHeader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("github: %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       strings.TrimSpace(string(detail)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("github: decoding %s response: %w", url, err)
		}
	}
	return nil
}

// CurrentLogin resolves the login of the authenticated account.
func (c *Client) CurrentLogin(ctx context.Context) (string, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return "", err
	}
	return user.Login, nil
}

// ListComments fetches every comment on an issue, following pagination.
func (c *Client) ListComments(ctx context.Context, issue int) ([]Comment, error) {
	var all []Comment
	for page := 1; ; page++ {
		path := fmt.Sprintf("/repos/%s/issues/%d/comments?per_page=%d&page=%d",
			c.repo, issue, perPage, page)
		var comments []Comment
		if err := c.do(ctx, http.MethodGet, path, nil, &comments); err != nil {
			return nil, err
		}
		all = append(all, comments...)
		if len(comments) < perPage {
			return all, nil
		}
	}
}

type commentPayload struct {
	Body string `json:"body"`
}

// CreateComment posts a new comment on an issue and returns its id.
func (c *Client) CreateComment(ctx context.Context, issue int, body string) (int64, error) {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments", c.repo, issue)
	var created Comment
	if err := c.do(ctx, http.MethodPost, path, commentPayload{Body: body}, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

// UpdateComment overwrites an existing comment's body.
func (c *Client) UpdateComment(ctx context.Context, commentID int64, body string) error {
	path := fmt.Sprintf("/repos/%s/issues/comments/%d", c.repo, commentID)
	return c.do(ctx, http.MethodPatch, path, commentPayload{Body: body}, nil)
}

// UpsertComment updates the comment previously published on the issue, or
// creates one when none exists. A previously published comment is one whose
// body contains marker and whose author is the authenticated login; an empty
// login matches any author. Returns the comment id and whether an existing
// comment was updated.
func (c *Client) UpsertComment(ctx context.Context, issue int, marker, body string) (int64, bool, error) {
	login, err := c.CurrentLogin(ctx)
	if err != nil {
		return 0, false, err
	}

	comments, err := c.ListComments(ctx, issue)
	if err != nil {
		return 0, false, err
	}

	for _, cm := range comments {
		if !strings.Contains(cm.Body, marker) {
			continue
		}
		if login != "" && cm.User.Login != login {
			continue
		}
		if err := c.UpdateComment(ctx, cm.ID, body); err != nil {
			return 0, false, err
		}
		return cm.ID, true, nil
	}

	id, err := c.CreateComment(ctx, issue, body)
	if err != nil {
		return 0, false, err
	}
	return id, false, nil
}
