package api

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
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/common"
	"github.com/placeprep/ppclient/internal/logging"
)

// HTTPClient talks JSON over HTTP to the backend REST surface.
//
// The base URL already carries the /api prefix. A cookie jar is installed so
// cross-origin credentials behave like a browser client. The bearer token is
// guarded by a mutex: SetToken and request issuing are serialized, so no
// request ever observes a half-updated header.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL (origin + /api).
// A trailing slash on baseURL is tolerated.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout, Jar: jar},
		log:     log,
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// SetToken installs token as the default bearer credential, or removes the
// header entirely when token is empty. Owned by the session store.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// do issues one request and decodes the JSON response into out (when non-nil).
//
// Failures map onto the shared taxonomy: transport errors wrap
// common.ErrUnavailable; non-2xx statuses become *Error carrying the backend
// message, which itself unwraps to the auth/not-found sentinels.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(data, &msg); jsonErr == nil {
			apiErr.Message = msg.Message
		}
		c.log.Debug(ctx, "backend rejected request",
			"method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (string, *models.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", nil, patch, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context, query url.Values) (*models.PostPage, error) {
	var page models.PostPage
	if err := c.do(ctx, http.MethodGet, "/posts", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) SearchPosts(ctx context.Context, query url.Values) (*models.PostPage, error) {
	var page models.PostPage
	if err := c.do(ctx, http.MethodGet, "/posts/search", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) FeaturedPosts(ctx context.Context) ([]models.Post, error) {
	var resp struct {
		Posts []models.Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts/featured", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var resp struct {
		Post *models.Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Post, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	var resp struct {
		Post *models.Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/posts", nil, draft, &resp); err != nil {
		return nil, err
	}
	return resp.Post, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error) {
	var resp struct {
		Post *models.Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), nil, draft, &resp); err != nil {
		return nil, err
	}
	return resp.Post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), nil, nil, nil)
}

func (c *HTTPClient) ToggleLike(ctx context.Context, postID string) (*models.LikeResult, error) {
	var res models.LikeResult
	if err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/like", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, postID, content string) (*models.Comment, error) {
	body := map[string]string{"content": content}
	var resp struct {
		Comment *models.Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/comments", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Comment, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, postID, commentID string) error {
	path := "/posts/" + url.PathEscape(postID) + "/comments/" + url.PathEscape(commentID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *HTTPClient) UserProfile(ctx context.Context, userID string) (*models.PublicProfile, error) {
	var profile models.PublicProfile
	if err := c.do(ctx, http.MethodGet, "/users/profile/"+url.PathEscape(userID), nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) UserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	var resp struct {
		Posts []models.Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/posts", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	var d models.Dashboard
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/dashboard", nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) TrendingStats(ctx context.Context) (*models.TrendingStats, error) {
	var s models.TrendingStats
	if err := c.do(ctx, http.MethodGet, "/stats/trending", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) OverviewStats(ctx context.Context) (*models.OverviewStats, error) {
	var resp struct {
		Stats models.OverviewStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/stats/overview", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
