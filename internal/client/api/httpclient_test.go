package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/common"
	"github.com/placeprep/ppclient/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logging.NewTextLogger(io.Discard, slog.LevelDebug)
	c, err := NewHTTPClient(srv.URL+"/api", 5*time.Second, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body.Email)
		assert.Equal(t, "pw", body.Password)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"token": "tok-123",
			"user":  models.User{ID: "u1", Name: "Alice", Email: "a@b.com"},
		})
	})

	c, _ := newTestClient(t, mux)

	token, user, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, user)
	assert.Equal(t, "Alice", user.Name)
}

func TestLogin_BackendMessageSurfaced(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	})

	c, _ := newTestClient(t, mux)

	_, _, err := c.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, "Invalid credentials", UserMessage(err, "Login failed"))
}

func TestSetToken_HeaderFollowsToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, map[string]any{"user": models.User{ID: "u1"}})
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	c.SetToken("abc")
	_, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)

	c.SetToken("")
	_, err = c.Me(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "header must be absent after the token is cleared")
}

func TestSetToken_NoHalfUpdatedHeader(t *testing.T) {
	seen := make(map[string]struct{})
	var mu sync.Mutex

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.Header.Get("Authorization")] = struct{}{}
		mu.Unlock()
		writeJSON(t, w, http.StatusOK, map[string]any{"user": models.User{ID: "u1"}})
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.SetToken(fmt.Sprintf("tok-%d", i))
			_, _ = c.Me(ctx)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for auth := range seen {
		if auth == "" {
			continue
		}
		assert.Regexp(t, `^Bearer tok-\d+$`, auth)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Post not found"})
	})

	c, _ := newTestClient(t, mux)

	_, err := c.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListPosts_PassesQueryAndDecodesPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Google", r.URL.Query().Get("company"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		writeJSON(t, w, http.StatusOK, models.PostPage{
			Posts:      []models.Post{{ID: "p1", Title: "SWE at Google"}},
			Pagination: models.Pagination{Current: 2, Pages: 3, Total: 25, HasNext: true, HasPrev: true},
		})
	})

	c, _ := newTestClient(t, mux)

	q := url.Values{}
	q.Set("company", "Google")
	q.Set("page", "2")
	page, err := c.ListPosts(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "SWE at Google", page.Posts[0].Title)
	assert.True(t, page.Pagination.HasNext)
}

func TestDo_ServerDown_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	log := logging.NewTextLogger(io.Discard, slog.LevelDebug)
	c, err := NewHTTPClient(srv.URL+"/api", 2*time.Second, log)
	require.NoError(t, err)
	srv.Close()

	_, err = c.OverviewStats(context.Background())
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestUserMessage_Fallback(t *testing.T) {
	assert.Equal(t, "generic", UserMessage(errors.New("boom"), "generic"))
	assert.Equal(t, "generic", UserMessage(&Error{Status: 500}, "generic"))
}
