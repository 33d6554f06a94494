package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/logging"
)

type fakePostsAPI struct {
	mu sync.Mutex

	listCalls   []url.Values
	searchCalls []url.Values

	page *models.PostPage
	err  error

	// optional hook running before the response is returned
	beforeReturn func()
}

func (f *fakePostsAPI) ListPosts(ctx context.Context, q url.Values) (*models.PostPage, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, q)
	f.mu.Unlock()
	if f.beforeReturn != nil {
		f.beforeReturn()
	}
	return f.page, f.err
}

func (f *fakePostsAPI) SearchPosts(ctx context.Context, q url.Values) (*models.PostPage, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, q)
	f.mu.Unlock()
	if f.beforeReturn != nil {
		f.beforeReturn()
	}
	return f.page, f.err
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func somePage() *models.PostPage {
	return &models.PostPage{
		Posts:      []models.Post{{ID: "p1", Title: "SDE at Google"}},
		Pagination: models.Pagination{Current: 1, Pages: 2, Total: 12, HasNext: true},
	}
}

func TestFetch_RoutesToListWithoutQuery(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewController(api, testLogger())
	require.NoError(t, c.Set("company", "Google"))

	posts, _, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)

	assert.Len(t, api.listCalls, 1)
	assert.Empty(t, api.searchCalls)
	assert.Equal(t, "Google", api.listCalls[0].Get("company"))
}

func TestFetch_RoutesToSearchWithQuery(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewController(api, testLogger())
	require.NoError(t, c.Set("q", "system design"))

	_, _, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Empty(t, api.listCalls)
	assert.Len(t, api.searchCalls, 1)
}

func TestFetch_WhitespaceQueryUsesListing(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewController(api, testLogger())
	require.NoError(t, c.Set("q", "   "))

	_, _, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Len(t, api.listCalls, 1)
	assert.Empty(t, api.searchCalls)
}

func TestFetch_ErrorKeepsPreviousResults(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewController(api, testLogger())

	_, _, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, c.Posts(), 1)

	api.err = errors.New("boom")
	_, _, err = c.Fetch(context.Background())
	require.Error(t, err)
	assert.Len(t, c.Posts(), 1, "previous results must survive a failed fetch")
}

func TestFetch_StaleResultDiscarded(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewController(api, testLogger())

	// The filters move on while the request is in flight.
	api.beforeReturn = func() {
		api.beforeReturn = nil
		require.NoError(t, c.Set("company", "Amazon"))
	}

	_, _, err := c.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrStale)
	assert.Empty(t, c.Posts(), "stale result must not be applied")
}

func TestPaging_BoundedByBackendFlags(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewController(api, testLogger())

	// Nothing fetched yet: neither direction is advertised.
	assert.False(t, c.NextPage())
	assert.False(t, c.PrevPage())

	_, _, err := c.Fetch(context.Background())
	require.NoError(t, err)

	require.True(t, c.NextPage())
	assert.Equal(t, 2, c.Filters().Page)

	// Backend said there is no previous page from the first response;
	// paging state now reflects page 2 but flags are from the last fetch.
	api.page = &models.PostPage{
		Posts:      []models.Post{{ID: "p2"}},
		Pagination: models.Pagination{Current: 2, Pages: 2, Total: 12, HasPrev: true},
	}
	_, _, err = c.Fetch(context.Background())
	require.NoError(t, err)

	assert.False(t, c.NextPage(), "no next page advertised")
	require.True(t, c.PrevPage())
	assert.Equal(t, 1, c.Filters().Page)
}

func TestPaging_PreservesOtherFilters(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewController(api, testLogger())
	require.NoError(t, c.Set("company", "Google"))
	require.NoError(t, c.Set("difficulty", "hard"))

	_, _, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.True(t, c.NextPage())

	f := c.Filters()
	assert.Equal(t, "Google", f.Company)
	assert.Equal(t, "hard", f.Difficulty)
	assert.Equal(t, 2, f.Page)
}

func TestClear_ResetsStateAndMirror(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewController(api, testLogger())
	require.NoError(t, c.Set("company", "Google"))
	require.NoError(t, c.Set("outcome", "selected"))
	require.NotEmpty(t, c.QueryString())

	c.Clear()

	assert.Equal(t, Default(), c.Filters())
	assert.Empty(t, c.QueryString())
}

func TestNewControllerFromQuery_ReconstructsState(t *testing.T) {
	api := &fakePostsAPI{page: somePage()}
	c := NewControllerFromQuery(api, testLogger(), "company=Google&difficulty=hard")

	f := c.Filters()
	assert.Equal(t, "Google", f.Company)
	assert.Equal(t, "hard", f.Difficulty)
	assert.Equal(t, 1, f.Page)
}
