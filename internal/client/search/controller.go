package search

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/logging"
)

// ErrStale marks a fetch whose result arrived after the filters had already
// moved on; the caller must discard it and keep the current view.
var ErrStale = errors.New("stale result discarded")

// PostsAPI is the slice of the backend surface the controller needs.
type PostsAPI interface {
	ListPosts(ctx context.Context, query url.Values) (*models.PostPage, error)
	SearchPosts(ctx context.Context, query url.Values) (*models.PostPage, error)
}

// Controller keeps filter state, the query-string mirror and the fetched
// result page mutually consistent.
//
// Every filter mutation bumps an internal generation counter; Fetch only
// applies a response issued for the current generation, so a slow response
// for an old filter state can never overwrite a newer one.
type Controller struct {
	api PostsAPI
	log logging.Logger

	mu         sync.Mutex
	filters    Filters
	gen        uint64
	posts      []models.Post
	pagination models.Pagination
}

// NewController starts a controller on the default (empty) filter state.
func NewController(api PostsAPI, log logging.Logger) *Controller {
	return &Controller{api: api, log: log, filters: Default()}
}

// NewControllerFromQuery starts a controller on the state encoded in
// rawQuery, the way a shared link reconstructs a search. A malformed query
// falls back to the default state.
func NewControllerFromQuery(api PostsAPI, log logging.Logger, rawQuery string) *Controller {
	c := NewController(api, log)
	if v, err := url.ParseQuery(rawQuery); err == nil {
		c.filters = Decode(v)
	}
	return c
}

// Filters returns the current filter state.
func (c *Controller) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// QueryString is the shareable mirror of the current filter state. Blank
// fields and the page never appear in it.
func (c *Controller) QueryString() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters.Encode().Encode()
}

// Set assigns one filter field, resetting the page to 1 and invalidating any
// in-flight fetch.
func (c *Controller) Set(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.filters.Set(name, value); err != nil {
		return err
	}
	c.gen++
	return nil
}

// Clear resets every field to its default and empties the query-string
// mirror.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = Default()
	c.gen++
}

// NextPage advances one page when the backend advertised one. Reports
// whether the page changed.
func (c *Controller) NextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pagination.HasNext {
		return false
	}
	c.filters.Page++
	c.gen++
	return true
}

// PrevPage steps one page back when the backend advertised one. Reports
// whether the page changed.
func (c *Controller) PrevPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pagination.HasPrev || c.filters.Page <= 1 {
		return false
	}
	c.filters.Page--
	c.gen++
	return true
}

// Fetch loads the page for the current filter state. The request goes to the
// full-text search endpoint when the free-text query is non-blank, otherwise
// to the plain listing; both accept the same parameter set.
//
// A result that comes back after the filters changed is dropped with
// ErrStale. On backend failure the previous results are kept and the error
// is returned for the view to surface.
func (c *Controller) Fetch(ctx context.Context) ([]models.Post, models.Pagination, error) {
	c.mu.Lock()
	gen := c.gen
	filters := c.filters
	c.mu.Unlock()

	query := filters.Query()

	var (
		page *models.PostPage
		err  error
	)
	if strings.TrimSpace(filters.Q) != "" {
		page, err = c.api.SearchPosts(ctx, query)
	} else {
		page, err = c.api.ListPosts(ctx, query)
	}
	if err != nil {
		return nil, models.Pagination{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		c.log.Debug(ctx, "dropping stale search result", "gen", gen, "current", c.gen)
		return nil, models.Pagination{}, ErrStale
	}
	c.posts = page.Posts
	c.pagination = page.Pagination
	return c.posts, c.pagination, nil
}

// Posts returns the most recently applied result page.
func (c *Controller) Posts() []models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.posts
}

// Pagination returns the paging envelope of the most recent result.
func (c *Controller) Pagination() models.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}
