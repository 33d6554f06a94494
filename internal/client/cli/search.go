package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/client/search"
	"github.com/placeprep/ppclient/internal/format"
)

// Search sets the free-text query (when arguments are given) and fetches the
// current result page.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if err := a.search.Set("q", strings.Join(args, " ")); err != nil {
			printlnFn("error:", err)
			return err
		}
	}
	return a.fetchResults(ctx)
}

// Filter assigns one filter field: filter <field> <value...>. An omitted
// value clears the field. Any change resets paging to the first page.
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: filter <q|company|position|difficulty|experienceType|outcome> [value]")
		return nil
	}
	value := strings.Join(args[1:], " ")
	if err := a.search.Set(args[0], value); err != nil {
		printlnFn("error:", err)
		return err
	}
	return a.fetchResults(ctx)
}

// Next moves to the next result page when the backend advertised one.
func (a *App) Next(ctx context.Context) error {
	if !a.search.NextPage() {
		printlnFn("Already on the last page")
		return nil
	}
	return a.fetchResults(ctx)
}

// Prev moves back one result page when possible.
func (a *App) Prev(ctx context.Context) error {
	if !a.search.PrevPage() {
		printlnFn("Already on the first page")
		return nil
	}
	return a.fetchResults(ctx)
}

// ClearFilters resets every filter and the query-string mirror.
func (a *App) ClearFilters(ctx context.Context) error {
	a.search.Clear()
	printlnFn("Filters cleared")
	return a.fetchResults(ctx)
}

func (a *App) fetchResults(ctx context.Context) error {
	posts, pagination, err := a.search.Fetch(ctx)
	if err != nil {
		if errors.Is(err, search.ErrStale) {
			return nil
		}
		printlnFn(api.UserMessage(err, "Could not load posts"))
		return err
	}

	if qs := a.search.QueryString(); qs != "" {
		fmt.Fprintf(a.out, "filters: %s\n", qs)
	}

	if len(posts) == 0 {
		printlnFn("No results found. Try adjusting your filters ('clear' resets them).")
		return nil
	}

	fmt.Fprintf(a.out, "%s results found (page %d of %d)\n",
		format.NumberWithCommas(float64(pagination.Total)), pagination.Current, pagination.Pages)
	for _, p := range posts {
		renderPostLine(a.out, p)
	}
	return nil
}
