package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/format"
)

// Home renders the landing view: platform overview numbers, trending
// companies, featured posts and the latest posts.
//
// The four fetches run concurrently and the view waits for all of them; a
// single failure fails the batch and the view degrades to zeroed overview
// numbers instead of partial data.
func (a *App) Home(ctx context.Context) error {
	var (
		featured []models.Post
		recent   *models.PostPage
		trending *models.TrendingStats
		overview *models.OverviewStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		featured, err = a.client.FeaturedPosts(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = a.client.ListPosts(gctx, url.Values{"limit": {"6"}})
		return err
	})
	g.Go(func() (err error) {
		trending, err = a.client.TrendingStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview, err = a.client.OverviewStats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		a.log.Warn(ctx, "home data fetch failed", "err", err)
		printlnFn("Could not load the home view right now")
		renderOverview(a.out, &models.OverviewStats{})
		return err
	}

	renderOverview(a.out, overview)

	if trending != nil && len(trending.TrendingCompanies) > 0 {
		fmt.Fprintln(a.out, "\nTrending companies:")
		for _, cs := range trending.TrendingCompanies {
			fmt.Fprintf(a.out, "  %s (%s posts, %s success rate)\n",
				cs.Company, format.Number(float64(cs.Count)), format.Percentage(cs.SuccessRate, 0))
		}
	}

	if len(featured) > 0 {
		fmt.Fprintln(a.out, "\nFeatured experiences:")
		for _, p := range featured {
			renderPostLine(a.out, p)
		}
	}

	if recent != nil && len(recent.Posts) > 0 {
		fmt.Fprintln(a.out, "\nRecent experiences:")
		for _, p := range recent.Posts {
			renderPostLine(a.out, p)
		}
	}

	return nil
}

func renderOverview(w io.Writer, s *models.OverviewStats) {
	fmt.Fprintf(w, "%s students, %s experiences from %s companies, %s success rate\n",
		format.NumberWithCommas(float64(s.TotalUsers)),
		format.NumberWithCommas(float64(s.TotalExperiences)),
		format.NumberWithCommas(float64(s.UniqueCompanies)),
		format.Percentage(s.SuccessRate, 0))
}
