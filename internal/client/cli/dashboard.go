package cli

import (
	"context"
	"fmt"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/format"
)

// Dashboard renders the authenticated user's aggregate view: totals, recent
// posts, the most liked post, recent activity and achievements.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	d, err := a.client.Dashboard(ctx, a.session.User().ID)
	if err != nil {
		printlnFn(api.UserMessage(err, "Could not load the dashboard"))
		return err
	}

	fmt.Fprintf(a.out, "Posts: %s  Likes received: %s  Comments received: %s  Views: %s\n",
		format.Number(float64(d.Stats.TotalPosts)),
		format.Number(float64(d.Stats.TotalLikesReceived)),
		format.Number(float64(d.Stats.TotalCommentsReceived)),
		format.Number(float64(d.Stats.TotalViews)))

	if d.MostLikedPost != nil {
		fmt.Fprintln(a.out, "\nMost liked post:")
		renderPostLine(a.out, *d.MostLikedPost)
	}

	if len(d.RecentPosts) > 0 {
		fmt.Fprintln(a.out, "\nYour recent posts ('edit <id>' or 'delete <id>' to manage):")
		for _, p := range d.RecentPosts {
			renderPostLine(a.out, p)
		}
	}

	if len(d.RecentActivity) > 0 {
		fmt.Fprintln(a.out, "\nRecent activity:")
		for _, p := range d.RecentActivity {
			fmt.Fprintf(a.out, "  %s (%s) by %s\n", p.Title, p.Company, p.Author.Name)
		}
	}

	fmt.Fprintln(a.out, "\nAchievements:")
	fmt.Fprintf(a.out, "  Average post score: %s/100\n", format.Number(d.Achievements.AveragePostScore))
	fmt.Fprintf(a.out, "  Highlighted posts: %d\n", d.Achievements.HighlightedPosts)
	fmt.Fprintf(a.out, "  Total interactions: %s\n",
		format.Number(float64(d.Stats.TotalLikesReceived+d.Stats.TotalCommentsReceived)))

	return nil
}
