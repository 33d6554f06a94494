package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/client/models"
)

// Profile renders another user's public page: profile plus their posts.
// Both fetches run concurrently; either failing fails the view.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: profile <userId>")
		return nil
	}
	userID := args[0]

	var (
		profile *models.PublicProfile
		posts   []models.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile, err = a.client.UserProfile(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		posts, err = a.client.UserPosts(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		printlnFn(api.UserMessage(err, "Could not load the profile"))
		return err
	}

	u := profile.User
	fmt.Fprintf(a.out, "%s\n", u.Name)
	if u.College != "" {
		fmt.Fprintf(a.out, "%s", u.College)
		if u.Branch != "" {
			fmt.Fprintf(a.out, ", %s", u.Branch)
		}
		if u.GraduationYear != 0 {
			fmt.Fprintf(a.out, " (class of %d)", u.GraduationYear)
		}
		fmt.Fprintln(a.out)
	}
	if u.Bio != "" {
		fmt.Fprintln(a.out, u.Bio)
	}
	fmt.Fprintf(a.out, "%d posts, %d likes received, %d comments received\n",
		u.PostsCount, u.LikesReceived, u.CommentsCount)

	if len(posts) > 0 {
		fmt.Fprintln(a.out, "\nExperiences shared:")
		for _, p := range posts {
			renderPostLine(a.out, p)
		}
	}
	return nil
}
