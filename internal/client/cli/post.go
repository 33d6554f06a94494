package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/common"
)

// Show fetches and renders a single post with rounds and comments.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <id>")
		return nil
	}

	post, err := a.client.GetPost(ctx, args[0])
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Post not found")
			return err
		}
		printlnFn(api.UserMessage(err, "Could not load the post"))
		return err
	}

	renderPost(a.out, post)
	renderComments(a.out, post.Comments)
	return nil
}

// Like toggles the like on a post and prints the resulting count.
func (a *App) Like(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: like <id>")
		return nil
	}

	res, err := a.client.ToggleLike(ctx, args[0])
	if err != nil {
		printlnFn(api.UserMessage(err, "Could not update the like"))
		return err
	}

	if res.IsLiked {
		fmt.Fprintf(a.out, "Liked (%d likes now)\n", res.LikesCount)
	} else {
		fmt.Fprintf(a.out, "Like removed (%d likes now)\n", res.LikesCount)
	}
	return nil
}

// Comment adds a comment to a post: comment <id> [text]. Without inline text
// the body is prompted for.
func (a *App) Comment(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: comment <id> [text]")
		return nil
	}

	content := strings.Join(args[1:], " ")
	if content == "" {
		var err error
		content, err = GetMultiline(a.reader, "Enter your comment:", a.out)
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(content) == "" {
		printlnFn("Comment cannot be empty")
		return nil
	}

	comment, err := a.client.AddComment(ctx, args[0], content)
	if err != nil {
		printlnFn(api.UserMessage(err, "Could not add the comment"))
		return err
	}

	fmt.Fprintf(a.out, "Comment added [%s]\n", comment.ID)
	return nil
}

// DeleteComment removes one of the user's comments. The prior state is kept
// when the backend refuses.
func (a *App) DeleteComment(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) < 2 {
		printlnFn("Usage: delcomment <postId> <commentId>")
		return nil
	}

	if err := a.client.DeleteComment(ctx, args[0], args[1]); err != nil {
		printlnFn(api.UserMessage(err, "Could not delete the comment"))
		return err
	}

	printlnFn("Comment deleted")
	return nil
}

// DeletePost removes one of the user's posts after confirmation.
func (a *App) DeletePost(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: delete <id>")
		return nil
	}

	answer, err := GetChoice(a.reader, "Delete this post permanently?", []string{"no", "yes"}, a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.client.DeletePost(ctx, args[0]); err != nil {
		printlnFn(api.UserMessage(err, "Could not delete the post"))
		return err
	}

	printlnFn("Post deleted")
	return nil
}
