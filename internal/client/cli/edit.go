package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/client/draft"
	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/common"
)

// Edit fetches an existing post, offers each field with its current value as
// the default, and submits the updated draft. Rounds can be kept as they are
// or re-entered from the current ones.
func (a *App) Edit(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) < 1 {
		printlnFn("usage: edit <post-id>")
		return nil
	}
	id := args[0]

	post, err := a.client.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Post not found:", id)
			return err
		}
		printlnFn(api.UserMessage(err, "Failed to load post"))
		return err
	}

	if u := a.session.User(); u != nil && post.Author.ID != "" && post.Author.ID != u.ID {
		printlnFn("You can only edit your own posts")
		return nil
	}

	current := draftFromPost(post)
	updated, err := a.inputPostFields(current, true)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	editor := draft.FromRounds(post.Rounds)
	redo, err := GetChoice(a.reader, "Edit interview rounds?", []string{"no", "yes"}, a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	if redo == "yes" {
		editor = draft.NewEditor()
		if err := a.inputRounds(editor); err != nil {
			printlnFn("error:", err)
			return err
		}
	}

	rounds, err := editor.Build()
	if err != nil {
		if errors.Is(err, draft.ErrNoValidRounds) {
			printlnFn("Please add at least one interview round")
			return err
		}
		return err
	}
	updated.Rounds = rounds

	if _, err := a.client.UpdatePost(ctx, id, updated); err != nil {
		printlnFn(api.UserMessage(err, "Failed to update post"))
		return err
	}

	fmt.Fprintf(a.out, "Post updated successfully! [%s]\n", id)
	return nil
}

func draftFromPost(p *models.Post) models.PostDraft {
	return models.PostDraft{
		Title:          p.Title,
		Company:        p.Company,
		Position:       p.Position,
		Location:       p.Location,
		Salary:         p.Salary,
		ExperienceType: p.ExperienceType,
		Difficulty:     p.Difficulty,
		Outcome:        p.Outcome,
		Content:        p.Content,
	}
}
