package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/client/draft"
	"github.com/placeprep/ppclient/internal/client/models"
)

var (
	experienceChoices = []string{"full-time", "internship", "contract", "other"}
	difficultyChoices = []string{"medium", "easy", "hard"}
	outcomeChoices    = []string{"selected", "rejected", "pending", "didnt-attend"}
)

// Create walks the user through a new post: basic fields, then one or more
// interview rounds. The draft is validated locally before anything is sent;
// a draft without a single complete round is rejected with no network call.
func (a *App) Create(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	base, err := a.inputPostFields(models.PostDraft{
		ExperienceType: models.ExperienceType(experienceChoices[0]),
		Difficulty:     models.Difficulty(difficultyChoices[0]),
		Outcome:        models.Outcome(outcomeChoices[0]),
	}, false)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	editor := draft.NewEditor()
	if err := a.inputRounds(editor); err != nil {
		printlnFn("error:", err)
		return err
	}

	rounds, err := editor.Build()
	if err != nil {
		if errors.Is(err, draft.ErrNoValidRounds) {
			printlnFn("Please add at least one interview round")
			return err
		}
		return err
	}
	base.Rounds = rounds

	post, err := a.client.CreatePost(ctx, base)
	if err != nil {
		printlnFn(api.UserMessage(err, "Failed to create post"))
		return err
	}

	fmt.Fprintf(a.out, "Post created successfully! [%s]\n", post.ID)
	return nil
}

// inputPostFields collects the post's basic fields. In edit mode the current
// values are offered as defaults.
func (a *App) inputPostFields(current models.PostDraft, editing bool) (models.PostDraft, error) {
	var zero models.PostDraft

	text := func(prompt, cur string) (string, error) {
		if editing {
			return GetOptionalText(a.reader, prompt, cur, a.out)
		}
		return GetSimpleText(a.reader, prompt, a.out)
	}

	title, err := text("Post title", current.Title)
	if err != nil {
		return zero, err
	}
	company, err := text("Company", current.Company)
	if err != nil {
		return zero, err
	}
	position, err := text("Position applied for", current.Position)
	if err != nil {
		return zero, err
	}
	location, err := text("Location (optional)", current.Location)
	if err != nil {
		return zero, err
	}
	salary, err := text("Salary (optional)", current.Salary)
	if err != nil {
		return zero, err
	}

	expType, err := GetChoice(a.reader, "Experience type", orderedChoices(experienceChoices, string(current.ExperienceType)), a.out)
	if err != nil {
		return zero, err
	}
	difficulty, err := GetChoice(a.reader, "Difficulty", orderedChoices(difficultyChoices, string(current.Difficulty)), a.out)
	if err != nil {
		return zero, err
	}
	outcome, err := GetChoice(a.reader, "Outcome", orderedChoices(outcomeChoices, string(current.Outcome)), a.out)
	if err != nil {
		return zero, err
	}

	content, err := GetMultiline(a.reader, "Describe your overall experience:", a.out)
	if err != nil {
		return zero, err
	}
	if editing && content == "" {
		content = current.Content
	}

	return models.PostDraft{
		Title:          title,
		Company:        company,
		Position:       position,
		Location:       location,
		Salary:         salary,
		ExperienceType: models.ExperienceType(expType),
		Difficulty:     models.Difficulty(difficulty),
		Outcome:        models.Outcome(outcome),
		Content:        content,
	}, nil
}

// orderedChoices moves def to the front so GetChoice treats it as the
// default. Unknown defaults leave the order untouched.
func orderedChoices(choices []string, def string) []string {
	out := make([]string, 0, len(choices))
	out = append(out, choices...)
	for i, c := range out {
		if c == def && i != 0 {
			out[0], out[i] = out[i], out[0]
			break
		}
	}
	return out
}

// inputRounds fills the editor with interview rounds. The editor always
// starts with one empty round; each pass fills the last round and asks
// whether to add another.
func (a *App) inputRounds(editor *draft.Editor) error {
	for {
		i := editor.Len() - 1
		fmt.Fprintf(a.out, "--- Round %d ---\n", i+1)

		name, err := GetSimpleText(a.reader, "Round name (e.g., Technical, HR)", a.out)
		if err != nil {
			return err
		}
		editor.SetRoundName(i, name)

		description, err := GetMultiline(a.reader, "What happened in this round?", a.out)
		if err != nil {
			return err
		}
		editor.SetDescription(i, description)

		duration, err := GetSimpleText(a.reader, "Duration (optional, e.g., 45 minutes)", a.out)
		if err != nil {
			return err
		}
		editor.SetDuration(i, duration)

		questions, err := GetList(a.reader, "Questions asked", a.out)
		if err != nil {
			return err
		}
		for j, q := range questions {
			if j > 0 {
				editor.AddQuestion(i)
			}
			editor.SetQuestion(i, j, q)
		}

		tips, err := GetList(a.reader, "Tips for this round", a.out)
		if err != nil {
			return err
		}
		for j, tip := range tips {
			if j > 0 {
				editor.AddTip(i)
			}
			editor.SetTip(i, j, tip)
		}

		more, err := GetChoice(a.reader, "Add another round?", []string{"no", "yes"}, a.out)
		if err != nil {
			return err
		}
		if more != "yes" {
			return nil
		}
		editor.AddRound()
	}
}
