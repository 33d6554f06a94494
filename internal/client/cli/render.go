package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/format"
)

// renderPostLine prints a one-line post summary for lists.
func renderPostLine(w io.Writer, p models.Post) {
	fmt.Fprintf(w, "  [%s] %s - %s, %s (%s, %s)\n",
		p.ID, p.Title, p.Company, p.Position, p.Difficulty, p.Outcome)
	fmt.Fprintf(w, "        %s likes, %s comments, %s views - by %s, %s\n",
		format.Number(float64(p.LikesCount)),
		format.Number(float64(p.CommentsCount)),
		format.Number(float64(p.Views)),
		p.Author.Name,
		format.RelativeTime(p.CreatedAt, time.Now()))
}

// renderPost prints a full post with its rounds.
func renderPost(w io.Writer, p *models.Post) {
	fmt.Fprintf(w, "%s\n", p.Title)
	fmt.Fprintf(w, "%s - %s", p.Company, p.Position)
	if p.Location != "" {
		fmt.Fprintf(w, " (%s)", p.Location)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "type: %s, difficulty: %s, outcome: %s", p.ExperienceType, p.Difficulty, p.Outcome)
	if p.Salary != "" {
		fmt.Fprintf(w, ", salary: %s", p.Salary)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "by %s on %s\n\n", p.Author.Name, format.Date(p.CreatedAt))
	fmt.Fprintln(w, p.Content)

	for i, r := range p.Rounds {
		fmt.Fprintf(w, "\nRound %d: %s", i+1, r.RoundName)
		if r.Duration != "" {
			fmt.Fprintf(w, " (%s)", r.Duration)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Description)
		if len(r.Questions) > 0 {
			fmt.Fprintln(w, "  Questions:")
			for _, q := range r.Questions {
				fmt.Fprintf(w, "   - %s\n", q)
			}
		}
		if len(r.Tips) > 0 {
			fmt.Fprintln(w, "  Tips:")
			for _, tip := range r.Tips {
				fmt.Fprintf(w, "   - %s\n", tip)
			}
		}
	}

	liked := ""
	if p.IsLiked {
		liked = " (liked by you)"
	}
	fmt.Fprintf(w, "\n%s likes%s, %s views\n",
		format.Number(float64(p.LikesCount)), liked, format.Number(float64(p.Views)))
}

// renderComments prints a post's comment thread.
func renderComments(w io.Writer, comments []models.Comment) {
	if len(comments) == 0 {
		return
	}
	fmt.Fprintf(w, "\nComments (%d):\n", len(comments))
	for _, c := range comments {
		fmt.Fprintf(w, "  [%s] %s - %s, %s\n",
			c.ID, c.Content, c.Author.Name, format.RelativeTime(c.CreatedAt, time.Now()))
	}
}
