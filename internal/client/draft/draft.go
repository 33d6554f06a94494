// Package draft maintains the in-editor representation of a post's interview
// rounds and turns it into a submission payload. Rounds, questions and tips
// are ordered sequences addressed by position; draft sub-items carry no
// identity of their own.
package draft

import (
	"errors"
	"strings"

	"github.com/placeprep/ppclient/internal/client/models"
)

// ErrNoValidRounds is returned by Build when no round survives pruning.
var ErrNoValidRounds = errors.New("at least one round needs a name and a description")

// emptyRound is the shape every fresh round starts with: one blank question
// slot and one blank tip slot.
func emptyRound() models.Round {
	return models.Round{Questions: []string{""}, Tips: []string{""}}
}

// Editor holds the ordered round sequence under edit.
// The zero value is unusable; construct with NewEditor or FromRounds.
type Editor struct {
	rounds []models.Round
}

// NewEditor starts an editor with a single empty round.
func NewEditor() *Editor {
	return &Editor{rounds: []models.Round{emptyRound()}}
}

// FromRounds starts an editor pre-populated with existing rounds (the edit
// flow). Rounds without question or tip slots get one blank slot so the
// editor invariant of at least one slot per list holds. An empty input
// behaves like NewEditor.
func FromRounds(rounds []models.Round) *Editor {
	if len(rounds) == 0 {
		return NewEditor()
	}
	out := make([]models.Round, len(rounds))
	for i, r := range rounds {
		out[i] = r
		out[i].Questions = append([]string(nil), r.Questions...)
		out[i].Tips = append([]string(nil), r.Tips...)
		if len(out[i].Questions) == 0 {
			out[i].Questions = []string{""}
		}
		if len(out[i].Tips) == 0 {
			out[i].Tips = []string{""}
		}
	}
	return &Editor{rounds: out}
}

// Len reports the number of rounds in the editor.
func (e *Editor) Len() int { return len(e.rounds) }

// Rounds returns a copy of the current round sequence.
func (e *Editor) Rounds() []models.Round {
	out := make([]models.Round, len(e.rounds))
	for i, r := range e.rounds {
		out[i] = r
		out[i].Questions = append([]string(nil), r.Questions...)
		out[i].Tips = append([]string(nil), r.Tips...)
	}
	return out
}

// Round returns a copy of the round at index i, and whether i was valid.
func (e *Editor) Round(i int) (models.Round, bool) {
	if i < 0 || i >= len(e.rounds) {
		return models.Round{}, false
	}
	r := e.rounds[i]
	r.Questions = append([]string(nil), e.rounds[i].Questions...)
	r.Tips = append([]string(nil), e.rounds[i].Tips...)
	return r, true
}

// AddRound appends a new empty round.
func (e *Editor) AddRound() {
	e.rounds = append(e.rounds, emptyRound())
}

// RemoveRound removes the round at index i. Removing the last remaining
// round is a no-op: the editor always holds at least one round.
func (e *Editor) RemoveRound(i int) {
	if len(e.rounds) <= 1 || i < 0 || i >= len(e.rounds) {
		return
	}
	e.rounds = append(e.rounds[:i], e.rounds[i+1:]...)
}

// SetRoundName replaces the name of the round at index i.
func (e *Editor) SetRoundName(i int, name string) {
	if i >= 0 && i < len(e.rounds) {
		e.rounds[i].RoundName = name
	}
}

// SetDescription replaces the description of the round at index i.
func (e *Editor) SetDescription(i int, description string) {
	if i >= 0 && i < len(e.rounds) {
		e.rounds[i].Description = description
	}
}

// SetDuration replaces the duration of the round at index i.
func (e *Editor) SetDuration(i int, duration string) {
	if i >= 0 && i < len(e.rounds) {
		e.rounds[i].Duration = duration
	}
}

// AddQuestion appends a blank question slot to round i.
func (e *Editor) AddQuestion(i int) {
	if i >= 0 && i < len(e.rounds) {
		e.rounds[i].Questions = append(e.rounds[i].Questions, "")
	}
}

// RemoveQuestion removes question j from round i. Unlike rounds, removing
// the last slot is allowed; Build handles emptiness.
func (e *Editor) RemoveQuestion(i, j int) {
	if i < 0 || i >= len(e.rounds) {
		return
	}
	q := e.rounds[i].Questions
	if j < 0 || j >= len(q) {
		return
	}
	e.rounds[i].Questions = append(q[:j], q[j+1:]...)
}

// SetQuestion replaces question j of round i.
func (e *Editor) SetQuestion(i, j int, value string) {
	if i < 0 || i >= len(e.rounds) {
		return
	}
	if j >= 0 && j < len(e.rounds[i].Questions) {
		e.rounds[i].Questions[j] = value
	}
}

// AddTip appends a blank tip slot to round i.
func (e *Editor) AddTip(i int) {
	if i >= 0 && i < len(e.rounds) {
		e.rounds[i].Tips = append(e.rounds[i].Tips, "")
	}
}

// RemoveTip removes tip j from round i.
func (e *Editor) RemoveTip(i, j int) {
	if i < 0 || i >= len(e.rounds) {
		return
	}
	tips := e.rounds[i].Tips
	if j < 0 || j >= len(tips) {
		return
	}
	e.rounds[i].Tips = append(tips[:j], tips[j+1:]...)
}

// SetTip replaces tip j of round i.
func (e *Editor) SetTip(i, j int, value string) {
	if i < 0 || i >= len(e.rounds) {
		return
	}
	if j >= 0 && j < len(e.rounds[i].Tips) {
		e.rounds[i].Tips[j] = value
	}
}

// Prune filters rounds for submission: rounds whose name or description is
// blank are dropped, and blank questions and tips are stripped from the
// survivors. Prune is idempotent.
func Prune(rounds []models.Round) []models.Round {
	out := make([]models.Round, 0, len(rounds))
	for _, r := range rounds {
		if strings.TrimSpace(r.RoundName) == "" || strings.TrimSpace(r.Description) == "" {
			continue
		}
		kept := r
		kept.Questions = keepNonBlank(r.Questions)
		kept.Tips = keepNonBlank(r.Tips)
		out = append(out, kept)
	}
	return out
}

func keepNonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Build produces the submission-ready round sequence. It fails with
// ErrNoValidRounds when pruning leaves nothing, so callers can reject the
// draft before any network call.
func (e *Editor) Build() ([]models.Round, error) {
	pruned := Prune(e.rounds)
	if len(pruned) == 0 {
		return nil, ErrNoValidRounds
	}
	return pruned, nil
}
