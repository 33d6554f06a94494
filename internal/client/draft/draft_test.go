package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeprep/ppclient/internal/client/models"
)

func TestNewEditor_StartsWithOneEmptyRound(t *testing.T) {
	e := NewEditor()

	require.Equal(t, 1, e.Len())
	r, ok := e.Round(0)
	require.True(t, ok)
	assert.Empty(t, r.RoundName)
	assert.Equal(t, []string{""}, r.Questions)
	assert.Equal(t, []string{""}, r.Tips)
}

func TestRemoveRound_LastRemainingIsNoOp(t *testing.T) {
	e := NewEditor()
	e.SetRoundName(0, "Technical")

	e.RemoveRound(0)

	require.Equal(t, 1, e.Len())
	r, _ := e.Round(0)
	assert.Equal(t, "Technical", r.RoundName, "sequence must be unchanged")
}

func TestAddRemoveRound(t *testing.T) {
	e := NewEditor()
	e.SetRoundName(0, "Screening")
	e.AddRound()
	e.SetRoundName(1, "Technical")
	e.AddRound()
	e.SetRoundName(2, "HR")
	require.Equal(t, 3, e.Len())

	e.RemoveRound(1)

	require.Equal(t, 2, e.Len())
	first, _ := e.Round(0)
	second, _ := e.Round(1)
	assert.Equal(t, "Screening", first.RoundName)
	assert.Equal(t, "HR", second.RoundName)
}

func TestRemoveRound_OutOfRangeIsNoOp(t *testing.T) {
	e := NewEditor()
	e.AddRound()

	e.RemoveRound(-1)
	e.RemoveRound(5)

	assert.Equal(t, 2, e.Len())
}

func TestQuestionAndTipSlots_PositionalEdits(t *testing.T) {
	e := NewEditor()

	e.SetQuestion(0, 0, "What is X?")
	e.AddQuestion(0)
	e.SetQuestion(0, 1, "What is Y?")
	e.AddTip(0)
	e.SetTip(0, 0, "Revise graphs")
	e.SetTip(0, 1, "Sleep well")

	r, _ := e.Round(0)
	assert.Equal(t, []string{"What is X?", "What is Y?"}, r.Questions)
	assert.Equal(t, []string{"Revise graphs", "Sleep well"}, r.Tips)

	e.RemoveQuestion(0, 0)
	r, _ = e.Round(0)
	assert.Equal(t, []string{"What is Y?"}, r.Questions)

	// Removing the last remaining slot is allowed for questions and tips.
	e.RemoveQuestion(0, 0)
	r, _ = e.Round(0)
	assert.Empty(t, r.Questions)
}

func TestBuild_RejectsAllBlankRounds(t *testing.T) {
	e := NewEditor()

	rounds, err := e.Build()
	assert.Nil(t, rounds)
	assert.ErrorIs(t, err, ErrNoValidRounds)
}

func TestBuild_WhitespaceOnlyNameIsBlank(t *testing.T) {
	e := NewEditor()
	e.SetRoundName(0, "   ")
	e.SetDescription(0, "Something")

	_, err := e.Build()
	assert.ErrorIs(t, err, ErrNoValidRounds)
}

func TestBuild_StripsBlankQuestionsAndTips(t *testing.T) {
	e := NewEditor()
	e.SetRoundName(0, "Technical")
	e.SetDescription(0, "DSA heavy round")
	e.SetQuestion(0, 0, "What is X?")
	e.AddQuestion(0)
	// second question stays blank, the single tip stays blank

	rounds, err := e.Build()
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, []string{"What is X?"}, rounds[0].Questions)
	assert.Empty(t, rounds[0].Tips)
}

func TestBuild_DropsIncompleteRounds(t *testing.T) {
	e := NewEditor()
	e.SetRoundName(0, "Technical")
	e.SetDescription(0, "Coding round")
	e.AddRound() // stays blank
	e.AddRound()
	e.SetRoundName(2, "HR") // description missing

	rounds, err := e.Build()
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, "Technical", rounds[0].RoundName)
}

func TestPrune_Idempotent(t *testing.T) {
	in := []models.Round{
		{RoundName: "Technical", Description: "desc", Questions: []string{"q1", " ", "q2"}, Tips: []string{""}},
		{RoundName: "", Description: "dropped", Questions: []string{"q"}, Tips: []string{"t"}},
		{RoundName: "HR", Description: "chat", Questions: []string{}, Tips: []string{"be honest"}},
	}

	once := Prune(in)
	twice := Prune(once)
	assert.Equal(t, once, twice)
}

func TestFromRounds_PadsMissingSlots(t *testing.T) {
	e := FromRounds([]models.Round{
		{RoundName: "Technical", Description: "desc"},
	})

	r, ok := e.Round(0)
	require.True(t, ok)
	assert.Equal(t, []string{""}, r.Questions)
	assert.Equal(t, []string{""}, r.Tips)
}

func TestFromRounds_Empty(t *testing.T) {
	e := FromRounds(nil)
	assert.Equal(t, 1, e.Len())
}

func TestRounds_ReturnsCopy(t *testing.T) {
	e := NewEditor()
	e.SetRoundName(0, "Technical")

	got := e.Rounds()
	got[0].RoundName = "mutated"
	got[0].Questions[0] = "mutated"

	r, _ := e.Round(0)
	assert.Equal(t, "Technical", r.RoundName)
	assert.Equal(t, "", r.Questions[0])
}
