package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	revenueSentence  = "Revenue grew 12% in the third quarter as demand for cloud services kept rising."
	boardSentence    = "The board will meet next week to discuss the schedule for the annual shareholder gathering."
	analystsSentence = "However, analysts expect growth to slow as higher interest rates weigh on corporate spending."
	policySentence   = "The company announced a new policy on emissions that applies to all of its factories."
)

var quarterlyBrief = strings.Join([]string{revenueSentence, boardSentence, analystsSentence, policySentence}, " ")

func TestSummarizeFavoursFiguresAndTrends(t *testing.T) {
	got, err := Summarize(quarterlyBrief, 2)
	require.NoError(t, err)
	require.Equal(t, revenueSentence+" "+analystsSentence, got)
}

func TestSummarizeReturnsEverythingWhenShort(t *testing.T) {
	text := "Heavy rain flooded several streets in the old town on Sunday evening.\n\n" +
		"Firefighters pumped water out of a dozen basements before midnight, officials said."

	got, err := Summarize(text, 2)
	require.NoError(t, err)
	require.Equal(t,
		"Heavy rain flooded several streets in the old town on Sunday evening. "+
			"Firefighters pumped water out of a dozen basements before midnight, officials said.",
		got)
}

func TestExtractSkipsScoringWhenShort(t *testing.T) {
	result, err := Extract(quarterlyBrief, 4)
	require.NoError(t, err)
	require.Equal(t, 4, result.Candidates)
	require.Equal(t, quarterlyBrief, result.Summary)
	for i, s := range result.Selected {
		require.Equal(t, i, s.Index)
		require.Zero(t, s.Score)
	}
}

func TestSummarizeDropsTitleLine(t *testing.T) {
	text := "QUARTERLY FINANCIAL REPORT\n\n" + quarterlyBrief

	got, err := Summarize(text, 3)
	require.NoError(t, err)
	require.NotContains(t, got, "QUARTERLY")
	require.NotEmpty(t, got)
}

func TestSummarizeKeepsDocumentOrder(t *testing.T) {
	text := quarterlyBrief + "\n\n" +
		"The regulator said the new directive will take effect next spring after a consultation.\n" +
		"Several smaller firms warned the rules could raise their compliance costs by 8%.\n\n" +
		"Shares of the company closed slightly higher on Friday after the announcement."

	result, err := Extract(text, 3)
	require.NoError(t, err)
	require.Len(t, result.Selected, 3)
	for i := 1; i < len(result.Selected); i++ {
		require.Less(t, result.Selected[i-1].Index, result.Selected[i].Index)
	}
	require.Equal(t, join(result.Selected), result.Summary)
}

func TestSummarizeIsDeterministic(t *testing.T) {
	first, err := Summarize(quarterlyBrief, 2)
	require.NoError(t, err)
	second, err := Summarize(quarterlyBrief, 2)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSummarizeEmptyInput(t *testing.T) {
	got, err := Summarize("", DefaultSentenceCount)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSummarizeRejectsNonPositiveCount(t *testing.T) {
	_, err := Summarize(quarterlyBrief, 0)
	require.Error(t, err)
	require.True(t, IsSummarizationFailure(err))
	require.EqualError(t, err, "failed to generate summary: sentence count must be positive")
}

func TestAnalyzeMarksSelection(t *testing.T) {
	analysis, err := Analyze(quarterlyBrief, 2)
	require.NoError(t, err)
	require.Len(t, analysis.Sentences, 4)
	require.Equal(t, 2, analysis.Requested)
	require.Equal(t, revenueSentence+" "+analystsSentence, analysis.Summary)

	var picked []int
	for _, s := range analysis.Sentences {
		require.NotZero(t, s.Score)
		if s.Selected {
			picked = append(picked, s.Index)
		}
	}
	require.Equal(t, []int{0, 2}, picked)
}

func TestAnalyzeRejectsNonPositiveCount(t *testing.T) {
	_, err := Analyze(quarterlyBrief, -1)
	require.True(t, IsSummarizationFailure(err))
}

func TestPipelineRecoversFromPanics(t *testing.T) {
	previous := scoreSentences
	scoreSentences = func([]Sentence) []ScoredSentence { panic("scoring exploded") }
	t.Cleanup(func() { scoreSentences = previous })

	result, err := Extract(quarterlyBrief, 2)
	require.True(t, IsSummarizationFailure(err))
	require.EqualError(t, err, "failed to generate summary: panic: scoring exploded")
	require.Equal(t, Result{}, result)

	analysis, err := Analyze(quarterlyBrief, 2)
	require.True(t, IsSummarizationFailure(err))
	require.Equal(t, Analysis{}, analysis)
}
