package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		sentence Sentence
		index    int
		total    int
		want     float64
	}{
		{
			name:     "regulatory mention",
			sentence: Sentence{Text: "The new policy on emissions was debated by the council for several hours."},
			index:    0,
			total:    1,
			want:     3.5,
		},
		{
			name:     "figures and trends",
			sentence: Sentence{Text: "Revenue grew 12% to $4 million while costs fell sharply.", ParagraphIndex: 1},
			index:    2,
			total:    4,
			want:     12.325,
		},
		{
			name:     "redundancy applied after every bonus",
			sentence: Sentence{Text: "The policy on emissions the policy on emissions the policy on emissions passed."},
			index:    0,
			total:    1,
			want:     2.45,
		},
		{
			name:     "short sentence penalty",
			sentence: Sentence{Text: "The mayor opened a small bakery on Elm Street."},
			index:    0,
			total:    1,
			want:     0.5,
		},
		{
			name: "long sentence penalty per extra word",
			sentence: Sentence{Text: "On a quiet morning the old ferry carried farmers, teachers, nurses, painters and two sleepy dogs " +
				"across the wide brown river, past the crooked lighthouse, the abandoned mill, the fishing huts, " +
				"the tall reeds and a pair of herons standing in shallow water near the northern bank."},
			index: 1,
			total: 2,
			want:  0.575,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tt.want, Score(tt.sentence, tt.index, tt.total), 1e-9)
		})
	}
}

func TestScoreBulletPenalty(t *testing.T) {
	base := "Revenue in the region grew strongly during the quarter as demand recovered across markets."
	plain := Score(Sentence{Text: base}, 1, 4)

	for _, prefix := range []string{"- ", "• "} {
		bulleted := Score(Sentence{Text: prefix + base}, 1, 4)
		require.InDelta(t, 5.0, plain-bulleted, 1e-9, "prefix %q", prefix)
	}
}

func TestScoreLengthPenalties(t *testing.T) {
	nineWords := Score(Sentence{Text: "The mayor opened a small bakery on Elm Street."}, 0, 1)
	twelveWords := Score(Sentence{Text: "The mayor opened a small bakery on Elm Street near the station."}, 0, 1)
	require.InDelta(t, 1.0, twelveWords-nineWords, 1e-9)

	words := strings.Fields("alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike " +
		"november oscar papa quebec romeo sierra tango uniform victor walnut xray yankee zulu " +
		"amber basil cedar dune ember fjord grove heath iris jasper kelp loch moss nook opal pine")
	require.Len(t, words, 42)
	forty := Score(Sentence{Text: strings.Join(words[:40], " ") + "."}, 0, 1)
	fortyTwo := Score(Sentence{Text: strings.Join(words, " ") + "."}, 0, 1)
	require.InDelta(t, 0.1, forty-fortyTwo, 1e-9)
}

func TestScorePositionDecay(t *testing.T) {
	s := Sentence{Text: "The council will vote on the revised budget proposal later this month."}
	first := Score(s, 1, 10)
	last := Score(s, 9, 10)
	require.InDelta(t, 0.12, first-last, 1e-9)
}

func TestScoreParagraphBonus(t *testing.T) {
	text := "The council will vote on the revised budget proposal later this month."
	inFirst := Score(Sentence{Text: text, ParagraphIndex: 0}, 3, 10)
	inLater := Score(Sentence{Text: text, ParagraphIndex: 2}, 3, 10)
	require.InDelta(t, 0.5, inLater-inFirst, 1e-9)
}

func TestMetricCategoriesCountKinds(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "revenue grew 5% to $5%", want: 2},
		{text: "revenue grew 5% and 5% and 5% to $5%", want: 2},
		{text: "a $12 deal, 45% margin, 3 million users and 7 stores", want: 4},
		{text: "12 thousand jobs and 40 offices", want: 1},
		{text: "no figures here", want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			require.Len(t, metricCategories(tt.text), tt.want)
		})
	}
}

func TestClassifyMetric(t *testing.T) {
	require.Equal(t, metricFinancial, classifyMetric("$12"))
	require.Equal(t, metricPercentage, classifyMetric("45%"))
	require.Equal(t, metricScale, classifyMetric("3 million"))
	require.Equal(t, metricScale, classifyMetric("2billion"))
	require.Equal(t, metricOther, classifyMetric("7"))
}

func TestMetricDiversityIgnoresRepetition(t *testing.T) {
	once := Sentence{Text: "Analysts noted that revenue grew 5% to $5% over the previous reporting period."}
	twice := Sentence{Text: "Analysts noted that revenue grew 5% and 5% to $5% over the previous reporting period."}
	require.Equal(t, len(metricCategories(once.Text)), len(metricCategories(twice.Text)))
}

func TestConceptLinksAreWholeWords(t *testing.T) {
	require.Len(t, conceptLinkPattern.FindAllString("but the butler stayed while others left", -1), 2)
	require.Empty(t, conceptLinkPattern.FindAllString("a meanwhile buttress", -1))
}

func TestHasDuplicateInformation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "plain sentence", text: "the council approved the budget after a long debate", want: false},
		{name: "two repeats", text: "a b c a b c a", want: false},
		{name: "three repeats", text: "a b c a b c a b", want: true},
		{name: "heavy repetition", text: "the company said the company said the company said the company said", want: true},
		{name: "too short", text: "a b", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, hasDuplicateInformation(tt.text))
		})
	}
}

func TestScoreAllAssignsSequenceIndexes(t *testing.T) {
	sentences := []Sentence{
		{Text: "The first sentence describes the budget agreed by the council."},
		{Text: "The second sentence explains the vote held later that evening.", ParagraphIndex: 1},
	}
	scored := ScoreAll(sentences)
	require.Len(t, scored, 2)
	for i, s := range scored {
		require.Equal(t, i, s.Index)
		require.Equal(t, sentences[i], s.Sentence)
		require.InDelta(t, Score(sentences[i], i, len(sentences)), s.Score, 1e-12)
	}
}
