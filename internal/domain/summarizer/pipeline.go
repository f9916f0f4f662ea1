package summarizer

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/yanqian/news-summarizer/pkg/errors"
)

// DefaultSentenceCount is used when callers do not ask for a specific length.
const DefaultSentenceCount = 3

const (
	// CodeSummarizationFailed marks any failure inside the extraction pipeline.
	CodeSummarizationFailed = "summarization_failed"

	summarizationFailedMessage = "failed to generate summary"
)

var errInvalidCount = errors.New("sentence count must be positive")

// scoreSentences is swapped in tests to exercise panic recovery.
var scoreSentences = ScoreAll

// Summarize returns the numSentences most representative sentences of text,
// joined by a single space in document order.
func Summarize(text string, numSentences int) (string, error) {
	result, err := Extract(text, numSentences)
	if err != nil {
		return "", err
	}
	return result.Summary, nil
}

// Extract runs segmentation, scoring and selection. Any failure is reported
// as a summarization failure and no partial result is returned.
func Extract(text string, numSentences int) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = summarizationFailed(fmt.Errorf("panic: %v", r))
		}
	}()

	sentences := Segment(text)
	if len(sentences) <= numSentences {
		selected := make([]ScoredSentence, len(sentences))
		for i, s := range sentences {
			selected[i] = ScoredSentence{Sentence: s, Index: i}
		}
		return Result{Summary: join(selected), Selected: selected, Candidates: len(sentences)}, nil
	}
	if numSentences <= 0 {
		return Result{}, summarizationFailed(errInvalidCount)
	}

	selected := Select(scoreSentences(sentences), numSentences)
	return Result{Summary: join(selected), Selected: selected, Candidates: len(sentences)}, nil
}

// IsSummarizationFailure reports whether err came out of the pipeline.
func IsSummarizationFailure(err error) bool {
	return apperrors.IsCode(err, CodeSummarizationFailed)
}

func summarizationFailed(cause error) error {
	return apperrors.Wrap(CodeSummarizationFailed, summarizationFailedMessage, cause)
}

func join(sentences []ScoredSentence) string {
	return strings.Join(sentenceTexts(sentences), " ")
}

// Analyze scores every candidate in text and marks the ones Extract would
// keep. Unlike Extract it always computes scores.
func Analyze(text string, numSentences int) (analysis Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			analysis = Analysis{}
			err = summarizationFailed(fmt.Errorf("panic: %v", r))
		}
	}()

	if numSentences <= 0 {
		return Analysis{}, summarizationFailed(errInvalidCount)
	}

	scored := scoreSentences(Segment(text))
	selected := scored
	if len(scored) > numSentences {
		selected = Select(scored, numSentences)
	}

	picked := make(map[int]struct{}, len(selected))
	for _, s := range selected {
		picked[s.Index] = struct{}{}
	}
	analyzed := make([]AnalyzedSentence, len(scored))
	for i, s := range scored {
		_, ok := picked[s.Index]
		analyzed[i] = AnalyzedSentence{ScoredSentence: s, Selected: ok}
	}
	return Analysis{Sentences: analyzed, Summary: join(selected), Requested: numSentences}, nil
}
