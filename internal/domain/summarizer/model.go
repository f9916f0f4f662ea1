package summarizer

import (
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/news-summarizer/pkg/metrics"
)

// Sentence is a text span that survived segmentation.
type Sentence struct {
	Text           string `json:"text"`
	ParagraphIndex int    `json:"paragraphIndex"`
}

// ScoredSentence is a sentence with its heuristic score and its position in
// the flattened sentence list.
type ScoredSentence struct {
	Sentence
	Score float64 `json:"score"`
	Index int     `json:"index"`
}

// Result is the outcome of a single pipeline run.
type Result struct {
	Summary    string
	Selected   []ScoredSentence
	Candidates int
}

// Config configures the summary service.
type Config struct {
	DefaultSentences int
	MaxSentences     int
	MaxInputLen      int
	CacheTTL         time.Duration
	ArchiveSources   bool
}

// Request represents the incoming summarization payload.
type Request struct {
	Text      string `json:"text"`
	Sentences int    `json:"sentences,omitempty"`
}

// Response is returned by the summarize endpoint.
type Response struct {
	ID         uuid.UUID            `json:"id"`
	Summary    string               `json:"summary"`
	Sentences  []string             `json:"sentences"`
	Stats      metrics.SummaryStats `json:"stats"`
	Cached     bool                 `json:"cached"`
	DurationMs int64                `json:"durationMs,omitempty"`
}

// Analysis exposes the scored candidate pool for a text.
type Analysis struct {
	Sentences []AnalyzedSentence `json:"sentences"`
	Summary   string             `json:"summary"`
	Requested int                `json:"requested"`
}

// AnalyzedSentence is a scored sentence annotated with the selector's decision.
type AnalyzedSentence struct {
	ScoredSentence
	Selected bool `json:"selected"`
}

// Record is the persisted form of a generated summary.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Digest     string    `json:"digest"`
	Summary    string    `json:"summary"`
	Requested  int       `json:"requested"`
	Selected   int       `json:"selected"`
	Candidates int       `json:"candidates"`
	SourceKey  string    `json:"sourceKey,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

