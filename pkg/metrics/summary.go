package metrics

import "strings"

// SummaryStats captures how much of the source a summary kept.
type SummaryStats struct {
	SourceWords      int     `json:"sourceWords"`
	SummaryWords     int     `json:"summaryWords"`
	CandidateCount   int     `json:"candidateCount"`
	SelectedCount    int     `json:"selectedCount"`
	CompressionRatio float64 `json:"compressionRatio"`
}

// NewSummaryStats derives stats from the source and summary texts.
func NewSummaryStats(source, summary string, candidates, selected int) SummaryStats {
	stats := SummaryStats{
		SourceWords:    len(strings.Fields(source)),
		SummaryWords:   len(strings.Fields(summary)),
		CandidateCount: candidates,
		SelectedCount:  selected,
	}
	if stats.SourceWords > 0 {
		stats.CompressionRatio = float64(stats.SummaryWords) / float64(stats.SourceWords)
	}
	return stats
}
