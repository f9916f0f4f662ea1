package summarizer

import (
	"regexp"
	"strings"
)

const (
	bulletPenalty        = 5.0
	metricCategoryWeight = 2.0
	conceptLinkWeight    = 1.5
	positionWeightFactor = 0.15
	paragraphOpenBonus   = 0.5
	shortSentenceWords   = 10
	shortSentencePenalty = 1.0
	longSentenceWords    = 40
	longSentencePenalty  = 0.05
	redundancyThreshold  = 2
	redundancyMultiplier = 0.7
	regulatoryBonus      = 2.0
	impactStatementBonus = 1.5
	metricFinancial      = "financial"
	metricPercentage     = "percentage"
	metricScale          = "scale"
	metricOther          = "other"
)

// contentPattern is one weighted entry of the content scoring table.
type contentPattern struct {
	name    string
	pattern *regexp.Regexp
	weight  float64
}

var (
	metricPattern          = regexp.MustCompile(`\$?\d+(?:\.\d+)?(?:%|\s?(?:billion|million|thousand))?`)
	conceptLinkPattern     = regexp.MustCompile(`\b(?:while|however|despite|although|but|therefore)\b`)
	wordPattern            = regexp.MustCompile(`\w+`)
	regulatoryPattern      = regexp.MustCompile(`\b(?:regulation|policy|law|directive|resolution)\b`)
	impactStatementPattern = regexp.MustCompile(`\b(?:impact|effect|result|outcome|consequence)\b`)

	contentPatterns = []contentPattern{
		{name: "numbers", pattern: metricPattern, weight: 1.5},
		{name: "comparison", pattern: regexp.MustCompile(`increase|decrease|grew|growth|higher|lower|rise|fell|drop|surge`), weight: 1.2},
		{name: "future", pattern: regexp.MustCompile(`will|expect|forecast|project|predict|anticipate|plan|target|goal`), weight: 1.2},
		{name: "significance", pattern: regexp.MustCompile(`significant|major|critical|important|essential|key|crucial|vital`), weight: 1.0},
		{name: "impact", pattern: regexp.MustCompile(`affect|impact|influence|result|lead|cause|enable|improve`), weight: 1.0},
		{name: "analysis", pattern: regexp.MustCompile(`however|therefore|consequently|due to|because|despite|although`), weight: 0.8},
		{name: "action", pattern: regexp.MustCompile(`launch|implement|introduce|announce|establish|develop|create|begin`), weight: 0.5},
		{name: "stakeholder", pattern: regexp.MustCompile(`company|government|organization|industry|sector|market|customer|user`), weight: 0.5},
	}
)

// Score rates a sentence by summing independent heuristic signals. index is
// the sentence's position among total sentences of the document.
func Score(s Sentence, index, total int) float64 {
	text := strings.ToLower(s.Text)
	var score float64

	trimmed := strings.TrimSpace(s.Text)
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") {
		score -= bulletPenalty
	}

	score += float64(len(metricCategories(text))) * metricCategoryWeight
	score += float64(len(conceptLinkPattern.FindAllStringIndex(text, -1))) * conceptLinkWeight
	score += positionScore(index, total)

	// Granted to every sentence outside the first paragraph as well.
	if index == 0 || s.ParagraphIndex > 0 {
		score += paragraphOpenBonus
	}

	for _, cp := range contentPatterns {
		score += float64(len(cp.pattern.FindAllStringIndex(text, -1))) * cp.weight
	}

	words := len(strings.Fields(text))
	if words < shortSentenceWords {
		score -= shortSentencePenalty
	}
	if words > longSentenceWords {
		score -= float64(words-longSentenceWords) * longSentencePenalty
	}

	if regulatoryPattern.MatchString(text) {
		score += regulatoryBonus
	}
	if impactStatementPattern.MatchString(text) {
		score += impactStatementBonus
	}

	if hasDuplicateInformation(text) {
		score *= redundancyMultiplier
	}
	return score
}

// ScoreAll scores every sentence against its position in the list.
func ScoreAll(sentences []Sentence) []ScoredSentence {
	scored := make([]ScoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = ScoredSentence{
			Sentence: s,
			Score:    Score(s, i, len(sentences)),
			Index:    i,
		}
	}
	return scored
}

func positionScore(index, total int) float64 {
	if total <= 0 {
		return 1
	}
	return 1 - (float64(index)/float64(total))*positionWeightFactor
}

// metricCategories returns the distinct kinds of figures quoted in text.
func metricCategories(text string) map[string]struct{} {
	categories := make(map[string]struct{})
	for _, m := range metricPattern.FindAllString(text, -1) {
		categories[classifyMetric(m)] = struct{}{}
	}
	return categories
}

func classifyMetric(m string) string {
	switch {
	case strings.Contains(m, "$"):
		return metricFinancial
	case strings.Contains(m, "%"):
		return metricPercentage
	case strings.Contains(m, "billion"), strings.Contains(m, "million"):
		return metricScale
	default:
		return metricOther
	}
}

// hasDuplicateInformation reports whether more than redundancyThreshold
// word trigrams in text are repeats of an earlier trigram.
func hasDuplicateInformation(text string) bool {
	words := wordPattern.FindAllString(text, -1)
	if len(words) < 3 {
		return false
	}
	seen := make(map[string]struct{}, len(words)-2)
	duplicates := 0
	for i := 0; i+2 < len(words); i++ {
		trigram := words[i] + " " + words[i+1] + " " + words[i+2]
		if _, ok := seen[trigram]; ok {
			duplicates++
			continue
		}
		seen[trigram] = struct{}{}
	}
	return duplicates > redundancyThreshold
}
