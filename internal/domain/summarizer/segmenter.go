package summarizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minSentenceLen = 30
	maxSentenceLen = 250
	maxTitleLen    = 150
	minBodyWords   = 8

	// dotMask stands in for periods that must not end a sentence. It sits in
	// the private use area so it cannot collide with real input.
	dotMask = "\uE000"
)

var (
	capitalDotPattern      = regexp.MustCompile(`\b([A-Z])\.`)
	abbreviationDotPattern = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr|vs|etc)\.`)
	paragraphBreakPattern  = regexp.MustCompile(`\n\s*\n`)
	sentenceBreakPattern   = regexp.MustCompile(`[.!?]\s+[A-Z]`)

	headingSuffixes = []string{"Report", "Update", "News", "Analysis"}
)

// Segment splits text into sentences tagged with their paragraph index.
// Headings, list fragments and malformed spans are dropped.
func Segment(text string) []Sentence {
	prepared := maskAbbreviations(text)

	var sentences []Sentence
	for paragraphIndex, paragraph := range paragraphBreakPattern.Split(prepared, -1) {
		for _, fragment := range splitFragments(paragraph) {
			fragment = strings.TrimSpace(strings.ReplaceAll(fragment, dotMask, "."))
			if !isSentence(fragment) {
				continue
			}
			sentences = append(sentences, Sentence{Text: fragment, ParagraphIndex: paragraphIndex})
		}
	}
	return sentences
}

func maskAbbreviations(text string) string {
	text = capitalDotPattern.ReplaceAllString(text, "${1}"+dotMask)
	return abbreviationDotPattern.ReplaceAllString(text, "${1}"+dotMask)
}

// splitFragments cuts a paragraph after every terminator that is followed by
// whitespace and an upper-case letter. The whitespace stays with the previous
// fragment and is trimmed later.
func splitFragments(paragraph string) []string {
	breaks := sentenceBreakPattern.FindAllStringIndex(paragraph, -1)
	if len(breaks) == 0 {
		return []string{paragraph}
	}
	fragments := make([]string, 0, len(breaks)+1)
	start := 0
	for _, loc := range breaks {
		// loc[1]-1 is the upper-case letter that opens the next sentence.
		end := loc[1] - 1
		fragments = append(fragments, paragraph[start:end])
		start = end
	}
	return append(fragments, paragraph[start:])
}

func isSentence(fragment string) bool {
	length := utf8.RuneCountInString(fragment)
	if length < minSentenceLen || length > maxSentenceLen {
		return false
	}
	if strings.IndexFunc(fragment, unicode.IsSpace) == -1 {
		return false
	}
	return !isTitle(fragment)
}

// isTitle leans towards treating short, capitalised or unterminated lines as
// headings.
func isTitle(line string) bool {
	if utf8.RuneCountInString(line) >= maxTitleLen {
		return false
	}
	for _, suffix := range headingSuffixes {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	if strings.ToUpper(line) == line || !strings.HasSuffix(line, ".") {
		return true
	}
	words := strings.Fields(line)
	if len(words) < minBodyWords {
		return true
	}
	for _, word := range words {
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.ToUpper(first) != first {
			return false
		}
	}
	return true
}
