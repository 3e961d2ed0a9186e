// Package sentiment labels free text as Positive, Negative or Neutral by
// counting lexicon hits.
package sentiment

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// MatchMode selects how lexicon words are found in text.
type MatchMode string

const (
	// MatchSubstring counts a word when it appears anywhere in the text,
	// including inside longer words ("sad" hits "sadly").
	MatchSubstring MatchMode = "substring"

	// MatchWord counts a word only when it appears as a whole token.
	MatchWord MatchMode = "word"
)

// DefaultPositiveWords and DefaultNegativeWords are the stock lexicons.
var (
	DefaultPositiveWords = []string{"good", "great", "excellent", "happy", "amazing", "love"}
	DefaultNegativeWords = []string{"bad", "poor", "terrible", "sad", "hate", "issue", "problem"}
)

var wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Lexicon holds the positive and negative word sets.
type Lexicon struct {
	Positive []string
	Negative []string
}

// DefaultLexicon returns a copy of the stock lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: append([]string(nil), DefaultPositiveWords...),
		Negative: append([]string(nil), DefaultNegativeWords...),
	}
}

// Classifier is safe for concurrent use; it holds no mutable state after
// construction.
type Classifier struct {
	positive []string
	negative []string
	mode     MatchMode
}

// NewClassifier builds a classifier from a lexicon. Words are case-folded,
// blanks dropped and duplicates collapsed so each word scores at most once.
// An unknown mode falls back to MatchSubstring.
func NewClassifier(lex Lexicon, mode MatchMode) *Classifier {
	if mode != MatchWord {
		mode = MatchSubstring
	}

	return &Classifier{
		positive: normalize(lex.Positive),
		negative: normalize(lex.Negative),
		mode:     mode,
	}
}

// Mode returns the configured match mode.
func (c *Classifier) Mode() MatchMode {
	return c.mode
}

// Classify labels text. Each lexicon word present adds (positive) or
// subtracts (negative) one point regardless of how often it occurs.
func (c *Classifier) Classify(text string) domain.Sentiment {
	score := c.Score(text)

	switch {
	case score > 0:
		return domain.SentimentPositive
	case score < 0:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// Score returns the signed lexicon score of text.
func (c *Classifier) Score(text string) int {
	contains := c.matcher(fold(text))

	score := 0
	for _, w := range c.positive {
		if contains(w) {
			score++
		}
	}

	for _, w := range c.negative {
		if contains(w) {
			score--
		}
	}

	return score
}

func (c *Classifier) matcher(folded string) func(string) bool {
	if c.mode == MatchSubstring {
		return func(w string) bool { return strings.Contains(folded, w) }
	}

	tokens := make(map[string]struct{})
	for _, tok := range wordPattern.FindAllString(folded, -1) {
		tokens[tok] = struct{}{}
	}

	return func(w string) bool {
		_, ok := tokens[w]
		return ok
	}
}

func normalize(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))

	for _, w := range words {
		w = fold(strings.TrimSpace(w))
		if w == "" {
			continue
		}

		if _, dup := seen[w]; dup {
			continue
		}

		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out
}

// fold applies Unicode case folding, so "ſad", "SAD" and "sad" compare equal.
// A Caser is stateful, hence one per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
