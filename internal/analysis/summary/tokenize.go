package summary

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/neurosnap/sentences"
	punkt "github.com/neurosnap/sentences/english"
)

// Splitter breaks text into an ordered list of sentences. Returned sentences
// must be verbatim substrings of the input.
type Splitter interface {
	Split(text string) []string
}

// PunktSplitter uses the pre-trained english Punkt model, which knows about
// abbreviations and initials that a punctuation regexp would split on.
type PunktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter loads the english Punkt model.
func NewPunktSplitter() (*PunktSplitter, error) {
	tokenizer, err := punkt.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}

	return &PunktSplitter{tokenizer: tokenizer}, nil
}

// Split implements Splitter.
func (p *PunktSplitter) Split(text string) []string {
	var out []string

	for _, s := range p.tokenizer.Tokenize(text) {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// RegexSplitter splits on runs of terminal punctuation. Trailing text without
// punctuation becomes its own sentence.
type RegexSplitter struct {
	pattern *regexp.Regexp
}

// NewRegexSplitter creates a punctuation based splitter.
func NewRegexSplitter() *RegexSplitter {
	return &RegexSplitter{pattern: regexp.MustCompile(`[^.!?]+[.!?]*`)}
}

// Split implements Splitter.
func (r *RegexSplitter) Split(text string) []string {
	var out []string

	for _, s := range r.pattern.FindAllString(text, -1) {
		if trimmed := strings.TrimSpace(s); trimmed != "" && !punctuationOnly(trimmed) {
			out = append(out, trimmed)
		}
	}

	return out
}

func punctuationOnly(s string) bool {
	return strings.Trim(s, ".!? \t\n") == ""
}

// NewSplitter returns the Punkt splitter for english and the regexp splitter
// for any other language or when the Punkt model cannot be loaded.
func NewSplitter(language string) Splitter {
	if strings.EqualFold(language, "english") || language == "" {
		if p, err := NewPunktSplitter(); err == nil {
			return p
		}
	}

	return NewRegexSplitter()
}

var termPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`)

// terms lower-cases, drops stop words and stems the words of a sentence.
func terms(sentence string, stopwords map[string]struct{}) []string {
	raw := termPattern.FindAllString(strings.ToLower(sentence), -1)
	out := make([]string, 0, len(raw))

	for _, tok := range raw {
		if _, stop := stopwords[tok]; stop {
			continue
		}

		out = append(out, english.Stem(tok, false))
	}

	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by",
		"with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into",
		"about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "don", "should", "now", "i", "me", "my", "we", "our",
		"you", "your", "he", "she", "they", "them", "their", "do", "does", "did", "have", "has", "had", "not",
		"no", "all", "any", "some", "when", "what", "which", "who", "there", "here",
	}

	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}

	return m
}
