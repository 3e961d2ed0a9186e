// Package summary implements single-document extractive summarization:
// sentences are ranked by TextRank centrality over a lexical similarity graph
// and the best ones are returned verbatim in their original order.
package summary

import (
	"errors"
	"math"
	"sort"
	"strings"
)

var (
	// ErrEmptyInput is returned for empty or whitespace-only text. Callers
	// are expected to check before summarizing.
	ErrEmptyInput = errors.New("summary: empty input")

	// ErrDegenerateGraph means the similarity graph carried no signal. It is
	// never returned by Extract; the summary degrades to leading sentences.
	ErrDegenerateGraph = errors.New("summary: degenerate similarity graph")
)

// Defaults for the centrality iteration.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-4
	DefaultMaxIterations = 200
)

// Config tunes the centrality iteration.
type Config struct {
	Damping       float64
	Tolerance     float64
	MaxIterations int
}

func (c Config) withDefaults() Config {
	if c.Damping <= 0 || c.Damping >= 1 {
		c.Damping = DefaultDamping
	}

	if c.Tolerance <= 0 {
		c.Tolerance = DefaultTolerance
	}

	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}

	return c
}

// Result is the outcome of one extraction.
type Result struct {
	// Sentences are the selected sentences in document order.
	Sentences []string

	// Total is the number of sentences the text was split into.
	Total int

	// Degraded is set when ranking failed and the leading sentences were
	// returned instead.
	Degraded bool

	// Iterations is how many centrality rounds ran.
	Iterations int
}

// Text joins the selected sentences with single spaces.
func (r Result) Text() string {
	return strings.Join(r.Sentences, " ")
}

// Summarizer is stateless after construction and safe for concurrent use.
type Summarizer struct {
	splitter  Splitter
	cfg       Config
	stopwords map[string]struct{}
}

// New creates a summarizer. A nil splitter selects the english Punkt splitter.
func New(splitter Splitter, cfg Config) *Summarizer {
	if splitter == nil {
		splitter = NewSplitter("english")
	}

	return &Summarizer{
		splitter:  splitter,
		cfg:       cfg.withDefaults(),
		stopwords: defaultStopwords(),
	}
}

// Summarize returns up to count sentences of text joined by single spaces.
func (s *Summarizer) Summarize(text string, count int) (string, error) {
	res, err := s.Extract(text, count)
	if err != nil {
		return "", err
	}

	return res.Text(), nil
}

// Extract selects the count most central sentences of text. A count below
// one is treated as one.
func (s *Summarizer) Extract(text string, count int) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyInput
	}

	if count < 1 {
		count = 1
	}

	sents := s.splitter.Split(text)
	res := Result{Total: len(sents)}

	switch {
	case len(sents) == 0:
		return res, nil
	case len(sents) <= count:
		res.Sentences = sents
		return res, nil
	}

	scores, iterations, err := s.rank(sents)
	res.Iterations = iterations

	if err != nil {
		res.Sentences = sents[:count]
		res.Degraded = true

		return res, nil
	}

	res.Sentences = pick(sents, scores, count)

	return res, nil
}

// rank returns a centrality score per sentence.
func (s *Summarizer) rank(sents []string) ([]float64, int, error) {
	weights := s.similarityMatrix(sents)
	n := len(sents)

	rowSums := make([]float64, n)
	total := 0.0

	for i := range weights {
		for _, w := range weights[i] {
			rowSums[i] += w
		}

		total += rowSums[i]
	}

	if total == 0 {
		return nil, 0, ErrDegenerateGraph
	}

	d := s.cfg.Damping
	base := (1 - d) / float64(n)

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / float64(n)
	}

	next := make([]float64, n)
	iterations := 0

	for iterations < s.cfg.MaxIterations {
		iterations++

		// sentences without any similar neighbour spread their score evenly
		dangling := 0.0
		for j := range scores {
			if rowSums[j] == 0 {
				dangling += scores[j]
			}
		}

		delta := 0.0

		for i := range next {
			sum := dangling / float64(n)

			for j := range scores {
				if w := weights[j][i]; w > 0 {
					sum += w / rowSums[j] * scores[j]
				}
			}

			next[i] = base + d*sum
			delta = math.Max(delta, math.Abs(next[i]-scores[i]))
		}

		scores, next = next, scores

		if delta < s.cfg.Tolerance {
			break
		}
	}

	for _, v := range scores {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, iterations, ErrDegenerateGraph
		}
	}

	return scores, iterations, nil
}

// similarityMatrix builds the symmetric edge weights. The diagonal stays zero.
func (s *Summarizer) similarityMatrix(sents []string) [][]float64 {
	counts := make([]map[string]int, len(sents))
	lengths := make([]int, len(sents))

	for i, sent := range sents {
		toks := terms(sent, s.stopwords)
		lengths[i] = len(toks)
		counts[i] = make(map[string]int, len(toks))

		for _, t := range toks {
			counts[i][t]++
		}
	}

	weights := make([][]float64, len(sents))
	for i := range weights {
		weights[i] = make([]float64, len(sents))
	}

	for i := range sents {
		for j := i + 1; j < len(sents); j++ {
			w := similarity(counts[i], counts[j], lengths[i], lengths[j])
			weights[i][j] = w
			weights[j][i] = w
		}
	}

	return weights
}

// similarity is the TextRank overlap measure: shared term occurrences over
// the sum of log sentence lengths.
func similarity(a, b map[string]int, lenA, lenB int) float64 {
	if lenA == 0 || lenB == 0 {
		return 0
	}

	if len(b) < len(a) {
		a, b = b, a
	}

	overlap := 0
	for term, ca := range a {
		overlap += ca * b[term]
	}

	if overlap == 0 {
		return 0
	}

	norm := math.Log(float64(lenA)) + math.Log(float64(lenB))
	if norm < 1e-9 {
		return float64(overlap)
	}

	return float64(overlap) / norm
}

// pick takes the count highest scores, lower index first on ties, and
// returns those sentences in document order.
func pick(sents []string, scores []float64, count int) []string {
	idx := make([]int, len(sents))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}

		return idx[a] < idx[b]
	})

	chosen := idx[:count]
	sort.Ints(chosen)

	out := make([]string, 0, count)
	for _, i := range chosen {
		out = append(out, sents[i])
	}

	return out
}
