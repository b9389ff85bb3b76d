package cluster

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// stopWords are common English terms excluded from the vocabulary so that
// description vectors reflect domain terms rather than filler.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "also": true, "am": true, "an": true,
	"and": true, "any": true, "are": true, "as": true, "at": true,
	"be": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "by": true,
	"can": true, "cannot": true, "could": true, "did": true, "do": true,
	"does": true, "doing": true, "down": true, "during": true, "each": true,
	"few": true, "for": true, "from": true, "further": true, "had": true,
	"has": true, "have": true, "having": true, "he": true, "her": true,
	"here": true, "hers": true, "him": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "itself": true, "just": true, "more": true, "most": true,
	"my": true, "no": true, "nor": true, "not": true, "now": true,
	"of": true, "off": true, "on": true, "once": true, "only": true,
	"or": true, "other": true, "our": true, "out": true, "over": true,
	"own": true, "same": true, "she": true, "should": true, "so": true,
	"some": true, "such": true, "than": true, "that": true, "the": true,
	"their": true, "theirs": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "those": true, "through": true,
	"to": true, "too": true, "under": true, "until": true,
	"up": true, "very": true, "was": true, "we": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "whom": true, "why": true, "with": true, "would": true,
	"you": true, "your": true, "yours": true,
}

// tokenize lowercases text and splits it into alphanumeric terms,
// dropping stop words and single characters.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || stopWords[f] {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

// vectorizer computes TF-IDF vectors over a fixed corpus with a bounded
// vocabulary, matching the usual smoothed-idf, L2-normalized formulation.
type vectorizer struct {
	vocab []string       // selected terms in deterministic order
	index map[string]int // term -> column
	idf   []float64
}

// newVectorizer builds the vocabulary and idf table from the corpus.
// The vocabulary keeps at most maxFeatures terms, selected by total
// corpus frequency with alphabetical order breaking ties.
func newVectorizer(docs []string, maxFeatures int) *vectorizer {
	tokenized := make([][]string, len(docs))
	total := make(map[string]int)
	df := make(map[string]int)

	for i, doc := range docs {
		terms := tokenize(doc)
		tokenized[i] = terms
		seen := make(map[string]bool)
		for _, t := range terms {
			total[t]++
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	vocab := make([]string, 0, len(total))
	for t := range total {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if total[vocab[i]] != total[vocab[j]] {
			return total[vocab[i]] > total[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if maxFeatures > 0 && len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	sort.Strings(vocab)

	v := &vectorizer{
		vocab: vocab,
		index: make(map[string]int, len(vocab)),
		idf:   make([]float64, len(vocab)),
	}
	n := float64(len(docs))
	for i, t := range vocab {
		v.index[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v
}

// vector returns the L2-normalized TF-IDF row for one document.
func (v *vectorizer) vector(doc string) []float64 {
	row := make([]float64, len(v.vocab))
	for _, t := range tokenize(doc) {
		if i, ok := v.index[t]; ok {
			row[i]++
		}
	}

	var norm float64
	for i := range row {
		row[i] *= v.idf[i]
		norm += row[i] * row[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range row {
			row[i] /= norm
		}
	}
	return row
}
