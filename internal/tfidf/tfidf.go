// Package tfidf implements term-frequency / inverse-document-frequency
// vectors and cosine similarity over small document sets.
//
// Tokenisation, smoothing and normalisation follow the conventional
// defaults: lower-cased tokens of two or more word characters, smooth idf
// ln((1+n)/(1+df))+1, and L2-normalised rows.
package tfidf

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// ErrEmptyVocabulary is returned when no document contains a usable token
var ErrEmptyVocabulary = errors.New("tfidf: empty vocabulary")

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vector is a sparse L2-normalised row keyed by vocabulary index
type Vector map[int]float64

// Matrix holds one vector per input document plus the fitted vocabulary
type Matrix struct {
	Rows       []Vector
	Vocabulary map[string]int
}

// Vectorizer fits a vocabulary over a corpus and weights each document.
// MaxFeatures <= 0 keeps every term.
type Vectorizer struct {
	MaxFeatures int
}

// Tokenize lower-cases text and returns its tokens in order
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// FitTransform builds the vocabulary from docs and returns their vectors
func (v Vectorizer) FitTransform(docs []string) (*Matrix, error) {
	counts := make([]map[string]int, len(docs))
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)

	for i, doc := range docs {
		tf := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			tf[tok]++
			corpusFreq[tok]++
		}
		for term := range tf {
			docFreq[term]++
		}
		counts[i] = tf
	}

	if len(corpusFreq) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := v.selectTerms(corpusFreq)
	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	rows := make([]Vector, len(docs))
	for i, tf := range counts {
		row := make(Vector)
		for term, c := range tf {
			idx, ok := vocab[term]
			if !ok {
				continue
			}
			row[idx] = float64(c) * idf[idx]
		}
		normalize(row)
		rows[i] = row
	}

	return &Matrix{Rows: rows, Vocabulary: vocab}, nil
}

// selectTerms returns the vocabulary in alphabetical order, limited to the
// MaxFeatures most frequent terms across the corpus (ties alphabetical)
func (v Vectorizer) selectTerms(corpusFreq map[string]int) []string {
	terms := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		terms = append(terms, term)
	}

	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
				return corpusFreq[terms[i]] > corpusFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.MaxFeatures]
	}

	sort.Strings(terms)
	return terms
}

func normalize(row Vector) {
	var sum float64
	for _, w := range row {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for k, w := range row {
		row[k] = w / norm
	}
}

// Cosine returns the cosine similarity of two vectors; zero vectors yield 0
func Cosine(a, b Vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}

	var dot, na, nb float64
	for k, w := range a {
		dot += w * b[k]
	}
	for _, w := range a {
		na += w * w
	}
	for _, w := range b {
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if sim > 1 {
		return 1
	}
	return sim
}

// Similarity fits a fresh vocabulary over the two texts and compares them
func Similarity(a, b string, maxFeatures int) (float64, error) {
	m, err := Vectorizer{MaxFeatures: maxFeatures}.FitTransform([]string{a, b})
	if err != nil {
		return 0, err
	}
	return Cosine(m.Rows[0], m.Rows[1]), nil
}
