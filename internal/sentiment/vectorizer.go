package sentiment

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyCorpus is returned when a vectorizer is fit on a corpus with
// no usable tokens. There is nothing to train on.
var ErrEmptyCorpus = errors.New("sentiment: empty training corpus")

// FeatureVector is a sparse TF-IDF vector keyed by vocabulary index.
// Indices absent from the map carry weight zero.
type FeatureVector map[int]float64

// TermCount pairs a vocabulary term with its training-corpus document
// frequency.
type TermCount struct {
	Term  string `json:"text"`
	Count int    `json:"value"`
}

// Vectorizer converts normalized text into TF-IDF feature vectors over
// a vocabulary frozen at fit time. Out-of-vocabulary terms seen at
// transform time are dropped, never added: the serving-time feature
// space must match the one the classifier was trained on.
//
// All fields are read-only after FitVectorizer returns, so Transform is
// safe for concurrent use.
type Vectorizer struct {
	Vocabulary map[string]int
	Terms      []string  // index -> term, in rank order
	IDF        []float64 // index -> frozen inverse document frequency
	DocFreq    []int     // index -> training document frequency
}

// FitVectorizer builds a vocabulary from the corpus and freezes the IDF
// statistics. Terms are ranked by descending document frequency, ties
// broken by first-seen order, and only the top maxFeatures terms are
// retained. maxFeatures <= 0 means no cap.
func FitVectorizer(docs []string, maxFeatures int) (*Vectorizer, error) {
	docFreq := make(map[string]int)
	var firstSeen []string

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range tokenize(doc) {
			if seen[term] {
				continue
			}
			seen[term] = true
			if docFreq[term] == 0 {
				firstSeen = append(firstSeen, term)
			}
			docFreq[term]++
		}
	}

	if len(firstSeen) == 0 {
		return nil, ErrEmptyCorpus
	}

	ranked := make([]string, len(firstSeen))
	copy(ranked, firstSeen)
	sort.SliceStable(ranked, func(i, j int) bool {
		return docFreq[ranked[i]] > docFreq[ranked[j]]
	})
	if maxFeatures > 0 && len(ranked) > maxFeatures {
		ranked = ranked[:maxFeatures]
	}

	v := &Vectorizer{
		Vocabulary: make(map[string]int, len(ranked)),
		Terms:      ranked,
		IDF:        make([]float64, len(ranked)),
		DocFreq:    make([]int, len(ranked)),
	}
	total := float64(len(docs))
	for i, term := range ranked {
		df := docFreq[term]
		v.Vocabulary[term] = i
		v.DocFreq[i] = df
		// Smoothed IDF, as if one extra document contained every term.
		v.IDF[i] = math.Log((1+total)/(1+float64(df))) + 1
	}
	return v, nil
}

// Dim returns the dimensionality of vectors produced by Transform.
func (v *Vectorizer) Dim() int {
	return len(v.Terms)
}

// Transform converts text into an L2-normalized sparse TF-IDF vector.
// Tokens outside the frozen vocabulary are silently ignored; text with
// no recognized tokens yields the zero vector.
func (v *Vectorizer) Transform(text string) FeatureVector {
	vec := make(FeatureVector)
	for _, term := range tokenize(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx := range vec {
		vec[idx] *= v.IDF[idx]
		norm += vec[idx] * vec[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// TopTerms returns the n most frequent vocabulary terms with their
// document frequencies. The vocabulary is already in rank order.
func (v *Vectorizer) TopTerms(n int) []TermCount {
	if n > len(v.Terms) {
		n = len(v.Terms)
	}
	out := make([]TermCount, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, TermCount{Term: v.Terms[i], Count: v.DocFreq[i]})
	}
	return out
}
