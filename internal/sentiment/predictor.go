// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING WITHOUT LIMITATION THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package sentiment

import (
	"errors"
	"strings"
	"sync/atomic"
)

// ErrModelUnavailable is returned by Predict while no artifact is
// loaded. The service stays up and keeps answering with this condition
// until a later Load succeeds.
var ErrModelUnavailable = errors.New("sentiment: model not loaded")

const maxKeywords = 5

// Prediction is the result of classifying one piece of text. Confidence
// is the probability mass the classifier assigns to its own predicted
// label, not necessarily the maximum over classes.
type Prediction struct {
	Label      Label    `json:"sentiment"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords"`
}

// Predictor serves predictions from an immutable, atomically-swapped
// artifact. After Load publishes an artifact, any number of concurrent
// Predict calls may read it without locking; a retrain hot-swaps a
// whole new artifact rather than mutating the live one.
type Predictor struct {
	artifact atomic.Pointer[Artifact]
}

func NewPredictor() *Predictor {
	return &Predictor{}
}

// Load reads the artifact at path and publishes it. On failure the
// previously published artifact, if any, stays in service.
func (p *Predictor) Load(path string) error {
	a, err := LoadArtifact(path)
	if err != nil {
		return err
	}
	p.artifact.Store(a)
	return nil
}

// Ready reports whether an artifact is loaded.
func (p *Predictor) Ready() bool {
	return p.artifact.Load() != nil
}

// Artifact returns the currently published artifact, or nil.
func (p *Predictor) Artifact() *Artifact {
	return p.artifact.Load()
}

// Predict classifies arbitrary input text. Any text is accepted,
// including empty or fully out-of-vocabulary input, which classifies as
// a zero vector rather than failing. The only error condition is an
// unpublished model.
func (p *Predictor) Predict(text string) (Prediction, error) {
	a := p.artifact.Load()
	if a == nil {
		return Prediction{}, ErrModelUnavailable
	}

	normalized := Normalize(text)
	vec := a.Vectorizer.Transform(normalized)
	label := a.Classifier.Predict(vec)
	probs := a.Classifier.Proba(vec)

	return Prediction{
		Label:      label,
		Confidence: probs[label],
		Keywords:   extractKeywords(normalized),
	}, nil
}

// extractKeywords keeps the first five tokens longer than four
// characters, in original order. Deliberately a length filter rather
// than a TF-IDF re-ranking; clients depend on the current behavior.
func extractKeywords(normalized string) []string {
	keywords := []string{}
	for _, word := range strings.Fields(normalized) {
		if len(word) > 4 {
			keywords = append(keywords, word)
			if len(keywords) == maxKeywords {
				break
			}
		}
	}
	return keywords
}
