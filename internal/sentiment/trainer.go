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
	"math/rand"
	"time"
)

// ErrEmptyDataset is returned by Train when there is nothing to train on.
var ErrEmptyDataset = errors.New("sentiment: empty training dataset")

// Review is the slice of a review record the trainer consumes. Every
// other attribute of a stored review is opaque payload.
type Review struct {
	Text   string  `bson:"review_text" json:"review_text"`
	Rating float64 `bson:"rating" json:"rating"`
}

// TrainOptions controls dataset splitting and vocabulary size.
type TrainOptions struct {
	MaxFeatures  int
	TestFraction float64
	Seed         int64
}

// DefaultTrainOptions mirrors the hyperparameters the service has
// always trained with.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		MaxFeatures:  5000,
		TestFraction: 0.2,
		Seed:         42,
	}
}

// AlgorithmResult is one classifier family's held-out accuracy.
type AlgorithmResult struct {
	Name     string
	Accuracy float64
}

// TrainReport summarizes a training run: per-family accuracies in
// fitting order and the label distribution of the full dataset. A class
// missing from ClassCounts is a data-quality signal, not an error.
type TrainReport struct {
	Results     []AlgorithmResult
	ClassCounts map[string]int
	TrainSize   int
	TestSize    int
}

// Train fits logistic regression, a linear SVM, and a random forest on
// an 80/20 split of the labeled reviews and packages the most accurate
// of the three with the fitted vectorizer. Selection uses a strict
// greater-than comparison in fitting order, so ties go to the family
// fitted first; with a fixed seed the whole run is reproducible.
func Train(reviews []Review, opts TrainOptions) (*Artifact, *TrainReport, error) {
	if len(reviews) == 0 {
		return nil, nil, ErrEmptyDataset
	}
	if opts.TestFraction <= 0 || opts.TestFraction >= 1 {
		opts.TestFraction = 0.2
	}

	texts := make([]string, len(reviews))
	labels := make([]Label, len(reviews))
	classCounts := make(map[string]int, numClasses)
	for i, r := range reviews {
		texts[i] = Normalize(r.Text)
		labels[i] = LabelFromRating(r.Rating)
		classCounts[labels[i].String()]++
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	perm := rng.Perm(len(reviews))
	cut := len(reviews) - int(float64(len(reviews))*opts.TestFraction)
	if cut < 1 {
		cut = 1
	}
	trainIdx, testIdx := perm[:cut], perm[cut:]

	trainTexts := make([]string, len(trainIdx))
	for i, idx := range trainIdx {
		trainTexts[i] = texts[idx]
	}

	// Vocabulary and IDF come from the train split only; fitting on
	// test text would leak its statistics into the model.
	vectorizer, err := FitVectorizer(trainTexts, opts.MaxFeatures)
	if err != nil {
		return nil, nil, err
	}

	trainX := make([]FeatureVector, len(trainIdx))
	trainY := make([]Label, len(trainIdx))
	for i, idx := range trainIdx {
		trainX[i] = vectorizer.Transform(texts[idx])
		trainY[i] = labels[idx]
	}
	testX := make([]FeatureVector, len(testIdx))
	testY := make([]Label, len(testIdx))
	for i, idx := range testIdx {
		testX[i] = vectorizer.Transform(texts[idx])
		testY[i] = labels[idx]
	}

	dim := vectorizer.Dim()
	candidates := []struct {
		name string
		clf  Classifier
	}{
		{"logistic_regression", NewLogisticRegression(dim, opts.Seed)},
		{"svm", NewLinearSVM(dim, opts.Seed)},
		{"random_forest", NewRandomForest(dim, opts.Seed)},
	}

	report := &TrainReport{
		ClassCounts: classCounts,
		TrainSize:   len(trainIdx),
		TestSize:    len(testIdx),
	}

	var best Classifier
	var bestName string
	bestAcc := -1.0
	for _, cand := range candidates {
		cand.clf.Fit(trainX, trainY)
		acc := accuracy(cand.clf, testX, testY)
		report.Results = append(report.Results, AlgorithmResult{Name: cand.name, Accuracy: acc})
		// Strict greater-than: on equal accuracy the family fitted
		// first keeps the win.
		if acc > bestAcc {
			bestAcc = acc
			best = cand.clf
			bestName = cand.name
		}
	}

	artifact := &Artifact{
		Algorithm:  bestName,
		Accuracy:   bestAcc,
		TrainedOn:  len(reviews),
		CreatedAt:  time.Now().UTC(),
		Classifier: best,
		Vectorizer: vectorizer,
	}
	return artifact, report, nil
}

func accuracy(c Classifier, X []FeatureVector, y []Label) float64 {
	if len(X) == 0 {
		return 0
	}
	correct := 0
	for i, v := range X {
		if c.Predict(v) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X))
}
