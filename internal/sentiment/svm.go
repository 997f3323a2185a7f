package sentiment

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// LinearSVM is a one-vs-rest maximum-margin linear classifier trained
// by hinge-loss SGD. Predict picks the class with the largest margin.
// Proba is a softmax over the raw margins: uncalibrated, but it keeps
// the confidence contract intact should this family win selection.
type LinearSVM struct {
	Weights [][]float64 // [class][feature]
	Bias    []float64

	Epochs       int
	LearningRate float64
	L2           float64
	Seed         int64

	dim int
}

func NewLinearSVM(dim int, seed int64) *LinearSVM {
	return &LinearSVM{
		Epochs:       50,
		LearningRate: 0.5,
		L2:           1e-4,
		Seed:         seed,
		dim:          dim,
	}
}

func (c *LinearSVM) Fit(X []FeatureVector, y []Label) {
	c.Weights = make([][]float64, numClasses)
	for k := range c.Weights {
		c.Weights[k] = make([]float64, c.dim)
	}
	c.Bias = make([]float64, numClasses)

	rng := rand.New(rand.NewSource(c.Seed))
	order := make([]int, len(X))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < c.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for _, i := range order {
			for k := 0; k < numClasses; k++ {
				target := -1.0
				if Label(k) == y[i] {
					target = 1.0
				}
				w := c.Weights[k]
				margin := target * (sparseDot(w, X[i]) + c.Bias[k])
				if margin < 1 {
					for idx, val := range X[i] {
						w[idx] += c.LearningRate * (target*val - c.L2*w[idx])
					}
					c.Bias[k] += c.LearningRate * target
				} else {
					for idx := range X[i] {
						w[idx] -= c.LearningRate * c.L2 * w[idx]
					}
				}
			}
		}
	}
}

func (c *LinearSVM) margins(vec FeatureVector) []float64 {
	m := make([]float64, numClasses)
	for k := 0; k < numClasses; k++ {
		m[k] = sparseDot(c.Weights[k], vec) + c.Bias[k]
	}
	return m
}

func (c *LinearSVM) Predict(vec FeatureVector) Label {
	return Label(floats.MaxIdx(c.margins(vec)))
}

func (c *LinearSVM) Proba(vec FeatureVector) []float64 {
	return softmax(c.margins(vec))
}
