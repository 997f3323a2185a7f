package sentiment

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// LogisticRegression is a multinomial (softmax) logistic regression
// trained by stochastic gradient descent with L2 regularization. Its
// probability estimates come straight from the softmax, so it is the
// best calibrated of the classifier families here.
type LogisticRegression struct {
	Weights [][]float64 // [class][feature]
	Bias    []float64

	Epochs       int
	LearningRate float64
	L2           float64
	Seed         int64

	dim int
}

func NewLogisticRegression(dim int, seed int64) *LogisticRegression {
	return &LogisticRegression{
		Epochs:       50,
		LearningRate: 0.5,
		L2:           1e-4,
		Seed:         seed,
		dim:          dim,
	}
}

func (c *LogisticRegression) Fit(X []FeatureVector, y []Label) {
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
			probs := c.scoresToProbs(X[i])
			for k := 0; k < numClasses; k++ {
				grad := probs[k]
				if Label(k) == y[i] {
					grad -= 1
				}
				step := c.LearningRate * grad
				for idx, val := range X[i] {
					w := c.Weights[k]
					w[idx] -= step*val + c.LearningRate*c.L2*w[idx]
				}
				c.Bias[k] -= step
			}
		}
	}
}

func (c *LogisticRegression) scoresToProbs(v FeatureVector) []float64 {
	scores := make([]float64, numClasses)
	for k := 0; k < numClasses; k++ {
		scores[k] = sparseDot(c.Weights[k], v) + c.Bias[k]
	}
	return softmax(scores)
}

func (c *LogisticRegression) Predict(v FeatureVector) Label {
	return Label(floats.MaxIdx(c.scoresToProbs(v)))
}

func (c *LogisticRegression) Proba(v FeatureVector) []float64 {
	return c.scoresToProbs(v)
}
