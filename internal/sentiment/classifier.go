package sentiment

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Classifier is a trainable three-class text classifier over TF-IDF
// feature vectors. Proba returns one probability per Label, summing to
// one; implementations must keep Predict consistent with their own
// decision rule, not necessarily with the arg-max of Proba.
type Classifier interface {
	Fit(X []FeatureVector, y []Label)
	Predict(v FeatureVector) Label
	Proba(v FeatureVector) []float64
}

// softmax exponentiates scores in place into a probability vector,
// shifted by the max score for numerical stability.
func softmax(scores []float64) []float64 {
	out := make([]float64, len(scores))
	max := floats.Max(scores)
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	floats.Scale(1/sum, out)
	return out
}

func sparseDot(w []float64, v FeatureVector) float64 {
	var dot float64
	for idx, val := range v {
		dot += w[idx] * val
	}
	return dot
}
