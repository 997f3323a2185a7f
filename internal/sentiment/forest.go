package sentiment

import (
	"math"
	"math/rand"
	"sort"
)

// TreeNode is a node of a single decision tree. Internal nodes split on
// whether a feature's TF-IDF weight exceeds Threshold; leaves carry a
// class probability distribution. Fields are exported for gob.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
	Probs     []float64 // non-nil marks a leaf
}

// RandomForest is a bagged ensemble of depth-limited decision trees
// with per-split feature subsampling. Splits test term presence
// (weight > 0), which is what carries signal in sparse TF-IDF text
// vectors. Proba is the mean of the per-tree leaf distributions.
type RandomForest struct {
	Trees []*TreeNode

	NumTrees       int
	MaxDepth       int
	MinSamplesLeaf int
	Seed           int64

	dim int
}

func NewRandomForest(dim int, seed int64) *RandomForest {
	return &RandomForest{
		NumTrees:       50,
		MaxDepth:       10,
		MinSamplesLeaf: 1,
		Seed:           seed,
		dim:            dim,
	}
}

func (c *RandomForest) Fit(X []FeatureVector, y []Label) {
	rng := rand.New(rand.NewSource(c.Seed))
	c.Trees = make([]*TreeNode, 0, c.NumTrees)
	n := len(X)

	for t := 0; t < c.NumTrees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		c.Trees = append(c.Trees, c.buildTree(X, y, sample, 0, rng))
	}
}

func (c *RandomForest) buildTree(X []FeatureVector, y []Label, samples []int, depth int, rng *rand.Rand) *TreeNode {
	counts := classCounts(y, samples)
	if depth >= c.MaxDepth || len(samples) <= 2*c.MinSamplesLeaf || isPure(counts) {
		return leaf(counts)
	}

	feature, ok := c.bestSplit(X, y, samples, counts, rng)
	if !ok {
		return leaf(counts)
	}

	var left, right []int
	for _, i := range samples {
		if X[i][feature] > 0 {
			right = append(right, i)
		} else {
			left = append(left, i)
		}
	}
	if len(left) < c.MinSamplesLeaf || len(right) < c.MinSamplesLeaf {
		return leaf(counts)
	}

	return &TreeNode{
		Feature: feature,
		Left:    c.buildTree(X, y, left, depth+1, rng),
		Right:   c.buildTree(X, y, right, depth+1, rng),
	}
}

// bestSplit evaluates a sqrt(dim)-sized random subset of the features
// present in this node's samples and returns the presence split with
// the largest gini gain. Candidate features are sorted before sampling
// so tree construction stays deterministic for a fixed seed.
func (c *RandomForest) bestSplit(X []FeatureVector, y []Label, samples []int, parent []float64, rng *rand.Rand) (int, bool) {
	present := make(map[int]bool)
	for _, i := range samples {
		for idx := range X[i] {
			present[idx] = true
		}
	}
	if len(present) == 0 {
		return 0, false
	}
	candidates := make([]int, 0, len(present))
	for idx := range present {
		candidates = append(candidates, idx)
	}
	sort.Ints(candidates)

	mtry := int(math.Sqrt(float64(c.dim)))
	if mtry < 1 {
		mtry = 1
	}
	if mtry < len(candidates) {
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		candidates = candidates[:mtry]
		sort.Ints(candidates)
	}

	parentGini := gini(parent)
	total := float64(len(samples))
	bestGain := 1e-12
	bestFeature := -1

	for _, f := range candidates {
		var leftCounts, rightCounts [numClasses]float64
		var nLeft, nRight float64
		for _, i := range samples {
			if X[i][f] > 0 {
				rightCounts[y[i]]++
				nRight++
			} else {
				leftCounts[y[i]]++
				nLeft++
			}
		}
		if nLeft == 0 || nRight == 0 {
			continue
		}
		gain := parentGini -
			nLeft/total*gini(leftCounts[:]) -
			nRight/total*gini(rightCounts[:])
		if gain > bestGain {
			bestGain = gain
			bestFeature = f
		}
	}
	if bestFeature < 0 {
		return 0, false
	}
	return bestFeature, true
}

func classCounts(y []Label, samples []int) []float64 {
	counts := make([]float64, numClasses)
	for _, i := range samples {
		counts[y[i]]++
	}
	return counts
}

func isPure(counts []float64) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func gini(counts []float64) float64 {
	var total float64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := c / total
		impurity -= p * p
	}
	return impurity
}

func leaf(counts []float64) *TreeNode {
	var total float64
	for _, c := range counts {
		total += c
	}
	probs := make([]float64, numClasses)
	if total > 0 {
		for k, c := range counts {
			probs[k] = c / total
		}
	}
	return &TreeNode{Probs: probs}
}

func (n *TreeNode) walk(v FeatureVector) []float64 {
	for n.Probs == nil {
		if v[n.Feature] > n.Threshold {
			n = n.Right
		} else {
			n = n.Left
		}
	}
	return n.Probs
}

func (c *RandomForest) Proba(v FeatureVector) []float64 {
	probs := make([]float64, numClasses)
	for _, tree := range c.Trees {
		for k, p := range tree.walk(v) {
			probs[k] += p
		}
	}
	if len(c.Trees) > 0 {
		for k := range probs {
			probs[k] /= float64(len(c.Trees))
		}
	}
	return probs
}

func (c *RandomForest) Predict(v FeatureVector) Label {
	probs := c.Proba(v)
	best := 0
	for k := 1; k < numClasses; k++ {
		if probs[k] > probs[best] {
			best = k
		}
	}
	return Label(best)
}
