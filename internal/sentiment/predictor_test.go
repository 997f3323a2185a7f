package sentiment

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedPredictor(t *testing.T) *Predictor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sentiment_model.gob")
	require.NoError(t, SaveArtifact(path, trainTestArtifact(t)))

	p := NewPredictor()
	require.NoError(t, p.Load(path))
	return p
}

func TestPredictBeforeLoad(t *testing.T) {
	p := NewPredictor()
	assert.False(t, p.Ready())

	_, err := p.Predict("great phone")
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestPredictNegativeScenario(t *testing.T) {
	p := loadedPredictor(t)

	pred, err := p.Predict("absolutely terrible broke")
	require.NoError(t, err)
	assert.Equal(t, Negative, pred.Label)
	assert.Greater(t, pred.Confidence, 0.5)
	assert.Equal(t, []string{"absolutely", "terrible", "broke"}, pred.Keywords)
}

func TestPredictEmptyText(t *testing.T) {
	p := loadedPredictor(t)

	pred, err := p.Predict("")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int(pred.Label), 0)
	assert.Less(t, int(pred.Label), 3)
	assert.GreaterOrEqual(t, pred.Confidence, 0.0)
	assert.LessOrEqual(t, pred.Confidence, 1.0)
	assert.NotNil(t, pred.Keywords)
	assert.Empty(t, pred.Keywords)
}

func TestPredictConfidenceIsPredictedClassMass(t *testing.T) {
	p := loadedPredictor(t)
	artifact := p.Artifact()

	for _, text := range []string{"great phone", "terrible broke", "okay nothing", "Mixed FEELINGS here!"} {
		pred, err := p.Predict(text)
		require.NoError(t, err)

		vec := artifact.Vectorizer.Transform(Normalize(text))
		probs := artifact.Classifier.Proba(vec)
		assert.Equal(t, probs[artifact.Classifier.Predict(vec)], pred.Confidence)
	}
}

func TestPredictKeywordRules(t *testing.T) {
	p := loadedPredictor(t)

	// Longer than four characters, original order, capped at five.
	pred, err := p.Predict("Amazing wonderful build, nice fantastic incredible spectacular magnificent thing")
	require.NoError(t, err)
	assert.Equal(t, []string{"amazing", "wonderful", "build", "fantastic", "incredible"}, pred.Keywords)

	pred, err = p.Predict("so it is ok")
	require.NoError(t, err)
	assert.Empty(t, pred.Keywords)
}

func TestLoadFailureKeepsCurrentArtifact(t *testing.T) {
	p := loadedPredictor(t)
	current := p.Artifact()

	err := p.Load(filepath.Join(t.TempDir(), "missing.gob"))
	assert.ErrorIs(t, err, ErrArtifactNotFound)
	assert.Same(t, current, p.Artifact())
	assert.True(t, p.Ready())
}

func TestHotSwapPublishesNewArtifact(t *testing.T) {
	p := loadedPredictor(t)
	old := p.Artifact()

	path := filepath.Join(t.TempDir(), "retrained.gob")
	require.NoError(t, SaveArtifact(path, trainTestArtifact(t)))
	require.NoError(t, p.Load(path))

	assert.NotSame(t, old, p.Artifact())
	assert.True(t, p.Ready())
}

func TestPredictConcurrent(t *testing.T) {
	p := loadedPredictor(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				pred, err := p.Predict("terrible broke immediately")
				assert.NoError(t, err)
				assert.Equal(t, Negative, pred.Label)
			}
		}()
	}
	wg.Wait()
}
