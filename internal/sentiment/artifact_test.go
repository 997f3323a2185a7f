package sentiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainTestArtifact(t *testing.T) *Artifact {
	t.Helper()
	artifact, _, err := Train(scenarioReviews(10), DefaultTrainOptions())
	require.NoError(t, err)
	return artifact
}

func TestArtifactRoundTrip(t *testing.T) {
	artifact := trainTestArtifact(t)
	path := filepath.Join(t.TempDir(), "models", "sentiment_model.gob")

	require.NoError(t, SaveArtifact(path, artifact))

	loaded, err := LoadArtifact(path)
	require.NoError(t, err)

	assert.Equal(t, artifact.Algorithm, loaded.Algorithm)
	assert.Equal(t, artifact.Accuracy, loaded.Accuracy)
	assert.Equal(t, artifact.TrainedOn, loaded.TrainedOn)
	assert.Equal(t, artifact.Vectorizer.Terms, loaded.Vectorizer.Terms)
	assert.Equal(t, artifact.Vectorizer.IDF, loaded.Vectorizer.IDF)

	// The loaded classifier/vectorizer pair must behave exactly like
	// the one that was saved, as if loaded by a different process.
	for _, text := range []string{
		"absolutely terrible broke",
		"great phone",
		"its okay",
		"",
	} {
		want := artifact.Classifier.Predict(artifact.Vectorizer.Transform(Normalize(text)))
		got := loaded.Classifier.Predict(loaded.Vectorizer.Transform(Normalize(text)))
		assert.Equal(t, want, got, "text %q", text)
	}
}

func TestSaveArtifactWritesMetadataSidecar(t *testing.T) {
	artifact := trainTestArtifact(t)
	path := filepath.Join(t.TempDir(), "sentiment_model.gob")
	require.NoError(t, SaveArtifact(path, artifact))

	meta, err := os.ReadFile(path + ".meta.txt")
	require.NoError(t, err)
	assert.Contains(t, string(meta), artifact.Algorithm)
	assert.Contains(t, string(meta), "Trained on: 30 samples")
}

func TestLoadArtifactNotFound(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "missing.gob"))
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestLoadArtifactCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentiment_model.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob artifact"), 0o644))

	_, err := LoadArtifact(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrArtifactNotFound)
}
