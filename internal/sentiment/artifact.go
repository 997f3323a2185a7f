package sentiment

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrArtifactNotFound is returned by LoadArtifact when no artifact has
// been persisted yet. Callers use it to start in a degraded,
// prediction-unavailable mode rather than crashing.
var ErrArtifactNotFound = errors.New("sentiment: model artifact not found")

// Artifact is the paired output of one training run. The classifier and
// the vectorizer that produced its feature space are persisted and
// loaded as a single unit; one without the other is never a valid
// state. Once published an artifact is immutable.
type Artifact struct {
	Algorithm  string
	Accuracy   float64
	TrainedOn  int
	CreatedAt  time.Time
	Classifier Classifier
	Vectorizer *Vectorizer
}

func init() {
	gob.Register(&LogisticRegression{})
	gob.Register(&LinearSVM{})
	gob.Register(&RandomForest{})
}

// SaveArtifact writes the artifact to path as a single gob blob,
// through a temp file and rename so a crashed run never leaves a
// half-written artifact behind. A human-readable metadata sidecar is
// written next to it for operators.
func SaveArtifact(path string, a *Artifact) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "artifact-*.gob")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(a); err != nil {
		tmp.Close()
		return fmt.Errorf("encode artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publish artifact: %w", err)
	}

	meta := fmt.Sprintf("Best Model: %s\nAccuracy: %v\nTrained on: %d samples\nCreated: %s\n",
		a.Algorithm, a.Accuracy, a.TrainedOn, a.CreatedAt.Format(time.RFC3339))
	if err := os.WriteFile(path+".meta.txt", []byte(meta), 0o644); err != nil {
		return fmt.Errorf("write artifact metadata: %w", err)
	}
	return nil
}

// LoadArtifact reads an artifact persisted by SaveArtifact, possibly by
// a different process. A missing file maps to ErrArtifactNotFound; an
// unreadable or incomplete blob is a hard error, since serving with a
// classifier detached from its vectorizer is never valid.
func LoadArtifact(path string) (*Artifact, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer file.Close()

	var a Artifact
	if err := gob.NewDecoder(file).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", path, err)
	}
	if a.Classifier == nil || a.Vectorizer == nil {
		return nil, fmt.Errorf("artifact %s is incomplete", path)
	}
	return &a, nil
}
