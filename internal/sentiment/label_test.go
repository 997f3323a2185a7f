package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFromRating(t *testing.T) {
	tests := []struct {
		rating   float64
		expected Label
	}{
		{1.0, Negative},
		{1.5, Negative},
		{2.0, Negative},
		{2.9, Negative},
		{3.0, Neutral},
		{3.1, Positive},
		{3.5, Positive},
		{4.0, Positive},
		{5.0, Positive},
		// Out-of-range ratings still map somewhere; the partition is total.
		{0.0, Negative},
		{-1.0, Negative},
		{6.0, Positive},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, LabelFromRating(test.rating), "rating %v", test.rating)
	}
}

func TestLabelFromRatingStable(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, Neutral, LabelFromRating(3.0))
		assert.Equal(t, Positive, LabelFromRating(4.0))
		assert.Equal(t, Negative, LabelFromRating(2.0))
	}
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "Negative", Negative.String())
	assert.Equal(t, "Neutral", Neutral.String())
	assert.Equal(t, "Positive", Positive.String())
}

func TestLabelMarshalJSON(t *testing.T) {
	b, err := Positive.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"Positive"`, string(b))
}
