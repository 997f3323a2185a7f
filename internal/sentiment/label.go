package sentiment

import "strconv"

// Label is a three-way sentiment class derived from a review rating.
type Label int

const (
	Negative Label = iota
	Neutral
	Positive
)

const numClasses = 3

func (l Label) String() string {
	switch l {
	case Negative:
		return "Negative"
	case Neutral:
		return "Neutral"
	case Positive:
		return "Positive"
	}
	return "Neutral"
}

// MarshalJSON renders the label as its name rather than an integer.
func (l Label) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(l.String())), nil
}

// LabelFromRating maps a star rating to a sentiment class. This is the
// single authoritative partition: ratings above 3 are Positive, below 3
// Negative, exactly 3 Neutral. Training labels and the review store's
// rating-based aggregates must both go through this partition; the
// store's $gt/$lt/$eq 3 queries are the query-side spelling of it.
func LabelFromRating(rating float64) Label {
	switch {
	case rating > 3:
		return Positive
	case rating < 3:
		return Negative
	default:
		return Neutral
	}
}
