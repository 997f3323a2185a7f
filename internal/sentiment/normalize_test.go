package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase passthrough", input: "great phone", expected: "great phone"},
		{name: "case folding", input: "Great PHONE", expected: "great phone"},
		{name: "digits and punctuation stripped", input: "5 stars!! would buy again...", expected: " stars would buy again"},
		{name: "unicode stripped", input: "très bon café", expected: "trs bon caf"},
		{name: "whitespace preserved", input: "a\tb\nc", expected: "a\tb\nc"},
		{name: "empty", input: "", expected: ""},
		{name: "only symbols", input: "!!! ??? 123", expected: "  "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Normalize(test.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Great phone, works perfectly!",
		"TERRIBLE. Broke immediately :(",
		"", "   ", "already normalized text",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}
