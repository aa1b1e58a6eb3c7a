package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArray(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		joined   string
		expected []string
	}{
		{name: "empty string is nil", joined: "", expected: nil},
		{name: "single element", joined: "northeast", expected: []string{"northeast"}},
		{
			name:     "multiple elements",
			joined:   "northeast\x1fmidwest\x1fpacific",
			expected: []string{"northeast", "midwest", "pacific"},
		},
		{
			name:     "commas inside values survive",
			joined:   "maple, sugar\x1frock maple",
			expected: []string{"maple, sugar", "rock maple"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, splitArray(tc.joined))
		})
	}
}

func TestNewPostgresPlantStoreRequiresDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPostgresPlantStore(nil, nil)
	})
}
