package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestScreener_Screen(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"badger", "snake", "mushroom"}
	screener, err := NewScreener(dictionary)
	req.NoError(err)

	tests := []struct {
		name  string
		input string
		words []string
	}{
		{
			name:  "Clean text passes",
			input: "You brighten every room you enter",
			words: nil,
		},
		{
			name:  "Simple word match",
			input: "The badger is here",
			words: []string{"badger"},
		},
		{
			name:  "Multiple occurrences",
			input: "badger badger badger",
			words: []string{"badger", "badger", "badger"},
		},
		{
			name:  "Leet speak and internal punctuation",
			input: "Look at B.4.d.g.€r !",
			words: []string{"badger"},
		},
		{
			name:  "Uppercase and extreme noise",
			input: "S-N-A-K-E is a B.A.D.G.E.R",
			words: []string{"snake", "badger"},
		},
		{
			name:  "Accents around the match (UTF-8)",
			input: "Un été avec un badger",
			words: []string{"badger"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := screener.Screen(tt.input)
			if tt.words == nil {
				require.Empty(t, found)
				return
			}
			require.ElementsMatch(t, tt.words, found)
		})
	}
}

func TestScreener_EmptyBlocklist(t *testing.T) {
	req := require.New(t)
	screener, err := NewScreener(nil)
	req.NoError(err)
	req.Empty(screener.Screen("anything at all"))
}

func TestScreener_EmptyInput(t *testing.T) {
	req := require.New(t)
	screener, err := NewScreener([]string{"badger"})
	req.NoError(err)
	req.Empty(screener.Screen(""))
	req.Empty(screener.Screen("...!!!"))
}
