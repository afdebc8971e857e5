package main

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuratedCategoryTables(t *testing.T) {
	tables := map[string][]categoryEntry{
		"easy":   easyCategories,
		"medium": mediumCategories,
		"tricky": trickyCategories,
	}

	for name, table := range tables {
		assert.NotEmpty(t, table, name)

		for _, entry := range table {
			assert.NotEmpty(t, entry.theme)

			seen := make(map[string]bool, 4)
			for _, w := range entry.words {
				assert.NotEmpty(t, w, "empty word in %q", entry.theme)
				key := strings.ToUpper(w)
				assert.False(t, seen[key], "duplicate word %q in %q", w, entry.theme)
				seen[key] = true
			}
		}
	}
}

func TestGeneratePuzzleInvariants(t *testing.T) {
	provider := newCuratedProvider()

	for i := 0; i < 50; i++ {
		puzzle, err := provider.GeneratePuzzle()
		require.NoError(t, err)
		require.Len(t, puzzle.Categories, 4)
		assert.True(t, strings.HasPrefix(puzzle.ID, "gen-"))

		words := make(map[string]bool, 16)
		tiers := make(map[Difficulty]bool, 4)

		for _, c := range puzzle.Categories {
			require.Len(t, c.Words, 4, "category %q", c.Theme)
			tiers[c.Difficulty] = true

			for _, w := range c.Words {
				key := strings.ToUpper(w)
				assert.False(t, words[key], "word %q repeated in puzzle %s", w, puzzle.ID)
				words[key] = true
			}
		}

		assert.Len(t, words, 16)
		assert.Len(t, tiers, 4, "puzzle %s repeats a difficulty tier", puzzle.ID)
	}
}

func TestPuzzleValidate(t *testing.T) {
	valid := testPuzzle("valid")
	require.NoError(t, valid.validate())

	tooFew := testPuzzle("short")
	tooFew.Categories = tooFew.Categories[:3]
	assert.Error(t, tooFew.validate())

	dup := testPuzzle("dup")
	dup.Categories[1].Words[0] = strings.ToLower(dup.Categories[0].Words[0])
	assert.Error(t, dup.validate(), "case-insensitive duplicates should be rejected")

	repeatTier := testPuzzle("tier")
	repeatTier.Categories[1].Difficulty = repeatTier.Categories[0].Difficulty
	assert.Error(t, repeatTier.validate())
}

func TestShuffledPreservesElements(t *testing.T) {
	in := []string{"A", "B", "C", "D", "E", "F", "G"}

	out := shuffled(in)
	require.Len(t, out, len(in))

	sortedIn := append([]string(nil), in...)
	sortedOut := append([]string(nil), out...)
	sort.Strings(sortedIn)
	sort.Strings(sortedOut)
	assert.Equal(t, sortedIn, sortedOut)

	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, in, "input must not be mutated")
}

func TestShuffledWords(t *testing.T) {
	puzzle := testPuzzle("shuffle")

	words := puzzle.shuffledWords()
	require.Len(t, words, 16)

	expected := append([]string(nil), puzzle.allWords()...)
	actual := append([]string(nil), words...)
	sort.Strings(expected)
	sort.Strings(actual)
	assert.Equal(t, expected, actual)
}
