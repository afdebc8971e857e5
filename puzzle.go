package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Difficulty tiers, in solve order from easiest to trickiest.
type Difficulty string

const (
	DifficultyYellow Difficulty = "yellow"
	DifficultyGreen  Difficulty = "green"
	DifficultyBlue   Difficulty = "blue"
	DifficultyPurple Difficulty = "purple"
)

// Category is a group of four words sharing a hidden connection.
type Category struct {
	Theme      string     `json:"theme"`
	Words      []string   `json:"words"`
	Difficulty Difficulty `json:"difficulty"`
}

// Puzzle holds four categories whose sixteen words are pairwise
// distinct, compared case-insensitively.
type Puzzle struct {
	ID         string     `json:"id"`
	Categories []Category `json:"categories"`
}

// allWords returns the flattened sixteen-word pool in category order.
func (p *Puzzle) allWords() []string {
	words := make([]string, 0, 16)
	for _, c := range p.Categories {
		words = append(words, c.Words...)
	}
	return words
}

// shuffledWords returns the puzzle's word pool in random order.
func (p *Puzzle) shuffledWords() []string {
	return shuffled(p.allWords())
}

func (p *Puzzle) validate() error {
	if len(p.Categories) != 4 {
		return fmt.Errorf("puzzle %q has %d categories, want 4", p.ID, len(p.Categories))
	}

	seen := make(map[string]bool, 16)
	tiers := make(map[Difficulty]bool, 4)

	for _, c := range p.Categories {
		if len(c.Words) != 4 {
			return fmt.Errorf("category %q has %d words, want 4", c.Theme, len(c.Words))
		}
		if tiers[c.Difficulty] {
			return fmt.Errorf("puzzle %q repeats difficulty %q", p.ID, c.Difficulty)
		}
		tiers[c.Difficulty] = true

		for _, w := range c.Words {
			key := strings.ToUpper(w)
			if seen[key] {
				return fmt.Errorf("puzzle %q repeats word %q", p.ID, w)
			}
			seen[key] = true
		}
	}

	return nil
}

// shuffled returns a copy of in, permuted with a crypto/rand
// Fisher-Yates pass.
func shuffled[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	for i := len(out) - 1; i > 0; i-- {
		var b [1]byte
		if _, err := rand.Read(b[:]); err != nil {
			continue
		}
		j := int(b[0]) % (i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// PuzzleProvider produces well-formed puzzles on demand. The provider
// owns its own randomness and difficulty-distribution policy.
type PuzzleProvider interface {
	GeneratePuzzle() (*Puzzle, error)
}

// curatedProvider builds puzzles from the curated category tables:
// one yellow, one green, and two tricky categories, with a global
// uniqueness check over all sixteen words.
type curatedProvider struct{}

func newCuratedProvider() *curatedProvider {
	return &curatedProvider{}
}

func (cp *curatedProvider) GeneratePuzzle() (*Puzzle, error) {
	categories := findCompatibleCategories()
	if categories == nil {
		categories = pickNonOverlappingCategories()
	}
	if categories == nil {
		return nil, errors.New("no compatible category combination found")
	}

	puzzle := &Puzzle{
		ID:         "gen-" + uuid.NewString(),
		Categories: categories,
	}

	if err := puzzle.validate(); err != nil {
		return nil, err
	}

	return puzzle, nil
}

func wordsOverlap(used map[string]bool, words []string) bool {
	for _, w := range words {
		if used[strings.ToUpper(w)] {
			return true
		}
	}
	return false
}

func markUsed(used map[string]bool, words []string) {
	for _, w := range words {
		used[strings.ToUpper(w)] = true
	}
}

// findCompatibleCategories picks one easy, one medium, and two tricky
// categories whose sixteen words are globally unique. Returns nil if no
// combination works for the sampled ordering.
func findCompatibleCategories() []Category {
	easy := shuffled(easyCategories)
	medium := shuffled(mediumCategories)
	tricky := shuffled(trickyCategories)

	for _, e := range easy {
		for _, m := range medium {
			for i := 0; i < len(tricky)-1; i++ {
				t1, t2 := tricky[i], tricky[i+1]

				used := make(map[string]bool, 16)
				markUsed(used, e.words[:])
				if wordsOverlap(used, m.words[:]) {
					continue
				}
				markUsed(used, m.words[:])
				if wordsOverlap(used, t1.words[:]) || wordsOverlap(used, t2.words[:]) {
					continue
				}
				markUsed(used, t1.words[:])
				if wordsOverlap(used, t2.words[:]) {
					continue
				}

				return []Category{
					e.category(DifficultyYellow),
					m.category(DifficultyGreen),
					t1.category(DifficultyBlue),
					t2.category(DifficultyPurple),
				}
			}
		}
	}

	return nil
}

// pickNonOverlappingCategories is the fallback: any four categories
// without word overlap, assigned tiers in pick order.
func pickNonOverlappingCategories() []Category {
	all := make([]categoryEntry, 0, len(easyCategories)+len(mediumCategories)+len(trickyCategories))
	all = append(all, easyCategories...)
	all = append(all, mediumCategories...)
	all = append(all, trickyCategories...)

	used := make(map[string]bool, 16)
	tiers := []Difficulty{DifficultyYellow, DifficultyGreen, DifficultyBlue, DifficultyPurple}
	selected := make([]Category, 0, 4)

	for _, entry := range shuffled(all) {
		if wordsOverlap(used, entry.words[:]) {
			continue
		}
		markUsed(used, entry.words[:])
		selected = append(selected, entry.category(tiers[len(selected)]))
		if len(selected) == 4 {
			return selected
		}
	}

	return nil
}
