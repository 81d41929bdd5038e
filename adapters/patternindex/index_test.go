package patternindex

import (
	"github.com/gissleh/nerdify"
	"github.com/stretchr/testify/assert"
	"testing"
)

func forms(patterns []nerdify.Pattern) []string {
	res := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		res = append(res, pattern.Source.Form())
	}

	return res
}

func TestIndex(t *testing.T) {
	translator := nerdify.NewTranslator(nerdify.DefaultDictionary(), nerdify.EnglishAffixes())
	idx := New(translator.Patterns())

	assert.Equal(t, len(translator.Patterns()), idx.Len())

	t.Run("prefix", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"trend", "trends"}, forms(idx.Lookup("tre", 0)))
		assert.ElementsMatch(t, []string{"fast", "faster", "fastest", "fasterest"}, forms(idx.Lookup("FAST", 0)))
	})

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, idx.Lookup("there", 3), 3)
	})

	t.Run("missing", func(t *testing.T) {
		assert.Empty(t, idx.Lookup("zebra", 10))
		assert.Nil(t, idx.Exact("zebra"))
	})

	t.Run("shared_form", func(t *testing.T) {
		patterns := idx.Exact("split up")
		if assert.Len(t, patterns, 2) {
			assert.Equal(t, "parallelize", patterns[0].Replacement.Form())
			assert.Equal(t, "parallelized", patterns[1].Replacement.Form())
		}
	})
}
