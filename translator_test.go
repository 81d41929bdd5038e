package nerdify

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func newTestTranslator(dictionary Dictionary) *Translator {
	return NewTranslator(dictionary, EnglishAffixes(), WithDecoration(StaticDecoration("🤓")))
}

func TestTranslator_Translate(t *testing.T) {
	translator := newTestTranslator(DefaultDictionary())

	table := []struct {
		Label    string
		Input    string
		Expected string
	}{
		{"sentence", "There are no similar trends.", "There exist negative isomorphic trendlines. 🤓"},
		{"longest match first", "there be not", "there do not exist 🤓"},
		{"lowercase", "fast", "efficient 🤓"},
		{"capitalized", "Fast", "Efficient 🤓"},
		{"uppercase", "FAST", "EFFICIENT 🤓"},
		{"mixed case becomes lowercase", "fAsT", "efficient 🤓"},
		{"comparative", "faster", "more efficient 🤓"},
		{"superlative", "Fastest", "Most efficient 🤓"},
		{"irregular plural", "nerds", "normal, respectable people 🤓"},
		{"phrasal verb with object", "split it up", "parallelize 🤓"},
		{"phrasal verb third person", "splits up", "parallelizes 🤓"},
		{"uppercase phrase", "THERE ARE", "THERE EXIST 🤓"},
		{"no match", "Hi there.", "Hi there. 🤓"},
		{"empty", "", " 🤓"},
		{"only the end of a pattern is anchored", "piano", "pianegative 🤓"},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, translator.Translate(row.Input))
		})
	}
}

func TestTranslator_LongestMatchPrecedence(t *testing.T) {
	translator := newTestTranslator(Dictionary{
		{"there be", "there exist", Verb},
		{"there be not", "there do not exist", Verb},
	})

	assert.Equal(t, "there do not exist 🤓", translator.Translate("there be not"))
	assert.Equal(t, "there exist 🤓", translator.Translate("there be"))
	assert.Equal(t, "there exists 🤓", translator.Translate("there is"))
}

func TestTranslator_CasePreservation(t *testing.T) {
	translator := NewTranslator(Dictionary{{"fast", "efficient", Adjective}}, EnglishAffixes(), WithDecoration(StaticDecoration("")))

	assert.Equal(t, "Efficient", translator.Substitute("Fast"))
	assert.Equal(t, "EFFICIENT", translator.Substitute("FAST"))
	assert.Equal(t, "efficient", translator.Substitute("fast"))
	assert.Equal(t, "efficient ", translator.Translate("fast"))
}

func TestTranslator_Deterministic(t *testing.T) {
	translator := NewTranslator(DefaultDictionary(), EnglishAffixes())
	input := "Hello everyone! There are only so many groups, so that a little bit of overlap is fast."

	first := translator.Substitute(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, translator.Substitute(input))
	}

	other := NewTranslator(DefaultDictionary(), EnglishAffixes())
	assert.Equal(t, first, other.Substitute(input))
}

func TestTranslator_Concurrent(t *testing.T) {
	translator := NewTranslator(DefaultDictionary(), EnglishAffixes(), WithDecoration(NewRandomDecoration(7)))
	expected := translator.Substitute("There are no similar trends.")

	wg := sync.WaitGroup{}
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = translator.Substitute("There are no similar trends.")
			_ = translator.Translate("There are no similar trends.")
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}

func TestTranslator_Patterns(t *testing.T) {
	rules := NewEnglishRules()
	translator := NewTranslator(DefaultDictionary(), rules.List())

	patterns := translator.Patterns()
	assert.NotEmpty(t, patterns)

	for _, pattern := range patterns {
		assert.Equal(t, pattern.Source.Affixes(), pattern.Replacement.Affixes())
		assert.Equal(t, pattern.Source.Category(), pattern.Replacement.Category())
		assert.False(t, pattern.Source.HasAffix(rules.Progressive) && pattern.Source.HasAffix(rules.Past))
	}

	found := false
	for _, pattern := range patterns {
		if pattern.Source.Form() == "nerds" {
			found = true
			assert.Equal(t, "normal, respectable people", pattern.Replacement.Form())
		}
	}
	assert.True(t, found)
}

func TestTranslator_Forms(t *testing.T) {
	translator := NewTranslator(DefaultDictionary(), EnglishAffixes())

	forms, err := translator.Forms("Trend")
	assert.NoError(t, err)
	if assert.Len(t, forms, 2) {
		assert.Equal(t, "trends", forms[0].Source.Form())
		assert.Equal(t, "trendlines", forms[0].Replacement.Form())
		assert.Equal(t, "trend", forms[1].Source.Form())
	}

	_, err = translator.Forms("banana")
	assert.ErrorIs(t, err, ErrDictionaryEntryNotFound)
}

func TestTranslator_DuplicateSources(t *testing.T) {
	translator := newTestTranslator(Dictionary{
		{"fast", "quick", Adjective},
		{"slow", "sluggish", Adjective},
		{"Fast", "efficient", Adjective},
	})

	assert.Equal(t, Dictionary{
		{"fast", "efficient", Adjective},
		{"slow", "sluggish", Adjective},
	}, translator.Dictionary())
	assert.Equal(t, "efficient 🤓", translator.Translate("fast"))
}
