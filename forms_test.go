package nerdify

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"unicode/utf8"
)

func formsOf(words []Word) []string {
	res := make([]string, 0, len(words))
	for _, word := range words {
		res = append(res, word.Form())
	}

	return res
}

func TestGenerateForms(t *testing.T) {
	table := []struct {
		Label    string
		Entries  []Word
		Expected []string
	}{
		{
			"verb",
			[]Word{NewWord("overlap", Verb)},
			[]string{"overlapedn't", "overlapsn't", "overlapn't", "overlaping", "overlaped", "overlaps", "overlap"},
		},
		{
			"adjective stacks both degrees",
			[]Word{NewWord("fast", Adjective)},
			[]string{"fasterest", "fastest", "faster", "fast"},
		},
		{
			"noun",
			[]Word{NewWord("trend", Noun)},
			[]string{"trends", "trend"},
		},
		{
			"uninflected",
			[]Word{NewWord("very few", Uninflected)},
			[]string{"very few"},
		},
		{
			"equal lengths keep generation order",
			[]Word{NewWord("abc", Uninflected), NewWord("xyz", Uninflected), NewWord("ab", Noun)},
			[]string{"abc", "xyz", "abs", "ab"},
		},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, formsOf(GenerateForms(row.Entries, EnglishAffixes())))
		})
	}
}

func TestGenerateForms_PhrasalVerb(t *testing.T) {
	rules := NewEnglishRules()
	forms := GenerateForms([]Word{NewWord("split up", PhrasalVerb)}, rules.List())

	assert.Contains(t, formsOf(forms), "split it up")
	assert.Contains(t, formsOf(forms), "split them up")
	assert.Contains(t, formsOf(forms), "splits it up")

	for _, word := range forms {
		assert.False(t, word.HasAffix(rules.It) && word.HasAffix(rules.Them), word.Form())
	}
}

func TestGenerateForms_SortedByLength(t *testing.T) {
	keys := make([]Word, 0, 64)
	for _, entry := range DefaultDictionary() {
		keys = append(keys, NewWord(entry.Source, entry.Category))
	}

	forms := GenerateForms(keys, EnglishAffixes())
	for i := 1; i < len(forms); i++ {
		assert.GreaterOrEqual(t, utf8.RuneCountInString(forms[i-1].Form()), utf8.RuneCountInString(forms[i].Form()))
	}
}

func TestGenerateForms_ProgressiveExcludesOthers(t *testing.T) {
	rules := NewEnglishRules()

	keys := make([]Word, 0, 64)
	for _, entry := range DefaultDictionary() {
		keys = append(keys, NewWord(entry.Source, entry.Category))
	}

	forms := GenerateForms(keys, rules.List())
	progressive := 0
	for _, word := range forms {
		if !word.HasAffix(rules.Progressive) {
			continue
		}

		progressive++
		assert.False(t, word.HasAffix(rules.Past), word.Form())
		assert.False(t, word.HasAffix(rules.ThirdPerson), word.Form())
		assert.False(t, word.HasAffix(rules.Negation), word.Form())
	}
	assert.NotZero(t, progressive)

	for _, word := range forms {
		assert.False(t, word.HasAffix(rules.Past) && word.HasAffix(rules.ThirdPerson), word.Form())
		assert.Equal(t, word.Form(), word.DeriveForm())
	}
}

func TestGenerateForms_NoAffixTwice(t *testing.T) {
	keys := []Word{NewWord("overlap", Verb), NewWord("split up", PhrasalVerb), NewWord("fast", Adjective)}

	for _, word := range GenerateForms(keys, EnglishAffixes()) {
		seen := make(map[*Affix]bool)
		for _, affix := range word.Affixes() {
			assert.False(t, seen[affix], word.Form())
			seen[affix] = true
		}
	}
}
