package nerdify

import (
	"fmt"
	"strings"
)

type LexicalCategory int

const (
	Adjective LexicalCategory = iota
	Noun
	Verb
	Phrase
	PhrasalVerb
	Uninflected
)

var lexicalCategoryNames = [...]string{
	Adjective:   "adj",
	Noun:        "noun",
	Verb:        "verb",
	Phrase:      "phrase",
	PhrasalVerb: "phrasal_verb",
	Uninflected: "uninflected",
}

func (c LexicalCategory) Valid() bool {
	return c >= Adjective && c <= Uninflected
}

func (c LexicalCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("LexicalCategory(%d)", int(c))
	}

	return lexicalCategoryNames[c]
}

func (c LexicalCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown lexical category %d", int(c))
	}

	return []byte(c.String()), nil
}

func (c *LexicalCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseLexicalCategory(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// ParseLexicalCategory accepts the names used in dictionary files, along with
// a few common abbreviations.
func ParseLexicalCategory(s string) (LexicalCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adj", "adj.", "adjective":
		return Adjective, nil
	case "n", "n.", "noun":
		return Noun, nil
	case "v", "v.", "verb":
		return Verb, nil
	case "phrase", "adv", "adv.", "adverb":
		return Phrase, nil
	case "phrasal_verb", "phrasal-verb", "pv":
		return PhrasalVerb, nil
	case "uninflected", "", "-":
		return Uninflected, nil
	}

	return 0, fmt.Errorf("unknown lexical category %q", s)
}

// categorySet is a small bit set over LexicalCategory.
type categorySet uint8

func newCategorySet(categories ...LexicalCategory) categorySet {
	var set categorySet
	for _, category := range categories {
		if category.Valid() {
			set |= 1 << uint(category)
		}
	}

	return set
}

func (s categorySet) Has(category LexicalCategory) bool {
	return category.Valid() && s&(1<<uint(category)) != 0
}

func (s categorySet) List() []LexicalCategory {
	res := make([]LexicalCategory, 0, len(lexicalCategoryNames))
	for c := Adjective; c <= Uninflected; c++ {
		if s.Has(c) {
			res = append(res, c)
		}
	}

	return res
}
