package nerdify

import (
	"fmt"
	"strings"
)

// DictionaryEntry maps a source phrase to the lemma that replaces it. The
// source is inflected with the rules of Category, and so is the target.
type DictionaryEntry struct {
	Source   string          `json:"source" yaml:"source"`
	Target   string          `json:"target" yaml:"target"`
	Category LexicalCategory `json:"category" yaml:"category"`
}

// Dictionary is an ordered list of entries. The order decides which of two
// equally long patterns is tried first.
type Dictionary []DictionaryEntry

// Lookup finds the entry for a source phrase, case-insensitively.
func (d Dictionary) Lookup(source string) (*DictionaryEntry, error) {
	source = strings.ToLower(strings.TrimSpace(source))

	for i := len(d) - 1; i >= 0; i-- {
		if strings.ToLower(d[i].Source) == source {
			entry := d[i]
			return &entry, nil
		}
	}

	return nil, ErrDictionaryEntryNotFound
}

// Normalize lower-cases sources and targets and collapses duplicate sources.
// A duplicate keeps the position of its first occurrence and the value of its
// last one.
func (d Dictionary) Normalize() Dictionary {
	res := make(Dictionary, 0, len(d))
	positions := make(map[string]int, len(d))

	for _, entry := range d {
		entry.Source = strings.ToLower(strings.TrimSpace(entry.Source))
		entry.Target = strings.ToLower(strings.TrimSpace(entry.Target))

		if i, ok := positions[entry.Source]; ok {
			res[i] = entry
			continue
		}

		positions[entry.Source] = len(res)
		res = append(res, entry)
	}

	return res
}

func (d Dictionary) Validate() error {
	for i, entry := range d {
		switch {
		case strings.TrimSpace(entry.Source) == "":
			return DictionaryError{Index: i, Source: entry.Source, Message: "source cannot be blank"}
		case strings.TrimSpace(entry.Target) == "":
			return DictionaryError{Index: i, Source: entry.Source, Message: "target cannot be blank"}
		case !entry.Category.Valid():
			return DictionaryError{Index: i, Source: entry.Source, Message: fmt.Sprintf("unknown category %d", int(entry.Category))}
		}
	}

	return nil
}

func (d Dictionary) Copy() Dictionary {
	return append(d[:0:0], d...)
}

// Categories returns how many entries there are of each category.
func (d Dictionary) Categories() map[LexicalCategory]int {
	res := make(map[LexicalCategory]int, len(lexicalCategoryNames))
	for _, entry := range d {
		res[entry.Category] += 1
	}

	return res
}

// DefaultDictionary is the built-in table of plain phrases and their nerdy
// replacements.
func DefaultDictionary() Dictionary {
	return Dictionary{
		{"unrelated", "orthogonal", Adjective},
		{"slight", "nonzero", Adjective},
		{"chance", "probability", Noun},
		{"similar", "isomorphic", Adjective},
		{"alike", "isomorphic", Adjective},
		{"considerable", "nontrivial", Adjective},
		{"unimportant", "trivial", Adjective},
		{"very few", "a negligible number of", Uninflected},
		{"there be", "there exist", Verb},
		{"there be not", "there do not exist", Verb},
		{"there are", "there exist", Verb},
		{"there are not", "there do not exist", Verb},
		{"there's", "there's", Verb},
		{"group", "subset", Noun},
		{"so that", "such that", Phrase},
		{"a bit", "by epsilon", Phrase},
		{"a little bit", "by epsilon", Phrase},
		{"mental energy", "signal-to-noise ratio", Noun},
		{"size", "magnitude", Noun},
		{"enough", "a critical mass of", Uninflected},
		{"split up", "parallelize", PhrasalVerb},
		{"crossover", "intersection", Noun},
		{"overlap", "intersect", Verb},
		{"yes", "this is a true statement", Uninflected},
		{"no", "negative", Uninflected},
		{"effect", "corollary", Noun},
		{"interact", "interface", Verb},
		{"in other words", "equivalently", Uninflected},
		{"everyone", "for every x such that x is a person", Uninflected},
		{"fast", "efficient", Adjective},
		{"eventually", "asymptotically", Phrase},
		{"eventual", "asymptotic", Phrase},
		{"only so many", "only up to n", Uninflected},
		{"hello", "greetings", Uninflected},
		{"nerd", "normal, respectable person", Noun},
		{"trend", "trendline", Noun},
		{"association", "correlation", Noun},
		{"associate", "correlate", Adjective},
		{"when", "under which conditions", Adjective},
		{"what is", "find x such that x is", Adjective},
	}
}
