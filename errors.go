package nerdify

import (
	"errors"
	"fmt"
)

var ErrDictionaryEntryNotFound = errors.New("dictionary entry not found")
var ErrReadOnly = errors.New("modifications are not allowed")
var ErrEmptyText = errors.New("text cannot be left blank")

// ConfigurationError describes an affix setup that is legal but yields fewer
// forms than intended. None of them stop a Translator from being built.
type ConfigurationError struct {
	Affix    string          `json:"affix"`
	Index    int             `json:"index"`
	Category LexicalCategory `json:"category"`
	Message  string          `json:"message"`
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("affix %d (%s): %s", e.Index, e.Affix, e.Message)
}

type DictionaryError struct {
	Index   int    `json:"index"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

func (e DictionaryError) Error() string {
	return fmt.Sprintf("dictionary entry %d (%q): %s", e.Index, e.Source, e.Message)
}

// CheckConfiguration lists the configuration issues of an affix rule list
// against a dictionary.
func CheckConfiguration(dict Dictionary, affixes []*Affix) []ConfigurationError {
	var res []ConfigurationError

	counts := dict.Categories()
	seen := make(map[*Affix]int, len(affixes))

	for i, affix := range affixes {
		if affix == nil {
			res = append(res, ConfigurationError{Index: i, Message: "affix is nil"})
			continue
		}

		if first, ok := seen[affix]; ok {
			res = append(res, ConfigurationError{
				Affix:   affix.Name(),
				Index:   i,
				Message: fmt.Sprintf("same affix as %d, it cannot be told apart from it", first),
			})
			continue
		}
		seen[affix] = i

		for _, category := range affix.Categories() {
			if counts[category] == 0 {
				res = append(res, ConfigurationError{
					Affix:    affix.Name(),
					Index:    i,
					Category: category,
					Message:  fmt.Sprintf("no dictionary entries of category %s", category),
				})
			}
		}
	}

	return res
}
