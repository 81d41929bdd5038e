package nerdify

import (
	"sort"
	"unicode/utf8"
)

// GenerateForms expands entries with every affix combination reachable by
// adding one eligible affix at a time, in the order the affixes are listed.
// Words appended while an affix is being tried are visited by that same
// affix, so "ed" followed by "n't" is found within the "n't" pass.
//
// The result is sorted by descending form length, so that a phrase is always
// tried before any shorter phrase it contains. Equal lengths keep their
// generation order.
func GenerateForms(entries []Word, affixes []*Affix) []Word {
	res := append(make([]Word, 0, len(entries)*4), entries...)

	for _, affix := range affixes {
		if affix == nil {
			continue
		}

		for i := 0; i < len(res); i++ {
			word := res[i]
			if affix.AppliesTo(word) && !word.HasAffix(affix) {
				res = append(res, word.WithAffix(affix))
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return utf8.RuneCountInString(res[i].Form()) > utf8.RuneCountInString(res[j].Form())
	})

	return res
}
