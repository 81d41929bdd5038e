// Package patternindex keeps the generated patterns of a translator in a
// patricia trie so they can be looked up by prefix.
package patternindex

import (
	"errors"
	"github.com/gissleh/nerdify"
	"github.com/tchap/go-patricia/v2/patricia"
	"strings"
)

var errLimitReached = errors.New("limit reached")

type Index struct {
	trie  *patricia.Trie
	count int
}

// New indexes the patterns by their source form. Patterns sharing a form are
// kept together in the order given.
func New(patterns []nerdify.Pattern) *Index {
	idx := &Index{trie: patricia.NewTrie()}

	for _, pattern := range patterns {
		key := patricia.Prefix(pattern.Source.Form())
		if item := idx.trie.Get(key); item != nil {
			idx.trie.Set(key, append(item.([]nerdify.Pattern), pattern))
		} else {
			idx.trie.Insert(key, []nerdify.Pattern{pattern})
		}
		idx.count++
	}

	return idx
}

func (idx *Index) Len() int {
	return idx.count
}

// Lookup returns up to limit patterns whose form starts with prefix. A limit
// below one means no limit.
func (idx *Index) Lookup(prefix string, limit int) []nerdify.Pattern {
	res := make([]nerdify.Pattern, 0, 16)

	_ = idx.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		for _, pattern := range item.([]nerdify.Pattern) {
			if limit > 0 && len(res) >= limit {
				return errLimitReached
			}

			res = append(res, pattern)
		}

		return nil
	})

	return res
}

// Exact returns the patterns with exactly this form.
func (idx *Index) Exact(form string) []nerdify.Pattern {
	item := idx.trie.Get(patricia.Prefix(strings.ToLower(form)))
	if item == nil {
		return nil
	}

	return append([]nerdify.Pattern(nil), item.([]nerdify.Pattern)...)
}
