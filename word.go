package nerdify

import (
	"encoding/json"
	"strings"
)

// Word is a lemma with the affixes applied to it, in application order. It is
// immutable; the form is derived once from the lemma and the affixes.
type Word struct {
	lemma    string
	category LexicalCategory
	affixes  []*Affix
	form     string
}

func NewWord(lemma string, category LexicalCategory, affixes ...*Affix) Word {
	w := Word{
		lemma:    strings.ToLower(lemma),
		category: category,
		affixes:  append([]*Affix(nil), affixes...),
	}
	w.form = w.DeriveForm()

	return w
}

func (w Word) Lemma() string {
	return w.lemma
}

func (w Word) Category() LexicalCategory {
	return w.category
}

func (w Word) Form() string {
	return w.form
}

func (w Word) Affixes() []*Affix {
	return append(w.affixes[:0:0], w.affixes...)
}

func (w Word) AffixNames() []string {
	names := make([]string, 0, len(w.affixes))
	for _, affix := range w.affixes {
		names = append(names, affix.Name())
	}

	return names
}

func (w Word) HasAffix(affix *Affix) bool {
	for _, applied := range w.affixes {
		if applied == affix {
			return true
		}
	}

	return false
}

// WithAffix returns a copy of the word with one more affix applied.
func (w Word) WithAffix(affix *Affix) Word {
	return NewWord(w.lemma, w.category, append(w.Affixes(), affix)...)
}

// Inflect returns lemma in the given category, carrying the same affixes as w.
func (w Word) Inflect(lemma string, category LexicalCategory) Word {
	return NewWord(lemma, category, w.affixes...)
}

// DeriveForm folds the affixes over the lemma.
func (w Word) DeriveForm() string {
	form := w.lemma
	for _, affix := range w.affixes {
		form = affix.Apply(form)
	}

	return form
}

func (w Word) String() string {
	return w.form
}

func (w Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lemma    string          `json:"lemma"`
		Category LexicalCategory `json:"category"`
		Affixes  []string        `json:"affixes"`
		Form     string          `json:"form"`
	}{
		Lemma:    w.lemma,
		Category: w.category,
		Affixes:  w.AffixNames(),
		Form:     w.form,
	})
}
