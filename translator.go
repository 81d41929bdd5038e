package nerdify

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// The match is anchored at the end only: "no" must not rewrite "not", but it
// is not guarded at the start.
const patternBoundary = `(?:\b|$)`

// Pattern is one generated form of a dictionary source along with the target
// inflected the same way.
type Pattern struct {
	Source      Word `json:"source"`
	Replacement Word `json:"replacement"`

	exact       *regexp.Regexp
	capitalized *regexp.Regexp
	upper       *regexp.Regexp
	folded      *regexp.Regexp

	capitalizedReplacement string
	upperReplacement       string
	lowerReplacement       string
}

func newPattern(source Word, replacement Word) Pattern {
	form := source.Form()
	capitalizedForm := capitalize(form)
	upperForm := strings.ToUpper(capitalizedForm)

	capitalizedReplacement := capitalize(replacement.Form())
	upperReplacement := strings.ToUpper(capitalizedReplacement)

	return Pattern{
		Source:      source,
		Replacement: replacement,

		exact:       regexp.MustCompile(regexp.QuoteMeta(form) + patternBoundary),
		capitalized: regexp.MustCompile(regexp.QuoteMeta(capitalizedForm) + patternBoundary),
		upper:       regexp.MustCompile(regexp.QuoteMeta(upperForm) + patternBoundary),
		folded:      regexp.MustCompile("(?i)" + regexp.QuoteMeta(upperForm) + patternBoundary),

		capitalizedReplacement: capitalizedReplacement,
		upperReplacement:       upperReplacement,
		lowerReplacement:       strings.ToLower(upperReplacement),
	}
}

// Replace runs the four case passes. The last one matches any casing and
// writes the replacement in lower case; for lower case input it repeats the
// first pass.
func (p *Pattern) Replace(text string) string {
	text = p.exact.ReplaceAllLiteralString(text, p.Replacement.Form())
	text = p.capitalized.ReplaceAllLiteralString(text, p.capitalizedReplacement)
	text = p.upper.ReplaceAllLiteralString(text, p.upperReplacement)
	text = p.folded.ReplaceAllLiteralString(text, p.lowerReplacement)

	return text
}

// Translator rewrites text using the patterns generated from a dictionary. It
// is read-only once built and may be shared between goroutines, provided the
// decoration is safe for concurrent use.
type Translator struct {
	dictionary Dictionary
	affixes    []*Affix
	patterns   []Pattern
	decoration Decoration
}

type Option func(t *Translator)

func WithDecoration(decoration Decoration) Option {
	return func(t *Translator) {
		t.decoration = decoration
	}
}

func NewTranslator(dictionary Dictionary, affixes []*Affix, options ...Option) *Translator {
	t := &Translator{
		dictionary: dictionary.Normalize(),
		affixes:    append(affixes[:0:0], affixes...),
	}
	for _, option := range options {
		option(t)
	}
	if t.decoration == nil {
		t.decoration = NewRandomDecoration(time.Now().UnixNano())
	}

	targets := make(map[string]DictionaryEntry, len(t.dictionary))
	keys := make([]Word, 0, len(t.dictionary))
	for _, entry := range t.dictionary {
		targets[entry.Source] = entry
		keys = append(keys, NewWord(entry.Source, entry.Category))
	}

	forms := GenerateForms(keys, t.affixes)
	t.patterns = make([]Pattern, 0, len(forms))
	for _, form := range forms {
		target := targets[form.Lemma()]
		t.patterns = append(t.patterns, newPattern(form, form.Inflect(target.Target, form.Category())))
	}

	return t
}

// Translate substitutes every known phrase in text and appends the
// decoration, separated by a single space.
func (t *Translator) Translate(text string) string {
	return t.Decorate(t.Substitute(text))
}

// Substitute rewrites text without decorating it. Longer patterns go first,
// and each pattern sees the text as rewritten by the ones before it.
func (t *Translator) Substitute(text string) string {
	for i := range t.patterns {
		text = t.patterns[i].Replace(text)
	}

	return text
}

func (t *Translator) Decorate(text string) string {
	return text + " " + t.decoration.Decoration()
}

// Patterns returns the patterns in the order they are tried.
func (t *Translator) Patterns() []Pattern {
	return append(t.patterns[:0:0], t.patterns...)
}

// Forms returns the patterns generated from one dictionary source.
func (t *Translator) Forms(source string) ([]Pattern, error) {
	entry, err := t.dictionary.Lookup(source)
	if err != nil {
		return nil, err
	}

	res := make([]Pattern, 0, 8)
	for _, pattern := range t.patterns {
		if pattern.Source.Lemma() == entry.Source {
			res = append(res, pattern)
		}
	}

	return res, nil
}

func (t *Translator) Dictionary() Dictionary {
	return t.dictionary.Copy()
}

func (t *Translator) Affixes() []*Affix {
	return append(t.affixes[:0:0], t.affixes...)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return strings.ToUpper(string(r)) + s[size:]
}
