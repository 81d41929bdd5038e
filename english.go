package nerdify

import "strings"

var verbalCategories = []LexicalCategory{Verb, Phrase, PhrasalVerb}

// EnglishRules is the built-in English rule set. The rules work from surface
// cues of the form rather than a real morphological analysis, which holds up
// for a small curated dictionary.
type EnglishRules struct {
	Past        *Affix
	ThirdPerson *Affix
	Negation    *Affix
	Progressive *Affix
	Plural      *Affix
	It          *Affix
	Them        *Affix
	Comparative *Affix
	Superlative *Affix
}

func NewEnglishRules() *EnglishRules {
	r := &EnglishRules{}

	r.Past = NewAffix("ed", verbalCategories, nil, func(form string) string {
		if strings.Contains(form, "be") {
			return strings.Replace(form, "be", "were", 1)
		} else if strings.Contains(form, "split") {
			return form
		}

		return inflectHead(form, func(head string) string {
			switch {
			case strings.HasSuffix(head, "e"):
				return head + "d"
			case strings.HasSuffix(head, "y"):
				return head[:len(head)-1] + "ied"
			default:
				return head + "ed"
			}
		})
	})

	r.ThirdPerson = NewAffix("s", verbalCategories, func(word Word) bool {
		return !word.HasAffix(r.Past)
	}, func(form string) string {
		switch {
		case strings.Contains(form, "be"):
			return strings.Replace(form, "be", "is", 1)
		case strings.Contains(form, "were"):
			return strings.Replace(form, "were", "was", 1)
		case strings.HasPrefix(form, "there"):
			return form + "s"
		}

		return inflectHead(form, sibilantS)
	})

	r.Negation = NewAffix("n't", verbalCategories, nil, func(form string) string {
		if strings.Contains(form, "is") || strings.Contains(form, "are") || strings.Contains(form, "was") || strings.Contains(form, "were") {
			form = strings.Replace(form, "is", "isn't", 1)
			form = strings.Replace(form, "are", "isn't", 1)
			form = strings.Replace(form, "was", "wasn't", 1)
			form = strings.Replace(form, "were", "weren't", 1)
			return form
		}

		return inflectHead(form, func(head string) string {
			return head + "n't"
		})
	})

	r.Progressive = NewAffix("ing", verbalCategories, func(word Word) bool {
		return !(word.HasAffix(r.Past) || word.HasAffix(r.ThirdPerson) || word.HasAffix(r.Negation))
	}, func(form string) string {
		if strings.Contains(form, "be") {
			return strings.Replace(form, "be", "being", 1)
		}

		return inflectHead(form, func(head string) string {
			return strings.TrimSuffix(head, "e") + "ing"
		})
	})

	r.Plural = NewAffix("s", []LexicalCategory{Noun}, nil, func(form string) string {
		if strings.Contains(form, "person") {
			return strings.Replace(form, "person", "people", 1)
		}

		return sibilantS(form)
	})

	// "split (it) up", "split (them) up"
	r.It = NewAffix("it", []LexicalCategory{PhrasalVerb}, func(word Word) bool {
		return len(strings.Split(word.Form(), " ")) > 1
	}, particle("it"))
	r.Them = NewAffix("them", []LexicalCategory{PhrasalVerb}, func(word Word) bool {
		return len(strings.Split(word.Form(), " ")) > 1 && !word.HasAffix(r.It)
	}, particle("them"))

	r.Comparative = NewAffix("er", []LexicalCategory{Adjective}, nil, gradable("more", "er"))
	r.Superlative = NewAffix("est", []LexicalCategory{Adjective}, nil, gradable("most", "est"))

	return r
}

// List returns the rules in the order they are expanded in.
func (r *EnglishRules) List() []*Affix {
	return []*Affix{
		r.Past,
		r.ThirdPerson,
		r.Negation,
		r.Progressive,
		r.Plural,
		r.It,
		r.Them,
		r.Comparative,
		r.Superlative,
	}
}

// EnglishAffixes returns a fresh copy of the built-in rule list.
func EnglishAffixes() []*Affix {
	return NewEnglishRules().List()
}

// inflectHead applies fn to the first space-separated token of form.
func inflectHead(form string, fn func(head string) string) string {
	words := strings.Split(form, " ")
	words[0] = fn(words[0])

	return strings.Join(words, " ")
}

func sibilantS(form string) string {
	if strings.HasSuffix(form, "h") || strings.HasSuffix(form, "s") {
		form += "e"
	}

	return form + "s"
}

func particle(object string) func(form string) string {
	return func(form string) string {
		words := strings.Split(form, " ")
		if len(words) == 1 {
			return form
		}

		words[0] += " " + object
		return strings.Join(words, " ")
	}
}

// gradable uses the periphrastic adverb for phrases and for words with more
// than two vowel letters, and the suffix otherwise.
func gradable(adverb, suffix string) func(form string) string {
	return func(form string) string {
		if len(strings.Split(form, " ")) > 1 {
			return adverb + " " + form
		}

		vowels := 0
		for _, r := range form {
			if strings.ContainsRune("aeiouy", r) {
				vowels++
				if vowels > 2 {
					return adverb + " " + form
				}
			}
		}

		return strings.TrimSuffix(form, "y") + suffix
	}
}
