package nerdify

// Affix is a named inflection rule. Affixes are compared by pointer, so two
// rules may share a name (plural "s" and third person "s") and still be told
// apart when checking what a word already carries.
type Affix struct {
	name       string
	categories categorySet
	eligible   func(word Word) bool
	inflect    func(form string) string
}

// NewAffix creates an affix. The eligible predicate is only consulted for words
// of one of the listed categories, and may be nil. A nil inflect leaves the
// form unchanged.
func NewAffix(name string, categories []LexicalCategory, eligible func(word Word) bool, inflect func(form string) string) *Affix {
	return &Affix{
		name:       name,
		categories: newCategorySet(categories...),
		eligible:   eligible,
		inflect:    inflect,
	}
}

func (a *Affix) Name() string {
	return a.name
}

func (a *Affix) Categories() []LexicalCategory {
	return a.categories.List()
}

func (a *Affix) AttachesTo(category LexicalCategory) bool {
	return a.categories.Has(category)
}

// AppliesTo returns whether word may additionally receive this affix.
func (a *Affix) AppliesTo(word Word) bool {
	if !a.categories.Has(word.Category()) {
		return false
	}
	if a.eligible == nil {
		return true
	}

	return a.eligible(word)
}

func (a *Affix) Apply(form string) string {
	if a.inflect == nil {
		return form
	}

	return a.inflect(form)
}

func (a *Affix) String() string {
	return "-" + a.name
}
