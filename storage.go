package nerdify

import "context"

// DictionaryStorage holds the dictionary a translator is built from.
type DictionaryStorage interface {
	Dictionary(ctx context.Context) (Dictionary, error)
	SaveEntry(ctx context.Context, entry DictionaryEntry) error
	DeleteEntry(ctx context.Context, source string) error
}
