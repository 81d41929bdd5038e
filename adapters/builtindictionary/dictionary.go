package builtindictionary

import (
	"context"
	"github.com/gissleh/nerdify"
)

type builtinDictionary struct{}

func (d *builtinDictionary) Dictionary(ctx context.Context) (nerdify.Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return nerdify.DefaultDictionary(), nil
}

func (d *builtinDictionary) SaveEntry(context.Context, nerdify.DictionaryEntry) error {
	return nerdify.ErrReadOnly
}

func (d *builtinDictionary) DeleteEntry(context.Context, string) error {
	return nerdify.ErrReadOnly
}

// New returns the built-in dictionary as a read-only storage.
func New() nerdify.DictionaryStorage {
	return &builtinDictionary{}
}
