package nerdify

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRandomDecoration(t *testing.T) {
	allowed := map[string]bool{
		"": true, "🤓": true, "👆": true, "💻": true,
		"🤓👆": true, "🤓💻": true, "👆💻": true, "🤓👆💻": true,
	}

	a := NewRandomDecoration(42)
	b := NewRandomDecoration(42)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		decoration := a.Decoration()
		assert.Equal(t, decoration, b.Decoration())
		assert.True(t, allowed[decoration], decoration)
		seen[decoration] = true
	}

	assert.Greater(t, len(seen), 1)
}

func TestStaticDecoration(t *testing.T) {
	translator := NewTranslator(Dictionary{}, EnglishAffixes(), WithDecoration(StaticDecoration("💻")))
	assert.Equal(t, "hello 💻", translator.Translate("hello"))
}
