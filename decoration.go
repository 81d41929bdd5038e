package nerdify

import (
	"math/rand"
	"strings"
	"sync"
)

// A Decoration provides the cosmetic suffix appended to every translation.
type Decoration interface {
	Decoration() string
}

// StaticDecoration always returns the same suffix.
type StaticDecoration string

func (s StaticDecoration) Decoration() string {
	return string(s)
}

var decorationGlyphs = []string{"🤓", "👆", "💻"}

// RandomDecoration includes each glyph with a probability of one half, keeping
// their order. It is safe for concurrent use.
type RandomDecoration struct {
	mu     sync.Mutex
	rng    *rand.Rand
	glyphs []string
}

func NewRandomDecoration(seed int64) *RandomDecoration {
	return &RandomDecoration{
		rng:    rand.New(rand.NewSource(seed)),
		glyphs: decorationGlyphs,
	}
}

func (d *RandomDecoration) Decoration() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	sb := strings.Builder{}
	for _, glyph := range d.glyphs {
		if d.rng.Intn(2) == 1 {
			sb.WriteString(glyph)
		}
	}

	return sb.String()
}
