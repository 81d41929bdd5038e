package service

import (
	"context"
	"encoding/base64"
	"github.com/charmbracelet/log"
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/adapters/patternindex"
	"github.com/gissleh/nerdify/internal/logger"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"sync/atomic"
	"time"
)

// Service owns the translator built from Storage. The translator is rebuilt
// whenever the dictionary changes through the service, and swapped in whole.
type Service struct {
	Storage       nerdify.DictionaryStorage
	Affixes       []*nerdify.Affix
	Decoration    nerdify.Decoration
	Logger        *log.Logger
	CacheSize     int
	SlowThreshold time.Duration

	state atomic.Pointer[state]
}

type state struct {
	translator *nerdify.Translator
	index      *patternindex.Index
	cache      *lru.Cache[string, string]
}

type Translation struct {
	ID         string  `json:"id"`
	Input      string  `json:"input"`
	Output     string  `json:"output"`
	Cached     bool    `json:"cached"`
	DurationMs float64 `json:"durationMs"`
}

// Reload rebuilds the translator from the current dictionary.
func (s *Service) Reload(ctx context.Context) error {
	dictionary, err := s.Storage.Dictionary(ctx)
	if err != nil {
		return err
	}

	affixes := s.Affixes
	if affixes == nil {
		affixes = nerdify.EnglishAffixes()
	}

	for _, issue := range nerdify.CheckConfiguration(dictionary, affixes) {
		s.log().Warn("Affix configuration", "affix", issue.Affix, "index", issue.Index, "issue", issue.Message)
	}

	var options []nerdify.Option
	if s.Decoration != nil {
		options = append(options, nerdify.WithDecoration(s.Decoration))
	}

	start := time.Now()
	translator := nerdify.NewTranslator(dictionary, affixes, options...)
	next := &state{
		translator: translator,
		index:      patternindex.New(translator.Patterns()),
	}
	if s.CacheSize > 0 {
		next.cache, err = lru.New[string, string](s.CacheSize)
		if err != nil {
			return err
		}
	}

	s.state.Store(next)
	s.log().Info("Translator built", "entries", len(dictionary), "patterns", next.index.Len(), "duration", time.Since(start))

	return nil
}

// Translate accepts any text, blank or not. The input is passed on byte for
// byte, so text that matches nothing comes back as-is with the decoration.
func (s *Service) Translate(ctx context.Context, text string) (*Translation, error) {
	st, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	cached := false
	var body string
	if st.cache != nil {
		body, cached = st.cache.Get(text)
	}
	if !cached {
		body = st.translator.Substitute(text)
		if st.cache != nil {
			st.cache.Add(text, body)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	duration := time.Since(start)
	if s.SlowThreshold > 0 && duration > s.SlowThreshold {
		s.log().Warn("Slow translation", "length", len(text), "duration", duration)
	} else {
		s.log().Debug("Translated", "length", len(text), "cached", cached, "duration", duration)
	}

	id := uuid.New()
	return &Translation{
		ID:         base64.RawURLEncoding.EncodeToString(id[:]),
		Input:      text,
		Output:     st.translator.Decorate(body),
		Cached:     cached,
		DurationMs: float64(duration) / float64(time.Millisecond),
	}, nil
}

// Lookup finds patterns by the start of their form.
func (s *Service) Lookup(ctx context.Context, prefix string, limit int) ([]nerdify.Pattern, error) {
	st, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return st.index.Lookup(prefix, limit), nil
}

// Forms lists every generated form of one dictionary source.
func (s *Service) Forms(ctx context.Context, source string) ([]nerdify.Pattern, error) {
	st, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return st.translator.Forms(source)
}

func (s *Service) Dictionary(ctx context.Context) (nerdify.Dictionary, error) {
	st, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return st.translator.Dictionary(), nil
}

func (s *Service) SaveEntry(ctx context.Context, entry nerdify.DictionaryEntry) error {
	if err := s.Storage.SaveEntry(ctx, entry); err != nil {
		return err
	}

	return s.Reload(ctx)
}

func (s *Service) DeleteEntry(ctx context.Context, source string) error {
	if err := s.Storage.DeleteEntry(ctx, source); err != nil {
		return err
	}

	return s.Reload(ctx)
}

func (s *Service) current(ctx context.Context) (*state, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if st := s.state.Load(); st != nil {
		return st, nil
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	return s.state.Load(), nil
}

func (s *Service) log() *log.Logger {
	if s.Logger == nil {
		return logger.Discard()
	}

	return s.Logger
}
