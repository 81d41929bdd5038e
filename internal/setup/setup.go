// Package setup wires a service from the configuration, shared by the binaries.
package setup

import (
	"context"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/adapters/builtindictionary"
	"github.com/gissleh/nerdify/adapters/yamldictionary"
	"github.com/gissleh/nerdify/config"
	"github.com/gissleh/nerdify/service"
	"time"
)

func Storage(cfg *config.Config, readOnly bool) (nerdify.DictionaryStorage, error) {
	if cfg.Dictionary.Path == "" {
		return builtindictionary.New(), nil
	}

	storage, err := yamldictionary.Open(cfg.Dictionary.Path, readOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}

	return storage, nil
}

func Decoration(cfg *config.Config) nerdify.Decoration {
	if !cfg.Translator.Decorate {
		return nerdify.StaticDecoration("")
	}

	seed := cfg.Translator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return nerdify.NewRandomDecoration(seed)
}

// Service builds the service and its translator up front, so configuration
// problems show up at startup.
func Service(ctx context.Context, cfg *config.Config, logger *log.Logger, readOnly bool) (*service.Service, error) {
	storage, err := Storage(cfg, readOnly)
	if err != nil {
		return nil, err
	}

	svc := &service.Service{
		Storage:       storage,
		Decoration:    Decoration(cfg),
		Logger:        logger,
		CacheSize:     cfg.Translator.CacheSize,
		SlowThreshold: time.Duration(cfg.Server.SlowMS) * time.Millisecond,
	}
	if err := svc.Reload(ctx); err != nil {
		return nil, err
	}

	return svc, nil
}
