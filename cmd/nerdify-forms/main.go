package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/config"
	"github.com/gissleh/nerdify/internal/logger"
	"github.com/gissleh/nerdify/internal/setup"
	"os"
	"strings"
)

var flagDictionary = flag.String("dictionary", "", "YAML dictionary file or directory, the built-in one is used when blank.")

// Lists every generated form of a dictionary source, e.g. `nerdify-forms split up`.
func main() {
	flag.Parse()

	cfg := config.Default()
	cfg.Dictionary.Path = *flagDictionary
	cfg.Translator.Decorate = false

	l := logger.New("forms")

	svc, err := setup.Service(context.Background(), cfg, l, true)
	if err != nil {
		l.Fatal("Failed to set up service", "err", err)
	}

	source := strings.Join(flag.Args(), " ")
	var patterns []nerdify.Pattern
	if source == "" {
		dictionary, err := svc.Dictionary(context.Background())
		if err != nil {
			l.Fatal("Failed to list dictionary", "err", err)
		}

		for _, entry := range dictionary {
			forms, err := svc.Forms(context.Background(), entry.Source)
			if err != nil {
				l.Fatal("Failed to list forms", "source", entry.Source, "err", err)
			}

			patterns = append(patterns, forms...)
		}
	} else {
		patterns, err = svc.Forms(context.Background(), source)
		if err != nil {
			l.Fatal("Failed to list forms", "source", source, "err", err)
		}
	}

	for _, pattern := range patterns {
		_, _ = fmt.Fprintf(os.Stdout, "%-32s %-40s %s\n",
			pattern.Source.Form(),
			pattern.Replacement.Form(),
			strings.Join(pattern.Source.AffixNames(), "+"),
		)
	}
}
