package main

import (
	"context"
	"flag"
	"github.com/charmbracelet/log"
	"github.com/gissleh/nerdify/adapters/templfrontend"
	"github.com/gissleh/nerdify/adapters/webapi"
	"github.com/gissleh/nerdify/config"
	"github.com/gissleh/nerdify/internal/logger"
	"github.com/gissleh/nerdify/internal/setup"
	"os"
)

var flagConfig = flag.String("config", "./nerdify.toml", "TOML config file.")
var flagAddr = flag.String("addr", "", "Listen address, overrides the config.")
var flagDictionary = flag.String("dictionary", "", "YAML dictionary file or directory, overrides the config.")

func main() {
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
	if *flagDictionary != "" {
		cfg.Dictionary.Path = *flagDictionary
	}

	l := logger.NewWithConfig(os.Stderr, "dev-server", logger.ParseLevel(cfg.Log.Level), cfg.Log.Timestamps, log.TextFormatter)

	svc, err := setup.Service(context.Background(), cfg, l, false)
	if err != nil {
		l.Fatal("Failed to set up service", "err", err)
	}

	api, errCh := webapi.Setup(cfg.Server.Addr)

	webapi.Translate(api.Group("/api/translate"), svc)
	webapi.Utils(api.Group("/api/utils"), svc)
	webapi.Dictionary(api.Group("/api/dictionary"), svc)
	templfrontend.Endpoints(api.Group(""), svc)

	l.Info("Listening", "addr", cfg.Server.Addr)

	err = <-errCh
	if err != nil {
		l.Fatal("Failed to listen", "err", err)
	}
}
