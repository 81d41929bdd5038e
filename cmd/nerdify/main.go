// Command nerdify translates text from its arguments or from stdin, one line
// at a time. With -ipc it serves msgpack requests on stdin/stdout instead.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/gissleh/nerdify/adapters/ipc"
	"github.com/gissleh/nerdify/config"
	"github.com/gissleh/nerdify/internal/logger"
	"github.com/gissleh/nerdify/internal/setup"
	"os"
	"os/signal"
	"strings"
)

var flagConfig = flag.String("config", "", "TOML config file.")
var flagDictionary = flag.String("dictionary", "", "YAML dictionary file or directory, overrides the config.")
var flagIPC = flag.Bool("ipc", false, "Serve msgpack requests on stdin/stdout.")
var flagSeed = flag.Int64("seed", 0, "Seed for the decoration, overrides the config.")
var flagPlain = flag.Bool("plain", false, "Leave out the decoration.")
var flagDebug = flag.Bool("d", false, "Debug logging.")

func main() {
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}
	if *flagDictionary != "" {
		cfg.Dictionary.Path = *flagDictionary
	}
	if *flagSeed != 0 {
		cfg.Translator.Seed = *flagSeed
	}
	if *flagPlain {
		cfg.Translator.Decorate = false
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if *flagDebug {
		level = log.DebugLevel
	}
	l := logger.NewWithConfig(os.Stderr, "nerdify", level, cfg.Log.Timestamps, log.TextFormatter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, err := setup.Service(ctx, cfg, l, true)
	if err != nil {
		l.Fatal("Failed to set up service", "err", err)
	}

	if *flagIPC {
		err := ipc.NewServer(svc, os.Stdin, os.Stdout, l).Serve(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			l.Fatal("IPC server stopped", "err", err)
		}

		return
	}

	if flag.NArg() > 0 {
		res, err := svc.Translate(ctx, strings.Join(flag.Args(), " "))
		if err != nil {
			l.Fatal("Failed to translate", "err", err)
		}

		fmt.Println(res.Output)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		res, err := svc.Translate(ctx, scanner.Text())
		if err != nil {
			l.Fatal("Failed to translate", "err", err)
		}

		fmt.Println(res.Output)
	}
	if err := scanner.Err(); err != nil {
		l.Fatal("Failed to read input", "err", err)
	}
}
