package main

import (
	"context"
	"flag"
	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/charmbracelet/log"
	"github.com/gissleh/nerdify/adapters/templfrontend"
	"github.com/gissleh/nerdify/adapters/webapi"
	"github.com/gissleh/nerdify/config"
	"github.com/gissleh/nerdify/internal/logger"
	"github.com/gissleh/nerdify/internal/setup"
	"os"
)

var flagConfig = flag.String("config", "", "TOML config file, the environment is used when blank.")

func main() {
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}

	l := logger.NewWithConfig(os.Stderr, "lambda", logger.ParseLevel(cfg.Log.Level), false, log.JSONFormatter)

	svc, err := setup.Service(context.Background(), cfg, l, true)
	if err != nil {
		l.Fatal("Failed to set up service", "err", err)
	}

	api := webapi.SetupWithoutListener()

	webapi.Translate(api.Group("/api/translate"), svc)
	webapi.Utils(api.Group("/api/utils"), svc)
	webapi.Dictionary(api.Group("/api/dictionary"), svc)
	templfrontend.Endpoints(api.Group(""), svc)

	lambda.Start(echoadapter.New(api).ProxyWithContext)
}
