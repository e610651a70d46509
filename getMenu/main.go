package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gitlab.connectwisedev.com/coffee-service/pkg/api"
	"gitlab.connectwisedev.com/coffee-service/pkg/config"
	"gitlab.connectwisedev.com/coffee-service/pkg/logger"
	"gitlab.connectwisedev.com/coffee-service/pkg/store"
	"gitlab.connectwisedev.com/coffee-service/pkg/storefront"
)

var (
	svc       *storefront.Service
	closeRepo func()
	lg        zerolog.Logger
)

func init() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	lg = logger.New(os.Stdout, cfg.LogLevel)

	svc, closeRepo, err = storefront.Bootstrap(context.Background(), cfg, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to initialize storefront")
	}
}

var menuHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Cache-Control":                "public, max-age=300, must-revalidate",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET",
	"Access-Control-Allow-Headers": "Content-Type",
}

// handler reloads the catalog on every invocation. A failed load still
// answers 200 with the fallback menu and the error text.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	lg.Info().Str("path", request.Path).Msg("received request")

	svc.EnterCatalog(ctx)

	var res api.CatalogResponse
	svc.View(func(st *store.Store) { res = api.NewCatalogResponse(st) })

	body, err := json.Marshal(api.Response{Success: true, Data: res})
	if err != nil {
		lg.Error().Err(err).Msg("failed to marshal menu")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success": false, "message": "Failed to format response"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    menuHeaders,
		Body:       string(body),
	}, nil
}

func main() {
	defer closeRepo()
	lambda.Start(handler)
}
