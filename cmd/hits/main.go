package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"hello-lambda/hello"
	"hello-lambda/hits"
)

func main() {
	logger := hello.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	tableName, err := hits.TableNameFromEnv(os.LookupEnv)
	if err != nil {
		slog.Error("handler is misconfigured", slog.Any("err", err))
		os.Exit(1)
	}

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		slog.Error("loading aws config", slog.Any("err", err))
		os.Exit(1)
	}

	lambda.Start(hits.Handler{
		Counter: hits.Counter{
			Client:    dynamodb.NewFromConfig(cfg),
			TableName: tableName,
		},
		Logger: logger,
	}.Invoke)
}
