package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"hello-lambda/hello"
)

func main() {
	logger := hello.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	lambda.Start(hello.Handler{Logger: logger}.Invoke)
}
