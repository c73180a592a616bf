package main

import (
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// functionSources are the inputs baked into the function images.
var functionSources = []string{"hello", "hits", "cmd/hello", "cmd/hits", "go.mod", "go.sum", "Dockerfile"}

func main() {
	pulumi.Run(run)
}

func run(ctx *pulumi.Context) error {
	sc, err := loadStackConfig(ctx)
	if err != nil {
		return err
	}

	database, err := NewDatabase(ctx)
	if err != nil {
		return err
	}

	var registry *ImageRegistry
	if sc.Packaging == PackagingImage {
		tag, err := sourceTag(functionSources...)
		if err != nil {
			return fmt.Errorf("Error hashing function sources: %w", err)
		}
		registry, err = NewImageRegistry(ctx, ImageRegistryArgs{
			config: sc,
			tag:    tag,
		})
		if err != nil {
			return err
		}
	}

	hello, err := NewFunction(ctx, "hello", FunctionArgs{
		config:   sc,
		registry: registry,
	})
	if err != nil {
		return err
	}

	hitCounter, err := NewFunction(ctx, "hits", FunctionArgs{
		config:   sc,
		database: database,
		registry: registry,
	})
	if err != nil {
		return err
	}

	api, err := NewApi(ctx)
	if err != nil {
		return err
	}

	if err := api.registerLambda(ctx, "hello", "$default", hello.function); err != nil {
		return err
	}
	return api.registerLambda(ctx, "hits", "GET /api/hits", hitCounter.function)
}
