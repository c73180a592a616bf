package main

import (
	"fmt"

	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ecr"
	"github.com/pulumi/pulumi-docker/sdk/v4/go/docker"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// ImageRegistry holds the function images when the stack uses image packaging.
type ImageRegistry struct {
	repo      *ecr.Repository
	authToken ecr.GetAuthorizationTokenResultOutput
	config    StackConfig
	tag       string
}

type ImageRegistryArgs struct {
	config StackConfig
	tag    string
}

func NewImageRegistry(ctx *pulumi.Context, args ImageRegistryArgs) (*ImageRegistry, error) {
	registry := &ImageRegistry{config: args.config, tag: args.tag}
	var err error
	registry.repo, err = ecr.NewRepository(ctx, "registry", &ecr.RepositoryArgs{
		ForceDelete: pulumi.BoolPtr(true),
	})
	if err != nil {
		return nil, fmt.Errorf("Error creating repo: %w", err)
	}
	registry.authToken = ecr.GetAuthorizationTokenOutput(ctx, ecr.GetAuthorizationTokenOutputArgs{
		RegistryId: registry.repo.RegistryId,
	})

	return registry, nil
}

// buildFunction builds and pushes the image for cmd/<function>.
func (r *ImageRegistry) buildFunction(ctx *pulumi.Context, function string) (*docker.Image, error) {
	image, err := docker.NewImage(ctx, function+"-image", &docker.ImageArgs{
		Registry: docker.RegistryArgs{
			Username: r.authToken.UserName(),
			Password: pulumi.ToSecret(r.authToken.ApplyT(func(authToken ecr.GetAuthorizationTokenResult) (*string, error) {
				return &authToken.Password, nil
			})).(pulumi.StringPtrOutput),
		},
		Build: docker.DockerBuildArgs{
			Platform:   pulumi.String(r.config.Platform()),
			Context:    pulumi.String("."),
			Dockerfile: pulumi.String("Dockerfile"),
			Args: pulumi.StringMap{
				"GOARCH":   pulumi.String(r.config.GoArch()),
				"FUNCTION": pulumi.String(function),
			},
		},
		ImageName: r.repo.RepositoryUrl.ApplyT(func(url string) string {
			return fmt.Sprintf("%s:%s-%s", url, function, r.tag)
		}).(pulumi.StringOutput),
	})
	if err != nil {
		return nil, fmt.Errorf("Error building %s image: %w", function, err)
	}

	return image, nil
}
