package main

import (
	"fmt"
	"strings"

	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/cloudwatch"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/iam"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/lambda"
	"github.com/pulumi/pulumi-command/sdk/go/command/local"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"hello-lambda/hits"
)

type Function struct {
	function *lambda.Function
}

type FunctionArgs struct {
	config StackConfig
	// database is granted read/write and passed in the environment when set.
	database *Database
	// registry is only set for image packaging.
	registry *ImageRegistry
}

// NewFunction deploys the binary built from cmd/<name>.
func NewFunction(ctx *pulumi.Context, name string, args FunctionArgs) (*Function, error) {
	fn := &Function{}

	assumeRolePolicy, err := iam.GetPolicyDocument(ctx, &iam.GetPolicyDocumentArgs{
		Statements: []iam.GetPolicyDocumentStatement{
			{
				Actions: []string{"sts:AssumeRole"},
				Principals: []iam.GetPolicyDocumentStatementPrincipal{
					{Type: "Service", Identifiers: []string{"lambda.amazonaws.com"}},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Error creating AssumeRolePolicy: %w", err)
	}
	executionRole, err := iam.NewRole(ctx, name+"-execution-role", &iam.RoleArgs{
		AssumeRolePolicy: pulumi.String(assumeRolePolicy.Json),
		ManagedPolicyArns: pulumi.ToStringArray([]string{
			string(iam.ManagedPolicyAWSLambdaBasicExecutionRole),
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("Error creating execution role: %w", err)
	}

	logGroup, err := cloudwatch.NewLogGroup(ctx, name+"-log-group", &cloudwatch.LogGroupArgs{
		RetentionInDays: pulumi.IntPtr(args.config.LogRetentionDays),
	})
	if err != nil {
		return nil, fmt.Errorf("Error creating log group: %w", err)
	}

	fnArgs := &lambda.FunctionArgs{
		Architectures: pulumi.ToStringArray([]string{args.config.Architecture}),
		Role:          executionRole.Arn,
		LoggingConfig: &lambda.FunctionLoggingConfigArgs{
			LogFormat: pulumi.String("Text"),
			LogGroup:  logGroup.Name,
		},
	}
	var dependsOn []pulumi.Resource

	if args.database != nil {
		tableAccess, err := iam.NewRolePolicy(ctx, name+"-table-access", &iam.RolePolicyArgs{
			Role:   executionRole.Name,
			Policy: args.database.readWritePolicy(),
		})
		if err != nil {
			return nil, fmt.Errorf("Error creating table access policy: %w", err)
		}
		dependsOn = append(dependsOn, tableAccess)
		fnArgs.Environment = &lambda.FunctionEnvironmentArgs{
			Variables: pulumi.StringMap{
				hits.TableNameEnv: args.database.table.Name,
			},
		}
	}

	if args.config.Packaging == PackagingImage {
		image, err := args.registry.buildFunction(ctx, name)
		if err != nil {
			return nil, err
		}
		fnArgs.PackageType = pulumi.String("Image")
		fnArgs.ImageUri = image.RepoDigest
	} else {
		bootstrap, err := buildBootstrap(ctx, args.config, name)
		if err != nil {
			return nil, err
		}
		fnArgs.Code = pulumi.NewAssetArchive(map[string]interface{}{"bootstrap": pulumi.NewFileAsset(bootstrap)})
		fnArgs.Handler = pulumi.String("bootstrap")
		fnArgs.Runtime = pulumi.String("provided.al2023")
	}

	fn.function, err = lambda.NewFunction(ctx, name, fnArgs, pulumi.DependsOn(dependsOn))
	if err != nil {
		return nil, fmt.Errorf("Error creating lambda function: %w", err)
	}

	ctx.Export(name+"FunctionName", fn.function.Name)

	return fn, nil
}

// buildBootstrap compiles cmd/<name> and returns the path of the binary.
func buildBootstrap(ctx *pulumi.Context, sc StackConfig, name string) (string, error) {
	dir := "asset/" + name
	_, err := local.Run(ctx, &local.RunArgs{
		Dir: pulumi.StringRef("."),
		Command: strings.Join([]string{
			fmt.Sprintf("rm -rf %s && mkdir -p %s", dir, dir),
			fmt.Sprintf("CGO_ENABLED=0 GOOS=linux GOARCH=%s go build -tags lambda.norpc -mod=readonly -o ./%s/bootstrap ./cmd/%s", sc.GoArch(), dir, name),
			fmt.Sprintf("chmod +x ./%s/bootstrap", dir),
		}, " && "),
		AssetPaths: []string{dir + "/bootstrap"},
	})
	if err != nil {
		return "", fmt.Errorf("Error running local command: %w", err)
	}
	return "./" + dir + "/bootstrap", nil
}
