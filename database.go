package main

import (
	"fmt"

	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/dynamodb"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

type Database struct {
	table *dynamodb.Table
}

// NewDatabase creates the single table shared by the api, keyed on PK/SK.
func NewDatabase(ctx *pulumi.Context) (*Database, error) {
	db := &Database{}
	var err error
	db.table, err = dynamodb.NewTable(ctx, "table", &dynamodb.TableArgs{
		BillingMode: pulumi.String("PAY_PER_REQUEST"),
		HashKey:     pulumi.String("PK"),
		RangeKey:    pulumi.String("SK"),
		Attributes: dynamodb.TableAttributeArray{
			dynamodb.TableAttributeArgs{Name: pulumi.String("PK"), Type: pulumi.String("S")},
			dynamodb.TableAttributeArgs{Name: pulumi.String("SK"), Type: pulumi.String("S")},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Error creating table: %w", err)
	}

	ctx.Export("tableName", db.table.Name)

	return db, nil
}

func (d *Database) readWritePolicy() pulumi.StringOutput {
	return pulumi.JSONMarshal(map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect": "Allow",
				"Action": []string{
					"dynamodb:BatchGetItem",
					"dynamodb:BatchWriteItem",
					"dynamodb:ConditionCheckItem",
					"dynamodb:DeleteItem",
					"dynamodb:DescribeTable",
					"dynamodb:GetItem",
					"dynamodb:PutItem",
					"dynamodb:Query",
					"dynamodb:Scan",
					"dynamodb:UpdateItem",
				},
				"Resource": []interface{}{d.table.Arn},
			},
		},
	})
}
