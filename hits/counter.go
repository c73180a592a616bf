package hits

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableNameEnv names the environment variable carrying the table name.
const TableNameEnv = "DATABASE_TABLE_NAME"

const (
	counterKey     = "HIT_COUNTER"
	countAttribute = "HitCount"
)

var ErrMissingTableName = errors.New("missing table name")

// UpdateItemAPI is the slice of the DynamoDB client the counter needs.
type UpdateItemAPI interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type Counter struct {
	Client    UpdateItemAPI
	TableName string
}

// TableNameFromEnv returns the configured table name, or ErrMissingTableName when
// the variable is unset or empty.
func TableNameFromEnv(lookup func(string) (string, bool)) (string, error) {
	name, ok := lookup(TableNameEnv)
	if !ok || name == "" {
		return "", fmt.Errorf("%w: set the %s environment variable", ErrMissingTableName, TableNameEnv)
	}
	return name, nil
}

// Hit atomically increments the stored count and returns the new value.
func (c Counter) Hit(ctx context.Context) (int, error) {
	out, err := c.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: counterKey},
			"SK": &types.AttributeValueMemberS{Value: counterKey},
		},
		ReturnValues:     types.ReturnValueUpdatedNew,
		UpdateExpression: aws.String("SET #HitCount = if_not_exists(#HitCount, :Initial) + :Increment"),
		ExpressionAttributeNames: map[string]string{
			"#HitCount": countAttribute,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":Initial":   &types.AttributeValueMemberN{Value: "0"},
			":Increment": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("incrementing hit count: %w", err)
	}

	n, ok := out.Attributes[countAttribute].(*types.AttributeValueMemberN)
	if !ok {
		return 1, nil
	}
	count, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("parsing hit count %q: %w", n.Value, err)
	}
	return count, nil
}
