package repository

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableCreator is the subset of *dynamodb.Client needed to bootstrap tables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// tableName returns the env override for a table, or def.
func tableName(envKey, def string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}

// TableNames lists every table the service uses, after env overrides.
func TableNames() []string {
	return []string{QuotesTableName(), SettingsTableName(), QuoteSequencesTableName()}
}

// EnsureTables creates the service tables (PK id, on-demand billing). Tables
// that already exist are left untouched.
func EnsureTables(ctx context.Context, ddb TableCreator) error {
	for _, name := range TableNames() {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[dynamodb] table exists name=%s", name)
				continue
			}
			return err
		}
		log.Printf("[dynamodb] table created name=%s", name)
	}
	return nil
}
