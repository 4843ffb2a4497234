package repository

import (
	"context"
	"fmt"
	"strconv"

	"quote_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuoteSequencesTableName = "quote_sequences"

// QuoteSequenceDynamoRepository is the per-year quote number counter.
//
// Table requirements:
//   - PK: id (string), one row per year ("quote-2026")
//
// Next uses an atomic ADD so concurrent sessions never receive the same value.
type QuoteSequenceDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteSequenceRepository = (*QuoteSequenceDynamoRepository)(nil)

func NewQuoteSequenceDynamoRepository(ddb DynamoDBAPI) *QuoteSequenceDynamoRepository {
	return &QuoteSequenceDynamoRepository{
		ddb:       ddb,
		tableName: QuoteSequencesTableName(),
	}
}

func QuoteSequencesTableName() string {
	return tableName("QUOTE_SEQUENCES_TABLE", defaultQuoteSequencesTableName)
}

func (r *QuoteSequenceDynamoRepository) Next(ctx context.Context, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: sequenceKey(year)},
		},
		UpdateExpression: aws.String("ADD #last_value :one"),
		ExpressionAttributeNames: map[string]string{
			"#last_value": "last_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["last_value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("quote sequence %d: missing last_value in response", year)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func sequenceKey(year int) string {
	return "quote-" + strconv.Itoa(year)
}
