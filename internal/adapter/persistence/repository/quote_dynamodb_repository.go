package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Spec      string `dynamodbav:"spec"`
	Quantity  int64  `dynamodbav:"quantity"`
	UnitPrice int64  `dynamodbav:"unit_price"`
}

type quoteItem struct {
	ID           string          `dynamodbav:"id"`
	QuoteNumber  string          `dynamodbav:"quote_number"`
	Status       string          `dynamodbav:"status"`
	CreatedAt    string          `dynamodbav:"created_at"`
	UpdatedAt    string          `dynamodbav:"updated_at"`
	CustomerName string          `dynamodbav:"customer_name"`
	Honorific    string          `dynamodbav:"honorific"`
	IssueDate    string          `dynamodbav:"issue_date"`
	ExpiryDate   string          `dynamodbav:"expiry_date"`
	Items        []quoteLineItem `dynamodbav:"items"`
	TaxRate      int64           `dynamodbav:"tax_rate"`
	Subtotal     int64           `dynamodbav:"subtotal"`
	TaxAmount    int64           `dynamodbav:"tax_amount"`
	TotalAmount  int64           `dynamodbav:"total_amount"`
	Remarks      string          `dynamodbav:"remarks,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items are stored inline as a list attribute; a quote is always read
// and written as a whole. Saves of existing quotes overwrite unconditionally.
type QuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: QuotesTableName(),
	}
}

func QuotesTableName() string {
	return tableName("QUOTES_TABLE", defaultQuotesTableName)
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	quotes := make([]entities.Quote, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			q, err := fromQuoteItem(it)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

// Save creates the quote when it has no id yet (assigning a UUID) and
// overwrites it otherwise.
func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
		input.ConditionExpression = aws.String("attribute_not_exists(#id)")
		input.ExpressionAttributeNames = map[string]string{"#id": "id"}
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	input.Item = av

	if _, err := r.ddb.PutItem(ctx, input); err != nil {
		log.Printf("[quote][repo] put failed id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, 0, len(q.Items))
	for _, it := range q.Items {
		lines = append(lines, quoteLineItem{
			ID:        it.ID,
			Name:      it.Name,
			Spec:      it.Spec,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return quoteItem{
		ID:           q.ID,
		QuoteNumber:  q.QuoteNumber,
		Status:       string(q.Status),
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		CustomerName: q.CustomerName,
		Honorific:    string(q.Honorific),
		IssueDate:    q.IssueDate,
		ExpiryDate:   q.ExpiryDate,
		Items:        lines,
		TaxRate:      q.TaxRate,
		Subtotal:     q.Subtotal,
		TaxAmount:    q.TaxAmount,
		TotalAmount:  q.TotalAmount,
		Remarks:      q.Remarks,
	}
}

// fromQuoteItem fails on unreadable timestamps so a re-save can never reset
// created_at.
func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("quote %s: created_at: %w", it.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("quote %s: updated_at: %w", it.ID, err)
	}
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, l := range it.Items {
		items = append(items, entities.QuoteItem{
			ID:        l.ID,
			Name:      l.Name,
			Spec:      l.Spec,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return entities.Quote{
		ID:           it.ID,
		QuoteNumber:  it.QuoteNumber,
		Status:       entities.QuoteStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		CustomerName: it.CustomerName,
		Honorific:    entities.Honorific(it.Honorific),
		IssueDate:    it.IssueDate,
		ExpiryDate:   it.ExpiryDate,
		Items:        items,
		TaxRate:      it.TaxRate,
		Subtotal:     it.Subtotal,
		TaxAmount:    it.TaxAmount,
		TotalAmount:  it.TotalAmount,
		Remarks:      it.Remarks,
	}, nil
}
