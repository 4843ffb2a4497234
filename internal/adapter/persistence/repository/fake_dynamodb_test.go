package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table store understanding just the expressions
// the repositories issue.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	err    error
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func keyOf(m map[string]types.AttributeValue) string {
	if s, ok := m["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) table(name *string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[aws.ToString(name)]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[aws.ToString(name)] = t
	}
	return t
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(in.TableName)
	k := keyOf(in.Item)
	if aws.ToString(in.ConditionExpression) == "attribute_not_exists(#id)" {
		if _, exists := t[k]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	t[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.table(in.TableName)[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(in.TableName)
	k := keyOf(in.Key)
	old := t[k]
	delete(t, k)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if aws.ToString(in.UpdateExpression) != "ADD #last_value :one" {
		return nil, errors.New("fake: unsupported update expression")
	}
	t := f.table(in.TableName)
	k := keyOf(in.Key)
	row, ok := t[k]
	if !ok {
		row = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: k}}
		t[k] = row
	}
	var cur int64
	if n, ok := row["last_value"].(*types.AttributeValueMemberN); ok {
		cur, _ = strconv.ParseInt(n.Value, 10, 64)
	}
	next := &types.AttributeValueMemberN{Value: strconv.FormatInt(cur+1, 10)}
	row["last_value"] = next
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{"last_value": next}}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var items []map[string]types.AttributeValue
	for _, row := range f.table(in.TableName) {
		items = append(items, row)
	}
	return &dynamodb.ScanOutput{Items: items, Count: int32(len(items))}, nil
}
