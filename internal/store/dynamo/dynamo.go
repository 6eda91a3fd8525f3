// Package dynamo implements the document store contract on a single DynamoDB
// table keyed by PK = collection name, SK = document id. Predicates are
// pushed down as filter expressions; sorting and offset/limit happen adapter
// side because DynamoDB cannot sort on arbitrary attributes.
package dynamo

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Cusiokhale/recipe-food-platform/internal/store"
)

type Store struct {
	DynamoDB  *dynamodb.Client
	TableName string
}

var _ store.Store = (*Store)(nil)

func New(client *dynamodb.Client, tableName string) *Store {
	return &Store{
		DynamoDB:  client,
		TableName: tableName,
	}
}

// timeFormat is RFC3339 in UTC with a fixed-width fractional second.
// RFC3339Nano trims trailing zeros, which breaks lexical ordering at
// sub-second boundaries; this format keeps string comparison chronological.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func encodeValue(value any) any {
	if t, ok := value.(time.Time); ok {
		return t.UTC().Format(timeFormat)
	}
	return value
}

func encodeDoc(doc store.Document) map[string]any {
	out := make(map[string]any, len(doc))
	for field, value := range doc {
		out[field] = encodeValue(value)
	}
	return out
}

func _getKey(collection string, id string) (map[string]types.AttributeValue, error) {
	pk, err := attributevalue.Marshal(collection)
	if err != nil {
		return nil, err
	}
	sk, err := attributevalue.Marshal(id)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{"PK": pk, "SK": sk}, nil
}

func (s *Store) Get(ctx context.Context, collection string, id string) (store.Document, error) {
	key, err := _getKey(collection, id)
	if err != nil {
		return nil, err
	}
	response, err := s.DynamoDB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TableName),
		Key:       key,
	})
	if err != nil {
		return nil, err
	}
	if response.Item == nil {
		return nil, nil
	}
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(response.Item, &doc); err != nil {
		return nil, err
	}
	delete(doc, "PK")
	delete(doc, "SK")
	return doc, nil
}

func (s *Store) Put(ctx context.Context, collection string, id string, doc store.Document) error {
	item, err := s.marshalItem(collection, id, doc)
	if err != nil {
		return err
	}
	_, err = s.DynamoDB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      item,
	})
	return err
}

// Update guards the put with an attribute-exists condition, so a document
// deleted since the caller's read is not re-created. A failed condition
// reports existed=false rather than an error.
func (s *Store) Update(ctx context.Context, collection string, id string, doc store.Document) (bool, error) {
	item, err := s.marshalItem(collection, id, doc)
	if err != nil {
		return false, err
	}
	expr, err := expression.NewBuilder().
		WithCondition(expression.Name("PK").AttributeExists()).
		Build()
	if err != nil {
		return false, err
	}
	_, err = s.DynamoDB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(s.TableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Store) marshalItem(collection string, id string, doc store.Document) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(encodeDoc(doc))
	if err != nil {
		return nil, err
	}
	key, err := _getKey(collection, id)
	if err != nil {
		return nil, err
	}
	item["PK"] = key["PK"]
	item["SK"] = key["SK"]
	return item, nil
}

func (s *Store) Delete(ctx context.Context, collection string, id string) (bool, error) {
	key, err := _getKey(collection, id)
	if err != nil {
		return false, err
	}
	response, err := s.DynamoDB.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(s.TableName),
		Key:          key,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(response.Attributes) > 0, nil
}

func (s *Store) Query(ctx context.Context, collection string, query store.Query) ([]store.Document, error) {
	expr, err := buildExpression(collection, query)
	if err != nil {
		return nil, err
	}
	var docs []store.Document
	var startKey map[string]types.AttributeValue
	for {
		output, err := s.DynamoDB.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.TableName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []map[string]any
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, err
		}
		for _, doc := range page {
			delete(doc, "PK")
			delete(doc, "SK")
			docs = append(docs, doc)
		}
		startKey = output.LastEvaluatedKey
		if startKey == nil {
			break
		}
	}
	store.SortDocuments(docs, query.Sort)
	return store.Window(docs, query.Offset, query.Limit), nil
}

func (s *Store) Count(ctx context.Context, collection string, query store.Query) (int, error) {
	expr, err := buildExpression(collection, query)
	if err != nil {
		return 0, err
	}
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		output, err := s.DynamoDB.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.TableName),
			Select:                    types.SelectCount,
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(output.Count)
		startKey = output.LastEvaluatedKey
		if startKey == nil {
			break
		}
	}
	return total, nil
}

// buildExpression translates the predicate part of a query into a key
// condition on the collection partition plus a conjunctive filter
// expression. Timestamps on both the stored and the query side go through
// the fixed-width encoding, so range comparisons stay chronological.
func buildExpression(collection string, query store.Query) (expression.Expression, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(collection))
	builder := expression.NewBuilder().WithKeyCondition(keyEx)

	var filter expression.ConditionBuilder
	hasFilter := false
	combine := func(condition expression.ConditionBuilder) {
		if hasFilter {
			filter = filter.And(condition)
		} else {
			filter = condition
			hasFilter = true
		}
	}
	for field, value := range query.Equals {
		combine(expression.Name(field).Equal(expression.Value(encodeValue(value))))
	}
	for field, value := range query.Contains {
		needle, _ := store.AsString(value)
		combine(expression.Name(field).Contains(needle))
	}
	if r := query.Range; r != nil {
		min, max := encodeValue(r.Min), encodeValue(r.Max)
		switch {
		case r.Min != nil && r.Max != nil:
			combine(expression.Name(r.Field).Between(expression.Value(min), expression.Value(max)))
		case r.Min != nil:
			combine(expression.Name(r.Field).GreaterThanEqual(expression.Value(min)))
		case r.Max != nil:
			combine(expression.Name(r.Field).LessThanEqual(expression.Value(max)))
		}
	}
	if hasFilter {
		builder = builder.WithFilter(filter)
	}
	return builder.Build()
}
