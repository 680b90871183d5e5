package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/flounderx/presale-backend/internal/aws"
)

// ErrNotFound is returned by Get when no order exists for the id.
var ErrNotFound = errors.New("order not found")

// Store is the append-only order ledger over DynamoDB. Orders enter through
// InsertIfAbsent only; no update or delete is exposed, because a settled
// purchase is a historical fact.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a ledger bound to a table.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// InsertIfAbsent writes the order unless one already exists under the same id.
// The conditional put is the sole serialization point for a reference:
// concurrent calls with the same id result in exactly one insertion, and
// losers get (false, existing-record, nil) so callers can answer consistently.
func (s *Store) InsertIfAbsent(ctx context.Context, order Order) (bool, *Order, error) {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.nowFunc()
	}

	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return false, nil, fmt.Errorf("marshal order: %w", err)
	}

	input := &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(order_id)"),
	}

	_, err = s.client.PutItem(ctx, input)
	if err != nil {
		// detect conditional check failure
		var sc smithy.APIError
		if errors.As(err, &sc) && sc.ErrorCode() == "ConditionalCheckFailedException" {
			existing, getErr := s.Get(ctx, order.ID)
			if getErr != nil {
				return false, nil, fmt.Errorf("fetch existing order: %w", getErr)
			}
			return false, existing, nil
		}
		return false, nil, fmt.Errorf("put item: %w", err)
	}

	return true, &order, nil
}

// Get fetches an order by id. Returns ErrNotFound when absent.
func (s *Store) Get(ctx context.Context, id string) (*Order, error) {
	input := &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: id},
		},
	}
	out, err := s.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// ListAll returns every order in insertion order. All pages are collected
// before returning, so the result is a snapshot: an insert racing the scan is
// either wholly present or wholly absent, never half-written.
func (s *Store) ListAll(ctx context.Context) ([]Order, error) {
	var result []Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan orders: %w", err)
		}
		for _, item := range out.Items {
			var o Order
			if err := attributevalue.UnmarshalMap(item, &o); err != nil {
				return nil, fmt.Errorf("unmarshal order: %w", err)
			}
			result = append(result, o)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// DynamoDB scans are unordered; insertion order is reconstructed from the
	// write timestamp set by the single ledger writer.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func awsString(s string) *string { return &s }
