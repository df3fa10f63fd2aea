package repository

import (
	"context"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTokensTableName = "tokens"

type tokenItem struct {
	ID          string         `dynamodbav:"id"`
	GatewayName string         `dynamodbav:"gateway_name"`
	PaymentID   string         `dynamodbav:"payment_id,omitempty"`
	Action      string         `dynamodbav:"action"`
	TargetURL   string         `dynamodbav:"target_url"`
	AfterURL    string         `dynamodbav:"after_url,omitempty"`
	Details     map[string]any `dynamodbav:"details,omitempty"`
	CreatedAt   string         `dynamodbav:"created_at"`
}

// TokenDynamoRepository persists flow tokens in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Delete is unconditional, which keeps token invalidation idempotent.

type TokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITokenRepository = (*TokenDynamoRepository)(nil)

func NewTokenDynamoRepository(ddb *dynamodb.Client) *TokenDynamoRepository {
	return &TokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TOKENS_TABLE", defaultTokensTableName),
	}
}

func (r *TokenDynamoRepository) Create(ctx context.Context, t *entities.Token) error {
	av, err := attributevalue.MarshalMap(toTokenItem(t))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *TokenDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Token, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it tokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromTokenItem(it), nil
}

func (r *TokenDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toTokenItem(t *entities.Token) tokenItem {
	return tokenItem{
		ID:          t.ID,
		GatewayName: t.GatewayName,
		PaymentID:   t.PaymentID,
		Action:      string(t.Action),
		TargetURL:   t.TargetURL,
		AfterURL:    t.AfterURL,
		Details:     t.Details,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTokenItem(it tokenItem) *entities.Token {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return &entities.Token{
		ID:          it.ID,
		GatewayName: it.GatewayName,
		PaymentID:   it.PaymentID,
		Action:      entities.ActionKind(it.Action),
		TargetURL:   it.TargetURL,
		AfterURL:    it.AfterURL,
		Details:     it.Details,
		CreatedAt:   created,
	}
}
