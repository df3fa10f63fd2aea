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
	"github.com/google/uuid"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID        string         `dynamodbav:"id"`
	Status    string         `dynamodbav:"status"`
	Details   map[string]any `dynamodbav:"details,omitempty"`
	CreatedAt string         `dynamodbav:"created_at"`
	UpdatedAt string         `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentStorage = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

// Create mints a fresh pending payment and persists it immediately, so the
// record exists before any setup closure or gateway touches it.
func (r *PaymentDynamoRepository) Create(ctx context.Context) (*entities.Payment, error) {
	now := time.Now().UTC()
	p := &entities.Payment{
		ID:        uuid.NewString(),
		Status:    entities.PaymentStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return nil, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, p *entities.Payment) error {
	p.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Payment, error) {
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

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p *entities.Payment) paymentItem {
	return paymentItem{
		ID:        p.ID,
		Status:    string(p.Status),
		Details:   p.Details,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) *entities.Payment {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return &entities.Payment{
		ID:        it.ID,
		Status:    entities.PaymentStatus(it.Status),
		Details:   it.Details,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}
