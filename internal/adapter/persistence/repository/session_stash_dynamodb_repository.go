package repository

import (
	"context"
	"strconv"
	"time"

	"payflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionsTableName = "sessions"
	defaultStashTTLSeconds   = 3600
)

type sessionStashItem struct {
	SessionID string `dynamodbav:"session_id"`
	TokenID   string `dynamodbav:"token_id"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// SessionStashDynamoRepository is the single-slot pending-token stash, one
// item per session.
//
// Table requirements:
//   - PK: session_id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// Fetch deletes the item before returning it, so a second fetch with no
// intervening Put finds nothing. Racing requests from the same session are
// last-writer-wins; the stash does not arbitrate them.

type SessionStashDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	ttl       time.Duration
}

var _ interfaces.ISessionStash = (*SessionStashDynamoRepository)(nil)

func NewSessionStashDynamoRepository(ddb *dynamodb.Client) *SessionStashDynamoRepository {
	ttlSeconds, err := strconv.Atoi(getenvDefault("SESSION_STASH_TTL_SECONDS", ""))
	if err != nil || ttlSeconds <= 0 {
		ttlSeconds = defaultStashTTLSeconds
	}
	return &SessionStashDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
		ttl:       time.Duration(ttlSeconds) * time.Second,
	}
}

func (r *SessionStashDynamoRepository) Put(ctx context.Context, sessionID, tokenID string) error {
	it := sessionStashItem{
		SessionID: sessionID,
		TokenID:   tokenID,
		ExpiresAt: time.Now().UTC().Add(r.ttl).Unix(),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionStashDynamoRepository) Fetch(ctx context.Context, sessionID string) (string, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return "", err
	}
	if len(out.Attributes) == 0 {
		return "", nil
	}

	var it sessionStashItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return "", err
	}
	// DynamoDB TTL reaping lags; treat expired slots as already gone.
	if it.ExpiresAt > 0 && it.ExpiresAt < time.Now().UTC().Unix() {
		return "", nil
	}
	return it.TokenID, nil
}
