package repository

import (
	"context"
	"time"

	"buildquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSnapshotsTableName = "session_snapshots"

type snapshotRecord struct {
	Key       string `dynamodbav:"key"`
	Payload   []byte `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SnapshotDynamoRepository is the persistent key-value store for guest
// session snapshots.
//
// Table requirements:
//   - PK: key (string)
//
// The payload stays opaque here; serialization and corruption handling
// belong to the reconciler. Access follows the single-writer discipline of
// the auth boundary: Set at guest→auth, Get/Remove at restore.

type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotStore = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *SnapshotDynamoRepository) Set(ctx context.Context, key string, payload []byte) error {
	av, err := attributevalue.MarshalMap(snapshotRecord{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SnapshotDynamoRepository) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var rec snapshotRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, err
	}
	return rec.Payload, nil
}

func (r *SnapshotDynamoRepository) Remove(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
