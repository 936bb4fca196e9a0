package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dokan_payments/internal/domain/entities"
	"dokan_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "payment_transactions"
	transactionsCartIDIndex      = "cart_id-index"
)

type transactionRecordItem struct {
	ID              string `dynamodbav:"id"`
	CartID          string `dynamodbav:"cart_id,omitempty"`
	Amount          string `dynamodbav:"amount"`
	CurrencyCode    string `dynamodbav:"currency_code"`
	Status          string `dynamodbav:"status"`
	GatewayResponse string `dynamodbav:"gateway_response,omitempty"`
	LastValidation  string `dynamodbav:"last_validation,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// TransactionRecordDynamoRepository persists the durable payment audit trail.
//
// Table requirements:
//   - PK: id (string, the session/tran id)
//   - GSI: cart_id-index (PK: cart_id)

type TransactionRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRecordRepository = (*TransactionRecordDynamoRepository)(nil)

func NewTransactionRecordDynamoRepository(ddb *dynamodb.Client) *TransactionRecordDynamoRepository {
	return &TransactionRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionRecordDynamoRepository) Create(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
	it := toTransactionRecordItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TransactionRecord{}, err
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
		return entities.TransactionRecord{}, err
	}
	return rec, nil
}

func (r *TransactionRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.TransactionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.TransactionRecord{}, nil
	}

	var it transactionRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TransactionRecord{}, err
	}
	return fromTransactionRecordItem(it), nil
}

func (r *TransactionRecordDynamoRepository) ListByCartID(ctx context.Context, cartID string) ([]entities.TransactionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsCartIDIndex),
		KeyConditionExpression: aws.String("cart_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cartID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.TransactionRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var it transactionRecordItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		records = append(records, fromTransactionRecordItem(it))
	}
	return records, nil
}

func (r *TransactionRecordDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SessionStatus, validation json.RawMessage) (entities.TransactionRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
		"#id":         "id",
	}
	if len(validation) > 0 {
		expr += ", #last_validation = :last_validation"
		vals[":last_validation"] = &types.AttributeValueMemberS{Value: string(validation)}
		names["#last_validation"] = "last_validation"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TransactionRecord{}, nil
		}
		return entities.TransactionRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.TransactionRecord{}, nil
	}
	var it transactionRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TransactionRecord{}, err
	}
	return fromTransactionRecordItem(it), nil
}

func toTransactionRecordItem(rec entities.TransactionRecord) transactionRecordItem {
	return transactionRecordItem{
		ID:              rec.ID,
		CartID:          rec.CartID,
		Amount:          rec.Amount,
		CurrencyCode:    rec.CurrencyCode,
		Status:          string(rec.Status),
		GatewayResponse: string(rec.GatewayResponse),
		LastValidation:  string(rec.LastValidation),
		CreatedAt:       rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionRecordItem(it transactionRecordItem) entities.TransactionRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	rec := entities.TransactionRecord{
		ID:           it.ID,
		CartID:       it.CartID,
		Amount:       it.Amount,
		CurrencyCode: it.CurrencyCode,
		Status:       entities.SessionStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if it.GatewayResponse != "" {
		rec.GatewayResponse = json.RawMessage(it.GatewayResponse)
	}
	if it.LastValidation != "" {
		rec.LastValidation = json.RawMessage(it.LastValidation)
	}
	return rec
}
