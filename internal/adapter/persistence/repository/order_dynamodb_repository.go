package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/assignment"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	pkgerrors "github.com/pkg/errors"
)

type technicianRefItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name,omitempty"`
}

type materialRefItem struct {
	MaterialID string `dynamodbav:"material_id"`
	Quantity   int    `dynamodbav:"quantity"`
}

type orderItem struct {
	ID               string              `dynamodbav:"id"`
	Status           string              `dynamodbav:"status,omitempty"`
	Finalized        bool                `dynamodbav:"finalized,omitempty"`
	Cancelled        bool                `dynamodbav:"cancelled,omitempty"`
	Description      string              `dynamodbav:"description"`
	Sector           string              `dynamodbav:"sector,omitempty"`
	Priority         string              `dynamodbav:"priority,omitempty"`
	CustomerID       string              `dynamodbav:"customer_id,omitempty"`
	CustomerName     string              `dynamodbav:"customer_name,omitempty"`
	Responsibles     []technicianRefItem `dynamodbav:"responsibles,omitempty"`
	TechnicianIDs    string              `dynamodbav:"technician_ids,omitempty"`
	AssignedName     string              `dynamodbav:"assigned_name,omitempty"`
	Notes            string              `dynamodbav:"notes,omitempty"`
	MaterialsSummary string              `dynamodbav:"materials_summary,omitempty"`
	Materials        []materialRefItem   `dynamodbav:"materials,omitempty"`
	WorkStart        string              `dynamodbav:"work_start,omitempty"`
	WorkEnd          string              `dynamodbav:"work_end,omitempty"`
	ServiceKind      string              `dynamodbav:"service_kind,omitempty"`
	CreatedAt        string              `dynamodbav:"created_at"`
	UpdatedAt        string              `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the whole table; the engine always works on the full order set
// and narrows it per viewer in memory.

type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to scan orders")
	}

	orders := make([]entities.Order, 0, len(raw))
	for _, av := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

// Update replaces the whole record. The order must already exist; a missing
// order comes back as a zero Order.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Claim(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#resp) " +
			"AND attribute_not_exists(#techs) AND attribute_not_exists(#assigned)"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#resp":     "responsibles",
			"#techs":    "technician_ids",
			"#assigned": "assigned_name",
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Order{}, nil
			}
			return entities.Order{}, assignment.ErrAlreadyAssigned
		}
		return entities.Order{}, err
	}
	return o, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:               o.ID,
		Status:           string(o.Status),
		Finalized:        o.Finalized,
		Cancelled:        o.Cancelled,
		Description:      o.Description,
		Sector:           string(o.Sector),
		Priority:         string(o.Priority),
		CustomerID:       o.CustomerID,
		CustomerName:     o.CustomerName,
		TechnicianIDs:    o.TechnicianIDs,
		AssignedName:     o.AssignedName,
		Notes:            o.Notes,
		MaterialsSummary: o.MaterialsSummary,
		WorkStart:        formatTimePtr(o.WorkStart),
		WorkEnd:          formatTimePtr(o.WorkEnd),
		ServiceKind:      o.ServiceKind,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
	for _, t := range o.Responsibles {
		it.Responsibles = append(it.Responsibles, technicianRefItem{ID: t.ID, Name: t.Name})
	}
	for _, m := range o.Materials {
		it.Materials = append(it.Materials, materialRefItem{MaterialID: m.MaterialID, Quantity: m.Quantity})
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.Order{
		ID:               it.ID,
		Status:           entities.Status(it.Status),
		Finalized:        it.Finalized,
		Cancelled:        it.Cancelled,
		Description:      it.Description,
		Sector:           entities.Sector(it.Sector),
		Priority:         entities.Priority(it.Priority),
		CustomerID:       it.CustomerID,
		CustomerName:     it.CustomerName,
		TechnicianIDs:    it.TechnicianIDs,
		AssignedName:     it.AssignedName,
		Notes:            it.Notes,
		MaterialsSummary: it.MaterialsSummary,
		WorkStart:        parseTimePtr(it.WorkStart),
		WorkEnd:          parseTimePtr(it.WorkEnd),
		ServiceKind:      it.ServiceKind,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	for _, t := range it.Responsibles {
		o.Responsibles = append(o.Responsibles, entities.TechnicianRef{ID: t.ID, Name: t.Name})
	}
	for _, m := range it.Materials {
		o.Materials = append(o.Materials, entities.MaterialRef{MaterialID: m.MaterialID, Quantity: m.Quantity})
	}
	return o
}
