package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/assignment"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items per table keyed by their "id" attribute and honours
// the condition expressions the repositories use.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func itemID(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[itemID(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	id := itemID(in.Item)
	current, exists := t[id]
	cond := aws.ToString(in.ConditionExpression)
	if (strings.HasPrefix(cond, "attribute_not_exists") && exists) || (strings.HasPrefix(cond, "attribute_exists") && !exists) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	}
	if strings.Contains(cond, "#assigned") && hasAssignee(current) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed"), Item: current}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func hasAssignee(item map[string]types.AttributeValue) bool {
	for _, k := range []string{"responsibles", "technician_ids", "assigned_name"} {
		if _, ok := item[k]; ok {
			return true
		}
	}
	return false
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []map[string]types.AttributeValue
	for _, it := range f.table(aws.ToString(in.TableName)) {
		items = append(items, it)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func (f *fakeDynamo) seed(t *testing.T, table string, v interface{}) {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	f.mu.Lock()
	f.table(table)[itemID(av)] = av
	f.mu.Unlock()
}

func TestOrderDynamoRepository(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	order := entities.Order{
		ID:               "o-1",
		Status:           entities.StatusInProgress,
		Description:      "Router sin señal",
		Sector:           entities.SectorField,
		Priority:         entities.PriorityHigh,
		Responsibles:     []entities.TechnicianRef{{ID: "t-1", Name: "Ana"}},
		TechnicianIDs:    "t-1",
		Notes:            `[{"content":"hola","timestamp":"2024-06-01T09:00:00Z","author":"Ana"}]`,
		MaterialsSummary: "2x Cable UTP",
		Materials:        []entities.MaterialRef{{MaterialID: "m-1", Quantity: 2}},
		WorkStart:        &start,
		CreatedAt:        start.Add(-time.Hour),
		UpdatedAt:        start,
	}

	t.Run("create and get", func(t *testing.T) {
		repo := &OrderDynamoRepository{ddb: newFakeDynamo(), tableName: "orders"}
		if _, err := repo.Create(ctx, order); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := repo.GetByID(ctx, "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Description != order.Description || got.Status != order.Status || got.WorkEnd != nil {
			t.Fatalf("unexpected order: %+v", got)
		}
		if got.WorkStart == nil || !got.WorkStart.Equal(start) || !got.CreatedAt.Equal(order.CreatedAt) {
			t.Fatalf("timestamps lost: %+v", got)
		}
		if len(got.Responsibles) != 1 || got.Responsibles[0].Name != "Ana" || len(got.Materials) != 1 || got.Materials[0].Quantity != 2 {
			t.Fatalf("lists lost: %+v", got)
		}
	})

	t.Run("create duplicate", func(t *testing.T) {
		repo := &OrderDynamoRepository{ddb: newFakeDynamo(), tableName: "orders"}
		if _, err := repo.Create(ctx, order); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Create(ctx, order); err == nil {
			t.Fatalf("expected conditional failure")
		}
	})

	t.Run("get missing", func(t *testing.T) {
		repo := &OrderDynamoRepository{ddb: newFakeDynamo(), tableName: "orders"}
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty order, got %+v %v", got, err)
		}
	})

	t.Run("update", func(t *testing.T) {
		repo := &OrderDynamoRepository{ddb: newFakeDynamo(), tableName: "orders"}
		if _, err := repo.Create(ctx, order); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		next := order.Clone()
		next.Status = entities.StatusFinalized
		next.Finalized = true
		if _, err := repo.Update(ctx, next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// idempotent resubmit
		if _, err := repo.Update(ctx, next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetByID(ctx, "o-1")
		if got.Status != entities.StatusFinalized || !got.Finalized {
			t.Fatalf("update not stored: %+v", got)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		repo := &OrderDynamoRepository{ddb: newFakeDynamo(), tableName: "orders"}
		got, err := repo.Update(ctx, order)
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty order, got %+v %v", got, err)
		}
	})

	t.Run("claim unassigned", func(t *testing.T) {
		repo := &OrderDynamoRepository{ddb: newFakeDynamo(), tableName: "orders"}
		open := order.Clone()
		open.Responsibles, open.TechnicianIDs = nil, ""
		if _, err := repo.Create(ctx, open); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.Claim(ctx, order)
		if err != nil || got.ID != "o-1" {
			t.Fatalf("unexpected claim result %+v %v", got, err)
		}
		stored, _ := repo.GetByID(ctx, "o-1")
		if len(stored.Responsibles) != 1 || stored.Responsibles[0].ID != "t-1" {
			t.Fatalf("claim not stored: %+v", stored)
		}
	})

	t.Run("second claim loses", func(t *testing.T) {
		repo := &OrderDynamoRepository{ddb: newFakeDynamo(), tableName: "orders"}
		open := order.Clone()
		open.Responsibles, open.TechnicianIDs = nil, ""
		if _, err := repo.Create(ctx, open); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Claim(ctx, order); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		other := order.Clone()
		other.Responsibles = []entities.TechnicianRef{{ID: "t-2", Name: "Beto"}}
		other.TechnicianIDs = "t-2"
		if _, err := repo.Claim(ctx, other); !errors.Is(err, assignment.ErrAlreadyAssigned) {
			t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
		}
		stored, _ := repo.GetByID(ctx, "o-1")
		if stored.Responsibles[0].ID != "t-1" {
			t.Fatalf("first claim overwritten: %+v", stored)
		}
	})

	t.Run("claim legacy assignee", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.seed(t, "orders", map[string]interface{}{"id": "o-1", "description": "vieja", "assigned_name": "Carla"})
		repo := &OrderDynamoRepository{ddb: fake, tableName: "orders"}
		if _, err := repo.Claim(ctx, order); !errors.Is(err, assignment.ErrAlreadyAssigned) {
			t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
		}
	})

	t.Run("claim missing", func(t *testing.T) {
		repo := &OrderDynamoRepository{ddb: newFakeDynamo(), tableName: "orders"}
		got, err := repo.Claim(ctx, order)
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty order, got %+v %v", got, err)
		}
	})

	t.Run("list reads legacy items", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.seed(t, "orders", map[string]interface{}{
			"id":             "legacy",
			"description":    "vieja",
			"finalized":      true,
			"technician_ids": "t-3, t-4",
			"notes":          "texto libre",
		})
		repo := &OrderDynamoRepository{ddb: fake, tableName: "orders"}

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || !got[0].Finalized || got[0].Status != "" || len(got[0].LegacyTechnicianIDs()) != 2 {
			t.Fatalf("unexpected orders: %+v", got)
		}
	})
}

func TestReferenceRepositories(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	fake.seed(t, "materials", materialItem{ID: "m-1", Name: "Cable UTP", Unit: "m"})
	fake.seed(t, "technicians", technicianItem{ID: "t-1", Name: "Ana", Sector: "Campo", Active: true})
	fake.seed(t, "technicians", technicianItem{ID: "t-2", Name: "Beto", Active: false})
	fake.seed(t, "customers", customerItem{ID: "c-1", Name: "Acme"})

	materials := &MaterialDynamoRepository{ddb: fake, tableName: "materials"}
	got, err := materials.ListMaterials(ctx)
	if err != nil || len(got) != 1 || got[0].Unit != "m" {
		t.Fatalf("unexpected materials %+v %v", got, err)
	}

	dir := &DirectoryDynamoRepository{ddb: fake, techniciansTable: "technicians", customersTable: "customers"}
	active, err := dir.ListTechnicians(ctx, true)
	if err != nil || len(active) != 1 || active[0].Sector != entities.SectorField {
		t.Fatalf("unexpected technicians %+v %v", active, err)
	}
	all, err := dir.ListTechnicians(ctx, false)
	if err != nil || len(all) != 2 {
		t.Fatalf("unexpected technicians %+v %v", all, err)
	}
	customers, err := dir.ListCustomers(ctx)
	if err != nil || len(customers) != 1 || customers[0].Name != "Acme" {
		t.Fatalf("unexpected customers %+v %v", customers, err)
	}
}
