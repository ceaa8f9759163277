package repository

import (
	"context"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	pkgerrors "github.com/pkg/errors"
)

type materialItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Brand string `dynamodbav:"brand,omitempty"`
	Code  string `dynamodbav:"code,omitempty"`
	Unit  string `dynamodbav:"unit,omitempty"`
}

type technicianItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Sector string `dynamodbav:"sector,omitempty"`
	Active bool   `dynamodbav:"active"`
}

type customerItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Phone   string `dynamodbav:"phone,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
}

// MaterialDynamoRepository reads the material catalog table (PK: id).
type MaterialDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IMaterialCatalog = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client, tableName string) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MaterialDynamoRepository) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	var items []materialItem
	if err := scanInto(ctx, r.ddb, r.tableName, &items); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to scan materials")
	}
	out := make([]entities.Material, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Material{ID: it.ID, Name: it.Name, Brand: it.Brand, Code: it.Code, Unit: it.Unit})
	}
	return out, nil
}

// DirectoryDynamoRepository reads the technician and customer tables (PK: id).
type DirectoryDynamoRepository struct {
	ddb              dynamoAPI
	techniciansTable string
	customersTable   string
}

var _ interfaces.IDirectory = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb *dynamodb.Client, techniciansTable, customersTable string) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{ddb: ddb, techniciansTable: techniciansTable, customersTable: customersTable}
}

func (r *DirectoryDynamoRepository) ListTechnicians(ctx context.Context, activeOnly bool) ([]entities.Technician, error) {
	var items []technicianItem
	if err := scanInto(ctx, r.ddb, r.techniciansTable, &items); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to scan technicians")
	}
	out := make([]entities.Technician, 0, len(items))
	for _, it := range items {
		if activeOnly && !it.Active {
			continue
		}
		out = append(out, entities.Technician{ID: it.ID, Name: it.Name, Sector: entities.Sector(it.Sector), Active: it.Active})
	}
	return out, nil
}

func (r *DirectoryDynamoRepository) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	var items []customerItem
	if err := scanInto(ctx, r.ddb, r.customersTable, &items); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to scan customers")
	}
	out := make([]entities.Customer, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Customer{ID: it.ID, Name: it.Name, Phone: it.Phone, Address: it.Address})
	}
	return out, nil
}

func scanInto(ctx context.Context, ddb dynamoAPI, table string, out interface{}) error {
	raw, err := scanAll(ctx, ddb, table)
	if err != nil {
		return err
	}
	return attributevalue.UnmarshalListOfMaps(raw, out)
}
