package interfaces

import (
	"context"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

// IMaterialCatalog is the read-only material catalog, loaded once per session.
type IMaterialCatalog interface {
	ListMaterials(ctx context.Context) ([]entities.Material, error)
}

// IDirectory is the read-only technician and customer directory.
type IDirectory interface {
	ListTechnicians(ctx context.Context, activeOnly bool) ([]entities.Technician, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
}
