package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase/interfaces"
)

// IReferenceUseCase serves the read-only reference data used by filters, the
// material picker and assignment.
type IReferenceUseCase interface {
	ListMaterials(ctx context.Context) ([]entities.Material, error)
	ListTechnicians(ctx context.Context, activeOnly bool, sector entities.Sector) ([]entities.Technician, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
}

type ReferenceUseCase struct {
	catalog   interfaces.IMaterialCatalog
	directory interfaces.IDirectory
}

var _ IReferenceUseCase = (*ReferenceUseCase)(nil)

func NewReferenceUseCase(catalog interfaces.IMaterialCatalog, directory interfaces.IDirectory) *ReferenceUseCase {
	return &ReferenceUseCase{catalog: catalog, directory: directory}
}

func (u *ReferenceUseCase) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	items, err := u.catalog.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

// ListTechnicians optionally narrows the directory to one sector.
func (u *ReferenceUseCase) ListTechnicians(ctx context.Context, activeOnly bool, sector entities.Sector) ([]entities.Technician, error) {
	items, err := u.directory.ListTechnicians(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(sector)) == "" {
		return items, nil
	}

	out := make([]entities.Technician, 0, len(items))
	for _, t := range items {
		if entities.SameSector(t.Sector, sector) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (u *ReferenceUseCase) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return u.directory.ListCustomers(ctx)
}
