package filter

import (
	"testing"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

func ids(orders []entities.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func sameIDs(t *testing.T, got []entities.Order, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("expected %v got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected %v got %v", want, g)
		}
	}
}

var (
	fieldTech = entities.Viewer{TechnicianID: "t-1", DisplayName: "Ana", Role: entities.RoleTechnician, Sector: entities.SectorField}
	labTech   = entities.Viewer{TechnicianID: "t-2", DisplayName: "Luis", Role: entities.RoleTechnician, Sector: entities.SectorLab}
	admin     = entities.Viewer{TechnicianID: "a-1", DisplayName: "Root", Role: entities.RoleAdmin}
)

func TestVisibleOrders(t *testing.T) {
	all := []entities.Order{
		{ID: "free", Description: "no sector no assignment"},
		{ID: "free-assigned", TechnicianIDs: "t-9"},
		{ID: "field-open", Sector: entities.SectorField},
		{ID: "field-mine", Sector: entities.SectorField, Responsibles: []entities.TechnicianRef{{ID: "t-1", Name: "Ana"}}},
		{ID: "field-mine-legacy", Sector: entities.SectorField, TechnicianIDs: "t-5, t-1"},
		{ID: "field-mine-by-name", Sector: entities.SectorField, AssignedName: "ana"},
		{ID: "field-other", Sector: entities.SectorField, Responsibles: []entities.TechnicianRef{{ID: "t-3"}}},
		{ID: "lab-open", Sector: entities.SectorLab},
	}

	t.Run("field technician", func(t *testing.T) {
		sameIDs(t, VisibleOrders(all, fieldTech), "free", "field-open", "field-mine", "field-mine-legacy", "field-mine-by-name")
	})

	t.Run("lab technician", func(t *testing.T) {
		sameIDs(t, VisibleOrders(all, labTech), "free", "lab-open")
	})

	t.Run("admin sees everything", func(t *testing.T) {
		if got := VisibleOrders(all, admin); len(got) != len(all) {
			t.Fatalf("expected %d orders, got %d", len(all), len(got))
		}
	})

	t.Run("unassigned field order is hidden from lab", func(t *testing.T) {
		o := entities.Order{ID: "x", Sector: "Campo"}
		if !IsVisible(o, fieldTech) {
			t.Fatalf("expected visible to field viewer")
		}
		if IsVisible(o, labTech) {
			t.Fatalf("expected hidden from lab viewer")
		}
	})

	t.Run("sector comparison ignores case", func(t *testing.T) {
		if !IsVisible(entities.Order{Sector: " campo "}, fieldTech) {
			t.Fatalf("expected visible")
		}
	})
}

func TestApply_Status(t *testing.T) {
	orders := []entities.Order{
		{ID: "p", Status: entities.StatusPending},
		{ID: "f", Status: entities.StatusFinalized},
		{ID: "c", Status: entities.StatusCancelled},
		{ID: "legacy-f", Finalized: true},
		{ID: "legacy-c", Cancelled: true},
		{ID: "w", Status: entities.StatusInProgress},
	}

	t.Run("default hides terminal orders", func(t *testing.T) {
		sameIDs(t, Apply(orders, admin, Criteria{}), "p", "w")
	})

	t.Run("explicit finalized", func(t *testing.T) {
		sameIDs(t, Apply(orders, admin, Criteria{Status: entities.StatusFinalized}), "f", "legacy-f")
	})

	t.Run("explicit cancelled", func(t *testing.T) {
		sameIDs(t, Apply(orders, fieldTech, Criteria{Status: entities.StatusCancelled}), "c", "legacy-c")
	})
}

func TestApply_Criteria(t *testing.T) {
	orders := []entities.Order{
		{ID: "o-1", Sector: entities.SectorField, Priority: entities.PriorityHigh, CustomerID: "c-1", CustomerName: "Acme", Responsibles: []entities.TechnicianRef{{ID: "t-1", Name: "Ana"}}},
		{ID: "o-2", Sector: entities.SectorLab, Priority: entities.PriorityLow, CustomerID: "c-2", Description: "Impresora atascada", TechnicianIDs: "t-2"},
		{ID: "o-3", Sector: entities.SectorLab, ServiceKind: "Instalación", MaterialsSummary: "2x Cable UTP"},
	}

	t.Run("admin sector filter", func(t *testing.T) {
		sameIDs(t, Apply(orders, admin, Criteria{Sector: entities.SectorLab}), "o-2", "o-3")
	})

	t.Run("admin technician filter uses legacy ids", func(t *testing.T) {
		sameIDs(t, Apply(orders, admin, Criteria{TechnicianID: "t-2"}), "o-2")
	})

	t.Run("sector and technician ignored for non admin", func(t *testing.T) {
		sameIDs(t, Apply(orders, fieldTech, Criteria{Sector: entities.SectorLab, TechnicianID: "t-9"}), "o-1", "o-2", "o-3")
	})

	t.Run("priority and customer", func(t *testing.T) {
		sameIDs(t, Apply(orders, admin, Criteria{Priority: "alta"}), "o-1")
		sameIDs(t, Apply(orders, admin, Criteria{CustomerID: "c-2"}), "o-2")
	})

	t.Run("free text", func(t *testing.T) {
		sameIDs(t, Apply(orders, admin, Criteria{Query: "acme"}), "o-1")
		sameIDs(t, Apply(orders, admin, Criteria{Query: "IMPRESORA"}), "o-2")
		sameIDs(t, Apply(orders, admin, Criteria{Query: "cable"}), "o-3")
		sameIDs(t, Apply(orders, admin, Criteria{Query: "ana"}), "o-1")
		sameIDs(t, Apply(orders, admin, Criteria{Query: "  "}), "o-1", "o-2", "o-3")
	})
}

func TestVisible(t *testing.T) {
	orders := []entities.Order{
		{ID: "a", Sector: entities.SectorField},
		{ID: "b", Sector: entities.SectorField, Status: entities.StatusFinalized},
		{ID: "c", Sector: entities.SectorLab},
	}
	sameIDs(t, Visible(orders, fieldTech, Criteria{}), "a")
	sameIDs(t, Visible(orders, fieldTech, Criteria{Status: entities.StatusFinalized}), "b")
}
