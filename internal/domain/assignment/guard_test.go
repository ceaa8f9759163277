package assignment

import (
	"errors"
	"testing"
	"time"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
)

func TestCanTake(t *testing.T) {
	cases := []struct {
		name  string
		order entities.Order
		want  bool
	}{
		{name: "unassigned field order", order: entities.Order{Sector: entities.SectorField}, want: true},
		{name: "unassigned lab order", order: entities.Order{Sector: "laboratorio"}, want: true},
		{name: "administration sector", order: entities.Order{Sector: entities.SectorAdministration}, want: false},
		{name: "no sector", order: entities.Order{}, want: false},
		{name: "structured responsible", order: entities.Order{Sector: entities.SectorField, Responsibles: []entities.TechnicianRef{{ID: "t-9"}}}, want: false},
		{name: "legacy id list only", order: entities.Order{Sector: entities.SectorField, TechnicianIDs: "t-1, t-2"}, want: false},
		{name: "legacy id list with querying technician", order: entities.Order{Sector: entities.SectorField, TechnicianIDs: "t-1"}, want: false},
		{name: "legacy blank id list", order: entities.Order{Sector: entities.SectorField, TechnicianIDs: " , "}, want: true},
		{name: "legacy assigned name only", order: entities.Order{Sector: entities.SectorLab, AssignedName: "Ana"}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTake(tc.order); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestTake(t *testing.T) {
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	tech := entities.TechnicianRef{ID: " t-1 ", Name: "Ana"}

	t.Run("success", func(t *testing.T) {
		order := entities.Order{ID: "o-1", Status: entities.StatusPending, Sector: entities.SectorField}
		out, err := Take(order, tech, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.Order
		if len(got.Responsibles) != 1 || got.Responsibles[0].ID != "t-1" || got.TechnicianIDs != "t-1" || got.AssignedName != "Ana" {
			t.Fatalf("unexpected assignment: %+v", got)
		}
		if got.Status != entities.StatusInProgress {
			t.Fatalf("expected in progress, got %s", got.Status)
		}
		if got.WorkStart == nil || !got.WorkStart.Equal(now) || !out.Effects.StampedWorkStart {
			t.Fatalf("expected work start stamped: %+v", out)
		}
		if order.IsAssigned() {
			t.Fatalf("input order mutated")
		}
	})

	t.Run("existing work start is kept", func(t *testing.T) {
		start := now.Add(-time.Hour)
		order := entities.Order{Sector: entities.SectorLab, Status: entities.StatusAwaitingPart, WorkStart: &start}
		out, err := Take(order, tech, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Order.WorkStart.Equal(start) || out.Effects.StampedWorkStart {
			t.Fatalf("work start overwritten: %+v", out)
		}
	})

	t.Run("stale order assigned meanwhile", func(t *testing.T) {
		order := entities.Order{Sector: entities.SectorField, TechnicianIDs: "t-7"}
		_, err := Take(order, tech, now)
		if !errors.Is(err, ErrAlreadyAssigned) {
			t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
		}
	})

	t.Run("sector not self assignable", func(t *testing.T) {
		_, err := Take(entities.Order{Sector: entities.SectorAdministration}, tech, now)
		if !errors.Is(err, ErrSectorNotSelfAssignable) {
			t.Fatalf("expected ErrSectorNotSelfAssignable, got %v", err)
		}
	})

	t.Run("blank technician", func(t *testing.T) {
		_, err := Take(entities.Order{Sector: entities.SectorField}, entities.TechnicianRef{ID: "  "}, now)
		if !errors.Is(err, ErrInvalidTechnician) {
			t.Fatalf("expected ErrInvalidTechnician, got %v", err)
		}
	})

	t.Run("terminal order", func(t *testing.T) {
		_, err := Take(entities.Order{Sector: entities.SectorField, Cancelled: true}, tech, now)
		if !errors.Is(err, workflow.ErrTerminalStatus) {
			t.Fatalf("expected ErrTerminalStatus, got %v", err)
		}
	})
}
