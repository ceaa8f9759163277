package entities

import (
	"strings"
	"time"
)

// Sector is the work area an order belongs to.
type Sector string

const (
	SectorField          Sector = "Campo"
	SectorLab            Sector = "Laboratorio"
	SectorAdministration Sector = "Administración"
)

// SelfAssignableSectors are the work areas where a technician may take an
// unclaimed order.
var SelfAssignableSectors = []Sector{SectorField, SectorLab}

func (s Sector) IsSelfAssignable() bool {
	for _, candidate := range SelfAssignableSectors {
		if strings.EqualFold(string(s), string(candidate)) {
			return true
		}
	}
	return false
}

// SameSector compares sectors ignoring case and surrounding spaces.
func SameSector(a, b Sector) bool {
	return strings.EqualFold(strings.TrimSpace(string(a)), strings.TrimSpace(string(b)))
}

type Priority string

const (
	PriorityLow    Priority = "Baja"
	PriorityMedium Priority = "Media"
	PriorityHigh   Priority = "Alta"
	PriorityUrgent Priority = "Urgente"
)

// TechnicianRef is an entry of the structured responsible-party list.
type TechnicianRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// MaterialRef is the structured form of one material line stored on an order.
type MaterialRef struct {
	MaterialID string `json:"material_id"`
	Quantity   int    `json:"quantity"`
}

// Order is the denormalized work-order record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Legacy fields:
//   - Finalized/Cancelled only decide the status when Status is empty.
//   - TechnicianIDs (comma separated) and AssignedName predate Responsibles;
//     all three count as evidence of assignment.
//   - Notes holds the serialized note log, which may still be plain text.
//   - MaterialsSummary is the human-typed "N x description" text kept in sync
//     with Materials.
type Order struct {
	ID               string          `json:"id"`
	Status           Status          `json:"status,omitempty"`
	Finalized        bool            `json:"finalized,omitempty"`
	Cancelled        bool            `json:"cancelled,omitempty"`
	Description      string          `json:"description"`
	Sector           Sector          `json:"sector,omitempty"`
	Priority         Priority        `json:"priority,omitempty"`
	CustomerID       string          `json:"customer_id,omitempty"`
	CustomerName     string          `json:"customer_name,omitempty"`
	Responsibles     []TechnicianRef `json:"responsibles,omitempty"`
	TechnicianIDs    string          `json:"technician_ids,omitempty"`
	AssignedName     string          `json:"assigned_name,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	MaterialsSummary string          `json:"materials_summary,omitempty"`
	Materials        []MaterialRef   `json:"materials,omitempty"`
	WorkStart        *time.Time      `json:"work_start,omitempty"`
	WorkEnd          *time.Time      `json:"work_end,omitempty"`
	ServiceKind      string          `json:"service_kind,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LegacyTechnicianIDs splits the comma separated id field, skipping blanks.
func (o Order) LegacyTechnicianIDs() []string {
	var ids []string
	for _, part := range strings.Split(o.TechnicianIDs, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// AssignedTechnicianIDs merges the structured and legacy id signals without duplicates.
func (o Order) AssignedTechnicianIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		id = strings.TrimSpace(id)
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, r := range o.Responsibles {
		add(r.ID)
	}
	for _, id := range o.LegacyTechnicianIDs() {
		add(id)
	}
	return ids
}

// IsAssigned reports whether any of the three assignment signals is present.
func (o Order) IsAssigned() bool {
	return len(o.AssignedTechnicianIDs()) > 0 || strings.TrimSpace(o.AssignedName) != ""
}

// AssignedNames returns the display names known for the assigned technicians.
func (o Order) AssignedNames() []string {
	var names []string
	for _, r := range o.Responsibles {
		if n := strings.TrimSpace(r.Name); n != "" {
			names = append(names, n)
		}
	}
	if n := strings.TrimSpace(o.AssignedName); n != "" {
		names = append(names, n)
	}
	return names
}

// Clone returns a copy that shares no slices or pointers with o.
func (o Order) Clone() Order {
	c := o
	if o.Responsibles != nil {
		c.Responsibles = append([]TechnicianRef(nil), o.Responsibles...)
	}
	if o.Materials != nil {
		c.Materials = append([]MaterialRef(nil), o.Materials...)
	}
	if o.WorkStart != nil {
		ws := *o.WorkStart
		c.WorkStart = &ws
	}
	if o.WorkEnd != nil {
		we := *o.WorkEnd
		c.WorkEnd = &we
	}
	return c
}
