// Package filter decides which orders a viewer may see and narrows them by
// the criteria chosen in the list view.
package filter

import (
	"strings"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
)

// Criteria are the user-chosen list filters. Zero values mean "any", except
// Status: an empty Status hides finalized and cancelled orders.
type Criteria struct {
	Sector       entities.Sector
	TechnicianID string
	Status       entities.Status
	Priority     entities.Priority
	CustomerID   string
	Query        string
}

// VisibleOrders applies the hard visibility rules for viewer.
//
// Admins see everything. Anyone else sees an order when it has neither sector
// nor assignment, or when it is in the viewer's sector and is either
// unassigned or assigned to the viewer.
func VisibleOrders(all []entities.Order, viewer entities.Viewer) []entities.Order {
	out := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if IsVisible(o, viewer) {
			out = append(out, o)
		}
	}
	return out
}

func IsVisible(o entities.Order, viewer entities.Viewer) bool {
	if viewer.IsAdmin() {
		return true
	}
	assigned := o.IsAssigned()
	if strings.TrimSpace(string(o.Sector)) == "" {
		return !assigned
	}
	if !entities.SameSector(o.Sector, viewer.Sector) {
		return false
	}
	return !assigned || isAssignedTo(o, viewer)
}

func isAssignedTo(o entities.Order, viewer entities.Viewer) bool {
	if id := strings.TrimSpace(viewer.TechnicianID); id != "" {
		for _, assigned := range o.AssignedTechnicianIDs() {
			if assigned == id {
				return true
			}
		}
	}
	if name := strings.TrimSpace(viewer.DisplayName); name != "" {
		for _, assigned := range o.AssignedNames() {
			if strings.EqualFold(assigned, name) {
				return true
			}
		}
	}
	return false
}

// Apply narrows orders by criteria. Sector and technician criteria only apply
// to admins; for everyone else those are already fixed by VisibleOrders.
func Apply(orders []entities.Order, viewer entities.Viewer, c Criteria) []entities.Order {
	out := make([]entities.Order, 0, len(orders))
	query := strings.ToLower(strings.TrimSpace(c.Query))
	for _, o := range orders {
		if !matchesStatus(o, c.Status) {
			continue
		}
		if viewer.IsAdmin() {
			if c.Sector != "" && !entities.SameSector(o.Sector, c.Sector) {
				continue
			}
			if c.TechnicianID != "" && !hasTechnician(o, c.TechnicianID) {
				continue
			}
		}
		if c.Priority != "" && !strings.EqualFold(string(o.Priority), string(c.Priority)) {
			continue
		}
		if c.CustomerID != "" && o.CustomerID != c.CustomerID {
			continue
		}
		if query != "" && !matchesQuery(o, query) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Visible is VisibleOrders followed by Apply.
func Visible(all []entities.Order, viewer entities.Viewer, c Criteria) []entities.Order {
	return Apply(VisibleOrders(all, viewer), viewer, c)
}

func matchesStatus(o entities.Order, want entities.Status) bool {
	status := workflow.CanonicalStatus(o)
	if want == "" {
		return !status.IsTerminal()
	}
	return status == want
}

func hasTechnician(o entities.Order, technicianID string) bool {
	for _, id := range o.AssignedTechnicianIDs() {
		if id == technicianID {
			return true
		}
	}
	return false
}

func matchesQuery(o entities.Order, query string) bool {
	fields := []string{o.ID, o.Description, o.CustomerName, o.ServiceKind, o.MaterialsSummary}
	fields = append(fields, o.AssignedNames()...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
