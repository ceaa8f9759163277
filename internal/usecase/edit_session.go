package usecase

import (
	"strings"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/materials"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/notelog"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
)

// EditSession is one open edit of an order: the loaded record, the status it
// had when opened, the parsed note log and the material reconciler.
//
// Callers change Draft directly for plain fields and go through the session
// methods for notes, materials and assignment. A failed save leaves the
// session untouched so it can be retried.
type EditSession struct {
	Draft entities.Order

	original  entities.Order
	previous  entities.Status
	notes     []entities.Note
	materials *materials.Reconciler
}

// NewEditSession parses the order's notes and reconciles its materials
// against catalog. The draft starts at the canonical status, so records that
// only carry the legacy flags save like any other.
func NewEditSession(o entities.Order, catalog []entities.Material) *EditSession {
	fallback := o.UpdatedAt
	if fallback.IsZero() {
		fallback = o.CreatedAt
	}
	previous := workflow.CanonicalStatus(o)
	draft := o.Clone()
	draft.Status = previous
	return &EditSession{
		Draft:     draft,
		original:  o.Clone(),
		previous:  previous,
		notes:     notelog.Parse(o.Notes, fallback),
		materials: materials.NewReconciler(o.MaterialsSummary, o.Materials, catalog),
	}
}

func (s *EditSession) Original() entities.Order {
	return s.original.Clone()
}

// PreviousStatus is the canonical status the order had when the session opened.
func (s *EditSession) PreviousStatus() entities.Status {
	return s.previous
}

// AllowedTargets lists the statuses the edit may move to.
func (s *EditSession) AllowedTargets() []entities.Status {
	return workflow.AllowedTargets(s.previous)
}

// Notes returns the log in display order.
func (s *EditSession) Notes() []entities.Note {
	return notelog.SortForDisplay(s.notes)
}

func (s *EditSession) AddNote(content, author string) error {
	notes, err := notelog.Append(s.notes, content, author)
	if err != nil {
		return err
	}
	s.notes = notes
	return nil
}

func (s *EditSession) Materials() *materials.Reconciler {
	return s.materials
}

// Assign replaces the assignment, keeping the legacy id and name fields in
// step with the structured list.
func (s *EditSession) Assign(technicians []entities.TechnicianRef) {
	refs := make([]entities.TechnicianRef, 0, len(technicians))
	ids := make([]string, 0, len(technicians))
	names := make([]string, 0, len(technicians))
	for _, t := range technicians {
		t.ID = strings.TrimSpace(t.ID)
		t.Name = strings.TrimSpace(t.Name)
		if t.ID == "" {
			continue
		}
		refs = append(refs, t)
		ids = append(ids, t.ID)
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	if len(refs) == 0 {
		refs = nil
	}
	s.Draft.Responsibles = refs
	s.Draft.TechnicianIDs = strings.Join(ids, ",")
	s.Draft.AssignedName = strings.Join(names, ", ")
}

// record assembles the whole record to submit, with notes and materials
// serialized from the session state.
func (s *EditSession) record() entities.Order {
	o := s.Draft.Clone()
	o.ID = s.original.ID
	o.CreatedAt = s.original.CreatedAt
	o.Notes = notelog.Serialize(s.notes)
	o.MaterialsSummary = s.materials.Summary()
	o.Materials = s.materials.Refs()
	return o
}
