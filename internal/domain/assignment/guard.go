// Package assignment guards the "take order" action, where a technician
// claims an unassigned order for themselves.
package assignment

import (
	"errors"
	"strings"
	"time"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
)

var (
	ErrAlreadyAssigned         = errors.New("order is already assigned")
	ErrSectorNotSelfAssignable = errors.New("order sector does not allow self-assignment")
	ErrInvalidTechnician       = errors.New("invalid technician")
)

// CanTake is true when the order has no assignment signal at all and its
// sector allows self-assignment.
func CanTake(o entities.Order) bool {
	return check(o) == nil
}

func check(o entities.Order) error {
	if o.IsAssigned() {
		return ErrAlreadyAssigned
	}
	if !o.Sector.IsSelfAssignable() {
		return ErrSectorNotSelfAssignable
	}
	return nil
}

// Take produces the update that assigns the order to technician and starts
// the work. It re-checks CanTake against the order it is given, so callers
// must pass the freshest copy they have; on error nothing must be submitted.
func Take(o entities.Order, technician entities.TechnicianRef, now time.Time) (workflow.Outcome, error) {
	technician.ID = strings.TrimSpace(technician.ID)
	technician.Name = strings.TrimSpace(technician.Name)
	if technician.ID == "" {
		return workflow.Outcome{}, ErrInvalidTechnician
	}
	if err := check(o); err != nil {
		return workflow.Outcome{}, err
	}

	draft := o.Clone()
	draft.Responsibles = []entities.TechnicianRef{technician}
	draft.TechnicianIDs = technician.ID
	draft.AssignedName = technician.Name
	draft.Status = entities.StatusInProgress

	return workflow.Apply(workflow.CanonicalStatus(o), draft, now)
}
