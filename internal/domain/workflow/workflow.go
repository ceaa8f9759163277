// Package workflow holds the order status state machine and the side effects
// that come with entering a status.
package workflow

import (
	"errors"
	"time"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

var (
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrTerminalStatus = errors.New("order status is terminal")
)

// Effects describes what Apply did beyond setting the status.
type Effects struct {
	StampedWorkStart bool
	StampedWorkEnd   bool
	// OfferExport is true only the first time an order enters Finalizada.
	OfferExport bool
}

// Outcome is the record to persist plus the effects applied to it.
type Outcome struct {
	Order    entities.Order
	Previous entities.Status
	Effects  Effects
}

// Changed reports whether the status moved.
func (o Outcome) Changed() bool {
	return o.Previous != o.Order.Status
}

// CanonicalStatus returns the single status of an order. The explicit field
// wins; legacy flags are consulted only when it is missing or unknown, with
// cancelled checked before finalized.
func CanonicalStatus(o entities.Order) entities.Status {
	if s, ok := entities.ParseStatus(string(o.Status)); ok {
		return s
	}
	switch {
	case o.Cancelled:
		return entities.StatusCancelled
	case o.Finalized:
		return entities.StatusFinalized
	default:
		return entities.StatusPending
	}
}

// CanTransition reports whether from -> to is legal. Any non-terminal status
// may move to any status; terminal statuses only accept themselves.
func CanTransition(from, to entities.Status) bool {
	if !to.IsValid() {
		return false
	}
	if from.IsTerminal() {
		return from == to
	}
	return true
}

// AllowedTargets lists the statuses selectable from from.
func AllowedTargets(from entities.Status) []entities.Status {
	if from.IsTerminal() {
		return []entities.Status{from}
	}
	return append([]entities.Status(nil), entities.AllStatuses...)
}

// Apply moves draft to its requested status. previous is the status the order
// had before the edit; draft carries the caller's changes, including the
// target status and any timestamps the caller supplied.
//
// Entering En progreso stamps WorkStart when it is missing. Entering Finalizada
// from another status stamps WorkEnd when missing, backfills WorkStart from
// CreatedAt, and asks for the export prompt. Finalizada -> Finalizada is a
// no-op with no effects.
func Apply(previous entities.Status, draft entities.Order, now time.Time) (Outcome, error) {
	target, ok := entities.ParseStatus(string(draft.Status))
	if !ok {
		return Outcome{}, ErrInvalidStatus
	}
	if !previous.IsValid() {
		previous = entities.StatusPending
	}
	if !CanTransition(previous, target) {
		return Outcome{}, ErrTerminalStatus
	}

	next := draft.Clone()
	next.Status = target
	next.Finalized = target == entities.StatusFinalized
	next.Cancelled = target == entities.StatusCancelled

	out := Outcome{Previous: previous}

	switch target {
	case entities.StatusInProgress:
		if next.WorkStart == nil {
			ts := now
			next.WorkStart = &ts
			out.Effects.StampedWorkStart = true
		}
	case entities.StatusFinalized:
		if previous == entities.StatusFinalized {
			break
		}
		if next.WorkEnd == nil {
			ts := now
			next.WorkEnd = &ts
			out.Effects.StampedWorkEnd = true
		}
		if next.WorkStart == nil {
			ts := next.CreatedAt
			if ts.IsZero() {
				ts = now
			}
			next.WorkStart = &ts
			out.Effects.StampedWorkStart = true
		}
		out.Effects.OfferExport = true
	}

	out.Order = next
	return out, nil
}
