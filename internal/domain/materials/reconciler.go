package materials

import (
	"strings"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

// Reconciler owns both representations of an order's materials for one
// editing session. Every mutation regenerates the summary text, so Summary and
// Refs always describe the same selection.
//
// When the order has structured refs they win and the summary is regenerated
// from them. Otherwise, until the first mutation, Summary returns the text the
// order was loaded with, which keeps lines that never matched the catalog
// visible to the user.
type Reconciler struct {
	catalog    []entities.Material
	selections []entities.MaterialSelection
	summary    string
}

// NewReconciler reconciles the stored summary and refs against catalog.
func NewReconciler(summary string, refs []entities.MaterialRef, catalog []entities.Material) *Reconciler {
	selections := Reconcile(summary, refs, catalog)
	if len(refs) > 0 || strings.TrimSpace(summary) == "" {
		summary = ToSummaryText(selections)
	}
	return &Reconciler{
		catalog:    catalog,
		selections: selections,
		summary:    summary,
	}
}

// Add selects m or increases its quantity when already selected.
func (r *Reconciler) Add(m entities.Material, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range r.selections {
		if r.selections[i].Material.ID == m.ID {
			r.selections[i].Quantity += quantity
			r.sync()
			return nil
		}
	}
	r.selections = append(r.selections, entities.MaterialSelection{Material: m, Quantity: quantity})
	r.sync()
	return nil
}

// AddByID looks the material up in the session catalog before adding it.
func (r *Reconciler) AddByID(materialID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for _, m := range r.catalog {
		if m.ID == materialID {
			return r.Add(m, quantity)
		}
	}
	return ErrUnknownMaterial
}

// Remove drops the selection at index. Callers pass indices from Selections.
func (r *Reconciler) Remove(index int) {
	r.selections = append(r.selections[:index], r.selections[index+1:]...)
	r.sync()
}

// UpdateQuantity replaces the quantity at index.
func (r *Reconciler) UpdateQuantity(index, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	r.selections[index].Quantity = quantity
	r.sync()
	return nil
}

// Replace swaps the whole selection for refs resolved against the catalog.
// Nothing changes if any ref is invalid.
func (r *Reconciler) Replace(refs []entities.MaterialRef) error {
	known := make(map[string]bool, len(r.catalog))
	for _, m := range r.catalog {
		known[m.ID] = true
	}
	for _, ref := range refs {
		if ref.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if !known[strings.TrimSpace(ref.MaterialID)] {
			return ErrUnknownMaterial
		}
	}
	r.selections = fromRefs(refs, r.catalog)
	r.sync()
	return nil
}

// Lookup resolves a typed name against the session catalog.
func (r *Reconciler) Lookup(name string) (entities.Material, bool) {
	return Match(name, r.catalog)
}

func (r *Reconciler) Selections() []entities.MaterialSelection {
	return append([]entities.MaterialSelection(nil), r.selections...)
}

func (r *Reconciler) Summary() string {
	return r.summary
}

func (r *Reconciler) Refs() []entities.MaterialRef {
	return ToRefs(r.selections)
}

func (r *Reconciler) sync() {
	r.summary = ToSummaryText(r.selections)
}
