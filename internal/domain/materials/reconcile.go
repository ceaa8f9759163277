// Package materials keeps an order's structured materials list and its
// free-text summary consistent.
package materials

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

var (
	ErrInvalidQuantity = errors.New("material quantity must be positive")
	ErrUnknownMaterial = errors.New("material not found in catalog")
)

// summaryLine matches "<n> x <description>", any case for the separator.
var summaryLine = regexp.MustCompile(`^\s*(\d+)\s*[xX]\s*(.+?)\s*$`)

// Reconcile builds the structured selection for an order.
//
// Structured refs win when present: each id is looked up in catalog and ids
// that are no longer in the catalog are dropped. Otherwise the summary text is
// parsed line by line; lines that do not resolve to a catalog entry are left
// out of the result. Quantities for the same material are summed.
func Reconcile(summary string, refs []entities.MaterialRef, catalog []entities.Material) []entities.MaterialSelection {
	if len(refs) > 0 {
		return fromRefs(refs, catalog)
	}
	if strings.TrimSpace(summary) != "" {
		return fromSummary(summary, catalog)
	}
	return []entities.MaterialSelection{}
}

func fromRefs(refs []entities.MaterialRef, catalog []entities.Material) []entities.MaterialSelection {
	byID := make(map[string]entities.Material, len(catalog))
	for _, m := range catalog {
		byID[m.ID] = m
	}

	var acc accumulator
	for _, ref := range refs {
		m, ok := byID[strings.TrimSpace(ref.MaterialID)]
		if !ok || ref.Quantity <= 0 {
			continue
		}
		acc.add(m, ref.Quantity)
	}
	return acc.result()
}

func fromSummary(summary string, catalog []entities.Material) []entities.MaterialSelection {
	var acc accumulator
	for _, line := range strings.Split(summary, "\n") {
		qty, desc, ok := ParseLine(line)
		if !ok {
			continue
		}
		m, found := Match(desc, catalog)
		if !found {
			continue
		}
		acc.add(m, qty)
	}
	return acc.result()
}

// ParseLine reads one "<n> x <description>" line. Zero quantities are rejected.
func ParseLine(line string) (int, string, bool) {
	groups := summaryLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if groups == nil {
		return 0, "", false
	}
	qty, err := strconv.Atoi(groups[1])
	if err != nil || qty <= 0 {
		return 0, "", false
	}
	desc := strings.TrimSpace(groups[2])
	if desc == "" {
		return 0, "", false
	}
	return qty, desc, true
}

// Match resolves a typed description against the catalog. An exact name match
// wins; otherwise the first entry where either name contains the other,
// ignoring case.
func Match(description string, catalog []entities.Material) (entities.Material, bool) {
	needle := strings.ToLower(strings.TrimSpace(description))
	if needle == "" {
		return entities.Material{}, false
	}
	for _, m := range catalog {
		if strings.ToLower(strings.TrimSpace(m.Name)) == needle {
			return m, true
		}
	}
	for _, m := range catalog {
		name := strings.ToLower(strings.TrimSpace(m.Name))
		if name == "" {
			continue
		}
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return m, true
		}
	}
	return entities.Material{}, false
}

// ToSummaryText renders "<quantity>x <name>" per selection, one per line.
func ToSummaryText(selections []entities.MaterialSelection) string {
	lines := make([]string, 0, len(selections))
	for _, s := range selections {
		lines = append(lines, fmt.Sprintf("%dx %s", s.Quantity, s.Material.Name))
	}
	return strings.Join(lines, "\n")
}

// ToRefs is the structured form persisted on the order.
func ToRefs(selections []entities.MaterialSelection) []entities.MaterialRef {
	refs := make([]entities.MaterialRef, 0, len(selections))
	for _, s := range selections {
		refs = append(refs, entities.MaterialRef{MaterialID: s.Material.ID, Quantity: s.Quantity})
	}
	return refs
}

// accumulator keeps first-seen order while merging entries by material id.
type accumulator struct {
	index map[string]int
	items []entities.MaterialSelection
}

func (a *accumulator) add(m entities.Material, qty int) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[m.ID]; ok {
		a.items[i].Quantity += qty
		return
	}
	a.index[m.ID] = len(a.items)
	a.items = append(a.items, entities.MaterialSelection{Material: m, Quantity: qty})
}

func (a *accumulator) result() []entities.MaterialSelection {
	if a.items == nil {
		return []entities.MaterialSelection{}
	}
	return a.items
}
