package entities

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Status is the operational status of a work order.
//
// Domain notes:
//   - Pendiente and En progreso are reachable from any non-terminal status.
//   - Finalizada and Cancelada are terminal for this service; reopening is an
//     administrative action handled elsewhere.
type Status string

const (
	StatusPending          Status = "Pendiente"
	StatusInDiagnosis      Status = "En diagnóstico"
	StatusAwaitingApproval Status = "Esperando aprobación"
	StatusAwaitingPart     Status = "Esperando repuesto"
	StatusInProgress       Status = "En progreso"
	StatusFinalized        Status = "Finalizada"
	StatusCancelled        Status = "Cancelada"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{
	StatusPending,
	StatusInDiagnosis,
	StatusAwaitingApproval,
	StatusAwaitingPart,
	StatusInProgress,
	StatusFinalized,
	StatusCancelled,
}

var statusKeys = map[string]Status{
	"pending":           StatusPending,
	"in_diagnosis":      StatusInDiagnosis,
	"awaiting_approval": StatusAwaitingApproval,
	"awaiting_part":     StatusAwaitingPart,
	"in_progress":       StatusInProgress,
	"finalized":         StatusFinalized,
	"cancelled":         StatusCancelled,
	"canceled":          StatusCancelled,
}

// IsTerminal reports whether no transition is defined out of s.
func (s Status) IsTerminal() bool {
	return s == StatusFinalized || s == StatusCancelled
}

func (s Status) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus resolves a status from its display value (any case, accents
// optional) or from its English key. The boolean is false for unknown input.
func ParseStatus(raw string) (Status, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", false
	}
	if s, ok := statusKeys[strings.ToLower(v)]; ok {
		return s, true
	}
	folded := foldText(v)
	for _, s := range AllStatuses {
		if foldText(string(s)) == folded {
			return s, true
		}
	}
	return "", false
}

// foldText lowercases and strips diacritics so "diagnostico" matches "diagnóstico".
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
