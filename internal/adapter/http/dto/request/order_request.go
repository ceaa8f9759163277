package request

import (
	"errors"
	"strings"
	"time"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/filter"
)

var (
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

type TechnicianRefRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

type MaterialRefRequest struct {
	MaterialID string `json:"material_id" binding:"required"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the payload of the order creation dialog.
type CreateOrderRequest struct {
	Description   string                 `json:"description" binding:"required"`
	Status        string                 `json:"status"`
	Sector        string                 `json:"sector"`
	Priority      string                 `json:"priority"`
	CustomerID    string                 `json:"customer_id"`
	CustomerName  string                 `json:"customer_name"`
	ServiceKind   string                 `json:"service_kind"`
	Responsibles  []TechnicianRefRequest `json:"responsibles"`
	Materials     []MaterialRefRequest   `json:"materials"`
	Note          string                 `json:"note"`
	ConfirmExport bool                   `json:"confirm_export"`
}

// UpdateOrderRequest is the payload of the edit dialog. Absent fields keep
// their stored value; Materials and Responsibles, when present, replace the
// whole list.
type UpdateOrderRequest struct {
	Status        *string                 `json:"status"`
	Description   *string                 `json:"description"`
	Sector        *string                 `json:"sector"`
	Priority      *string                 `json:"priority"`
	CustomerID    *string                 `json:"customer_id"`
	CustomerName  *string                 `json:"customer_name"`
	ServiceKind   *string                 `json:"service_kind"`
	WorkStart     *time.Time              `json:"work_start"`
	WorkEnd       *time.Time              `json:"work_end"`
	Responsibles  *[]TechnicianRefRequest `json:"responsibles"`
	Materials     *[]MaterialRefRequest   `json:"materials"`
	Note          string                  `json:"note"`
	ConfirmExport bool                    `json:"confirm_export"`
}

type AppendNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListOrdersQuery holds the list filters sent as query parameters.
type ListOrdersQuery struct {
	Sector       string `form:"sector"`
	TechnicianID string `form:"technician_id"`
	Status       string `form:"status"`
	Priority     string `form:"priority"`
	CustomerID   string `form:"customer_id"`
	Query        string `form:"q"`
}

func (q ListOrdersQuery) ToCriteria() (filter.Criteria, error) {
	c := filter.Criteria{
		Sector:       entities.Sector(strings.TrimSpace(q.Sector)),
		TechnicianID: strings.TrimSpace(q.TechnicianID),
		Priority:     entities.Priority(strings.TrimSpace(q.Priority)),
		CustomerID:   strings.TrimSpace(q.CustomerID),
		Query:        q.Query,
	}
	if raw := strings.TrimSpace(q.Status); raw != "" {
		status, ok := entities.ParseStatus(raw)
		if !ok {
			return filter.Criteria{}, ErrInvalidStatusFilter
		}
		c.Status = status
	}
	return c, nil
}

func ToTechnicianRefs(in []TechnicianRefRequest) []entities.TechnicianRef {
	out := make([]entities.TechnicianRef, 0, len(in))
	for _, t := range in {
		out = append(out, entities.TechnicianRef{ID: t.ID, Name: t.Name})
	}
	return out
}

func ToMaterialRefs(in []MaterialRefRequest) []entities.MaterialRef {
	out := make([]entities.MaterialRef, 0, len(in))
	for _, m := range in {
		out = append(out, entities.MaterialRef{MaterialID: strings.TrimSpace(m.MaterialID), Quantity: m.Quantity})
	}
	return out
}
