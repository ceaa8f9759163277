package response

import (
	"time"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/assignment"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase"
)

type TechnicianRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type MaterialRefResponse struct {
	MaterialID string `json:"material_id"`
	Quantity   int    `json:"quantity"`
}

// OrderResponse always carries the canonical status, whatever legacy fields
// the stored record used.
type OrderResponse struct {
	ID               string                  `json:"id"`
	Status           string                  `json:"status"`
	Description      string                  `json:"description"`
	Sector           string                  `json:"sector,omitempty"`
	Priority         string                  `json:"priority,omitempty"`
	CustomerID       string                  `json:"customer_id,omitempty"`
	CustomerName     string                  `json:"customer_name,omitempty"`
	Responsibles     []TechnicianRefResponse `json:"responsibles"`
	TechnicianIDs    []string                `json:"technician_ids"`
	AssignedNames    []string                `json:"assigned_names"`
	MaterialsSummary string                  `json:"materials_summary"`
	Materials        []MaterialRefResponse   `json:"materials"`
	WorkStart        *time.Time              `json:"work_start,omitempty"`
	WorkEnd          *time.Time              `json:"work_end,omitempty"`
	ServiceKind      string                  `json:"service_kind,omitempty"`
	CanTake          bool                    `json:"can_take"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

type NoteResponse struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
}

type MaterialSelectionResponse struct {
	MaterialID string `json:"material_id"`
	Name       string `json:"name"`
	Brand      string `json:"brand,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Quantity   int    `json:"quantity"`
}

type OrderDetailResponse struct {
	OrderResponse
	Notes              []NoteResponse              `json:"notes"`
	MaterialSelections []MaterialSelectionResponse `json:"material_selections"`
	AllowedStatuses    []string                    `json:"allowed_statuses"`
}

type SaveOrderResponse struct {
	Order            OrderResponse `json:"order"`
	PreviousStatus   string        `json:"previous_status"`
	StatusChanged    bool          `json:"status_changed"`
	WorkStartStamped bool          `json:"work_start_stamped"`
	WorkEndStamped   bool          `json:"work_end_stamped"`
	ExportOffered    bool          `json:"export_offered"`
	ExportLocation   string        `json:"export_location,omitempty"`
	ExportError      string        `json:"export_error,omitempty"`
}

type ExportResponse struct {
	OrderID  string `json:"order_id"`
	Location string `json:"location"`
}

func FromOrder(o entities.Order) OrderResponse {
	r := OrderResponse{
		ID:               o.ID,
		Status:           string(workflow.CanonicalStatus(o)),
		Description:      o.Description,
		Sector:           string(o.Sector),
		Priority:         string(o.Priority),
		CustomerID:       o.CustomerID,
		CustomerName:     o.CustomerName,
		Responsibles:     make([]TechnicianRefResponse, 0, len(o.Responsibles)),
		TechnicianIDs:    nonNil(o.AssignedTechnicianIDs()),
		AssignedNames:    nonNil(o.AssignedNames()),
		MaterialsSummary: o.MaterialsSummary,
		Materials:        make([]MaterialRefResponse, 0, len(o.Materials)),
		WorkStart:        o.WorkStart,
		WorkEnd:          o.WorkEnd,
		ServiceKind:      o.ServiceKind,
		CanTake:          assignment.CanTake(o),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	for _, t := range o.Responsibles {
		r.Responsibles = append(r.Responsibles, TechnicianRefResponse{ID: t.ID, Name: t.Name})
	}
	for _, m := range o.Materials {
		r.Materials = append(r.Materials, MaterialRefResponse{MaterialID: m.MaterialID, Quantity: m.Quantity})
	}
	return r
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromOrderDetail(d usecase.OrderDetail) OrderDetailResponse {
	r := OrderDetailResponse{
		OrderResponse:      FromOrder(d.Order),
		Notes:              make([]NoteResponse, 0, len(d.Notes)),
		MaterialSelections: make([]MaterialSelectionResponse, 0, len(d.Materials)),
		AllowedStatuses:    make([]string, 0, len(d.AllowedTargets)),
	}
	r.Status = string(d.Status)
	r.CanTake = d.CanTake
	for _, n := range d.Notes {
		r.Notes = append(r.Notes, NoteResponse{Content: n.Content, Timestamp: n.Timestamp, Author: n.Author})
	}
	for _, s := range d.Materials {
		r.MaterialSelections = append(r.MaterialSelections, MaterialSelectionResponse{
			MaterialID: s.Material.ID,
			Name:       s.Material.Name,
			Brand:      s.Material.Brand,
			Unit:       s.Material.Unit,
			Quantity:   s.Quantity,
		})
	}
	for _, s := range d.AllowedTargets {
		r.AllowedStatuses = append(r.AllowedStatuses, string(s))
	}
	return r
}

func FromSaveResult(res usecase.SaveResult) SaveOrderResponse {
	r := SaveOrderResponse{
		Order:            FromOrder(res.Order),
		PreviousStatus:   string(res.Previous),
		StatusChanged:    res.Previous != res.Order.Status,
		WorkStartStamped: res.Effects.StampedWorkStart,
		WorkEndStamped:   res.Effects.StampedWorkEnd,
		ExportOffered:    res.ExportOffered,
		ExportLocation:   res.ExportLocation,
	}
	if res.ExportErr != nil {
		r.ExportError = res.ExportErr.Error()
	}
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
