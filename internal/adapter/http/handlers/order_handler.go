package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/Ivanvillan/front-820hd-sub000/internal/adapter/http/dto/request"
	response "github.com/Ivanvillan/front-820hd-sub000/internal/adapter/http/dto/response"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/assignment"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/materials"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/notelog"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase"
	"github.com/Ivanvillan/front-820hd-sub000/pkg"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidNotePayload  = pkg.NewDomainErrorSimple("INVALID_NOTE_INPUT", "Invalid note payload", http.StatusBadRequest)
	errInvalidListFilter   = pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid list filter", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for work orders.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders godoc
// @Summary      List visible orders
// @Tags         orders
// @Produce      json
// @Param        sector         query string false "Sector (admins only)"
// @Param        technician_id  query string false "Technician (admins only)"
// @Param        status         query string false "Status; open orders when empty"
// @Param        priority       query string false "Priority"
// @Param        customer_id    query string false "Customer"
// @Param        q              query string false "Free text"
// @Success      200 {array} response.OrderResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query request.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidListFilter.HTTPStatus, errInvalidListFilter.ToHTTPError())
		return
	}
	criteria, err := query.ToCriteria()
	if err != nil {
		c.JSON(errInvalidListFilter.HTTPStatus, errInvalidListFilter.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListVisible(c.Request.Context(), viewerFrom(c), criteria)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Order detail with notes and materials
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderDetailResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	detail, err := h.usecase.GetByID(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDetail(detail))
}

// CreateOrder godoc
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateOrderRequest true "Order"
// @Success      201 {object} response.SaveOrderResponse
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	in := usecase.CreateOrderInput{
		Description:   payload.Description,
		Status:        parseStatus(payload.Status),
		Sector:        entities.Sector(strings.TrimSpace(payload.Sector)),
		Priority:      entities.Priority(strings.TrimSpace(payload.Priority)),
		CustomerID:    payload.CustomerID,
		CustomerName:  payload.CustomerName,
		ServiceKind:   payload.ServiceKind,
		Responsibles:  request.ToTechnicianRefs(payload.Responsibles),
		Materials:     request.ToMaterialRefs(payload.Materials),
		Note:          payload.Note,
		ConfirmExport: payload.ConfirmExport,
	}

	res, err := h.usecase.Create(c.Request.Context(), viewerFrom(c), in)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSaveResult(res))
}

// UpdateOrder godoc
// @Summary      Save the edit dialog
// @Description  Submits the whole record. Entering Finalizada for the first time exports the order document when confirm_export is set.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path string true "Order ID"
// @Param        payload body request.UpdateOrderRequest true "Changes"
// @Success      200 {object} response.SaveOrderResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	viewer := viewerFrom(c)
	session, err := h.usecase.OpenEdit(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := applyUpdate(session, payload, viewer); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.SaveEdit(c.Request.Context(), session, usecase.ExportAnswer(payload.ConfirmExport))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSaveResult(res))
}

// TakeOrder godoc
// @Summary      Assign an unassigned order to the caller
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.SaveOrderResponse
// @Router       /orders/{id}/take [post]
func (h *OrderHandler) TakeOrder(c *gin.Context) {
	res, err := h.usecase.Take(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSaveResult(res))
}

// AppendNote godoc
// @Summary      Add a note to the order log
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path string true "Order ID"
// @Param        payload body request.AppendNoteRequest true "Note"
// @Success      201 {object} response.OrderResponse
// @Router       /orders/{id}/notes [post]
func (h *OrderHandler) AppendNote(c *gin.Context) {
	var payload request.AppendNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AppendNote(c.Request.Context(), viewerFrom(c), c.Param("id"), payload.Content)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

// ExportOrder godoc
// @Summary      Export the order document
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.ExportResponse
// @Router       /orders/{id}/export [post]
func (h *OrderHandler) ExportOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	location, err := h.usecase.Export(c.Request.Context(), viewerFrom(c), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ExportResponse{OrderID: id, Location: location})
}

// applyUpdate copies the present fields of the payload onto the session.
func applyUpdate(s *usecase.EditSession, p request.UpdateOrderRequest, viewer entities.Viewer) error {
	if p.Status != nil {
		s.Draft.Status = parseStatus(*p.Status)
	}
	if p.Description != nil {
		s.Draft.Description = strings.TrimSpace(*p.Description)
		if s.Draft.Description == "" {
			return usecase.ErrInvalidDescription
		}
	}
	if p.Sector != nil {
		s.Draft.Sector = entities.Sector(strings.TrimSpace(*p.Sector))
	}
	if p.Priority != nil {
		s.Draft.Priority = entities.Priority(strings.TrimSpace(*p.Priority))
	}
	if p.CustomerID != nil {
		s.Draft.CustomerID = strings.TrimSpace(*p.CustomerID)
	}
	if p.CustomerName != nil {
		s.Draft.CustomerName = strings.TrimSpace(*p.CustomerName)
	}
	if p.ServiceKind != nil {
		s.Draft.ServiceKind = strings.TrimSpace(*p.ServiceKind)
	}
	if p.WorkStart != nil {
		t := p.WorkStart.UTC()
		s.Draft.WorkStart = &t
	}
	if p.WorkEnd != nil {
		t := p.WorkEnd.UTC()
		s.Draft.WorkEnd = &t
	}
	if p.Responsibles != nil {
		s.Assign(request.ToTechnicianRefs(*p.Responsibles))
	}
	if p.Materials != nil {
		if err := s.Materials().Replace(request.ToMaterialRefs(*p.Materials)); err != nil {
			return err
		}
	}
	if strings.TrimSpace(p.Note) != "" {
		if err := s.AddNote(p.Note, viewer.DisplayName); err != nil {
			return err
		}
	}
	return nil
}

// parseStatus accepts any spelling ParseStatus knows; anything else is kept
// verbatim so the workflow rejects it.
func parseStatus(raw string) entities.Status {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if s, ok := entities.ParseStatus(raw); ok {
		return s
	}
	return entities.Status(raw)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidDescription), errors.Is(err, usecase.ErrInvalidSession):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, notelog.ErrEmptyContent):
		return pkg.NewDomainErrorSimple("EMPTY_NOTE", "Note content is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, materials.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Material quantity must be positive", http.StatusUnprocessableEntity)
	case errors.Is(err, materials.ErrUnknownMaterial):
		return pkg.NewDomainErrorSimple("UNKNOWN_MATERIAL", "Material not found in catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, workflow.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid order status", http.StatusUnprocessableEntity)
	case errors.Is(err, assignment.ErrInvalidTechnician):
		return pkg.NewDomainErrorSimple("INVALID_TECHNICIAN", "A technician id is required to take orders", http.StatusUnprocessableEntity)
	case errors.Is(err, workflow.ErrTerminalStatus):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order is finalized or cancelled", http.StatusConflict)
	case errors.Is(err, assignment.ErrAlreadyAssigned):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_ASSIGNED", "Order is already assigned", http.StatusConflict)
	case errors.Is(err, assignment.ErrSectorNotSelfAssignable):
		return pkg.NewDomainErrorSimple("SECTOR_NOT_SELF_ASSIGNABLE", "Orders of this sector cannot be taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotVisible):
		return pkg.NewDomainErrorSimple("ORDER_NOT_VISIBLE", "Order is not visible to this user", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
