package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase"
	"github.com/Ivanvillan/front-820hd-sub000/pkg"
)

var errInvalidReferenceQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// ReferenceHandler serves the catalog and directory lookups.
type ReferenceHandler struct {
	usecase usecase.IReferenceUseCase
}

func NewReferenceHandler(uc usecase.IReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{usecase: uc}
}

// ListMaterials godoc
// @Summary  Material catalog sorted by name
// @Tags     reference
// @Produce  json
// @Success  200 {array} entities.Material
// @Router   /materials [get]
func (h *ReferenceHandler) ListMaterials(c *gin.Context) {
	items, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListTechnicians godoc
// @Summary  Technician directory
// @Tags     reference
// @Produce  json
// @Param    active query bool   false "Only active technicians (default true)"
// @Param    sector query string false "Sector"
// @Success  200 {array} entities.Technician
// @Router   /technicians [get]
func (h *ReferenceHandler) ListTechnicians(c *gin.Context) {
	activeOnly := true
	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(errInvalidReferenceQuery.HTTPStatus, errInvalidReferenceQuery.ToHTTPError())
			return
		}
		activeOnly = v
	}

	items, err := h.usecase.ListTechnicians(c.Request.Context(), activeOnly, entities.Sector(c.Query("sector")))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListCustomers godoc
// @Summary  Customer directory
// @Tags     reference
// @Produce  json
// @Success  200 {array} entities.Customer
// @Router   /customers [get]
func (h *ReferenceHandler) ListCustomers(c *gin.Context) {
	items, err := h.usecase.ListCustomers(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}
