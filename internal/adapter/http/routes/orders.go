package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ivanvillan/front-820hd-sub000/internal/adapter/http/handlers"
)

const (
	PathOrders      = "/orders"
	PathMaterials   = "/materials"
	PathTechnicians = "/technicians"
	PathCustomers   = "/customers"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.POST("/:id/take", h.TakeOrder)
		orders.POST("/:id/notes", h.AppendNote)
		orders.POST("/:id/export", h.ExportOrder)
	}
}

func addReferenceRoutes(rg *gin.RouterGroup, h *handlers.ReferenceHandler) {
	rg.GET(PathMaterials, h.ListMaterials)
	rg.GET(PathTechnicians, h.ListTechnicians)
	rg.GET(PathCustomers, h.ListCustomers)
}
