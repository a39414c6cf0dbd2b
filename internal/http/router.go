package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	r.GET("/health", h.Health)
	r.GET("/db-check", h.DBCheck)

	auth := r.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/register", h.Register)

	// Chart widgets
	aggregates := r.Group("/aggregates")
	aggregates.GET("/orders/delivery/outcomes", h.DeliveryOutcomes)
	aggregates.GET("/orders/spend/materials-distribution", h.MaterialsSpendDistribution)
	aggregates.GET("/orders/spend/vendors-distribution", h.VendorsSpendDistribution)

	// Requests
	requests := r.Group("/requests")
	requests.GET("", h.ListRequests)
	requests.GET("/activities", h.RecentRequestActivities)

	// RFQs
	rfqs := r.Group("/rfqs")
	rfqs.GET("", h.ListRFQs)
	rfqs.DELETE("/:id", h.DeleteRFQ)

	// Purchase orders
	orders := r.Group("/purchase-orders")
	orders.GET("", h.ListPurchaseOrders)
	orders.GET("/:id/pdf", h.GetPurchaseOrderPDF)

	// Master data writes require an authenticated back-office role.
	requireAdmin := []gin.HandlerFunc{
		middleware.RequireAuth([]byte(env.JWTSecret)),
		middleware.RequireRoles("admin", "purchasing"),
	}

	// Vendors
	vendors := r.Group("/vendors")
	vendors.GET("", h.ListVendors)
	vendors.POST("", append(requireAdmin, h.CreateVendor)...)
	vendors.PUT("/:id", append(requireAdmin, h.UpdateVendor)...)
	vendors.DELETE("/:id", append(requireAdmin, h.DeleteVendor)...)

	// Materials
	materials := r.Group("/materials")
	materials.GET("", h.ListMaterials)

	// Warehouses
	warehouses := r.Group("/warehouses")
	warehouses.GET("", h.ListWarehouses)
	warehouses.POST("", append(requireAdmin, h.CreateWarehouse)...)
	warehouses.PUT("/:id", append(requireAdmin, h.UpdateWarehouse)...)
	warehouses.DELETE("/:id", append(requireAdmin, h.DeleteWarehouse)...)

	return r
}
