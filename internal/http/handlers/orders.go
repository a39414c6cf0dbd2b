package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/pagination"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /purchase-orders?page=1&pageSize=10&search=...&sort=field:direction
func ListPurchaseOrders(c *gin.Context) {
	NoStore(c)
	p := pagination.Parse(c.Request.URL.Query())

	page, err := repositories.OrderRepository{}.List(p)
	if err != nil {
		logEndpointError(c, "list_purchase_orders", err)
		c.JSON(http.StatusInternalServerError, pagination.EmptyPage[models.PurchaseOrder](p))
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /purchase-orders/:id/pdf
func GetPurchaseOrderPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "purchase order not found"})
		return
	}

	svc := services.DocsService{
		OrderRepo: repositories.OrderRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GeneratePurchaseOrder(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "purchase order not found"})
			return
		}
		logEndpointError(c, "purchase_order_pdf", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
