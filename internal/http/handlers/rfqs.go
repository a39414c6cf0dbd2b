package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/pagination"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /rfqs?page=1&pageSize=10&search=...&sort=field:direction
func ListRFQs(c *gin.Context) {
	NoStore(c)
	p := pagination.Parse(c.Request.URL.Query())

	page, err := repositories.RFQRepository{}.List(p)
	if err != nil {
		logEndpointError(c, "list_rfqs", err)
		c.JSON(http.StatusInternalServerError, pagination.EmptyPage[models.RFQ](p))
		return
	}
	c.JSON(http.StatusOK, page)
}

// DELETE /rfqs/:id
func DeleteRFQ(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		// A malformed id cannot name an existing RFQ.
		RespondDomainError(c, domain.NotFoundError{Resource: "RFQ"})
		return
	}

	svc := services.RFQService{
		RFQRepo:   repositories.RFQRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	if err := svc.Delete(id); err != nil {
		if !domain.IsNotFound(err) {
			logEndpointError(c, "delete_rfq", err)
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
