package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/pagination"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /requests?page=1&pageSize=10&search=...&sort=field:direction
func ListRequests(c *gin.Context) {
	NoStore(c)
	p := pagination.Parse(c.Request.URL.Query())

	page, err := repositories.RequestRepository{}.List(p)
	if err != nil {
		logEndpointError(c, "list_requests", err)
		c.JSON(http.StatusInternalServerError, pagination.EmptyPage[models.Request](p))
		return
	}
	c.JSON(http.StatusOK, page)
}
