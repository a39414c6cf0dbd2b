package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/pagination"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /materials?page=1&pageSize=10&search=...&sort=field:direction
func ListMaterials(c *gin.Context) {
	NoStore(c)
	p := pagination.Parse(c.Request.URL.Query())

	page, err := repositories.MaterialRepository{}.List(p)
	if err != nil {
		logEndpointError(c, "list_materials", err)
		c.JSON(http.StatusInternalServerError, pagination.EmptyPage[models.Material](p))
		return
	}
	c.JSON(http.StatusOK, page)
}
