package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/domain/models"
	"backend/internal/pagination"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

type warehousePayload struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// GET /warehouses?page=1&pageSize=10&search=...&sort=field:direction
func ListWarehouses(c *gin.Context) {
	NoStore(c)
	p := pagination.Parse(c.Request.URL.Query())

	page, err := repositories.WarehouseRepository{}.List(p)
	if err != nil {
		logEndpointError(c, "list_warehouses", err)
		c.JSON(http.StatusInternalServerError, pagination.EmptyPage[models.Warehouse](p))
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /warehouses
func CreateWarehouse(c *gin.Context) {
	var payload warehousePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	w := models.Warehouse{
		Code:     strings.TrimSpace(payload.Code),
		Name:     strings.TrimSpace(payload.Name),
		Location: strings.TrimSpace(payload.Location),
	}
	if w.Code == "" || w.Name == "" {
		RespondError(c, http.StatusBadRequest, "code and name are required", nil)
		return
	}

	id, err := repositories.WarehouseRepository{}.Create(w)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"message": "warehouse code already registered"})
			return
		}
		logEndpointError(c, "create_warehouse", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// PUT /warehouses/:id
func UpdateWarehouse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "warehouse not found"})
		return
	}

	var payload warehousePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	w := models.Warehouse{
		Code:     strings.TrimSpace(payload.Code),
		Name:     strings.TrimSpace(payload.Name),
		Location: strings.TrimSpace(payload.Location),
	}
	if w.Code == "" || w.Name == "" {
		RespondError(c, http.StatusBadRequest, "code and name are required", nil)
		return
	}

	found, err := repositories.WarehouseRepository{}.Update(id, w)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"message": "warehouse code already registered"})
			return
		}
		logEndpointError(c, "update_warehouse", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "warehouse not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /warehouses/:id
func DeleteWarehouse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "warehouse not found"})
		return
	}

	found, err := repositories.WarehouseRepository{}.Delete(id)
	if err != nil {
		logEndpointError(c, "delete_warehouse", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "warehouse not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
