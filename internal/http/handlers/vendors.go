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

type vendorPayload struct {
	Code   string `json:"code" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
	Status string `json:"status"`
}

// GET /vendors?page=1&pageSize=10&search=...&sort=field:direction
func ListVendors(c *gin.Context) {
	NoStore(c)
	p := pagination.Parse(c.Request.URL.Query())

	page, err := repositories.VendorRepository{}.List(p)
	if err != nil {
		logEndpointError(c, "list_vendors", err)
		c.JSON(http.StatusInternalServerError, pagination.EmptyPage[models.Vendor](p))
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /vendors
func CreateVendor(c *gin.Context) {
	var payload vendorPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	v := vendorFromPayload(payload)
	if v.Code == "" || v.Name == "" {
		RespondError(c, http.StatusBadRequest, "code and name are required", nil)
		return
	}

	id, err := repositories.VendorRepository{}.Create(v)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"message": "vendor code already registered"})
			return
		}
		logEndpointError(c, "create_vendor", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// PUT /vendors/:id
func UpdateVendor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "vendor not found"})
		return
	}

	var payload vendorPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	v := vendorFromPayload(payload)
	if v.Code == "" || v.Name == "" {
		RespondError(c, http.StatusBadRequest, "code and name are required", nil)
		return
	}

	found, err := repositories.VendorRepository{}.Update(id, v)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"message": "vendor code already registered"})
			return
		}
		logEndpointError(c, "update_vendor", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "vendor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /vendors/:id
func DeleteVendor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "vendor not found"})
		return
	}

	found, err := repositories.VendorRepository{}.Delete(id)
	if err != nil {
		logEndpointError(c, "delete_vendor", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "vendor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func vendorFromPayload(p vendorPayload) models.Vendor {
	return models.Vendor{
		Code:   strings.TrimSpace(p.Code),
		Name:   strings.TrimSpace(p.Name),
		Email:  strings.TrimSpace(p.Email),
		Phone:  strings.TrimSpace(p.Phone),
		City:   strings.TrimSpace(p.City),
		Status: strings.TrimSpace(p.Status),
	}
}
