package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func dashboardService(c *gin.Context) services.DashboardService {
	return services.DashboardService{RequestID: middleware.GetRequestID(c)}
}

// GET /aggregates/orders/delivery/outcomes
func DeliveryOutcomes(c *gin.Context) {
	NoStore(c)

	series, err := dashboardService(c).DeliveryOutcomes()
	if err != nil {
		logEndpointError(c, "delivery_outcomes", err)
		c.JSON(http.StatusInternalServerError, services.EmptyDeliverySeries())
		return
	}
	c.JSON(http.StatusOK, series)
}

// GET /aggregates/orders/spend/materials-distribution
func MaterialsSpendDistribution(c *gin.Context) {
	NoStore(c)

	series, err := dashboardService(c).MaterialSpendDistribution()
	if err != nil {
		logEndpointError(c, "materials_spend_distribution", err)
		c.JSON(http.StatusInternalServerError, services.EmptySpendSeries())
		return
	}
	c.JSON(http.StatusOK, series)
}

// GET /aggregates/orders/spend/vendors-distribution
func VendorsSpendDistribution(c *gin.Context) {
	NoStore(c)

	series, err := dashboardService(c).VendorSpendDistribution()
	if err != nil {
		logEndpointError(c, "vendors_spend_distribution", err)
		c.JSON(http.StatusInternalServerError, services.EmptySpendSeries())
		return
	}
	c.JSON(http.StatusOK, series)
}

// GET /requests/activities
func RecentRequestActivities(c *gin.Context) {
	NoStore(c)

	items, err := dashboardService(c).RecentActivities()
	if err != nil {
		logEndpointError(c, "recent_request_activities", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
		return
	}
	c.JSON(http.StatusOK, items)
}
