package services

import (
	"fmt"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

const (
	topGroups       = 10
	recentActivityN = 10
	spendCurrency   = "SAR"
	unassignedLabel = "Unassigned"

	labelOnTime  = "On-Time"
	labelDelayed = "Delayed"
)

// ChartSeries is the payload shape consumed by the dashboard chart widgets.
// Labels and Data are always the same length.
type ChartSeries struct {
	Labels   []string  `json:"labels"`
	Data     []float64 `json:"data"`
	Currency string    `json:"currency,omitempty"`
}

// EmptySpendSeries is the shape-preserving fallback for spend charts.
func EmptySpendSeries() ChartSeries {
	return ChartSeries{Labels: []string{}, Data: []float64{}, Currency: spendCurrency}
}

// EmptyDeliverySeries is the shape-preserving fallback for the delivery chart.
func EmptyDeliverySeries() ChartSeries {
	return ChartSeries{Labels: []string{labelOnTime, labelDelayed}, Data: []float64{0, 0}}
}

// DashboardService computes the aggregate widgets backing the dashboard.
type DashboardService struct {
	Orders     repositories.OrderRepository
	Vendors    repositories.VendorRepository
	Materials  repositories.MaterialRepository
	Activities repositories.ActivityRepository
	RequestID  string
}

// MaterialSpendDistribution returns total order spend per material, largest
// first, capped at the top 10 groups.
func (s DashboardService) MaterialSpendDistribution() (ChartSeries, error) {
	groups, err := s.Orders.SpendByMaterial(topGroups)
	if err != nil {
		return EmptySpendSeries(), err
	}
	return s.spendSeries(groups, s.Materials.NameByID), nil
}

// VendorSpendDistribution returns total order spend per vendor, largest
// first, capped at the top 10 groups.
func (s DashboardService) VendorSpendDistribution() (ChartSeries, error) {
	groups, err := s.Orders.SpendByVendor(topGroups)
	if err != nil {
		return EmptySpendSeries(), err
	}
	return s.spendSeries(groups, s.Vendors.NameByID), nil
}

func (s DashboardService) spendSeries(groups []repositories.SpendGroup, lookup func(int64) (string, error)) ChartSeries {
	series := EmptySpendSeries()
	for _, g := range groups {
		series.Labels = append(series.Labels, resolveLabel(g.Name, g.Key, lookup))
		series.Data = append(series.Data, g.Total)
	}
	return series
}

// resolveLabel picks the display label for a spend group: the denormalized
// name on the fact rows, then a live dimension lookup, then "Unassigned".
// Lookup failures degrade to the literal label instead of failing the chart.
func resolveLabel(denormalized string, key int64, lookup func(int64) (string, error)) string {
	if v := utils.TrimOrEmpty(denormalized); v != "" {
		return v
	}
	if lookup != nil {
		if name, err := lookup(key); err == nil {
			if v := utils.TrimOrEmpty(name); v != "" {
				return v
			}
		}
	}
	return unassignedLabel
}

// DeliveryOutcomes classifies delivered orders as on-time or delayed against
// the due date of the originating request.
func (s DashboardService) DeliveryOutcomes() (ChartSeries, error) {
	rows, err := s.Orders.DeliveryRows()
	if err != nil {
		return EmptyDeliverySeries(), err
	}

	onTime, delayed, skipped := classifyDeliveries(rows)
	if skipped > 0 {
		utils.LogEvent(s.RequestID, "dashboard", "delivery_outcomes",
			fmt.Sprintf("skipped %d orders with no due date", skipped))
	}

	series := EmptyDeliverySeries()
	series.Data = []float64{float64(onTime), float64(delayed)}
	return series, nil
}

// classifyDeliveries buckets delivery rows by comparing the completion time
// to the request due date. Rows whose due date cannot be reached (broken
// order -> rfq -> request chain) are excluded from both buckets.
func classifyDeliveries(rows []repositories.DeliveryRow) (onTime, delayed, skipped int) {
	for _, row := range rows {
		if !row.NeededBy.Valid || !row.CompletedAt.Valid {
			skipped++
			continue
		}
		if row.CompletedAt.Time.After(row.NeededBy.Time) {
			delayed++
		} else {
			onTime++
		}
	}
	return onTime, delayed, skipped
}

// RecentActivities returns the latest audit entries with live parent request
// snapshots for the activity feed widget.
func (s DashboardService) RecentActivities() ([]models.ActivityFeedItem, error) {
	return s.Activities.Recent(recentActivityN)
}
