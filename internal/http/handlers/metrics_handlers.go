package handlers

import (
	"log"
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Warehouse dashboard metrics
// @Description Totals for products, orders and movements, the out-of-stock
// @Description count and the most moved product.
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	metrics, err := metricsRepo.GetDashboardMetrics()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, metrics); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
