package handlers

import (
	"log"
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics over catalog and cart
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {object} ErrorResponse
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.GetDashboardMetrics()
	if err != nil {
		log.Printf("failed to fetch metrics: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch metrics")
		return
	}
	_ = writeJSON(w, http.StatusOK, m)
}
