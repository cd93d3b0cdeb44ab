package repo

// Metrics aggregates catalog and cart figures for the dashboard view.
type Metrics struct {
	TotalProducts   int     `json:"total_products"`
	TotalStock      int     `json:"total_stock"`
	OutOfStockCount int     `json:"out_of_stock"`
	CartLines       int     `json:"cart_lines"`
	CartUnits       int     `json:"cart_units"`
	CartValue       float64 `json:"cart_value"`
}

// MetricsRepository defines the interface for dashboard metrics.
type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
