package repo

type MostMovedProduct struct {
	Title         string `json:"title"`
	MovementCount int    `json:"movement_count"`
}

type Metrics struct {
	TotalProducts    int              `json:"total_products"`
	TotalOrders      int              `json:"total_orders"`
	TotalMovements   int              `json:"total_movements"`
	OutOfStockCount  int              `json:"out_of_stock_count"`
	MostMovedProduct MostMovedProduct `json:"most_moved_product"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
