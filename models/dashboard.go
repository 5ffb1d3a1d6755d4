package models

// AdminDashboard aggregates the counters shown on the admin landing page.
type AdminDashboard struct {
	TotalUsers        int         `json:"total_users"`
	TotalCategories   int         `json:"total_categories"`
	TotalStockItems   int         `json:"total_stock_items"`
	TotalSubscribers  int         `json:"total_subscribers"`
	LowStock          []StockItem `json:"low_stock"`
	LowStockThreshold int         `json:"low_stock_threshold"`
}
