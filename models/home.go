package models

// HomeData backs the storefront landing page.
type HomeData struct {
	Categories []Category  `json:"categories"`
	WhatsNew   []StockItem `json:"whats_new"`
	Trending   []StockItem `json:"trending"`
}
