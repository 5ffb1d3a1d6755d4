package controllers

import (
	"errors"
	"strconv"

	"easygames/models"
	"easygames/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Home godoc
// @Summary Storefront home data
// @Description Get categories, newest arrivals and trending items
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /home [get]
func (ctrl *CatalogController) Home(c *gin.Context) {
	home, err := ctrl.catalogService.Home(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load home data"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Home data retrieved successfully",
		"data":    home,
	})
}

// GetAllCategories godoc
// @Summary Get all categories
// @Description Get all product categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.catalogService.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve categories"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetAllStockItems godoc
// @Summary Browse stock items
// @Description Get stock items with optional category filter and search, paginated
// @Tags Catalog
// @Produce json
// @Param category_id query int false "Filter by category"
// @Param search query string false "Search in title and description"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /stock-items [get]
func (ctrl *CatalogController) GetAllStockItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	categoryID, _ := strconv.Atoi(c.Query("category_id"))
	search := c.Query("search")

	response, err := ctrl.catalogService.ListStockItems(c.Request.Context(), categoryID, search, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve stock items"})
		return
	}

	c.JSON(200, response)
}

// GetStockItemByID godoc
// @Summary Get stock item
// @Description Get one stock item by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Stock item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /stock-items/{id} [get]
func (ctrl *CatalogController) GetStockItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid stock item ID"})
		return
	}

	item, err := ctrl.catalogService.GetStockItemByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Stock item not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve stock item"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Stock item retrieved successfully",
		"data":    item,
	})
}
