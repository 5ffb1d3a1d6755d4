package controllers

import (
	"errors"
	"log"
	"strconv"

	"easygames/libs"
	"easygames/models"
	"easygames/services"
	"easygames/utils"

	"github.com/gin-gonic/gin"
)

type StockItemController struct {
	stockService *services.StockService
	cloudinary   *libs.CloudinaryService
}

// NewStockItemController wires Cloudinary when configured; otherwise item
// images land in the local uploads directory.
func NewStockItemController(stockService *services.StockService) *StockItemController {
	cld, err := libs.NewCloudinaryService()
	if err != nil {
		log.Println("Cloudinary not configured, using local uploads:", err)
		cld = nil
	}

	return &StockItemController{
		stockService: stockService,
		cloudinary:   cld,
	}
}

func (ctrl *StockItemController) storeImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image attached is fine.
		return "", nil
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	if ctrl.cloudinary != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return "", err
		}
		defer file.Close()

		url, _, err := ctrl.cloudinary.UploadImage(c.Request.Context(), file, fileHeader.Filename, "stock-items")
		return url, err
	}

	return utils.UploadFile(c, fileHeader, "stock-items")
}

// CreateStockItem godoc
// @Summary Create stock item
// @Description Create a new stock item (Admin)
// @Tags Admin - Stock Items
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category_id formData int true "Category ID"
// @Param price formData number true "Price"
// @Param quantity formData int false "Quantity on hand"
// @Param image formData file false "Item image"
// @Success 201 {object} models.Response
// @Router /admin/stock-items [post]
func (ctrl *StockItemController) CreateStockItem(c *gin.Context) {
	var req models.CreateStockItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	imageURL, err := ctrl.storeImage(c)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}
	if imageURL != "" {
		req.ImageURL = imageURL
	}

	item, err := ctrl.stockService.CreateStockItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create stock item"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Stock item created successfully",
		"data":    item,
	})
}

// UpdateStockItem godoc
// @Summary Update stock item
// @Description Update a stock item (Admin)
// @Tags Admin - Stock Items
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Stock item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/stock-items/{id} [patch]
func (ctrl *StockItemController) UpdateStockItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid stock item ID"})
		return
	}

	var req models.UpdateStockItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	imageURL, err := ctrl.storeImage(c)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}
	if imageURL != "" {
		req.ImageURL = imageURL
	}

	item, err := ctrl.stockService.UpdateStockItem(c.Request.Context(), id, req)
	if errors.Is(err, models.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Stock item not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update stock item"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Stock item updated successfully",
		"data":    item,
	})
}

// DeleteStockItem godoc
// @Summary Delete stock item
// @Description Delete a stock item (Admin)
// @Tags Admin - Stock Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Stock item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/stock-items/{id} [delete]
func (ctrl *StockItemController) DeleteStockItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid stock item ID"})
		return
	}

	err := ctrl.stockService.DeleteStockItem(c.Request.Context(), id)
	if errors.Is(err, models.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Stock item not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete stock item"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Stock item deleted successfully",
		"data":    gin.H{"id": id},
	})
}
