package controllers

import (
	"errors"
	"strconv"

	"easygames/models"
	"easygames/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	catalogService *services.CatalogService
}

func NewCategoryController(catalogService *services.CatalogService) *CategoryController {
	return &CategoryController{catalogService: catalogService}
}

// CreateCategory godoc
// @Summary Create category
// @Description Create a new category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cat, err := ctrl.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Category created successfully",
		"data":    cat,
	})
}

// UpdateCategory godoc
// @Summary Update category
// @Description Rename a category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.CategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cat, err := ctrl.catalogService.UpdateCategory(c.Request.Context(), id, req)
	if errors.Is(err, models.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update category"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Category updated successfully",
		"data":    cat,
	})
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Delete a category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	err := ctrl.catalogService.DeleteCategory(c.Request.Context(), id)
	if errors.Is(err, models.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete category"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Category deleted successfully",
		"data":    gin.H{"id": id},
	})
}
