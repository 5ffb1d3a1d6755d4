package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"easygames/middleware"
	"easygames/models"
	"easygames/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
	mailer         *services.EmailService
}

func NewCartController(cartService *services.CartService, catalogService *services.CatalogService, mailer *services.EmailService) *CartController {
	return &CartController{
		cartService:    cartService,
		catalogService: catalogService,
		mailer:         mailer,
	}
}

func (ctrl *CartController) sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionKey)
}

// GetCart godoc
// @Summary Get cart contents
// @Description Get the current session's cart lines and total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	sid := ctrl.sessionID(c)

	lines, err := ctrl.cartService.Items(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	total, err := ctrl.cartService.Total(c.Request.Context(), sid)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved successfully",
		"data":    models.CartResponse{Lines: lines, Total: total},
	})
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Add a stock item to the cart, clamped to available stock
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add to cart request"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	err := ctrl.cartService.Add(c.Request.Context(), ctrl.sessionID(c), req.ProductID, req.Quantity)
	if errors.Is(err, models.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to add item to cart"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Item added to cart"})
}

// UpdateCartLine godoc
// @Summary Update cart line quantity
// @Description Set a cart line's quantity, clamped between 1 and available stock. Unknown lines are ignored.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateCartLineRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateCartLine(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateCartLineRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.cartService.Update(c.Request.Context(), ctrl.sessionID(c), productID, req.Quantity); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart updated"})
}

// RemoveFromCart godoc
// @Summary Remove item from cart
// @Description Remove a line from the cart. Removing an absent line is a no-op.
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("id"))

	if err := ctrl.cartService.Remove(c.Request.Context(), ctrl.sessionID(c), productID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to remove item from cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart"})
}

// CanCheckout godoc
// @Summary Check checkout feasibility
// @Description Report whether every cart line fits within live stock. Advisory only.
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/checkout-availability [get]
func (ctrl *CartController) CanCheckout(c *gin.Context) {
	ok := ctrl.cartService.CanCheckout(c.Request.Context(), ctrl.sessionID(c))
	c.JSON(200, gin.H{
		"success": true,
		"message": "Checkout availability retrieved",
		"data":    gin.H{"can_checkout": ok},
	})
}

// Checkout godoc
// @Summary Checkout
// @Description Validate the cart against stock, decrement inventory atomically and clear the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	sid := ctrl.sessionID(c)
	lines, err := ctrl.cartService.Checkout(c.Request.Context(), sid)

	var insufficient *models.InsufficientStockError
	if errors.As(err, &insufficient) {
		c.JSON(409, gin.H{
			"success": false,
			"message": fmt.Sprintf("Not enough stock for %s", insufficient.Title),
			"data":    gin.H{"product_id": insufficient.ProductID},
		})
		return
	}
	if err != nil && len(lines) == 0 {
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed, cart left unchanged"})
		return
	}
	if err != nil {
		// Inventory is already decremented, only the cart reset failed.
		// The order stands; retrying would charge the stock twice.
		log.Printf("checkout for session %s committed but cart not cleared: %v", sid, err)
	}

	if len(lines) == 0 {
		c.JSON(200, gin.H{"success": true, "message": "Cart is empty"})
		return
	}

	ids := make([]int, 0, len(lines))
	var total float64
	for _, line := range lines {
		ids = append(ids, line.ProductID)
		total += line.LineTotal()
	}
	ctrl.catalogService.InvalidateItems(ids...)

	orderNumber := fmt.Sprintf("ORD-%d", time.Now().Unix())

	if ctrl.mailer != nil {
		if email := c.GetString("user_email"); email != "" {
			go func(to, orderNum string, amount float64) {
				if err := ctrl.mailer.SendOrderConfirmationEmail(to, orderNum, amount); err != nil {
					log.Printf("order confirmation email to %s failed: %v", to, err)
				}
			}(email, orderNumber, total)
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data": gin.H{
			"order_number": orderNumber,
			"total":        total,
			"lines":        lines,
		},
	})
}
