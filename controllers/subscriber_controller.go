package controllers

import (
	"errors"
	"strconv"

	"easygames/models"
	"easygames/services"

	"github.com/gin-gonic/gin"
)

type SubscriberController struct {
	subscriberService *services.SubscriberService
}

func NewSubscriberController(subscriberService *services.SubscriberService) *SubscriberController {
	return &SubscriberController{subscriberService: subscriberService}
}

// Subscribe godoc
// @Summary Subscribe to newsletter
// @Description Register an email address for the newsletter
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body models.SubscribeRequest true "Email"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /subscribe [post]
func (ctrl *SubscriberController) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Please enter a valid email"})
		return
	}

	sub, err := ctrl.subscriberService.Subscribe(c.Request.Context(), req.Email)
	if errors.Is(err, services.ErrAlreadySubscribed) {
		c.JSON(409, gin.H{"success": false, "message": "Subscriber already exists"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to subscribe"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Subscribed successfully",
		"data":    sub,
	})
}

// CreateSubscriber godoc
// @Summary Add subscriber
// @Description Add a newsletter subscriber directly (Admin)
// @Tags Admin - Subscribers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SubscribeRequest true "Email"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/subscribers [post]
func (ctrl *SubscriberController) CreateSubscriber(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Please enter a valid email"})
		return
	}

	sub, err := ctrl.subscriberService.Subscribe(c.Request.Context(), req.Email)
	if errors.Is(err, services.ErrAlreadySubscribed) {
		c.JSON(409, gin.H{"success": false, "message": "Subscriber already exists"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to add subscriber"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Subscriber added successfully",
		"data":    sub,
	})
}

// GetAllSubscribers godoc
// @Summary Get all subscribers
// @Description List newsletter subscribers (Admin)
// @Tags Admin - Subscribers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/subscribers [get]
func (ctrl *SubscriberController) GetAllSubscribers(c *gin.Context) {
	subs, err := ctrl.subscriberService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve subscribers"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Subscribers retrieved successfully",
		"data":    subs,
	})
}

// DeleteSubscriber godoc
// @Summary Delete subscriber
// @Description Remove a newsletter subscriber (Admin)
// @Tags Admin - Subscribers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Subscriber ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/subscribers/{id} [delete]
func (ctrl *SubscriberController) DeleteSubscriber(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid subscriber ID"})
		return
	}

	err := ctrl.subscriberService.Delete(c.Request.Context(), id)
	if errors.Is(err, models.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Subscriber not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete subscriber"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Subscriber deleted successfully",
		"data":    gin.H{"id": id},
	})
}
