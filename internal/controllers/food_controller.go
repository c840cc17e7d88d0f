package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/services"
	"github.com/gin-gonic/gin"
)

// FoodController handles HTTP requests related to foods
type FoodController interface {
	ListFoodsByRestaurant(c *gin.Context)
	GetFood(c *gin.Context)
	CreateFood(c *gin.Context)
	UpdateFood(c *gin.Context)
	DeleteFood(c *gin.Context)
}

type foodController struct {
	service services.FoodService
}

// NewFoodController creates a new instance of FoodController
func NewFoodController(service services.FoodService) FoodController {
	return &foodController{service: service}
}

// ListFoodsByRestaurant godoc
// @Summary List the foods of a restaurant
// @Tags foods
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Success 200 {array} models.Food
// @Router /api/{school}/restaurants/{id}/foods [get]
func (c *foodController) ListFoodsByRestaurant(ctx *gin.Context) {
	foods, err := c.service.ListFoodsByRestaurant(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, foods)
}

// GetFood godoc
// @Summary Get food by ID
// @Tags foods
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Food ID"
// @Success 200 {object} models.Food
// @Failure 404 {object} models.APIError
// @Router /api/{school}/foods/{id} [get]
func (c *foodController) GetFood(ctx *gin.Context) {
	food, err := c.service.GetFood(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, food)
}

// CreateFood godoc
// @Summary Create a food
// @Description The restaurant comes from the path; the server assigns the ID
// @Tags foods
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param key query string true "Admin key"
// @Param food body models.Food true "Food object"
// @Success 201 {object} models.Food
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/{school}/admin/restaurants/{id}/foods [post]
func (c *foodController) CreateFood(ctx *gin.Context) {
	var food models.Food
	if !bindJSON(ctx, &food) {
		return
	}
	food.ID = ""
	food.RestaurantID = ctx.Param("id")
	created, err := c.service.CreateFood(ctx.Request.Context(), food)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateFood godoc
// @Summary Update a food
// @Tags foods
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Food ID"
// @Param key query string true "Admin key"
// @Param patch body models.FoodPatch true "Fields to change"
// @Success 200 {object} models.Food
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/{school}/admin/foods/{id} [put]
func (c *foodController) UpdateFood(ctx *gin.Context) {
	var patch models.FoodPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	updated, err := c.service.UpdateFood(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteFood godoc
// @Summary Delete a food
// @Description Menu item rows referencing the food are removed too
// @Tags foods
// @Param school path string true "School identifier"
// @Param id path string true "Food ID"
// @Param key query string true "Admin key"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/{school}/admin/foods/{id} [delete]
func (c *foodController) DeleteFood(ctx *gin.Context) {
	if err := c.service.DeleteFood(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
