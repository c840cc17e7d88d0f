package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	ListRestaurants(c *gin.Context)
	GetRestaurant(c *gin.Context)
	CreateRestaurant(c *gin.Context)
	UpdateRestaurant(c *gin.Context)
	MoveRestaurant(c *gin.Context)
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// MoveRequest is the payload of MoveRestaurant
type MoveRequest struct {
	SectionID string `json:"sectionId"`
}

// ListRestaurants godoc
// @Summary List restaurants
// @Description Get all restaurants, or those of one section
// @Tags restaurants
// @Produce json
// @Param school path string true "School identifier"
// @Param sectionId query string false "Filter by section ID"
// @Success 200 {array} models.Restaurant
// @Router /api/{school}/restaurants [get]
func (c *restaurantController) ListRestaurants(ctx *gin.Context) {
	var (
		restaurants []models.Restaurant
		err         error
	)
	if sectionID := ctx.Query("sectionId"); sectionID != "" {
		restaurants, err = c.service.ListRestaurantsBySection(ctx.Request.Context(), sectionID)
	} else {
		restaurants, err = c.service.ListRestaurants(ctx.Request.Context())
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, restaurants)
}

// GetRestaurant godoc
// @Summary Get restaurant by ID
// @Tags restaurants
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} models.APIError
// @Router /api/{school}/restaurants/{id} [get]
func (c *restaurantController) GetRestaurant(ctx *gin.Context) {
	restaurant, err := c.service.GetRestaurant(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, restaurant)
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Description The section must exist; the server assigns the ID
// @Tags restaurants
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param key query string true "Admin key"
// @Param restaurant body models.Restaurant true "Restaurant object"
// @Success 201 {object} models.Restaurant
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/{school}/admin/restaurants [post]
func (c *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var restaurant models.Restaurant
	if !bindJSON(ctx, &restaurant) {
		return
	}
	restaurant.ID = ""
	created, err := c.service.CreateRestaurant(ctx.Request.Context(), restaurant)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateRestaurant godoc
// @Summary Update a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param key query string true "Admin key"
// @Param patch body models.RestaurantPatch true "Fields to change"
// @Success 200 {object} models.Restaurant
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/{school}/admin/restaurants/{id} [put]
func (c *restaurantController) UpdateRestaurant(ctx *gin.Context) {
	var patch models.RestaurantPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	updated, err := c.service.UpdateRestaurant(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// MoveRestaurant godoc
// @Summary Move a restaurant to another section
// @Tags restaurants
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param key query string true "Admin key"
// @Param move body MoveRequest true "Target section"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} models.APIError
// @Router /api/{school}/admin/restaurants/{id}/move [patch]
func (c *restaurantController) MoveRestaurant(ctx *gin.Context) {
	var req MoveRequest
	if !bindJSON(ctx, &req) {
		return
	}
	moved, err := c.service.MoveRestaurant(ctx.Request.Context(), ctx.Param("id"), req.SectionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, moved)
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Also deletes the restaurant's menu items and foods
// @Tags restaurants
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param key query string true "Admin key"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/{school}/admin/restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	if err := c.service.DeleteRestaurant(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
