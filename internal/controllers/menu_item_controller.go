package controllers

import (
	"context"
	"net/http"

	"github.com/franciscosanchezn/uplate-admin/internal/codec"
	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuItemController handles HTTP requests related to menu items. Requests
// carry the flat id-only shape; responses carry the flat shape with every
// food embedded.
type MenuItemController interface {
	ListMenuItems(c *gin.Context)
	GetMenuItem(c *gin.Context)
	GetMenuItemNutrition(c *gin.Context)
	CreateMenuItem(c *gin.Context)
	UpdateMenuItem(c *gin.Context)
	DeleteMenuItem(c *gin.Context)
}

type menuItemController struct {
	items services.MenuItemService
	foods services.FoodService
}

// NewMenuItemController creates a new instance of MenuItemController
func NewMenuItemController(items services.MenuItemService, foods services.FoodService) MenuItemController {
	return &menuItemController{items: items, foods: foods}
}

// ListMenuItems godoc
// @Summary List the menu items of a restaurant
// @Description Sized items come back as size-tagged possibleFoods rows
// @Tags menuItems
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Success 200 {array} codec.RawMenuItem
// @Router /api/{school}/restaurants/{id}/menuItems [get]
func (c *menuItemController) ListMenuItems(ctx *gin.Context) {
	items, err := c.items.ListMenuItemsByRestaurant(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	out := make([]codec.RawMenuItem, 0, len(items))
	for _, item := range items {
		raw, err := codec.EncodeRaw(item)
		if err != nil {
			respondError(ctx, err)
			return
		}
		out = append(out, raw)
	}
	ctx.JSON(http.StatusOK, out)
}

// GetMenuItem godoc
// @Summary Get menu item by ID
// @Tags menuItems
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param menuItemId path string true "Menu item ID"
// @Success 200 {object} codec.RawMenuItem
// @Failure 404 {object} models.APIError
// @Router /api/{school}/restaurants/{id}/menuItems/{menuItemId} [get]
func (c *menuItemController) GetMenuItem(ctx *gin.Context) {
	item, err := c.scoped(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	raw, err := codec.EncodeRaw(item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, raw)
}

// GetMenuItemNutrition godoc
// @Summary Nutrition totals of a menu item
// @Description Default foods only, multiplied by quantity; one entry per size for sized items
// @Tags menuItems
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param menuItemId path string true "Menu item ID"
// @Success 200 {object} models.MenuItemNutrition
// @Failure 404 {object} models.APIError
// @Router /api/{school}/restaurants/{id}/menuItems/{menuItemId}/nutrition [get]
func (c *menuItemController) GetMenuItemNutrition(ctx *gin.Context) {
	item, err := c.scoped(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item.Nutrition())
}

// CreateMenuItem godoc
// @Summary Create a menu item
// @Description The client supplies the ID; a missing ID is generated
// @Tags menuItems
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param key query string true "Admin key"
// @Param item body codec.FlatMenuItem true "Flat menu item"
// @Success 200 {object} statusResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/{school}/admin/restaurants/{id}/newMenuItem [post]
func (c *menuItemController) CreateMenuItem(ctx *gin.Context) {
	item, ok := c.decodeBody(ctx)
	if !ok {
		return
	}
	item.RestaurantID = ctx.Param("id")
	if _, err := c.items.CreateMenuItem(ctx.Request.Context(), item); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, statusResponse{Status: true})
}

// UpdateMenuItem godoc
// @Summary Replace a menu item's composition
// @Description The body is the full flat item; an empty name keeps the current one
// @Tags menuItems
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param menuItemId path string true "Menu item ID"
// @Param key query string true "Admin key"
// @Param item body codec.FlatMenuItem true "Flat menu item"
// @Success 200 {object} codec.RawMenuItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/{school}/admin/restaurants/{id}/updateMenuItem/{menuItemId} [post]
func (c *menuItemController) UpdateMenuItem(ctx *gin.Context) {
	if _, err := c.scoped(ctx); err != nil {
		respondError(ctx, err)
		return
	}
	item, ok := c.decodeBody(ctx)
	if !ok {
		return
	}

	patch := models.MenuItemPatch{
		Foods:         &item.Foods,
		PossibleFoods: &item.PossibleFoods,
		Sizes:         &item.Sizes,
	}
	if item.Name != "" {
		patch.Name = &item.Name
	}
	updated, err := c.items.UpdateMenuItem(ctx.Request.Context(), ctx.Param("menuItemId"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	raw, err := codec.EncodeRaw(updated)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, raw)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags menuItems
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Restaurant ID"
// @Param menuItemId path string true "Menu item ID"
// @Param key query string true "Admin key"
// @Success 200 {object} statusResponse
// @Failure 404 {object} models.APIError
// @Router /api/{school}/admin/restaurants/{id}/deleteMenuItem/{menuItemId} [post]
func (c *menuItemController) DeleteMenuItem(ctx *gin.Context) {
	if _, err := c.scoped(ctx); err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.items.DeleteMenuItem(ctx.Request.Context(), ctx.Param("menuItemId")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, statusResponse{Status: true})
}

// scoped loads the menu item named in the path and checks that it belongs
// to the restaurant in the path.
func (c *menuItemController) scoped(ctx *gin.Context) (models.MenuItem, error) {
	id := ctx.Param("menuItemId")
	item, err := c.items.GetMenuItem(ctx.Request.Context(), id)
	if err != nil {
		return models.MenuItem{}, err
	}
	if item.RestaurantID != ctx.Param("id") {
		return models.MenuItem{}, models.NotFoundf("menu item", id)
	}
	return item, nil
}

// decodeBody reads a menu item in any accepted shape, resolving id-only rows
// through the food service. A row naming an unknown food fails the request.
func (c *menuItemController) decodeBody(ctx *gin.Context) (models.MenuItem, bool) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "Could not read request body"))
		return models.MenuItem{}, false
	}
	item, unresolved, err := codec.Unmarshal(body, c.lookup(ctx.Request.Context()))
	if err != nil {
		respondError(ctx, err)
		return models.MenuItem{}, false
	}
	if len(unresolved) > 0 {
		respondError(ctx, models.NotFoundf("food", unresolved[0]))
		return models.MenuItem{}, false
	}
	return item, true
}

func (c *menuItemController) lookup(ctx context.Context) codec.FoodLookup {
	return func(id string) (models.Food, bool) {
		food, err := c.foods.GetFood(ctx, id)
		return food, err == nil
	}
}
