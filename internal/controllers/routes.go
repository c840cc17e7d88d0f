package controllers

import (
	"github.com/franciscosanchezn/uplate-admin/internal/middleware"
	"github.com/franciscosanchezn/uplate-admin/internal/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the tenant routes of catalog under group. Reads are
// public; everything under /admin needs the admin key matching adminKeyHash.
func RegisterRoutes(group *gin.RouterGroup, catalog services.Catalog, school string, adminKeyHash []byte) {
	sectionController := NewSectionController(catalog)
	restaurantController := NewRestaurantController(catalog)
	foodController := NewFoodController(catalog)
	menuItemController := NewMenuItemController(catalog, catalog)

	tenant := group.Group("/:school")
	tenant.Use(middleware.RequireSchool(school))
	{
		tenant.GET("/sections", sectionController.ListSections)
		tenant.GET("/sections/:id", sectionController.GetSection)
		tenant.GET("/restaurants", restaurantController.ListRestaurants)
		tenant.GET("/restaurants/:id", restaurantController.GetRestaurant)
		tenant.GET("/restaurants/:id/foods", foodController.ListFoodsByRestaurant)
		tenant.GET("/restaurants/:id/menuItems", menuItemController.ListMenuItems)
		tenant.GET("/restaurants/:id/menuItems/:menuItemId", menuItemController.GetMenuItem)
		tenant.GET("/restaurants/:id/menuItems/:menuItemId/nutrition", menuItemController.GetMenuItemNutrition)
		tenant.GET("/foods/:id", foodController.GetFood)

		admin := tenant.Group("/admin")
		admin.Use(middleware.AdminKey(adminKeyHash))
		{
			admin.POST("/sections", sectionController.CreateSection)
			admin.PUT("/sections/:id", sectionController.UpdateSection)
			admin.DELETE("/sections/:id", sectionController.DeleteSection)

			admin.POST("/restaurants", restaurantController.CreateRestaurant)
			admin.PUT("/restaurants/:id", restaurantController.UpdateRestaurant)
			admin.PATCH("/restaurants/:id/move", restaurantController.MoveRestaurant)
			admin.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

			admin.POST("/restaurants/:id/foods", foodController.CreateFood)
			admin.PUT("/foods/:id", foodController.UpdateFood)
			admin.DELETE("/foods/:id", foodController.DeleteFood)

			admin.POST("/restaurants/:id/newMenuItem", menuItemController.CreateMenuItem)
			admin.POST("/restaurants/:id/updateMenuItem/:menuItemId", menuItemController.UpdateMenuItem)
			admin.POST("/restaurants/:id/deleteMenuItem/:menuItemId", menuItemController.DeleteMenuItem)
		}
	}
}
