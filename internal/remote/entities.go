package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
)

// ListSections fetches every section
func (c *Client) ListSections(ctx context.Context) ([]models.Section, error) {
	var out []models.Section
	err := c.get(ctx, "/sections", &out)
	return out, err
}

// GetSection fetches one section
func (c *Client) GetSection(ctx context.Context, id string) (models.Section, error) {
	var out models.Section
	err := c.get(ctx, "/sections/"+escape(id), &out)
	return out, err
}

// CreateSection creates a section; the server assigns the id
func (c *Client) CreateSection(ctx context.Context, s models.Section) (models.Section, error) {
	var out models.Section
	err := c.mutate(ctx, http.MethodPost, "/admin/sections", s, &out)
	return out, err
}

// UpdateSection applies a partial update
func (c *Client) UpdateSection(ctx context.Context, id string, patch models.SectionPatch) (models.Section, error) {
	var out models.Section
	err := c.mutate(ctx, http.MethodPut, "/admin/sections/"+escape(id), patch, &out)
	return out, err
}

// DeleteSection deletes a section
func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/admin/sections/"+escape(id), nil, nil)
}

// ListRestaurants fetches restaurants, all of them when sectionID is empty
func (c *Client) ListRestaurants(ctx context.Context, sectionID string) ([]models.Restaurant, error) {
	path := "/restaurants"
	if sectionID != "" {
		path += "?sectionId=" + url.QueryEscape(sectionID)
	}
	var out []models.Restaurant
	err := c.get(ctx, path, &out)
	return out, err
}

// GetRestaurant fetches one restaurant
func (c *Client) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	var out models.Restaurant
	err := c.get(ctx, "/restaurants/"+escape(id), &out)
	return out, err
}

// CreateRestaurant creates a restaurant; the server assigns the id
func (c *Client) CreateRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	var out models.Restaurant
	err := c.mutate(ctx, http.MethodPost, "/admin/restaurants", r, &out)
	return out, err
}

// UpdateRestaurant applies a partial update
func (c *Client) UpdateRestaurant(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error) {
	var out models.Restaurant
	err := c.mutate(ctx, http.MethodPut, "/admin/restaurants/"+escape(id), patch, &out)
	return out, err
}

// MoveRestaurant reassigns a restaurant to another section
func (c *Client) MoveRestaurant(ctx context.Context, id, sectionID string) (models.Restaurant, error) {
	var out models.Restaurant
	body := map[string]string{"sectionId": sectionID}
	err := c.mutate(ctx, http.MethodPatch, "/admin/restaurants/"+escape(id)+"/move", body, &out)
	return out, err
}

// DeleteRestaurant deletes a restaurant
func (c *Client) DeleteRestaurant(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/admin/restaurants/"+escape(id), nil, nil)
}

// ListFoods fetches the foods of a restaurant
func (c *Client) ListFoods(ctx context.Context, restaurantID string) ([]models.Food, error) {
	var out []models.Food
	err := c.get(ctx, "/restaurants/"+escape(restaurantID)+"/foods", &out)
	return out, err
}

// GetFood fetches one food
func (c *Client) GetFood(ctx context.Context, id string) (models.Food, error) {
	var out models.Food
	err := c.get(ctx, "/foods/"+escape(id), &out)
	return out, err
}

// CreateFood creates a food under its restaurant; the server assigns the id
func (c *Client) CreateFood(ctx context.Context, f models.Food) (models.Food, error) {
	var out models.Food
	err := c.mutate(ctx, http.MethodPost, "/admin/restaurants/"+escape(f.RestaurantID)+"/foods", f, &out)
	return out, err
}

// UpdateFood applies a partial update
func (c *Client) UpdateFood(ctx context.Context, id string, patch models.FoodPatch) (models.Food, error) {
	var out models.Food
	err := c.mutate(ctx, http.MethodPut, "/admin/foods/"+escape(id), patch, &out)
	return out, err
}

// DeleteFood deletes a food
func (c *Client) DeleteFood(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/admin/foods/"+escape(id), nil, nil)
}
