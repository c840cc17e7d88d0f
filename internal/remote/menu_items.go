package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/franciscosanchezn/uplate-admin/internal/codec"
	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/sirupsen/logrus"
)

type statusResponse struct {
	Status bool `json:"status"`
}

func menuItemsPath(restaurantID string) string {
	return "/restaurants/" + escape(restaurantID) + "/menuItems"
}

func adminMenuItemPath(restaurantID, action string) string {
	return "/admin/restaurants/" + escape(restaurantID) + "/" + action
}

// ListMenuItems fetches and decodes the menu items of a restaurant.
func (c *Client) ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	var raw json.RawMessage
	if err := c.get(ctx, menuItemsPath(restaurantID), &raw); err != nil {
		return nil, err
	}
	items, unresolved, err := codec.UnmarshalList(raw, nil)
	if err != nil {
		return nil, err
	}
	warnUnresolved(restaurantID, unresolved)
	return items, nil
}

// GetMenuItem fetches and decodes one menu item
func (c *Client) GetMenuItem(ctx context.Context, restaurantID, menuItemID string) (models.MenuItem, error) {
	var raw json.RawMessage
	if err := c.get(ctx, menuItemsPath(restaurantID)+"/"+escape(menuItemID), &raw); err != nil {
		return models.MenuItem{}, err
	}
	item, unresolved, err := codec.Unmarshal(raw, nil)
	if err != nil {
		return models.MenuItem{}, err
	}
	warnUnresolved(restaurantID, unresolved)
	return item, nil
}

// CreateMenuItem encodes item and posts it with a client-generated id. The
// server only acknowledges, so the returned item is the input with its id.
func (c *Client) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if item.ID == "" {
		item.ID = models.NewID()
	}
	flat, err := codec.Encode(item)
	if err != nil {
		return models.MenuItem{}, err
	}
	var ack statusResponse
	if err := c.mutate(ctx, http.MethodPost, adminMenuItemPath(item.RestaurantID, "newMenuItem"), flat, &ack); err != nil {
		return models.MenuItem{}, err
	}
	return item.Normalized(), nil
}

// UpdateMenuItem sends the full encoded item to the restaurant that currently
// owns it and decodes the server's copy.
func (c *Client) UpdateMenuItem(ctx context.Context, restaurantID string, item models.MenuItem) (models.MenuItem, error) {
	flat, err := codec.Encode(item)
	if err != nil {
		return models.MenuItem{}, err
	}
	var raw json.RawMessage
	path := adminMenuItemPath(restaurantID, "updateMenuItem/"+escape(item.ID))
	if err := c.mutate(ctx, http.MethodPost, path, flat, &raw); err != nil {
		return models.MenuItem{}, err
	}
	updated, unresolved, err := codec.Unmarshal(raw, nil)
	if err != nil {
		return models.MenuItem{}, err
	}
	warnUnresolved(restaurantID, unresolved)
	return updated, nil
}

// DeleteMenuItem deletes a menu item
func (c *Client) DeleteMenuItem(ctx context.Context, restaurantID, menuItemID string) error {
	var ack statusResponse
	return c.mutate(ctx, http.MethodPost, adminMenuItemPath(restaurantID, "deleteMenuItem/"+escape(menuItemID)), struct{}{}, &ack)
}

func warnUnresolved(restaurantID string, ids []string) {
	if len(ids) == 0 {
		return
	}
	log.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"food_ids":      ids,
	}).Warn("Dropped menu item rows without an embedded food")
}
