package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/franciscosanchezn/uplate-admin/internal/codec"
	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/persistence"
	"github.com/sirupsen/logrus"
)

// localCatalog keeps every collection in memory and writes the affected
// collection to its slot after each mutation. In-memory state only changes
// once the write succeeded.
type localCatalog struct {
	mu   sync.RWMutex
	slot persistence.Slot

	sections    []models.Section
	restaurants []models.Restaurant
	foods       []models.Food
	menuItems   []models.MenuItem
}

// NewLocalCatalog loads the four collections from slot and returns a Catalog
// backed by it. Missing slots start empty.
func NewLocalCatalog(ctx context.Context, slot persistence.Slot) (Catalog, error) {
	c := &localCatalog{slot: slot}
	if err := c.loadJSON(ctx, persistence.SectionsKey, &c.sections); err != nil {
		return nil, err
	}
	if err := c.loadJSON(ctx, persistence.RestaurantsKey, &c.restaurants); err != nil {
		return nil, err
	}
	if err := c.loadJSON(ctx, persistence.FoodsKey, &c.foods); err != nil {
		return nil, err
	}
	if err := c.loadMenuItems(ctx); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"sections":    len(c.sections),
		"restaurants": len(c.restaurants),
		"foods":       len(c.foods),
		"menu_items":  len(c.menuItems),
	}).Info("Local catalog loaded")
	return c, nil
}

func (c *localCatalog) loadJSON(ctx context.Context, key string, out interface{}) error {
	data, ok, err := c.slot.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// loadMenuItems rehydrates the stored id-only rows with the loaded foods.
// Rows whose food no longer exists are dropped.
func (c *localCatalog) loadMenuItems(ctx context.Context) error {
	data, ok, err := c.slot.Load(ctx, persistence.MenuItemsKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", persistence.MenuItemsKey, err)
	}
	if !ok || len(data) == 0 {
		return nil
	}
	items, unresolved, err := codec.UnmarshalList(data, c.foodByID)
	if err != nil {
		return fmt.Errorf("decode %s: %w", persistence.MenuItemsKey, err)
	}
	if len(unresolved) > 0 {
		log.WithField("food_ids", unresolved).Warn("Dropped menu item rows referencing unknown foods")
	}
	c.menuItems = items
	return nil
}

func (c *localCatalog) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.slot.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// saveMenuItems stores items in the flat, id-only shape.
func (c *localCatalog) saveMenuItems(ctx context.Context, items []models.MenuItem) error {
	flat := make([]codec.FlatMenuItem, 0, len(items))
	for _, item := range items {
		f, err := codec.Encode(item)
		if err != nil {
			return fmt.Errorf("encode menu item %q: %w", item.ID, err)
		}
		flat = append(flat, f)
	}
	return c.save(ctx, persistence.MenuItemsKey, flat)
}

func (c *localCatalog) Close() error {
	return c.slot.Close()
}

func (c *localCatalog) sectionIndex(id string) int {
	return slices.IndexFunc(c.sections, func(s models.Section) bool { return s.ID == id })
}

func (c *localCatalog) restaurantIndex(id string) int {
	return slices.IndexFunc(c.restaurants, func(r models.Restaurant) bool { return r.ID == id })
}

func (c *localCatalog) foodIndex(id string) int {
	return slices.IndexFunc(c.foods, func(f models.Food) bool { return f.ID == id })
}

func (c *localCatalog) menuItemIndex(id string) int {
	return slices.IndexFunc(c.menuItems, func(m models.MenuItem) bool { return m.ID == id })
}

// foodByID is the codec.FoodLookup over the loaded foods. Callers hold the lock.
func (c *localCatalog) foodByID(id string) (models.Food, bool) {
	if i := c.foodIndex(id); i >= 0 {
		return c.foods[i], true
	}
	return models.Food{}, false
}

// Sections

func (c *localCatalog) ListSections(ctx context.Context) ([]models.Section, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.sections), nil
}

func (c *localCatalog) GetSection(ctx context.Context, id string) (models.Section, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.sectionIndex(id)
	if i < 0 {
		return models.Section{}, models.NotFoundf("section", id)
	}
	return c.sections[i], nil
}

func (c *localCatalog) CreateSection(ctx context.Context, section models.Section) (models.Section, error) {
	if err := section.Validate(); err != nil {
		return models.Section{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.assignID(&section.ID, c.sectionIndex); err != nil {
		return models.Section{}, err
	}
	next := append(slices.Clone(c.sections), section)
	if err := c.save(ctx, persistence.SectionsKey, next); err != nil {
		return models.Section{}, err
	}
	c.sections = next
	log.WithField("section_id", section.ID).Info("Section created")
	return section, nil
}

func (c *localCatalog) UpdateSection(ctx context.Context, id string, patch models.SectionPatch) (models.Section, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.sectionIndex(id)
	if i < 0 {
		return models.Section{}, models.NotFoundf("section", id)
	}
	updated := patch.Apply(c.sections[i])
	if err := updated.Validate(); err != nil {
		return models.Section{}, err
	}
	next := slices.Clone(c.sections)
	next[i] = updated
	if err := c.save(ctx, persistence.SectionsKey, next); err != nil {
		return models.Section{}, err
	}
	c.sections = next
	return updated, nil
}

func (c *localCatalog) DeleteSection(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.sectionIndex(id)
	if i < 0 {
		return models.NotFoundf("section", id)
	}
	if n := c.countRestaurants(id); n > 0 {
		return fmt.Errorf("section %q still has %d restaurant(s): %w", id, n, models.ErrConflict)
	}
	next := slices.Delete(slices.Clone(c.sections), i, i+1)
	if err := c.save(ctx, persistence.SectionsKey, next); err != nil {
		return err
	}
	c.sections = next
	log.WithField("section_id", id).Info("Section deleted")
	return nil
}

// Restaurants

func (c *localCatalog) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.restaurants), nil
}

func (c *localCatalog) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.restaurantIndex(id)
	if i < 0 {
		return models.Restaurant{}, models.NotFoundf("restaurant", id)
	}
	return c.restaurants[i], nil
}

func (c *localCatalog) ListRestaurantsBySection(ctx context.Context, sectionID string) ([]models.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.Restaurant{}
	for _, r := range c.restaurants {
		if r.SectionID == sectionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *localCatalog) CountRestaurantsBySection(ctx context.Context, sectionID string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.countRestaurants(sectionID), nil
}

func (c *localCatalog) countRestaurants(sectionID string) int {
	n := 0
	for _, r := range c.restaurants {
		if r.SectionID == sectionID {
			n++
		}
	}
	return n
}

func (c *localCatalog) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	if err := restaurant.Validate(); err != nil {
		return models.Restaurant{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sectionIndex(restaurant.SectionID) < 0 {
		return models.Restaurant{}, models.NotFoundf("section", restaurant.SectionID)
	}
	if err := c.assignID(&restaurant.ID, c.restaurantIndex); err != nil {
		return models.Restaurant{}, err
	}
	next := append(slices.Clone(c.restaurants), restaurant)
	if err := c.save(ctx, persistence.RestaurantsKey, next); err != nil {
		return models.Restaurant{}, err
	}
	c.restaurants = next
	log.WithFields(logrus.Fields{"restaurant_id": restaurant.ID, "section_id": restaurant.SectionID}).Info("Restaurant created")
	return restaurant, nil
}

func (c *localCatalog) UpdateRestaurant(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateRestaurant(ctx, id, patch)
}

func (c *localCatalog) MoveRestaurant(ctx context.Context, id, sectionID string) (models.Restaurant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateRestaurant(ctx, id, models.RestaurantPatch{SectionID: &sectionID})
}

func (c *localCatalog) updateRestaurant(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error) {
	i := c.restaurantIndex(id)
	if i < 0 {
		return models.Restaurant{}, models.NotFoundf("restaurant", id)
	}
	updated := patch.Apply(c.restaurants[i])
	if err := updated.Validate(); err != nil {
		return models.Restaurant{}, err
	}
	if c.sectionIndex(updated.SectionID) < 0 {
		return models.Restaurant{}, models.NotFoundf("section", updated.SectionID)
	}
	next := slices.Clone(c.restaurants)
	next[i] = updated
	if err := c.save(ctx, persistence.RestaurantsKey, next); err != nil {
		return models.Restaurant{}, err
	}
	c.restaurants = next
	return updated, nil
}

// DeleteRestaurant removes the restaurant's menu items, then its foods, then
// the restaurant, saving each collection in that order.
func (c *localCatalog) DeleteRestaurant(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.restaurantIndex(id)
	if i < 0 {
		return models.NotFoundf("restaurant", id)
	}

	items := slices.DeleteFunc(slices.Clone(c.menuItems), func(m models.MenuItem) bool { return m.RestaurantID == id })
	if len(items) != len(c.menuItems) {
		if err := c.saveMenuItems(ctx, items); err != nil {
			return err
		}
		c.menuItems = items
	}

	foods := slices.DeleteFunc(slices.Clone(c.foods), func(f models.Food) bool { return f.RestaurantID == id })
	if len(foods) != len(c.foods) {
		if err := c.save(ctx, persistence.FoodsKey, foods); err != nil {
			return err
		}
		c.foods = foods
	}

	next := slices.Delete(slices.Clone(c.restaurants), i, i+1)
	if err := c.save(ctx, persistence.RestaurantsKey, next); err != nil {
		return err
	}
	c.restaurants = next
	log.WithField("restaurant_id", id).Info("Restaurant deleted")
	return nil
}

// Foods

func (c *localCatalog) ListFoods(ctx context.Context) ([]models.Food, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.foods), nil
}

func (c *localCatalog) GetFood(ctx context.Context, id string) (models.Food, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.foodByID(id)
	if !ok {
		return models.Food{}, models.NotFoundf("food", id)
	}
	return f, nil
}

func (c *localCatalog) ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]models.Food, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.Food{}
	for _, f := range c.foods {
		if f.RestaurantID == restaurantID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (c *localCatalog) CreateFood(ctx context.Context, food models.Food) (models.Food, error) {
	if err := food.Validate(); err != nil {
		return models.Food{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restaurantIndex(food.RestaurantID) < 0 {
		return models.Food{}, models.NotFoundf("restaurant", food.RestaurantID)
	}
	if err := c.assignID(&food.ID, c.foodIndex); err != nil {
		return models.Food{}, err
	}
	next := append(slices.Clone(c.foods), food)
	if err := c.save(ctx, persistence.FoodsKey, next); err != nil {
		return models.Food{}, err
	}
	c.foods = next
	return food, nil
}

// UpdateFood also refreshes the copies embedded in menu items. Those are
// stored by id, so only memory changes.
func (c *localCatalog) UpdateFood(ctx context.Context, id string, patch models.FoodPatch) (models.Food, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.foodIndex(id)
	if i < 0 {
		return models.Food{}, models.NotFoundf("food", id)
	}
	updated := patch.Apply(c.foods[i])
	if err := updated.Validate(); err != nil {
		return models.Food{}, err
	}
	if c.restaurantIndex(updated.RestaurantID) < 0 {
		return models.Food{}, models.NotFoundf("restaurant", updated.RestaurantID)
	}
	if updated.RestaurantID != c.foods[i].RestaurantID {
		if item, ok := c.menuItemUsing(id); ok {
			return models.Food{}, fmt.Errorf("food %q is used by menu item %q and cannot change restaurant: %w", id, item, models.ErrConflict)
		}
	}
	next := slices.Clone(c.foods)
	next[i] = updated
	if err := c.save(ctx, persistence.FoodsKey, next); err != nil {
		return models.Food{}, err
	}
	c.foods = next
	for j, item := range c.menuItems {
		c.menuItems[j] = mapFoods(item, func(mf models.MenuItemFood) (models.MenuItemFood, bool) {
			if mf.Food.ID == id {
				mf.Food = updated
			}
			return mf, true
		})
	}
	return updated, nil
}

// DeleteFood removes the food and every menu item row that references it,
// which is what a reload would do with the dangling rows anyway. It is
// refused while the food is the last default food of an item or size, since
// stripping it would leave that item invalid.
func (c *localCatalog) DeleteFood(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.foodIndex(id)
	if i < 0 {
		return models.NotFoundf("food", id)
	}
	if item, ok := c.menuItemNeeding(id); ok {
		return fmt.Errorf("food %q is the only default food of menu item %q: %w", id, item, models.ErrConflict)
	}

	items := make([]models.MenuItem, len(c.menuItems))
	stripped := 0
	for j, item := range c.menuItems {
		items[j] = mapFoods(item, func(mf models.MenuItemFood) (models.MenuItemFood, bool) {
			if mf.Food.ID == id {
				stripped++
				return mf, false
			}
			return mf, true
		})
	}
	if stripped > 0 {
		if err := c.saveMenuItems(ctx, items); err != nil {
			return err
		}
		c.menuItems = items
		log.WithFields(logrus.Fields{"food_id": id, "rows": stripped}).Warn("Removed deleted food from menu items")
	}

	next := slices.Delete(slices.Clone(c.foods), i, i+1)
	if err := c.save(ctx, persistence.FoodsKey, next); err != nil {
		return err
	}
	c.foods = next
	return nil
}

// Menu items

func (c *localCatalog) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.CloneMenuItems(c.menuItems), nil
}

func (c *localCatalog) GetMenuItem(ctx context.Context, id string) (models.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.menuItemIndex(id)
	if i < 0 {
		return models.MenuItem{}, models.NotFoundf("menu item", id)
	}
	return c.menuItems[i].Clone(), nil
}

func (c *localCatalog) ListMenuItemsByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.MenuItem{}
	for _, m := range c.menuItems {
		if m.RestaurantID == restaurantID {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

func (c *localCatalog) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item = item.Normalized()
	if err := item.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	resolved, err := c.resolveMenuItem(item)
	if err != nil {
		return models.MenuItem{}, err
	}
	if err := c.assignID(&resolved.ID, c.menuItemIndex); err != nil {
		return models.MenuItem{}, err
	}
	next := append(slices.Clone(c.menuItems), resolved)
	if err := c.saveMenuItems(ctx, next); err != nil {
		return models.MenuItem{}, err
	}
	c.menuItems = next
	log.WithFields(logrus.Fields{
		"menu_item_id":  resolved.ID,
		"restaurant_id": resolved.RestaurantID,
		"sized":         resolved.IsSized(),
	}).Info("Menu item created")
	return resolved.Clone(), nil
}

func (c *localCatalog) UpdateMenuItem(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.menuItemIndex(id)
	if i < 0 {
		return models.MenuItem{}, models.NotFoundf("menu item", id)
	}
	updated := patch.Apply(c.menuItems[i]).Normalized()
	if err := updated.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	resolved, err := c.resolveMenuItem(updated)
	if err != nil {
		return models.MenuItem{}, err
	}
	next := slices.Clone(c.menuItems)
	next[i] = resolved
	if err := c.saveMenuItems(ctx, next); err != nil {
		return models.MenuItem{}, err
	}
	c.menuItems = next
	return resolved.Clone(), nil
}

func (c *localCatalog) DeleteMenuItem(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.menuItemIndex(id)
	if i < 0 {
		return models.NotFoundf("menu item", id)
	}
	next := slices.Delete(slices.Clone(c.menuItems), i, i+1)
	if err := c.saveMenuItems(ctx, next); err != nil {
		return err
	}
	c.menuItems = next
	return nil
}

// menuItemUsing returns the first menu item with a row for foodID.
func (c *localCatalog) menuItemUsing(foodID string) (string, bool) {
	for _, item := range c.menuItems {
		found := false
		mapFoods(item, func(mf models.MenuItemFood) (models.MenuItemFood, bool) {
			found = found || mf.Food.ID == foodID
			return mf, true
		})
		if found {
			return item.ID, true
		}
	}
	return "", false
}

// menuItemNeeding returns the first menu item where foodID is the only
// default food of the item or of one of its sizes.
func (c *localCatalog) menuItemNeeding(foodID string) (string, bool) {
	only := func(foods []models.MenuItemFood) bool {
		return len(foods) == 1 && foods[0].Food.ID == foodID
	}
	for _, item := range c.menuItems {
		if !item.IsSized() && only(item.Foods) {
			return item.ID, true
		}
		for _, size := range item.Sizes {
			if only(size.Foods) {
				return item.ID, true
			}
		}
	}
	return "", false
}

// resolveMenuItem checks the restaurant and replaces every referenced food
// with the stored record. Foods must belong to the item's restaurant.
func (c *localCatalog) resolveMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if c.restaurantIndex(item.RestaurantID) < 0 {
		return models.MenuItem{}, models.NotFoundf("restaurant", item.RestaurantID)
	}
	var resolveErr error
	resolved := mapFoods(item, func(mf models.MenuItemFood) (models.MenuItemFood, bool) {
		if resolveErr != nil {
			return mf, true
		}
		food, ok := c.foodByID(mf.Food.ID)
		if !ok {
			resolveErr = models.NotFoundf("food", mf.Food.ID)
			return mf, true
		}
		if food.RestaurantID != item.RestaurantID {
			resolveErr = models.NewValidationError("foods",
				fmt.Sprintf("food %q belongs to another restaurant", food.ID))
			return mf, true
		}
		mf.Food = food
		return mf, true
	})
	if resolveErr != nil {
		return models.MenuItem{}, resolveErr
	}
	return resolved, nil
}

// assignID generates an id when *id is empty and rejects one already in use.
func (c *localCatalog) assignID(id *string, index func(string) int) error {
	if *id == "" {
		*id = models.NewID()
		return nil
	}
	if index(*id) >= 0 {
		return fmt.Errorf("id %q already exists: %w", *id, models.ErrConflict)
	}
	return nil
}

// mapFoods returns a copy of item with fn applied to every food entry at
// every scope. Entries for which fn returns false are dropped.
func mapFoods(item models.MenuItem, fn func(models.MenuItemFood) (models.MenuItemFood, bool)) models.MenuItem {
	apply := func(list []models.MenuItemFood) []models.MenuItemFood {
		out := make([]models.MenuItemFood, 0, len(list))
		for _, mf := range list {
			if mapped, keep := fn(mf); keep {
				out = append(out, mapped)
			}
		}
		return out
	}
	item.Foods = apply(item.Foods)
	item.PossibleFoods = apply(item.PossibleFoods)
	sizes := make([]models.MenuItemSize, len(item.Sizes))
	for i, s := range item.Sizes {
		s.Foods = apply(s.Foods)
		s.PossibleFoods = apply(s.PossibleFoods)
		sizes[i] = s
	}
	item.Sizes = sizes
	return item
}
