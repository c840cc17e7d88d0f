package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/remote"
	"github.com/sirupsen/logrus"
)

// remoteCatalog forwards every mutation to the remote API and applies the
// response to its cache. Sections and restaurants are fetched on first use;
// foods and menu items are fetched per restaurant and memoized until
// invalidated. Calls are serialized so operations apply in call order.
type remoteCatalog struct {
	client *remote.Client

	mu                sync.Mutex
	sections          []models.Section
	sectionsLoaded    bool
	restaurants       []models.Restaurant
	restaurantsLoaded bool
	foods             map[string][]models.Food
	menuItems         map[string][]models.MenuItem
}

// RemoteCatalog is a Catalog whose memoized reads can be dropped.
type RemoteCatalog interface {
	Catalog
	Invalidator
}

// NewRemoteCatalog returns a Catalog backed by client
func NewRemoteCatalog(client *remote.Client) RemoteCatalog {
	return &remoteCatalog{
		client:    client,
		foods:     make(map[string][]models.Food),
		menuItems: make(map[string][]models.MenuItem),
	}
}

func (c *remoteCatalog) Close() error { return nil }

func (c *remoteCatalog) Invalidate(restaurantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.foods, restaurantID)
	delete(c.menuItems, restaurantID)
}

func (c *remoteCatalog) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sections, c.sectionsLoaded = nil, false
	c.restaurants, c.restaurantsLoaded = nil, false
	c.foods = make(map[string][]models.Food)
	c.menuItems = make(map[string][]models.MenuItem)
}

func (c *remoteCatalog) ensureSections(ctx context.Context) error {
	if c.sectionsLoaded {
		return nil
	}
	sections, err := c.client.ListSections(ctx)
	if err != nil {
		return err
	}
	c.sections, c.sectionsLoaded = nonNil(sections), true
	return nil
}

func (c *remoteCatalog) ensureRestaurants(ctx context.Context) error {
	if c.restaurantsLoaded {
		return nil
	}
	restaurants, err := c.client.ListRestaurants(ctx, "")
	if err != nil {
		return err
	}
	c.restaurants, c.restaurantsLoaded = nonNil(restaurants), true
	return nil
}

func (c *remoteCatalog) ensureFoods(ctx context.Context, restaurantID string) ([]models.Food, error) {
	if foods, ok := c.foods[restaurantID]; ok {
		return foods, nil
	}
	foods, err := c.client.ListFoods(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	foods = nonNil(foods)
	c.foods[restaurantID] = foods
	log.WithFields(logrus.Fields{"restaurant_id": restaurantID, "count": len(foods)}).Debug("Foods fetched")
	return foods, nil
}

func (c *remoteCatalog) ensureMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	if items, ok := c.menuItems[restaurantID]; ok {
		return items, nil
	}
	items, err := c.client.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	items = nonNil(items)
	c.menuItems[restaurantID] = items
	log.WithFields(logrus.Fields{"restaurant_id": restaurantID, "count": len(items)}).Debug("Menu items fetched")
	return items, nil
}

func (c *remoteCatalog) findSection(ctx context.Context, id string) (int, error) {
	if err := c.ensureSections(ctx); err != nil {
		return -1, err
	}
	i := slices.IndexFunc(c.sections, func(s models.Section) bool { return s.ID == id })
	if i < 0 {
		return -1, models.NotFoundf("section", id)
	}
	return i, nil
}

func (c *remoteCatalog) findRestaurant(ctx context.Context, id string) (int, error) {
	if err := c.ensureRestaurants(ctx); err != nil {
		return -1, err
	}
	i := slices.IndexFunc(c.restaurants, func(r models.Restaurant) bool { return r.ID == id })
	if i < 0 {
		return -1, models.NotFoundf("restaurant", id)
	}
	return i, nil
}

// findFood looks through the memoized foods first, then asks the backend.
func (c *remoteCatalog) findFood(ctx context.Context, id string) (models.Food, error) {
	for _, foods := range c.foods {
		if i := slices.IndexFunc(foods, func(f models.Food) bool { return f.ID == id }); i >= 0 {
			return foods[i], nil
		}
	}
	return c.client.GetFood(ctx, id)
}

// findMenuItem looks through the memoized menu items, then fetches the
// lists of restaurants not loaded yet.
func (c *remoteCatalog) findMenuItem(ctx context.Context, id string) (models.MenuItem, error) {
	match := func(m models.MenuItem) bool { return m.ID == id }
	for _, items := range c.menuItems {
		if i := slices.IndexFunc(items, match); i >= 0 {
			return items[i].Clone(), nil
		}
	}
	if err := c.ensureRestaurants(ctx); err != nil {
		return models.MenuItem{}, err
	}
	for _, r := range c.restaurants {
		if _, loaded := c.menuItems[r.ID]; loaded {
			continue
		}
		items, err := c.ensureMenuItems(ctx, r.ID)
		if err != nil {
			return models.MenuItem{}, err
		}
		if i := slices.IndexFunc(items, match); i >= 0 {
			return items[i].Clone(), nil
		}
	}
	return models.MenuItem{}, models.NotFoundf("menu item", id)
}

// Sections

func (c *remoteCatalog) ListSections(ctx context.Context) ([]models.Section, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureSections(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(c.sections), nil
}

func (c *remoteCatalog) GetSection(ctx context.Context, id string) (models.Section, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.findSection(ctx, id)
	if err != nil {
		return models.Section{}, err
	}
	return c.sections[i], nil
}

func (c *remoteCatalog) CreateSection(ctx context.Context, section models.Section) (models.Section, error) {
	if err := section.Validate(); err != nil {
		return models.Section{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	created, err := c.client.CreateSection(ctx, section)
	if err != nil {
		return models.Section{}, err
	}
	if c.sectionsLoaded {
		c.sections = append(c.sections, created)
	}
	return created, nil
}

func (c *remoteCatalog) UpdateSection(ctx context.Context, id string, patch models.SectionPatch) (models.Section, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.findSection(ctx, id)
	if err != nil {
		return models.Section{}, err
	}
	if err := patch.Apply(c.sections[i]).Validate(); err != nil {
		return models.Section{}, err
	}
	updated, err := c.client.UpdateSection(ctx, id, patch)
	if err != nil {
		return models.Section{}, err
	}
	c.sections[i] = updated
	return updated, nil
}

func (c *remoteCatalog) DeleteSection(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.findSection(ctx, id)
	if err != nil {
		return err
	}
	if err := c.ensureRestaurants(ctx); err != nil {
		return err
	}
	if n := c.countRestaurants(id); n > 0 {
		return fmt.Errorf("section %q still has %d restaurant(s): %w", id, n, models.ErrConflict)
	}
	if err := c.client.DeleteSection(ctx, id); err != nil {
		return err
	}
	c.sections = slices.Delete(c.sections, i, i+1)
	return nil
}

// Restaurants

func (c *remoteCatalog) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureRestaurants(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(c.restaurants), nil
}

func (c *remoteCatalog) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.findRestaurant(ctx, id)
	if err != nil {
		return models.Restaurant{}, err
	}
	return c.restaurants[i], nil
}

func (c *remoteCatalog) ListRestaurantsBySection(ctx context.Context, sectionID string) ([]models.Restaurant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureRestaurants(ctx); err != nil {
		return nil, err
	}
	out := []models.Restaurant{}
	for _, r := range c.restaurants {
		if r.SectionID == sectionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *remoteCatalog) CountRestaurantsBySection(ctx context.Context, sectionID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureRestaurants(ctx); err != nil {
		return 0, err
	}
	return c.countRestaurants(sectionID), nil
}

func (c *remoteCatalog) countRestaurants(sectionID string) int {
	n := 0
	for _, r := range c.restaurants {
		if r.SectionID == sectionID {
			n++
		}
	}
	return n
}

func (c *remoteCatalog) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	if err := restaurant.Validate(); err != nil {
		return models.Restaurant{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.findSection(ctx, restaurant.SectionID); err != nil {
		return models.Restaurant{}, err
	}
	created, err := c.client.CreateRestaurant(ctx, restaurant)
	if err != nil {
		return models.Restaurant{}, err
	}
	if c.restaurantsLoaded {
		c.restaurants = append(c.restaurants, created)
	}
	return created, nil
}

func (c *remoteCatalog) UpdateRestaurant(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.checkRestaurantPatch(ctx, id, patch)
	if err != nil {
		return models.Restaurant{}, err
	}
	updated, err := c.client.UpdateRestaurant(ctx, id, patch)
	if err != nil {
		return models.Restaurant{}, err
	}
	c.restaurants[i] = updated
	return updated, nil
}

func (c *remoteCatalog) MoveRestaurant(ctx context.Context, id, sectionID string) (models.Restaurant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, err := c.checkRestaurantPatch(ctx, id, models.RestaurantPatch{SectionID: &sectionID})
	if err != nil {
		return models.Restaurant{}, err
	}
	moved, err := c.client.MoveRestaurant(ctx, id, sectionID)
	if err != nil {
		return models.Restaurant{}, err
	}
	c.restaurants[i] = moved
	return moved, nil
}

func (c *remoteCatalog) checkRestaurantPatch(ctx context.Context, id string, patch models.RestaurantPatch) (int, error) {
	i, err := c.findRestaurant(ctx, id)
	if err != nil {
		return -1, err
	}
	merged := patch.Apply(c.restaurants[i])
	if err := merged.Validate(); err != nil {
		return -1, err
	}
	if _, err := c.findSection(ctx, merged.SectionID); err != nil {
		return -1, err
	}
	return i, nil
}

// DeleteRestaurant deletes the restaurant's menu items, then its foods, then
// the restaurant. A failure stops the cascade; everything deleted before it
// stays deleted and is already gone from the cache.
func (c *remoteCatalog) DeleteRestaurant(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.findRestaurant(ctx, id); err != nil {
		return err
	}
	cascadeErr := func(err error) error {
		log.WithField("restaurant_id", id).WithError(err).Error("Restaurant cascade delete stopped")
		return fmt.Errorf("delete restaurant %q: cascade stopped: %w", id, err)
	}

	items, err := c.ensureMenuItems(ctx, id)
	if err != nil {
		return cascadeErr(err)
	}
	for len(items) > 0 {
		if err := c.client.DeleteMenuItem(ctx, id, items[0].ID); err != nil {
			return cascadeErr(err)
		}
		items = items[1:]
		c.menuItems[id] = items
	}

	foods, err := c.ensureFoods(ctx, id)
	if err != nil {
		return cascadeErr(err)
	}
	for len(foods) > 0 {
		if err := c.client.DeleteFood(ctx, foods[0].ID); err != nil {
			return cascadeErr(err)
		}
		foods = foods[1:]
		c.foods[id] = foods
	}

	if err := c.client.DeleteRestaurant(ctx, id); err != nil {
		return cascadeErr(err)
	}
	c.restaurants = slices.DeleteFunc(c.restaurants, func(r models.Restaurant) bool { return r.ID == id })
	delete(c.menuItems, id)
	delete(c.foods, id)
	log.WithField("restaurant_id", id).Info("Restaurant deleted")
	return nil
}

// Foods

func (c *remoteCatalog) ListFoods(ctx context.Context) ([]models.Food, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureRestaurants(ctx); err != nil {
		return nil, err
	}
	out := []models.Food{}
	for _, r := range c.restaurants {
		foods, err := c.ensureFoods(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, foods...)
	}
	return out, nil
}

func (c *remoteCatalog) GetFood(ctx context.Context, id string) (models.Food, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findFood(ctx, id)
}

func (c *remoteCatalog) ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]models.Food, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	foods, err := c.ensureFoods(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(foods), nil
}

func (c *remoteCatalog) CreateFood(ctx context.Context, food models.Food) (models.Food, error) {
	if err := food.Validate(); err != nil {
		return models.Food{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.findRestaurant(ctx, food.RestaurantID); err != nil {
		return models.Food{}, err
	}
	created, err := c.client.CreateFood(ctx, food)
	if err != nil {
		return models.Food{}, err
	}
	if foods, ok := c.foods[created.RestaurantID]; ok {
		c.foods[created.RestaurantID] = append(foods, created)
	}
	return created, nil
}

func (c *remoteCatalog) UpdateFood(ctx context.Context, id string, patch models.FoodPatch) (models.Food, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, err := c.findFood(ctx, id)
	if err != nil {
		return models.Food{}, err
	}
	merged := patch.Apply(existing)
	if err := merged.Validate(); err != nil {
		return models.Food{}, err
	}
	if merged.RestaurantID != existing.RestaurantID {
		if _, err := c.findRestaurant(ctx, merged.RestaurantID); err != nil {
			return models.Food{}, err
		}
	}
	updated, err := c.client.UpdateFood(ctx, id, patch)
	if err != nil {
		return models.Food{}, err
	}

	c.dropCachedFood(existing.RestaurantID, id)
	if foods, ok := c.foods[updated.RestaurantID]; ok {
		c.foods[updated.RestaurantID] = append(foods, updated)
	}
	for rid, items := range c.menuItems {
		for j, item := range items {
			items[j] = mapFoods(item, func(mf models.MenuItemFood) (models.MenuItemFood, bool) {
				if mf.Food.ID == id {
					mf.Food = updated
				}
				return mf, true
			})
		}
		c.menuItems[rid] = items
	}
	return updated, nil
}

func (c *remoteCatalog) DeleteFood(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, err := c.findFood(ctx, id)
	if err != nil {
		return err
	}
	if err := c.client.DeleteFood(ctx, id); err != nil {
		return err
	}
	c.dropCachedFood(existing.RestaurantID, id)
	// The backend strips the rows too; refetch rather than guess.
	delete(c.menuItems, existing.RestaurantID)
	return nil
}

func (c *remoteCatalog) dropCachedFood(restaurantID, id string) {
	if foods, ok := c.foods[restaurantID]; ok {
		c.foods[restaurantID] = slices.DeleteFunc(slices.Clone(foods), func(f models.Food) bool { return f.ID == id })
	}
}

// Menu items

func (c *remoteCatalog) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureRestaurants(ctx); err != nil {
		return nil, err
	}
	out := []models.MenuItem{}
	for _, r := range c.restaurants {
		items, err := c.ensureMenuItems(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.CloneMenuItems(items)...)
	}
	return out, nil
}

func (c *remoteCatalog) GetMenuItem(ctx context.Context, id string) (models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findMenuItem(ctx, id)
}

func (c *remoteCatalog) ListMenuItemsByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.ensureMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return models.CloneMenuItems(items), nil
}

func (c *remoteCatalog) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item = item.Normalized()
	if err := item.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	resolved, err := c.resolveMenuItem(ctx, item)
	if err != nil {
		return models.MenuItem{}, err
	}
	created, err := c.client.CreateMenuItem(ctx, resolved)
	if err != nil {
		return models.MenuItem{}, err
	}
	if items, ok := c.menuItems[created.RestaurantID]; ok {
		c.menuItems[created.RestaurantID] = append(items, created.Clone())
	}
	return created, nil
}

func (c *remoteCatalog) UpdateMenuItem(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, err := c.findMenuItem(ctx, id)
	if err != nil {
		return models.MenuItem{}, err
	}
	merged := patch.Apply(existing).Normalized()
	if err := merged.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	resolved, err := c.resolveMenuItem(ctx, merged)
	if err != nil {
		return models.MenuItem{}, err
	}
	updated, err := c.client.UpdateMenuItem(ctx, existing.RestaurantID, resolved)
	if err != nil {
		return models.MenuItem{}, err
	}
	c.dropCachedMenuItem(existing.RestaurantID, id)
	if items, ok := c.menuItems[updated.RestaurantID]; ok {
		c.menuItems[updated.RestaurantID] = append(items, updated.Clone())
	}
	return updated, nil
}

func (c *remoteCatalog) DeleteMenuItem(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, err := c.findMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if err := c.client.DeleteMenuItem(ctx, existing.RestaurantID, id); err != nil {
		return err
	}
	c.dropCachedMenuItem(existing.RestaurantID, id)
	return nil
}

func (c *remoteCatalog) dropCachedMenuItem(restaurantID, id string) {
	if items, ok := c.menuItems[restaurantID]; ok {
		c.menuItems[restaurantID] = slices.DeleteFunc(slices.Clone(items), func(m models.MenuItem) bool { return m.ID == id })
	}
}

// resolveMenuItem checks the restaurant and replaces every referenced food
// with the restaurant's copy.
func (c *remoteCatalog) resolveMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if _, err := c.findRestaurant(ctx, item.RestaurantID); err != nil {
		return models.MenuItem{}, err
	}
	foods, err := c.ensureFoods(ctx, item.RestaurantID)
	if err != nil {
		return models.MenuItem{}, err
	}
	var resolveErr error
	resolved := mapFoods(item, func(mf models.MenuItemFood) (models.MenuItemFood, bool) {
		if resolveErr != nil {
			return mf, true
		}
		i := slices.IndexFunc(foods, func(f models.Food) bool { return f.ID == mf.Food.ID })
		if i < 0 {
			resolveErr = models.NotFoundf("food", mf.Food.ID)
			return mf, true
		}
		mf.Food = foods[i]
		return mf, true
	})
	if resolveErr != nil {
		return models.MenuItem{}, resolveErr
	}
	return resolved, nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
