package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakySlot wraps a slot and fails every save once broken is set.
type flakySlot struct {
	persistence.Slot
	broken bool
}

func (s *flakySlot) Save(ctx context.Context, key string, value []byte) error {
	if s.broken {
		return errors.New("disk full")
	}
	return s.Slot.Save(ctx, key, value)
}

func setupSlot(t *testing.T) *flakySlot {
	bunt, err := persistence.OpenBuntSlot("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bunt.Close() })
	return &flakySlot{Slot: bunt}
}

func setupLocalCatalog(t *testing.T) (Catalog, *flakySlot) {
	slot := setupSlot(t)
	catalog, err := NewLocalCatalog(context.Background(), slot)
	require.NoError(t, err)
	return catalog, slot
}

type fixture struct {
	section    models.Section
	restaurant models.Restaurant
	fries      models.Food
	burger     models.Food
	soda       models.Food
	combo      models.MenuItem
}

func seed(t *testing.T, catalog Catalog) fixture {
	ctx := context.Background()
	var fx fixture
	var err error

	fx.section, err = catalog.CreateSection(ctx, models.Section{Name: "North Campus"})
	require.NoError(t, err)
	fx.restaurant, err = catalog.CreateRestaurant(ctx, models.Restaurant{
		Name:      "Grill",
		SectionID: fx.section.ID,
		Location:  models.NewCoordinates(34.07, -118.44),
	})
	require.NoError(t, err)

	newFood := func(name string, calories float64) models.Food {
		f, err := catalog.CreateFood(ctx, models.Food{Name: name, RestaurantID: fx.restaurant.ID, Calories: calories})
		require.NoError(t, err)
		return f
	}
	fx.fries = newFood("Fries", 320)
	fx.burger = newFood("Burger", 550)
	fx.soda = newFood("Soda", 150)

	fx.combo, err = catalog.CreateMenuItem(ctx, models.MenuItem{
		Name:         "Burger Combo",
		RestaurantID: fx.restaurant.ID,
		Foods: []models.MenuItemFood{
			{Food: models.Food{ID: fx.burger.ID}, Quantity: 1},
			{Food: models.Food{ID: fx.fries.ID}, Quantity: 1},
		},
		PossibleFoods: []models.MenuItemFood{{Food: models.Food{ID: fx.soda.ID}, Quantity: 1}},
	})
	require.NoError(t, err)
	return fx
}

func TestLocalCatalogCreateAssignsIDs(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)

	assert.NotEmpty(t, fx.section.ID)
	assert.NotEmpty(t, fx.restaurant.ID)
	assert.NotEmpty(t, fx.combo.ID)
	// ids in the request body are replaced by the stored foods
	assert.Equal(t, "Burger", fx.combo.Foods[0].Food.Name)
	assert.Equal(t, 550.0, fx.combo.Foods[0].Food.Calories)
}

func TestLocalCatalogKeepsSuppliedID(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	ctx := context.Background()

	s, err := catalog.CreateSection(ctx, models.Section{ID: "north", Name: "North"})
	require.NoError(t, err)
	assert.Equal(t, "north", s.ID)

	_, err = catalog.CreateSection(ctx, models.Section{ID: "north", Name: "Again"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestLocalCatalogCascadeOnRestaurantDelete(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	require.NoError(t, catalog.DeleteRestaurant(ctx, fx.restaurant.ID))

	foods, err := catalog.ListFoodsByRestaurant(ctx, fx.restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, foods)

	items, err := catalog.ListMenuItemsByRestaurant(ctx, fx.restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = catalog.GetFood(ctx, fx.fries.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = catalog.GetRestaurant(ctx, fx.restaurant.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLocalCatalogSectionDeleteGuard(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	err := catalog.DeleteSection(ctx, fx.section.ID)
	assert.ErrorIs(t, err, models.ErrConflict)

	sections, err := catalog.ListSections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, fx.section.ID, sections[0].ID)

	n, err := catalog.CountRestaurantsBySection(ctx, fx.section.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, catalog.DeleteRestaurant(ctx, fx.restaurant.ID))
	assert.NoError(t, catalog.DeleteSection(ctx, fx.section.ID))
}

func TestLocalCatalogNotFound(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()
	name := "x"

	_, err := catalog.UpdateSection(ctx, "missing", models.SectionPatch{Name: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, catalog.DeleteFood(ctx, "missing"), models.ErrNotFound)
	assert.ErrorIs(t, catalog.DeleteMenuItem(ctx, "missing"), models.ErrNotFound)

	_, err = catalog.MoveRestaurant(ctx, fx.restaurant.ID, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = catalog.MoveRestaurant(ctx, "missing", fx.section.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = catalog.CreateFood(ctx, models.Food{Name: "Pie", RestaurantID: "missing"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLocalCatalogMoveRestaurant(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	south, err := catalog.CreateSection(ctx, models.Section{Name: "South"})
	require.NoError(t, err)

	moved, err := catalog.MoveRestaurant(ctx, fx.restaurant.ID, south.ID)
	require.NoError(t, err)
	assert.Equal(t, south.ID, moved.SectionID)
	assert.Equal(t, fx.restaurant.Name, moved.Name)
	assert.Equal(t, fx.restaurant.Location, moved.Location)

	north, err := catalog.ListRestaurantsBySection(ctx, fx.section.ID)
	require.NoError(t, err)
	assert.Empty(t, north)
}

func TestLocalCatalogValidationLeavesStateUntouched(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	// the soda becomes both a default and an add-on
	foods := append(fx.combo.Foods, models.MenuItemFood{Food: fx.soda, Quantity: 1})
	_, err := catalog.UpdateMenuItem(ctx, fx.combo.ID, models.MenuItemPatch{Foods: &foods})
	assert.ErrorIs(t, err, models.ErrValidation)

	stored, err := catalog.GetMenuItem(ctx, fx.combo.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Foods, 2)

	blank := " "
	_, err = catalog.UpdateSection(ctx, fx.section.ID, models.SectionPatch{Name: &blank})
	assert.ErrorIs(t, err, models.ErrValidation)
	section, err := catalog.GetSection(ctx, fx.section.ID)
	require.NoError(t, err)
	assert.Equal(t, "North Campus", section.Name)
}

func TestLocalCatalogFailedSaveLeavesStateUntouched(t *testing.T) {
	catalog, slot := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	slot.broken = true
	_, err := catalog.CreateSection(ctx, models.Section{Name: "South"})
	assert.Error(t, err)
	assert.Error(t, catalog.DeleteMenuItem(ctx, fx.combo.ID))

	sections, err := catalog.ListSections(ctx)
	require.NoError(t, err)
	assert.Len(t, sections, 1)
	_, err = catalog.GetMenuItem(ctx, fx.combo.ID)
	assert.NoError(t, err)
}

func TestLocalCatalogUpdatePreservesUnspecifiedFields(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	calories := 300.0
	updated, err := catalog.UpdateFood(ctx, fx.fries.ID, models.FoodPatch{Calories: &calories})
	require.NoError(t, err)
	assert.Equal(t, fx.fries.ID, updated.ID)
	assert.Equal(t, "Fries", updated.Name)
	assert.Equal(t, 300.0, updated.Calories)

	// embedded copies follow the food
	item, err := catalog.GetMenuItem(ctx, fx.combo.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, item.Foods[1].Food.Calories)

	name := "Big Combo"
	renamed, err := catalog.UpdateMenuItem(ctx, fx.combo.ID, models.MenuItemPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, fx.combo.ID, renamed.ID)
	assert.Equal(t, "Big Combo", renamed.Name)
	assert.Len(t, renamed.Foods, 2)
	assert.Len(t, renamed.PossibleFoods, 1)
}

func TestLocalCatalogMenuItemRejectsUnknownFood(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)

	_, err := catalog.CreateMenuItem(context.Background(), models.MenuItem{
		Name:         "Mystery",
		RestaurantID: fx.restaurant.ID,
		Foods:        []models.MenuItemFood{{Food: models.Food{ID: "nope"}, Quantity: 1}},
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLocalCatalogDeleteFoodStripsMenuItemRows(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	require.NoError(t, catalog.DeleteFood(ctx, fx.soda.ID))

	item, err := catalog.GetMenuItem(ctx, fx.combo.ID)
	require.NoError(t, err)
	assert.Empty(t, item.PossibleFoods)
	assert.Len(t, item.Foods, 2)
}

func TestLocalCatalogDeleteFoodRefusesLastDefault(t *testing.T) {
	slot := setupSlot(t)
	ctx := context.Background()
	catalog, err := NewLocalCatalog(ctx, slot)
	require.NoError(t, err)
	fx := seed(t, catalog)

	meal, err := catalog.CreateMenuItem(ctx, models.MenuItem{
		Name:         "Drink Meal",
		RestaurantID: fx.restaurant.ID,
		Sizes: []models.MenuItemSize{
			{Name: "Small", Foods: []models.MenuItemFood{{Food: fx.soda, Quantity: 1}}},
			{Name: "Large", Foods: []models.MenuItemFood{{Food: fx.burger, Quantity: 1}}},
		},
	})
	require.NoError(t, err)

	err = catalog.DeleteFood(ctx, fx.soda.ID)
	assert.ErrorIs(t, err, models.ErrConflict)
	_, err = catalog.GetFood(ctx, fx.soda.ID)
	assert.NoError(t, err)
	stored, err := catalog.GetMenuItem(ctx, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, meal, stored)
	combo, err := catalog.GetMenuItem(ctx, fx.combo.ID)
	require.NoError(t, err)
	assert.Len(t, combo.PossibleFoods, 1)

	// fries is one of two defaults, so it can go
	require.NoError(t, catalog.DeleteFood(ctx, fx.fries.ID))
	items, err := catalog.ListMenuItemsByRestaurant(ctx, fx.restaurant.ID)
	require.NoError(t, err)
	for _, item := range items {
		assert.True(t, models.IsValidMenuItem(item), item.Name)
	}

	reloaded, err := NewLocalCatalog(ctx, slot)
	require.NoError(t, err)
	again, err := reloaded.ListMenuItemsByRestaurant(ctx, fx.restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, items, again)

	name := "Burger Only"
	_, err = catalog.UpdateMenuItem(ctx, fx.combo.ID, models.MenuItemPatch{Name: &name})
	assert.NoError(t, err)
}

func TestLocalCatalogFoodKeepsRestaurantWhileReferenced(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	other, err := catalog.CreateRestaurant(ctx, models.Restaurant{
		Name: "Deli", SectionID: fx.section.ID, Location: models.Location{Address: "1 Court"},
	})
	require.NoError(t, err)

	_, err = catalog.UpdateFood(ctx, fx.soda.ID, models.FoodPatch{RestaurantID: &other.ID})
	assert.ErrorIs(t, err, models.ErrConflict)
	soda, err := catalog.GetFood(ctx, fx.soda.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.restaurant.ID, soda.RestaurantID)

	salad, err := catalog.CreateFood(ctx, models.Food{Name: "Salad", RestaurantID: fx.restaurant.ID})
	require.NoError(t, err)
	moved, err := catalog.UpdateFood(ctx, salad.ID, models.FoodPatch{RestaurantID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.RestaurantID)
}

func TestLocalCatalogReadsReturnCopies(t *testing.T) {
	catalog, _ := setupLocalCatalog(t)
	fx := seed(t, catalog)
	ctx := context.Background()

	item, err := catalog.GetMenuItem(ctx, fx.combo.ID)
	require.NoError(t, err)
	item.Foods[0].Quantity = 0
	item.PossibleFoods[0].Food.Name = "Changed"

	listed, err := catalog.ListMenuItems(ctx)
	require.NoError(t, err)
	listed[0].Foods[1].Quantity = 0

	byRestaurant, err := catalog.ListMenuItemsByRestaurant(ctx, fx.restaurant.ID)
	require.NoError(t, err)
	byRestaurant[0].Foods = byRestaurant[0].Foods[:0]

	fx.combo.Foods[0].Quantity = 7

	stored, err := catalog.GetMenuItem(ctx, fx.combo.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Foods[0].Quantity)
	assert.Equal(t, 1, stored.Foods[1].Quantity)
	assert.Equal(t, "Soda", stored.PossibleFoods[0].Food.Name)
	assert.True(t, models.IsValidMenuItem(stored))
}

func TestLocalCatalogSurvivesReload(t *testing.T) {
	slot := setupSlot(t)
	ctx := context.Background()

	catalog, err := NewLocalCatalog(ctx, slot)
	require.NoError(t, err)
	fx := seed(t, catalog)

	sized, err := catalog.CreateMenuItem(ctx, models.MenuItem{
		Name:         "Burger Meal",
		RestaurantID: fx.restaurant.ID,
		Sizes: []models.MenuItemSize{
			{Name: "Regular", Foods: []models.MenuItemFood{{Food: fx.burger, Quantity: 1}}},
			{
				Name:          "Large",
				Foods:         []models.MenuItemFood{{Food: fx.burger, Quantity: 2}},
				PossibleFoods: []models.MenuItemFood{{Food: fx.soda, Quantity: 1}},
			},
		},
	})
	require.NoError(t, err)

	reloaded, err := NewLocalCatalog(ctx, slot)
	require.NoError(t, err)

	sections, err := reloaded.ListSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Section{fx.section}, sections)

	items, err := reloaded.ListMenuItemsByRestaurant(ctx, fx.restaurant.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, fx.combo, items[0])
	assert.Equal(t, sized, items[1])
	assert.Equal(t, []string{"Regular", "Large"}, []string{items[1].Sizes[0].Name, items[1].Sizes[1].Name})
	assert.Equal(t, "Soda", items[1].Sizes[1].PossibleFoods[0].Food.Name)
}

func TestLocalCatalogDropsDanglingRowsOnLoad(t *testing.T) {
	slot := setupSlot(t)
	ctx := context.Background()
	require.NoError(t, slot.Save(ctx, persistence.FoodsKey, []byte(`[{"id":"f1","name":"Fries","restaurantId":"r1"}]`)))
	require.NoError(t, slot.Save(ctx, persistence.MenuItemsKey, []byte(`[{
		"id":"m1","name":"Combo","restaurantId":"r1",
		"foods":[{"foodId":"f1","quantity":2},{"foodId":"gone","quantity":1}],
		"possibleFoods":[]
	}]`)))

	catalog, err := NewLocalCatalog(ctx, slot)
	require.NoError(t, err)

	item, err := catalog.GetMenuItem(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, item.Foods, 1)
	assert.Equal(t, "Fries", item.Foods[0].Food.Name)
	assert.Equal(t, 2, item.Foods[0].Quantity)
}
