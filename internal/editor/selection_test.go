package editor

import (
	"testing"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(id string) (models.Food, bool) {
	switch id {
	case "food-4", "food-5", "food-6":
		return models.Food{ID: id, RestaurantID: "restaurant-3", Name: id}, true
	}
	return models.Food{}, false
}

func TestToggleKeepsSetsDisjoint(t *testing.T) {
	testCases := []struct {
		name   string
		toggle func(s *Selection)
		inFood bool
		inPoss bool
	}{
		{
			name:   "food then possible",
			toggle: func(s *Selection) { s.ToggleFood("food-4"); s.TogglePossibleFood("food-4") },
			inPoss: true,
		},
		{
			name:   "possible then food",
			toggle: func(s *Selection) { s.TogglePossibleFood("food-4"); s.ToggleFood("food-4") },
			inFood: true,
		},
		{
			name:   "food twice",
			toggle: func(s *Selection) { s.ToggleFood("food-4"); s.ToggleFood("food-4") },
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			s := &Selection{}
			tt.toggle(s)
			assert.Equal(t, tt.inFood, s.IsFoodSelected("food-4"))
			assert.Equal(t, tt.inPoss, s.IsPossibleFoodSelected("food-4"))
			assert.False(t, s.IsFoodSelected("food-4") && s.IsPossibleFoodSelected("food-4"))
		})
	}
}

func TestQuantitiesClampToOne(t *testing.T) {
	s := &Selection{}
	s.ToggleFood("food-4")
	s.SetFoodQuantity("food-4", 0)
	s.TogglePossibleFood("food-5")
	s.SetPossibleFoodQuantity("food-5", 3)
	s.SetPossibleFoodQuantity("food-6", 9) // not selected, ignored

	foods, possible, err := s.Build(lookup)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, 1, foods[0].Quantity)
	require.Len(t, possible, 1)
	assert.Equal(t, 3, possible[0].Quantity)
}

func TestNewSelectionDropsOverlap(t *testing.T) {
	f := models.Food{ID: "food-4"}
	s := NewSelection(
		[]models.MenuItemFood{{Food: f, Quantity: 2}},
		[]models.MenuItemFood{{Food: f, Quantity: 1}},
	)
	assert.Equal(t, []string{"food-4"}, s.FoodIDs())
	assert.Empty(t, s.PossibleFoodIDs())
}

func TestDraftBuildSized(t *testing.T) {
	d := NewDraft("restaurant-3")
	d.Name = "  Pizza Feast "
	regular := d.AddSize("Regular")
	regular.Selection.ToggleFood("food-4")
	regular.Selection.SetFoodQuantity("food-4", 2)
	regular.Selection.TogglePossibleFood("food-5")
	family := d.AddSize("Family")
	family.Selection.ToggleFood("food-4")
	family.Selection.SetFoodQuantity("food-4", 4)

	item, err := d.Build(lookup)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Feast", item.Name)
	assert.True(t, item.IsSized())
	assert.Empty(t, item.Foods)
	require.Len(t, item.Sizes, 2)
	assert.Equal(t, 2, item.Sizes[0].Foods[0].Quantity)

	again := DraftFrom(item)
	require.Len(t, again.Sizes, 2)
	assert.True(t, again.Sizes[0].Selection.IsPossibleFoodSelected("food-5"))
	again.RemoveSize(1)
	assert.Len(t, again.Sizes, 1)
}

func TestDraftBuildRequiresDefaultFood(t *testing.T) {
	d := NewDraft("restaurant-3")
	d.Name = "Sides"
	d.Selection.TogglePossibleFood("food-5")

	_, err := d.Build(lookup)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDraftBuildUnknownFood(t *testing.T) {
	d := NewDraft("restaurant-3")
	d.Name = "Mystery"
	d.Selection.ToggleFood("food-404")

	_, err := d.Build(lookup)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
