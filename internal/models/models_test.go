package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func food(id string) Food {
	return Food{ID: id, RestaurantID: "restaurant-3", Name: id, Calories: 100, Protein: 10, Carbs: 5, Fat: 2}
}

func mf(id string, qty int) MenuItemFood {
	return MenuItemFood{Food: food(id), Quantity: qty}
}

func TestIsValidLocation(t *testing.T) {
	testCases := []struct {
		name     string
		loc      Location
		expected bool
	}{
		{"coordinates only", NewCoordinates(37.7749, -122.4194), true},
		{"address only", Location{Address: "1 Campus Way"}, true},
		{"blank address", Location{Address: "   "}, false},
		{"latitude without longitude", Location{Latitude: new(float64)}, false},
		{"empty", Location{}, false},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidLocation(tt.loc))
		})
	}
}

func TestIsValidMenuItem(t *testing.T) {
	testCases := []struct {
		name     string
		item     MenuItem
		expected bool
	}{
		{
			name:     "flat with defaults",
			item:     MenuItem{Foods: []MenuItemFood{mf("food-1", 1)}},
			expected: true,
		},
		{
			name:     "flat with defaults and add-ons",
			item:     MenuItem{Foods: []MenuItemFood{mf("food-3", 1)}, PossibleFoods: []MenuItemFood{mf("food-10", 1)}},
			expected: true,
		},
		{
			name:     "flat without defaults",
			item:     MenuItem{PossibleFoods: []MenuItemFood{mf("food-10", 1)}},
			expected: false,
		},
		{
			name:     "food in both sets",
			item:     MenuItem{Foods: []MenuItemFood{mf("food-1", 1)}, PossibleFoods: []MenuItemFood{mf("food-1", 2)}},
			expected: false,
		},
		{
			name: "sized",
			item: MenuItem{Sizes: []MenuItemSize{
				{Name: "Regular", Foods: []MenuItemFood{mf("food-4", 2)}, PossibleFoods: []MenuItemFood{mf("food-5", 1)}},
				{Name: "Family", Foods: []MenuItemFood{mf("food-4", 4), mf("food-5", 2)}},
			}},
			expected: true,
		},
		{
			name: "same food default in one size and add-on in another",
			item: MenuItem{Sizes: []MenuItemSize{
				{Name: "Regular", Foods: []MenuItemFood{mf("food-4", 1)}, PossibleFoods: []MenuItemFood{mf("food-5", 1)}},
				{Name: "Large", Foods: []MenuItemFood{mf("food-5", 1)}, PossibleFoods: []MenuItemFood{mf("food-4", 1)}},
			}},
			expected: true,
		},
		{
			name: "both modes at once",
			item: MenuItem{
				Foods: []MenuItemFood{mf("food-1", 1)},
				Sizes: []MenuItemSize{{Name: "Regular", Foods: []MenuItemFood{mf("food-4", 1)}}},
			},
			expected: false,
		},
		{
			name:     "size without name",
			item:     MenuItem{Sizes: []MenuItemSize{{Name: " ", Foods: []MenuItemFood{mf("food-4", 1)}}}},
			expected: false,
		},
		{
			name:     "size with add-ons only",
			item:     MenuItem{Sizes: []MenuItemSize{{Name: "Snack", PossibleFoods: []MenuItemFood{mf("food-4", 1)}}}},
			expected: false,
		},
		{
			name: "duplicate size names",
			item: MenuItem{Sizes: []MenuItemSize{
				{Name: "Regular", Foods: []MenuItemFood{mf("food-4", 1)}},
				{Name: "Regular", Foods: []MenuItemFood{mf("food-5", 1)}},
			}},
			expected: false,
		},
		{
			name: "size food in both sets",
			item: MenuItem{Sizes: []MenuItemSize{
				{Name: "Regular", Foods: []MenuItemFood{mf("food-4", 1)}, PossibleFoods: []MenuItemFood{mf("food-4", 1)}},
			}},
			expected: false,
		},
		{
			name:     "zero quantity",
			item:     MenuItem{Foods: []MenuItemFood{mf("food-1", 0)}},
			expected: false,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidMenuItem(tt.item))
		})
	}
}

func TestMenuItemValidateReportsField(t *testing.T) {
	err := MenuItem{RestaurantID: "restaurant-1", Foods: []MenuItemFood{mf("food-1", 1)}}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
}

func TestRestaurantValidate(t *testing.T) {
	valid := Restaurant{Name: "Campus Café", SectionID: "section-1", Location: Location{Address: "Quad"}}
	assert.NoError(t, valid.Validate())

	noLocation := valid
	noLocation.Location = Location{}
	assert.ErrorIs(t, noLocation.Validate(), ErrValidation)

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), ErrValidation)
}

func TestFoodPatchPreservesUnspecifiedFields(t *testing.T) {
	original := food("food-1")
	name := "Caesar Salad"
	sodium := 600.0

	updated := FoodPatch{Name: &name, Sodium: &sodium}.Apply(original)

	assert.Equal(t, "food-1", updated.ID)
	assert.Equal(t, "Caesar Salad", updated.Name)
	assert.Equal(t, 600.0, updated.Sodium)
	assert.Equal(t, original.Calories, updated.Calories)
	assert.Equal(t, original.RestaurantID, updated.RestaurantID)
}

func TestFoodValidateRejectsNegativeNutrition(t *testing.T) {
	f := food("food-1")
	f.Sugar = -1

	err := f.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "sugar", verr.Field)
}

func TestMenuItemNutrition(t *testing.T) {
	flat := MenuItem{
		Foods:         []MenuItemFood{mf("food-1", 2)},
		PossibleFoods: []MenuItemFood{mf("food-2", 1)},
	}
	n := flat.Nutrition()
	assert.Equal(t, 200.0, n.Defaults.Calories)
	assert.Equal(t, 20.0, n.Defaults.Protein)
	assert.Equal(t, 100.0, n.AddOns.Calories)
	assert.Empty(t, n.Sizes)

	sized := MenuItem{Sizes: []MenuItemSize{
		{Name: "Regular", Foods: []MenuItemFood{mf("food-4", 2)}},
		{Name: "Family", Foods: []MenuItemFood{mf("food-4", 4), mf("food-5", 2)}},
	}}
	n = sized.Nutrition()
	require.Len(t, n.Sizes, 2)
	assert.Equal(t, "Family", n.Sizes[1].Size)
	assert.Equal(t, 600.0, n.Sizes[1].Defaults.Calories)
	assert.Equal(t, 4, sized.FoodCount())
}

func TestTransportErrorClassification(t *testing.T) {
	notFound := &TransportError{Method: "GET", Path: "/campus/foods/x", Status: http.StatusNotFound, Body: "missing"}
	assert.ErrorIs(t, notFound, ErrTransport)
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.NotErrorIs(t, notFound, ErrConflict)

	status, apiErr := APIErrorFor(notFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, ErrCodeNotFound, apiErr.Code)

	status, apiErr = APIErrorFor(&TransportError{Method: "POST", Path: "/x", Status: http.StatusInternalServerError})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, ErrCodeBadGateway, apiErr.Code)
}

func TestMenuItemCloneSharesNoLists(t *testing.T) {
	item := MenuItem{
		ID:            "menu-1",
		Foods:         []MenuItemFood{mf("food-1", 1)},
		PossibleFoods: []MenuItemFood{mf("food-2", 1)},
		Sizes: []MenuItemSize{
			{Name: "Regular", Foods: []MenuItemFood{mf("food-4", 2)}, PossibleFoods: []MenuItemFood{mf("food-5", 1)}},
		},
	}
	clone := item.Clone()
	require.Equal(t, item, clone)

	clone.Foods[0].Quantity = 0
	clone.PossibleFoods[0].Food.Name = "changed"
	clone.Sizes[0].Name = "Family"
	clone.Sizes[0].Foods[0].Quantity = 9
	clone.Sizes[0].PossibleFoods = append(clone.Sizes[0].PossibleFoods[:0], mf("food-6", 1))

	assert.Equal(t, 1, item.Foods[0].Quantity)
	assert.Equal(t, "food-2", item.PossibleFoods[0].Food.Name)
	assert.Equal(t, "Regular", item.Sizes[0].Name)
	assert.Equal(t, 2, item.Sizes[0].Foods[0].Quantity)
	assert.Equal(t, "food-5", item.Sizes[0].PossibleFoods[0].Food.ID)

	var empty MenuItem
	assert.Equal(t, empty, empty.Clone())
}
