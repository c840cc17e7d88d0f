// Package codec converts menu items between the rich in-memory shape and the
// flattened shape persisted by both backends.
//
// The persisted shape has no sizes: a sized item stores every size's foods in
// possibleFoods, each row tagged with the size name. Rows tagged with a size
// but not optional are that size's default foods; rows flagged optional are
// its add-ons. Untagged possibleFoods rows are the add-ons of a flat item.
package codec

import (
	"fmt"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
)

// FlatFood is one persisted row: a food id, its multiplier, and the size tag
// and add-on flag used to simulate sizes.
type FlatFood struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// FlatMenuItem is the shape sent to the backend on create and update.
type FlatMenuItem struct {
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name"`
	RestaurantID  string     `json:"restaurantId,omitempty"`
	Foods         []FlatFood `json:"foods"`
	PossibleFoods []FlatFood `json:"possibleFoods"`
}

// RawFood is one row as returned by the backend, with the full Food embedded.
type RawFood struct {
	Food     models.Food `json:"food"`
	Quantity int         `json:"quantity"`
	Size     string      `json:"size,omitempty"`
	Optional bool        `json:"optional,omitempty"`
}

// RawMenuItem is the canonical flattened menu item produced by Normalize.
type RawMenuItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	RestaurantID  string    `json:"restaurantId"`
	Foods         []RawFood `json:"foods"`
	PossibleFoods []RawFood `json:"possibleFoods"`

	// Unresolved lists food ids of id-only rows the lookup could not find.
	// Those rows are dropped.
	Unresolved []string `json:"-"`
}

// row is the common intermediate of Encode and EncodeRaw.
type row struct {
	entry    models.MenuItemFood
	size     string
	optional bool
}

type rowKey struct {
	size     string
	foodID   string
	optional bool
}

// flatten produces the default rows and the possibleFoods rows of item.
// Sized items contribute no default rows. Flat add-ons come first, followed
// by each size's defaults and add-ons in size order.
func flatten(item models.MenuItem) ([]row, []row, error) {
	var defaults []row
	if !item.IsSized() {
		seen := make(map[string]bool, len(item.Foods))
		for _, mf := range item.Foods {
			if err := checkEntry("foods", mf); err != nil {
				return nil, nil, err
			}
			if seen[mf.Food.ID] {
				return nil, nil, models.NewValidationError("foods", fmt.Sprintf("food %q is listed twice", mf.Food.ID))
			}
			seen[mf.Food.ID] = true
			defaults = append(defaults, row{entry: mf})
		}
	}

	possible := make([]row, 0, len(item.PossibleFoods))
	for _, mf := range item.PossibleFoods {
		possible = append(possible, row{entry: mf, optional: true})
	}
	for _, s := range item.Sizes {
		if s.Name == "" {
			return nil, nil, models.NewValidationError("sizes", "size name is required")
		}
		for _, mf := range s.Foods {
			possible = append(possible, row{entry: mf, size: s.Name})
		}
		for _, mf := range s.PossibleFoods {
			possible = append(possible, row{entry: mf, size: s.Name, optional: true})
		}
	}

	keys := make(map[rowKey]bool, len(possible))
	for _, r := range possible {
		if err := checkEntry("possibleFoods", r.entry); err != nil {
			return nil, nil, err
		}
		k := rowKey{size: r.size, foodID: r.entry.Food.ID, optional: r.optional}
		if keys[k] {
			return nil, nil, models.NewValidationError("possibleFoods",
				fmt.Sprintf("duplicate row for food %q (size %q, optional %t)", k.foodID, k.size, k.optional))
		}
		keys[k] = true
	}
	return defaults, possible, nil
}

func checkEntry(field string, mf models.MenuItemFood) error {
	if mf.Food.ID == "" {
		return models.NewValidationError(field, "food reference is missing an id")
	}
	if mf.Quantity < 1 {
		return models.NewValidationError(field, fmt.Sprintf("quantity for food %q must be at least 1, got %d", mf.Food.ID, mf.Quantity))
	}
	return nil
}

// Encode converts item to the id-only flat shape sent to the backend.
// Quantities below 1 and duplicate (size, food, optional) rows are rejected.
func Encode(item models.MenuItem) (FlatMenuItem, error) {
	defaults, possible, err := flatten(item)
	if err != nil {
		return FlatMenuItem{}, err
	}
	out := FlatMenuItem{
		ID:            item.ID,
		Name:          item.Name,
		RestaurantID:  item.RestaurantID,
		Foods:         make([]FlatFood, 0, len(defaults)),
		PossibleFoods: make([]FlatFood, 0, len(possible)),
	}
	for _, r := range defaults {
		out.Foods = append(out.Foods, FlatFood{FoodID: r.entry.Food.ID, Quantity: r.entry.Quantity})
	}
	for _, r := range possible {
		out.PossibleFoods = append(out.PossibleFoods, FlatFood{
			FoodID:   r.entry.Food.ID,
			Quantity: r.entry.Quantity,
			Size:     r.size,
			Optional: r.optional,
		})
	}
	return out, nil
}

// EncodeRaw converts item to the flattened shape with full Food records,
// which is what the backend returns on reads.
func EncodeRaw(item models.MenuItem) (RawMenuItem, error) {
	defaults, possible, err := flatten(item)
	if err != nil {
		return RawMenuItem{}, err
	}
	out := RawMenuItem{
		ID:            item.ID,
		Name:          item.Name,
		RestaurantID:  item.RestaurantID,
		Foods:         make([]RawFood, 0, len(defaults)),
		PossibleFoods: make([]RawFood, 0, len(possible)),
	}
	for _, r := range defaults {
		out.Foods = append(out.Foods, RawFood{Food: r.entry.Food, Quantity: r.entry.Quantity})
	}
	for _, r := range possible {
		out.PossibleFoods = append(out.PossibleFoods, RawFood{
			Food:     r.entry.Food,
			Quantity: r.entry.Quantity,
			Size:     r.size,
			Optional: r.optional,
		})
	}
	return out, nil
}

// Decode rebuilds the rich MenuItem from a canonical flattened record.
// Sizes appear in the order their name is first seen among tagged rows, and a
// size exists as soon as any row carries its name.
func Decode(raw RawMenuItem) models.MenuItem {
	item := models.MenuItem{
		ID:            raw.ID,
		Name:          raw.Name,
		RestaurantID:  raw.RestaurantID,
		Foods:         make([]models.MenuItemFood, 0, len(raw.Foods)),
		PossibleFoods: []models.MenuItemFood{},
		Sizes:         []models.MenuItemSize{},
	}
	for _, r := range raw.Foods {
		item.Foods = append(item.Foods, r.menuItemFood())
	}

	index := make(map[string]int)
	for _, r := range raw.PossibleFoods {
		if r.Size == "" {
			item.PossibleFoods = append(item.PossibleFoods, r.menuItemFood())
			continue
		}
		i, ok := index[r.Size]
		if !ok {
			i = len(item.Sizes)
			index[r.Size] = i
			item.Sizes = append(item.Sizes, models.MenuItemSize{
				Name:          r.Size,
				Foods:         []models.MenuItemFood{},
				PossibleFoods: []models.MenuItemFood{},
			})
		}
		if r.Optional {
			item.Sizes[i].PossibleFoods = append(item.Sizes[i].PossibleFoods, r.menuItemFood())
		} else {
			item.Sizes[i].Foods = append(item.Sizes[i].Foods, r.menuItemFood())
		}
	}
	return item
}

func (r RawFood) menuItemFood() models.MenuItemFood {
	q := r.Quantity
	if q < 1 {
		q = 1
	}
	return models.MenuItemFood{Food: r.Food, Quantity: q}
}
