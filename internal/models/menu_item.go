package models

import (
	"fmt"
	"slices"
	"strings"
)

// MenuItemFood references a Food by full object plus a multiplier.
type MenuItemFood struct {
	Food     Food `json:"food"`
	Quantity int  `json:"quantity"`
}

// MenuItemSize is a named size variant with its own default and add-on foods.
type MenuItemSize struct {
	Name          string         `json:"name"`
	Foods         []MenuItemFood `json:"foods"`
	PossibleFoods []MenuItemFood `json:"possibleFoods"`
}

// MenuItem is a purchasable combination of Foods.
// It is either flat (Sizes empty, Foods non-empty) or sized (Sizes non-empty,
// top-level Foods and PossibleFoods empty).
type MenuItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	RestaurantID  string         `json:"restaurantId"`
	Foods         []MenuItemFood `json:"foods"`
	PossibleFoods []MenuItemFood `json:"possibleFoods"`
	Sizes         []MenuItemSize `json:"sizes"`
}

// MenuItemPatch carries the fields to change on a MenuItem; nil means unchanged.
type MenuItemPatch struct {
	Name          *string         `json:"name,omitempty"`
	RestaurantID  *string         `json:"restaurantId,omitempty"`
	Foods         *[]MenuItemFood `json:"foods,omitempty"`
	PossibleFoods *[]MenuItemFood `json:"possibleFoods,omitempty"`
	Sizes         *[]MenuItemSize `json:"sizes,omitempty"`
}

// Apply merges the patch into m, keeping the id.
func (p MenuItemPatch) Apply(m MenuItem) MenuItem {
	setString(&m.Name, p.Name)
	setString(&m.RestaurantID, p.RestaurantID)
	if p.Foods != nil {
		m.Foods = *p.Foods
	}
	if p.PossibleFoods != nil {
		m.PossibleFoods = *p.PossibleFoods
	}
	if p.Sizes != nil {
		m.Sizes = *p.Sizes
	}
	return m
}

// IsSized reports whether the item is in sized mode
func (m MenuItem) IsSized() bool {
	return len(m.Sizes) > 0
}

// FoodCount is the number of food entries shown for the item, add-ons included.
func (m MenuItem) FoodCount() int {
	if m.IsSized() {
		n := 0
		for _, s := range m.Sizes {
			n += len(s.Foods) + len(s.PossibleFoods)
		}
		return n
	}
	return len(m.Foods) + len(m.PossibleFoods)
}

// Normalized returns a copy whose nil lists are empty, so the item renders
// and compares the same regardless of how it was loaded.
func (m MenuItem) Normalized() MenuItem {
	if m.Foods == nil {
		m.Foods = []MenuItemFood{}
	}
	if m.PossibleFoods == nil {
		m.PossibleFoods = []MenuItemFood{}
	}
	if m.Sizes == nil {
		m.Sizes = []MenuItemSize{}
	}
	sizes := make([]MenuItemSize, len(m.Sizes))
	for i, s := range m.Sizes {
		if s.Foods == nil {
			s.Foods = []MenuItemFood{}
		}
		if s.PossibleFoods == nil {
			s.PossibleFoods = []MenuItemFood{}
		}
		sizes[i] = s
	}
	m.Sizes = sizes
	return m
}

// Clone returns a deep copy that shares no list with m.
func (m MenuItem) Clone() MenuItem {
	m.Foods = slices.Clone(m.Foods)
	m.PossibleFoods = slices.Clone(m.PossibleFoods)
	if m.Sizes != nil {
		sizes := make([]MenuItemSize, len(m.Sizes))
		for i, s := range m.Sizes {
			s.Foods = slices.Clone(s.Foods)
			s.PossibleFoods = slices.Clone(s.PossibleFoods)
			sizes[i] = s
		}
		m.Sizes = sizes
	}
	return m
}

// CloneMenuItems deep-copies every item in items.
func CloneMenuItems(items []MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// IsValidMenuItem is true if the item is in exactly one mode and no food is
// both a default and an add-on at the same scope.
func IsValidMenuItem(item MenuItem) bool {
	return validateComposition(item) == nil
}

// Validate checks name, restaurant and composition invariants
func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return NewValidationError("name", "menu item name is required")
	}
	if strings.TrimSpace(m.RestaurantID) == "" {
		return NewValidationError("restaurantId", "restaurant is required")
	}
	return validateComposition(m)
}

func validateComposition(m MenuItem) error {
	if !m.IsSized() {
		if len(m.Foods) == 0 {
			return NewValidationError("foods", "please select at least one default food item")
		}
		return validateScope("", m.Foods, m.PossibleFoods)
	}
	if len(m.Foods) > 0 || len(m.PossibleFoods) > 0 {
		return NewValidationError("foods", "a sized menu item keeps its foods inside each size")
	}
	seen := make(map[string]bool, len(m.Sizes))
	for i, s := range m.Sizes {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return NewValidationError(fmt.Sprintf("sizes[%d].name", i), "size name is required")
		}
		if seen[s.Name] {
			return NewValidationError(fmt.Sprintf("sizes[%d].name", i), fmt.Sprintf("duplicate size %q", s.Name))
		}
		seen[s.Name] = true
		if len(s.Foods) == 0 {
			return NewValidationError(fmt.Sprintf("sizes[%d].foods", i), fmt.Sprintf("size %q needs at least one default food", s.Name))
		}
		if err := validateScope(fmt.Sprintf("sizes[%d].", i), s.Foods, s.PossibleFoods); err != nil {
			return err
		}
	}
	return nil
}

// validateScope checks one default/add-on pair: positive quantities, no
// repeated food within a list, and no food in both lists.
func validateScope(prefix string, foods, possible []MenuItemFood) error {
	defaults := make(map[string]bool, len(foods))
	for _, mf := range foods {
		if err := validateEntry(prefix+"foods", mf, defaults); err != nil {
			return err
		}
	}
	addOns := make(map[string]bool, len(possible))
	for _, mf := range possible {
		if err := validateEntry(prefix+"possibleFoods", mf, addOns); err != nil {
			return err
		}
		if defaults[mf.Food.ID] {
			return NewValidationError(prefix+"possibleFoods", fmt.Sprintf("food %q is already a default food", mf.Food.ID))
		}
	}
	return nil
}

func validateEntry(field string, mf MenuItemFood, seen map[string]bool) error {
	if mf.Food.ID == "" {
		return NewValidationError(field, "food reference is missing an id")
	}
	if mf.Quantity < 1 {
		return NewValidationError(field, fmt.Sprintf("quantity for food %q must be at least 1", mf.Food.ID))
	}
	if seen[mf.Food.ID] {
		return NewValidationError(field, fmt.Sprintf("food %q is listed twice", mf.Food.ID))
	}
	seen[mf.Food.ID] = true
	return nil
}
