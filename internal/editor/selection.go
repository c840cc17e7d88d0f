// Package editor holds the edit-time state of a menu item form: which foods
// are selected as defaults or add-ons, their quantities, and the sizes.
package editor

import (
	"fmt"
	"strings"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
)

// Selection tracks default and add-on foods for one scope (a flat menu item
// or one of its sizes). A food id is never in both sets.
type Selection struct {
	defaults selectionSet
	possible selectionSet
}

// selectionSet is an insertion-ordered map of food id to quantity.
type selectionSet struct {
	order      []string
	quantities map[string]int
}

func (s *selectionSet) has(id string) bool {
	_, ok := s.quantities[id]
	return ok
}

func (s *selectionSet) set(id string, qty int) {
	if s.quantities == nil {
		s.quantities = make(map[string]int)
	}
	if !s.has(id) {
		s.order = append(s.order, id)
	}
	s.quantities[id] = qty
}

func (s *selectionSet) remove(id string) {
	if !s.has(id) {
		return
	}
	delete(s.quantities, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *selectionSet) ids() []string {
	return append([]string(nil), s.order...)
}

// NewSelection seeds a selection from existing lists, as when editing a saved item.
func NewSelection(foods, possibleFoods []models.MenuItemFood) *Selection {
	sel := &Selection{}
	for _, mf := range foods {
		sel.defaults.set(mf.Food.ID, clamp(mf.Quantity))
	}
	for _, mf := range possibleFoods {
		if sel.defaults.has(mf.Food.ID) {
			continue
		}
		sel.possible.set(mf.Food.ID, clamp(mf.Quantity))
	}
	return sel
}

// ToggleFood selects id as a default food with quantity 1, removing it from
// the add-ons, or deselects it if it already is a default.
func (s *Selection) ToggleFood(id string) {
	if s.defaults.has(id) {
		s.defaults.remove(id)
		return
	}
	s.defaults.set(id, 1)
	s.possible.remove(id)
}

// TogglePossibleFood selects id as an add-on with quantity 1, removing it
// from the defaults, or deselects it if it already is an add-on.
func (s *Selection) TogglePossibleFood(id string) {
	if s.possible.has(id) {
		s.possible.remove(id)
		return
	}
	s.possible.set(id, 1)
	s.defaults.remove(id)
}

// SetFoodQuantity updates a selected default food; quantities below 1 become 1.
func (s *Selection) SetFoodQuantity(id string, qty int) {
	if s.defaults.has(id) {
		s.defaults.set(id, clamp(qty))
	}
}

// SetPossibleFoodQuantity updates a selected add-on; quantities below 1 become 1.
func (s *Selection) SetPossibleFoodQuantity(id string, qty int) {
	if s.possible.has(id) {
		s.possible.set(id, clamp(qty))
	}
}

// IsFoodSelected reports whether id is a default food
func (s *Selection) IsFoodSelected(id string) bool { return s.defaults.has(id) }

// IsPossibleFoodSelected reports whether id is an add-on
func (s *Selection) IsPossibleFoodSelected(id string) bool { return s.possible.has(id) }

// FoodIDs lists the default food ids in selection order
func (s *Selection) FoodIDs() []string { return s.defaults.ids() }

// PossibleFoodIDs lists the add-on food ids in selection order
func (s *Selection) PossibleFoodIDs() []string { return s.possible.ids() }

// Build resolves the selected ids into full food references.
func (s *Selection) Build(lookup func(id string) (models.Food, bool)) ([]models.MenuItemFood, []models.MenuItemFood, error) {
	foods, err := resolve(s.defaults, lookup)
	if err != nil {
		return nil, nil, err
	}
	possible, err := resolve(s.possible, lookup)
	if err != nil {
		return nil, nil, err
	}
	return foods, possible, nil
}

func resolve(set selectionSet, lookup func(id string) (models.Food, bool)) ([]models.MenuItemFood, error) {
	out := make([]models.MenuItemFood, 0, len(set.order))
	for _, id := range set.order {
		f, ok := lookup(id)
		if !ok {
			return nil, models.NotFoundf("food", id)
		}
		out = append(out, models.MenuItemFood{Food: f, Quantity: set.quantities[id]})
	}
	return out, nil
}

func clamp(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}

// SizeDraft is one named size being edited
type SizeDraft struct {
	Name      string
	Selection *Selection
}

// Draft is the full edit state of a menu item form.
type Draft struct {
	Name         string
	RestaurantID string
	Selection    *Selection
	Sizes        []*SizeDraft
}

// NewDraft starts an empty draft for a restaurant
func NewDraft(restaurantID string) *Draft {
	return &Draft{RestaurantID: restaurantID, Selection: &Selection{}}
}

// DraftFrom seeds a draft from a saved menu item.
func DraftFrom(item models.MenuItem) *Draft {
	d := &Draft{
		Name:         item.Name,
		RestaurantID: item.RestaurantID,
		Selection:    NewSelection(item.Foods, item.PossibleFoods),
	}
	for _, s := range item.Sizes {
		d.Sizes = append(d.Sizes, &SizeDraft{Name: s.Name, Selection: NewSelection(s.Foods, s.PossibleFoods)})
	}
	return d
}

// AddSize appends an empty size and returns it
func (d *Draft) AddSize(name string) *SizeDraft {
	sd := &SizeDraft{Name: name, Selection: &Selection{}}
	d.Sizes = append(d.Sizes, sd)
	return sd
}

// RemoveSize drops the size at index i
func (d *Draft) RemoveSize(i int) {
	if i < 0 || i >= len(d.Sizes) {
		return
	}
	d.Sizes = append(d.Sizes[:i], d.Sizes[i+1:]...)
}

// Build produces the menu item described by the draft. A draft with sizes
// yields a sized item and ignores the top-level selection.
func (d *Draft) Build(lookup func(id string) (models.Food, bool)) (models.MenuItem, error) {
	item := models.MenuItem{
		Name:          strings.TrimSpace(d.Name),
		RestaurantID:  d.RestaurantID,
		Foods:         []models.MenuItemFood{},
		PossibleFoods: []models.MenuItemFood{},
		Sizes:         []models.MenuItemSize{},
	}
	if len(d.Sizes) == 0 {
		foods, possible, err := d.Selection.Build(lookup)
		if err != nil {
			return models.MenuItem{}, err
		}
		item.Foods, item.PossibleFoods = foods, possible
		return item, item.Validate()
	}
	for i, sd := range d.Sizes {
		foods, possible, err := sd.Selection.Build(lookup)
		if err != nil {
			return models.MenuItem{}, fmt.Errorf("size %d: %w", i, err)
		}
		item.Sizes = append(item.Sizes, models.MenuItemSize{
			Name:          strings.TrimSpace(sd.Name),
			Foods:         foods,
			PossibleFoods: possible,
		})
	}
	return item, item.Validate()
}
