package codec

import (
	"encoding/json"
	"fmt"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/tidwall/gjson"
)

// FoodLookup resolves a food id to its full record. It is used for rows that
// only carry a foodId, such as the ones the local store persists.
type FoodLookup func(id string) (models.Food, bool)

// Normalize reads a stored or received menu item in any known shape and
// returns the canonical flattened record. Accepted shapes:
//   - rows wrapping a full Food: {"food": {...}, "quantity": 2, "size": "Regular"}
//   - id-only rows: {"foodId": "food-4", "quantity": 2, "optional": true}, resolved with lookup
//   - bare Food records, which predate the wrapper and count as quantity 1
//   - a native "sizes" array, converted to size-tagged rows
//   - missing "possibleFoods" or "sizes" fields, treated as empty
//
// Quantities that are missing, non-numeric or below 1 become 1.
func Normalize(data []byte, lookup FoodLookup) (RawMenuItem, error) {
	if !gjson.ValidBytes(data) {
		return RawMenuItem{}, models.NewValidationError("menuItem", "stored menu item is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return RawMenuItem{}, models.NewValidationError("menuItem", "stored menu item is not an object")
	}
	return normalizeItem(doc, lookup)
}

// NormalizeList is Normalize for a JSON array of menu items.
func NormalizeList(data []byte, lookup FoodLookup) ([]RawMenuItem, error) {
	if !gjson.ValidBytes(data) {
		return nil, models.NewValidationError("menuItems", "stored menu items are not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if doc.Type == gjson.Null {
		return []RawMenuItem{}, nil
	}
	if !doc.IsArray() {
		return nil, models.NewValidationError("menuItems", "stored menu items are not a list")
	}
	items := make([]RawMenuItem, 0, len(doc.Array()))
	for i, entry := range doc.Array() {
		raw, err := normalizeItem(entry, lookup)
		if err != nil {
			return nil, fmt.Errorf("menu item %d: %w", i, err)
		}
		items = append(items, raw)
	}
	return items, nil
}

// Unmarshal normalizes and decodes a single menu item.
func Unmarshal(data []byte, lookup FoodLookup) (models.MenuItem, []string, error) {
	raw, err := Normalize(data, lookup)
	if err != nil {
		return models.MenuItem{}, nil, err
	}
	return Decode(raw), raw.Unresolved, nil
}

// UnmarshalList normalizes and decodes a list of menu items. The second
// result collects every unresolved food id.
func UnmarshalList(data []byte, lookup FoodLookup) ([]models.MenuItem, []string, error) {
	raws, err := NormalizeList(data, lookup)
	if err != nil {
		return nil, nil, err
	}
	items := make([]models.MenuItem, 0, len(raws))
	var unresolved []string
	for _, raw := range raws {
		items = append(items, Decode(raw))
		unresolved = append(unresolved, raw.Unresolved...)
	}
	return items, unresolved, nil
}

func normalizeItem(doc gjson.Result, lookup FoodLookup) (RawMenuItem, error) {
	raw := RawMenuItem{
		ID:            doc.Get("id").String(),
		Name:          doc.Get("name").String(),
		RestaurantID:  doc.Get("restaurantId").String(),
		Foods:         []RawFood{},
		PossibleFoods: []RawFood{},
	}

	err := eachRow(doc.Get("foods"), lookup, &raw, func(r RawFood, _ gjson.Result) {
		raw.Foods = append(raw.Foods, r)
	})
	if err != nil {
		return RawMenuItem{}, fmt.Errorf("foods: %w", err)
	}

	err = eachRow(doc.Get("possibleFoods"), lookup, &raw, func(r RawFood, entry gjson.Result) {
		r.Size = entry.Get("size").String()
		r.Optional = entry.Get("optional").Bool()
		raw.PossibleFoods = append(raw.PossibleFoods, r)
	})
	if err != nil {
		return RawMenuItem{}, fmt.Errorf("possibleFoods: %w", err)
	}

	sizes := doc.Get("sizes")
	if !sizes.IsArray() {
		return raw, nil
	}
	for _, size := range sizes.Array() {
		name := size.Get("name").String()
		if name == "" {
			continue
		}
		err = eachRow(size.Get("foods"), lookup, &raw, func(r RawFood, _ gjson.Result) {
			r.Size = name
			raw.PossibleFoods = append(raw.PossibleFoods, r)
		})
		if err != nil {
			return RawMenuItem{}, fmt.Errorf("size %q foods: %w", name, err)
		}
		err = eachRow(size.Get("possibleFoods"), lookup, &raw, func(r RawFood, _ gjson.Result) {
			r.Size = name
			r.Optional = true
			raw.PossibleFoods = append(raw.PossibleFoods, r)
		})
		if err != nil {
			return RawMenuItem{}, fmt.Errorf("size %q possibleFoods: %w", name, err)
		}
	}
	return raw, nil
}

// eachRow normalizes every entry of list and hands it to emit. Id-only rows
// the lookup cannot resolve are recorded on raw and skipped.
func eachRow(list gjson.Result, lookup FoodLookup, raw *RawMenuItem, emit func(RawFood, gjson.Result)) error {
	if !list.Exists() || list.Type == gjson.Null {
		return nil
	}
	if !list.IsArray() {
		return models.NewValidationError("foods", "food list is not an array")
	}
	for i, entry := range list.Array() {
		r, ok, err := normalizeRow(entry, lookup)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if !ok {
			raw.Unresolved = append(raw.Unresolved, entry.Get("foodId").String())
			continue
		}
		emit(r, entry)
	}
	return nil
}

func normalizeRow(entry gjson.Result, lookup FoodLookup) (RawFood, bool, error) {
	if !entry.IsObject() {
		return RawFood{}, false, models.NewValidationError("foods", "food row is not an object")
	}

	switch {
	case entry.Get("food").IsObject():
		var f models.Food
		if err := json.Unmarshal([]byte(entry.Get("food").Raw), &f); err != nil {
			return RawFood{}, false, fmt.Errorf("embedded food: %w", err)
		}
		return RawFood{Food: f, Quantity: quantityOf(entry.Get("quantity"))}, true, nil

	case entry.Get("foodId").Exists():
		if lookup == nil {
			return RawFood{}, false, nil
		}
		f, ok := lookup(entry.Get("foodId").String())
		if !ok {
			return RawFood{}, false, nil
		}
		return RawFood{Food: f, Quantity: quantityOf(entry.Get("quantity"))}, true, nil

	case entry.Get("id").Exists():
		// A bare Food record. Its own quantity field describes the food, not
		// the multiplier, so the multiplier is 1.
		var f models.Food
		if err := json.Unmarshal([]byte(entry.Raw), &f); err != nil {
			return RawFood{}, false, fmt.Errorf("legacy food: %w", err)
		}
		return RawFood{Food: f, Quantity: 1}, true, nil
	}
	return RawFood{}, false, models.NewValidationError("foods", "food row has neither food, foodId nor id")
}

func quantityOf(q gjson.Result) int {
	if q.Type != gjson.Number {
		return 1
	}
	n := q.Int()
	if n < 1 {
		return 1
	}
	return int(n)
}
