package models

// NutritionTotals aggregates nutrition across a list of menu item foods.
type NutritionTotals struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	SaturatedFat float64 `json:"saturatedFat"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	DietaryFiber float64 `json:"dietaryFiber"`
}

// SizeNutrition holds the totals for one size of a sized menu item
type SizeNutrition struct {
	Size     string          `json:"size"`
	Defaults NutritionTotals `json:"defaults"`
	AddOns   NutritionTotals `json:"addOns"`
}

// MenuItemNutrition is the nutrition summary of a menu item. Flat items fill
// Defaults and AddOns, sized items fill Sizes.
type MenuItemNutrition struct {
	Defaults NutritionTotals `json:"defaults"`
	AddOns   NutritionTotals `json:"addOns"`
	Sizes    []SizeNutrition `json:"sizes,omitempty"`
}

// TotalsFor sums each food's nutrition multiplied by its quantity
func TotalsFor(foods []MenuItemFood) NutritionTotals {
	var t NutritionTotals
	for _, mf := range foods {
		q := float64(mf.Quantity)
		t.Calories += mf.Food.Calories * q
		t.Protein += mf.Food.Protein * q
		t.Carbs += mf.Food.Carbs * q
		t.Fat += mf.Food.Fat * q
		t.SaturatedFat += mf.Food.SaturatedFat * q
		t.Sugar += mf.Food.Sugar * q
		t.Sodium += mf.Food.Sodium * q
		t.DietaryFiber += mf.Food.DietaryFiber * q
	}
	return t
}

// Nutrition summarizes the item in whichever mode it is in.
func (m MenuItem) Nutrition() MenuItemNutrition {
	if !m.IsSized() {
		return MenuItemNutrition{
			Defaults: TotalsFor(m.Foods),
			AddOns:   TotalsFor(m.PossibleFoods),
		}
	}
	out := MenuItemNutrition{Sizes: make([]SizeNutrition, 0, len(m.Sizes))}
	for _, s := range m.Sizes {
		out.Sizes = append(out.Sizes, SizeNutrition{
			Size:     s.Name,
			Defaults: TotalsFor(s.Foods),
			AddOns:   TotalsFor(s.PossibleFoods),
		})
	}
	return out
}
