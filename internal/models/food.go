package models

import (
	"fmt"
	"strings"
)

// Food is a single nutrition-tracked item belonging to one Restaurant.
// Energy is in kcal, masses in g except sodium, cholesterol, calcium and iron in mg.
type Food struct {
	ID              string  `json:"id"`
	RestaurantID    string  `json:"restaurantId"`
	Name            string  `json:"name"`
	ServingSize     string  `json:"servingSize"`
	Ingredients     string  `json:"ingredients"`
	Quantity        float64 `json:"quantity"`
	Calories        float64 `json:"calories"`
	CaloriesFromFat float64 `json:"caloriesFromFat"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
	SaturatedFat    float64 `json:"saturatedFat"`
	Sugar           float64 `json:"sugar"`
	AddedSugars     float64 `json:"addedSugars"`
	Sodium          float64 `json:"sodium"`
	DietaryFiber    float64 `json:"dietaryFiber"`
	Cholesterol     float64 `json:"cholesterol"`
	Calcium         float64 `json:"calcium"`
	Iron            float64 `json:"iron"`
}

// FoodPatch carries the fields to change on a Food; nil means unchanged.
type FoodPatch struct {
	RestaurantID    *string  `json:"restaurantId,omitempty"`
	Name            *string  `json:"name,omitempty"`
	ServingSize     *string  `json:"servingSize,omitempty"`
	Ingredients     *string  `json:"ingredients,omitempty"`
	Quantity        *float64 `json:"quantity,omitempty"`
	Calories        *float64 `json:"calories,omitempty"`
	CaloriesFromFat *float64 `json:"caloriesFromFat,omitempty"`
	Protein         *float64 `json:"protein,omitempty"`
	Carbs           *float64 `json:"carbs,omitempty"`
	Fat             *float64 `json:"fat,omitempty"`
	SaturatedFat    *float64 `json:"saturatedFat,omitempty"`
	Sugar           *float64 `json:"sugar,omitempty"`
	AddedSugars     *float64 `json:"addedSugars,omitempty"`
	Sodium          *float64 `json:"sodium,omitempty"`
	DietaryFiber    *float64 `json:"dietaryFiber,omitempty"`
	Cholesterol     *float64 `json:"cholesterol,omitempty"`
	Calcium         *float64 `json:"calcium,omitempty"`
	Iron            *float64 `json:"iron,omitempty"`
}

// Apply merges the patch into f, keeping the id.
func (p FoodPatch) Apply(f Food) Food {
	setString(&f.RestaurantID, p.RestaurantID)
	setString(&f.Name, p.Name)
	setString(&f.ServingSize, p.ServingSize)
	setString(&f.Ingredients, p.Ingredients)
	for _, field := range []struct {
		dst *float64
		src *float64
	}{
		{&f.Quantity, p.Quantity},
		{&f.Calories, p.Calories},
		{&f.CaloriesFromFat, p.CaloriesFromFat},
		{&f.Protein, p.Protein},
		{&f.Carbs, p.Carbs},
		{&f.Fat, p.Fat},
		{&f.SaturatedFat, p.SaturatedFat},
		{&f.Sugar, p.Sugar},
		{&f.AddedSugars, p.AddedSugars},
		{&f.Sodium, p.Sodium},
		{&f.DietaryFiber, p.DietaryFiber},
		{&f.Cholesterol, p.Cholesterol},
		{&f.Calcium, p.Calcium},
		{&f.Iron, p.Iron},
	} {
		if field.src != nil {
			*field.dst = *field.src
		}
	}
	return f
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// nutrients lists the magnitudes that must never be negative, keyed by their JSON name.
func (f Food) nutrients() []struct {
	name  string
	value float64
} {
	return []struct {
		name  string
		value float64
	}{
		{"quantity", f.Quantity},
		{"calories", f.Calories},
		{"caloriesFromFat", f.CaloriesFromFat},
		{"protein", f.Protein},
		{"carbs", f.Carbs},
		{"fat", f.Fat},
		{"saturatedFat", f.SaturatedFat},
		{"sugar", f.Sugar},
		{"addedSugars", f.AddedSugars},
		{"sodium", f.Sodium},
		{"dietaryFiber", f.DietaryFiber},
		{"cholesterol", f.Cholesterol},
		{"calcium", f.Calcium},
		{"iron", f.Iron},
	}
}

// Validate checks the Food invariants. The restaurant reference is checked by the store.
func (f Food) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return NewValidationError("name", "food name is required")
	}
	if strings.TrimSpace(f.RestaurantID) == "" {
		return NewValidationError("restaurantId", "restaurant is required")
	}
	for _, n := range f.nutrients() {
		if n.value < 0 {
			return NewValidationError(n.name, fmt.Sprintf("must not be negative, got %g", n.value))
		}
	}
	return nil
}
