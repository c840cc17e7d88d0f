package models

import "strings"

// Restaurant is a dining location belonging to one Section
type Restaurant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SectionID string   `json:"sectionId"`
	Location  Location `json:"location"`
}

// RestaurantPatch carries the fields to change on a Restaurant; nil means unchanged.
type RestaurantPatch struct {
	Name      *string   `json:"name,omitempty"`
	SectionID *string   `json:"sectionId,omitempty"`
	Location  *Location `json:"location,omitempty"`
}

// Apply merges the patch into r, keeping the id.
func (p RestaurantPatch) Apply(r Restaurant) Restaurant {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.SectionID != nil {
		r.SectionID = *p.SectionID
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	return r
}

// Validate checks the Restaurant invariants that do not need other collections.
// The section reference is checked by the store.
func (r Restaurant) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "restaurant name is required")
	}
	if strings.TrimSpace(r.SectionID) == "" {
		return NewValidationError("sectionId", "section is required")
	}
	if !IsValidLocation(r.Location) {
		return NewValidationError("location", "an address or coordinates are required")
	}
	return nil
}
