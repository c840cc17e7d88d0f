package models

import "strings"

// Section is a named campus zone grouping restaurants
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SectionPatch carries the fields to change on a Section; nil means unchanged.
type SectionPatch struct {
	Name *string `json:"name,omitempty"`
}

// Apply merges the patch into s, keeping the id.
func (p SectionPatch) Apply(s Section) Section {
	if p.Name != nil {
		s.Name = *p.Name
	}
	return s
}

// Validate checks the Section invariants
func (s Section) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name", "section name is required")
	}
	return nil
}
