package models

import "github.com/google/uuid"

// NewID returns a fresh opaque entity id
func NewID() string {
	return uuid.New().String()
}
