package model

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier. IDs are assigned once at
// creation and never change afterwards.
func NewID() string {
	return uuid.NewString()
}
