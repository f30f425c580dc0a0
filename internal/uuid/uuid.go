// Package uuid is a thin generator wrapper that allows mocking IDs in tests.
package uuid

import "github.com/google/uuid"

// Generator is an interface for generating unique IDs
type Generator interface {
	New() string
}

type googleGenerator struct{}

// NewGenerator returns a Generator backed by google/uuid
func NewGenerator() Generator {
	return googleGenerator{}
}

// New generates a new UUID string
func (googleGenerator) New() string {
	return uuid.NewString()
}
