package utils

import "github.com/google/uuid"

// UUIDGenerator issues notification identifiers. Version 7 ids are
// time-ordered, which keeps scheduler registrations sortable by creation
// time; the random v4 form is only a fallback when v7 generation fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new id string.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
