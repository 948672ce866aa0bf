package utils

import "github.com/google/uuid"

// UUIDGenerator issues client-side identifiers. Version 7 UUIDs are time
// ordered, so records created later sort later in the local store.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
