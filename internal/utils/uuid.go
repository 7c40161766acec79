package utils

import "github.com/google/uuid"

// SerialGenerator produces fresh spool serials. UUIDv7 keeps serials
// time-sortable while remaining globally unique across devices that
// generate records offline.
type SerialGenerator struct {
}

func NewSerialGenerator() *SerialGenerator {
	return &SerialGenerator{}
}

func (g *SerialGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
