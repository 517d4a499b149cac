package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/crewcord/crewcord/internal/common/uuid Generator

// Generator produces unique identifiers
type Generator interface {
	NewID() string
}

// Random implements Generator with random UUIDs
type Random struct{}

// NewRandom returns a Generator backed by random UUIDs
func NewRandom() *Random {
	return &Random{}
}

// NewID returns a new random identifier
func (g *Random) NewID() string {
	return uuid.New().String()
}
