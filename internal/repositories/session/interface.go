package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/crewcord/crewcord/internal/repositories/session Repository

import (
	"context"

	"github.com/crewcord/crewcord/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session together with its channel records
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionByChannel retrieves the session owning a voice channel
	GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*models.Session, error)

	// GetActiveSessions retrieves every persisted session
	GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error)

	// DeleteSession removes a session and its channel mappings
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
