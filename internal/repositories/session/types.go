package session

import "github.com/crewcord/crewcord/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionByChannelInput struct {
	ChannelID string
}

type GetActiveSessionsInput struct {
}

type GetActiveSessionsOutput struct {
	Sessions []*models.Session
}

type DeleteSessionInput struct {
	SessionID string
}
