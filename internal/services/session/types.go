package session

import (
	"github.com/crewcord/crewcord/internal/models"
)

// GamePhase is a phase notification reported by the remote game client
type GamePhase string

const (
	// PhaseLobby means the remote lobby is open between rounds
	PhaseLobby GamePhase = "lobby"

	// PhasePlaying means a round's task phase is running
	PhasePlaying GamePhase = "playing"

	// PhaseDiscussing means a round is paused for discussion
	PhaseDiscussing GamePhase = "discussing"

	// PhaseEnded means the remote lobby closed cleanly
	PhaseEnded GamePhase = "ended"

	// PhaseConnectionError means the remote game connection dropped
	PhaseConnectionError GamePhase = "connection_error"
)

// EndReason selects the terminal status variant shown when a session ends
type EndReason string

const (
	// EndReasonClosed is a clean end: the remote lobby closed
	EndReasonClosed EndReason = "closed"

	// EndReasonStale is an unclean end: the session's real state can no
	// longer be trusted (lost connection, restart)
	EndReasonStale EndReason = "stale"

	// EndReasonSetupFailed is an end caused by a failure while creating the
	// session's channels
	EndReasonSetupFailed EndReason = "setup_failed"
)

type CreateSessionInput struct {
	GuildID       string
	TextChannelID string
	OwnerName     string
	Region        models.Region
	LobbyCode     string
}

type CreateSessionOutput struct {
	Session *models.Session
}

type SetupChannelsInput struct {
	SessionID string
}

type SetupChannelsOutput struct {
	Session *models.Session
}

type HandlePhaseChangeInput struct {
	SessionID string
	Phase     GamePhase
}

type HandlePhaseChangeOutput struct {
	Session *models.Session
}

type EndSessionInput struct {
	SessionID string
	Reason    EndReason
}

type EndSessionOutput struct {
}

type HandleVoiceJoinInput struct {
	GuildID   string
	ChannelID string
	MemberID  string
}

type HandleVoiceJoinOutput struct {
	// Redirected is true when the member was pulled into a silence channel
	// because they joined the open channel mid-round
	Redirected bool
}

type HandleVoiceLeaveInput struct {
	ChannelID string
	MemberID  string
}

type HandleVoiceLeaveOutput struct {
}

type HandleVoiceMoveInput struct {
	GuildID       string
	FromChannelID string
	ToChannelID   string
	MemberID      string
}

type HandleVoiceMoveOutput struct {
	Redirected bool
}

type CleanupStaleSessionsInput struct {
}

type CleanupStaleSessionsOutput struct {
	// Cleaned is the number of sessions torn down
	Cleaned int
}
