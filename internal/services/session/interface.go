package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/crewcord/crewcord/internal/services/session Service

import "context"

// Service defines the interface for session lifecycle operations
type Service interface {
	// CreateSession records a new lobby session and posts its status message
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// SetupChannels creates the session's category, talking and silence channels
	SetupChannels(ctx context.Context, input *SetupChannelsInput) (*SetupChannelsOutput, error)

	// HandlePhaseChange applies a remote game phase to the session: the new
	// state is persisted, members are reconciled, the status message updated
	HandlePhaseChange(ctx context.Context, input *HandlePhaseChangeInput) (*HandlePhaseChangeOutput, error)

	// EndSession tears the session down: channels deleted, status message
	// rewritten to a terminal variant, record removed
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// HandleVoiceJoin records a member joining a voice channel, redirecting
	// mid-round joiners out of the open channel
	HandleVoiceJoin(ctx context.Context, input *HandleVoiceJoinInput) (*HandleVoiceJoinOutput, error)

	// HandleVoiceLeave records a member leaving a voice channel
	HandleVoiceLeave(ctx context.Context, input *HandleVoiceLeaveInput) (*HandleVoiceLeaveOutput, error)

	// HandleVoiceMove records a member switching voice channels
	HandleVoiceMove(ctx context.Context, input *HandleVoiceMoveInput) (*HandleVoiceMoveOutput, error)

	// CleanupStaleSessions tears down every persisted session; called once at
	// startup, when no channel occupancy can be trusted
	CleanupStaleSessions(ctx context.Context, input *CleanupStaleSessionsInput) (*CleanupStaleSessionsOutput, error)
}
