// Package platform defines the narrow surface of the chat platform the
// session service consumes: status embeds, voice channel management and
// member moves. The Discord implementation lives in the handlers package.
package platform

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/crewcord/crewcord/internal/platform Client

import (
	"context"
)

// Client is the chat-platform contract
type Client interface {
	// SendStatusMessage posts a new embed status message and returns its ID
	SendStatusMessage(ctx context.Context, input *SendStatusMessageInput) (*SendStatusMessageOutput, error)

	// EditStatusMessage rewrites an existing status message embed
	EditStatusMessage(ctx context.Context, input *EditStatusMessageInput) error

	// SendNotice sends a plain text message to a channel
	SendNotice(ctx context.Context, input *SendNoticeInput) error

	// CreateCategory creates a category channel to group a session's voice channels
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error)

	// CreateVoiceChannel creates a voice channel, optionally denying view
	// and speak permissions for the guild's base role
	CreateVoiceChannel(ctx context.Context, input *CreateVoiceChannelInput) (*CreateVoiceChannelOutput, error)

	// CreateInvite creates an invite for a channel and returns its code
	CreateInvite(ctx context.Context, input *CreateInviteInput) (*CreateInviteOutput, error)

	// DeleteChannel deletes a channel
	DeleteChannel(ctx context.Context, input *DeleteChannelInput) error

	// MoveMember moves a guild member into a voice channel
	MoveMember(ctx context.Context, input *MoveMemberInput) error
}
