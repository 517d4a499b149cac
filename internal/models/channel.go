package models

// ChannelType classifies the role a voice channel plays within a session
type ChannelType string

const (
	// ChannelTypeCategory is the parent category grouping the session's channels
	ChannelTypeCategory ChannelType = "category"

	// ChannelTypeTalking is the open channel members occupy between rounds
	ChannelTypeTalking ChannelType = "talking"

	// ChannelTypeSilence is the shared channel members wait in during a round
	ChannelTypeSilence ChannelType = "silence"

	// ChannelTypeAdminSilence is a private silence channel holding a single
	// administrator; administrators bypass channel mutes, so each one waits
	// out the round alone
	ChannelTypeAdminSilence ChannelType = "admin_silence"
)

// SessionChannel is a voice channel created for and owned by a session
type SessionChannel struct {
	// ChannelID is the Discord channel ID
	ChannelID string

	// Type is the channel's role within the session
	Type ChannelType

	// InviteCode is the invite used to join; only talking channels carry one
	InviteCode string
}
