package models

import (
	"time"
)

// SessionState represents the lifecycle phase of a tracked session
type SessionState string

const (
	// SessionStateLobby indicates the remote lobby is open and members talk freely
	SessionStateLobby SessionState = "lobby"

	// SessionStatePlaying indicates a round is running its task phase
	SessionStatePlaying SessionState = "playing"

	// SessionStateDiscussing indicates a round is paused for discussion
	SessionStateDiscussing SessionState = "discussing"
)

// InGame reports whether a round is currently running
func (s SessionState) InGame() bool {
	return s == SessionStatePlaying || s == SessionStateDiscussing
}

// Region identifies the remote lobby's server region
type Region string

const (
	RegionEurope       Region = "eu"
	RegionNorthAmerica Region = "na"
	RegionAsia         Region = "as"
)

// Session represents one tracked remote lobby, tied to a status message and a
// set of voice channels it owns
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// GuildID is the Discord server this session belongs to
	GuildID string

	// TextChannelID is the text channel the session was started from; status
	// and notice messages go there
	TextChannelID string

	// StatusMessageID is the message that is rewritten on every state change
	StatusMessageID string

	// OwnerName is the display name of the user who started the session
	OwnerName string

	// State is the current lifecycle phase
	State SessionState

	// Region is the remote lobby's server region
	Region Region

	// LobbyCode is the 6-letter join code, stored upper-case
	LobbyCode string

	// Channels are the voice channels owned by this session
	Channels []*SessionChannel

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

// Channel returns the session's channel of the given type, or nil if none
// exists yet. For admin silence channels, which may occur more than once, use
// ChannelsOfType.
func (s *Session) Channel(t ChannelType) *SessionChannel {
	for _, ch := range s.Channels {
		if ch.Type == t {
			return ch
		}
	}
	return nil
}

// ChannelsOfType returns every channel of the given type.
func (s *Session) ChannelsOfType(t ChannelType) []*SessionChannel {
	var out []*SessionChannel
	for _, ch := range s.Channels {
		if ch.Type == t {
			out = append(out, ch)
		}
	}
	return out
}

// SilenceChannelIDs returns the IDs of the shared silence channel and every
// admin silence channel.
func (s *Session) SilenceChannelIDs() []string {
	var ids []string
	for _, ch := range s.Channels {
		if ch.Type == ChannelTypeSilence || ch.Type == ChannelTypeAdminSilence {
			ids = append(ids, ch.ChannelID)
		}
	}
	return ids
}

// OwnsChannel reports whether the given voice channel belongs to this session.
func (s *Session) OwnsChannel(channelID string) bool {
	for _, ch := range s.Channels {
		if ch.ChannelID == channelID {
			return true
		}
	}
	return false
}
