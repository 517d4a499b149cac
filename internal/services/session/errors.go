package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  SessionError = "session not found"
	ErrChannelsExist    SessionError = "session channels already created"
	ErrChannelsNotReady SessionError = "session voice channels have not been created"
	ErrUnknownPhase     SessionError = "unknown game phase"
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilRepository    SessionError = "session repository cannot be nil"
	ErrNilPlatform      SessionError = "platform client cannot be nil"
	ErrNilIndex         SessionError = "voice index cannot be nil"
	ErrNilAdminChecker  SessionError = "admin checker cannot be nil"
)
