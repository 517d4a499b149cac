// Package admin decides which members must be isolated in private silence
// channels. Server administrators bypass channel permission denies, so parking
// them in the shared silence channel would let everyone in it hear them.
package admin

//go:generate mockgen -package=mocks -destination=mocks/mock_checker.go github.com/crewcord/crewcord/internal/admin Checker

// Checker reports whether a member is an administrator
type Checker interface {
	IsAdmin(memberID string) bool
}

// StaticChecker checks membership against a fixed set of member IDs
type StaticChecker struct {
	ids map[string]struct{}
}

// NewStatic builds a StaticChecker from a list of member IDs.
func NewStatic(memberIDs []string) *StaticChecker {
	ids := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		if id == "" {
			continue
		}
		ids[id] = struct{}{}
	}
	return &StaticChecker{ids: ids}
}

// IsAdmin reports whether the member ID is in the configured set.
func (c *StaticChecker) IsAdmin(memberID string) bool {
	_, ok := c.ids[memberID]
	return ok
}
