package roster

import "errors"

// Errors returned by roster store operations. All of them are recoverable:
// callers surface them as user-facing messages and no state change occurs.
var (
	// ErrDuplicateName signals a create/update whose trimmed, case-folded
	// name collides with another team.
	ErrDuplicateName = errors.New("team name must be unique")

	// ErrPlayerAssigned signals an assignment of a player already indexed
	// to a different team. The existing assignment is never overwritten.
	ErrPlayerAssigned = errors.New("player is already assigned to another team")

	// ErrTeamNotFound signals an operation against an unknown team id.
	ErrTeamNotFound = errors.New("team not found")
)
