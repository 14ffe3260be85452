package state

import "errors"

var (
	// ErrNoSession is returned when a mutation or read is attempted before
	// StartSession or after EndSession.
	ErrNoSession = errors.New("no active session")
	// ErrTeamNotFound signals an update or delete on an unknown team id.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTaskNotFound signals an update or delete on an unknown task id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrMeetingNotFound signals an update or delete on an unknown meeting id.
	ErrMeetingNotFound = errors.New("meeting not found")
)
