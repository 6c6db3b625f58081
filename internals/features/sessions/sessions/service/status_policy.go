// file: internals/features/sessions/sessions/service/status_policy.go
package service

import (
	"fmt"

	sessModel "tutorku_backend/internals/features/sessions/sessions/model"
)

// StatusPolicy decides whether a session status transition is allowed.
// The historical behavior is allow-all (any status overwrites any other);
// the terminal policy is the stricter opt-in selected via
// SESSION_STATUS_POLICY=terminal.
type StatusPolicy func(from, to sessModel.SessionStatus) error

// AllowAllPolicy: no transition table, matching the legacy behavior.
func AllowAllPolicy(from, to sessModel.SessionStatus) error { return nil }

// TerminalStatusPolicy rejects transitions out of COMPLETED or CANCELLED.
func TerminalStatusPolicy(from, to sessModel.SessionStatus) error {
	if from == to {
		return nil
	}
	switch from {
	case sessModel.SessionCompleted, sessModel.SessionCancelled:
		return fmt.Errorf("session is %s and cannot change to %s", from, to)
	}
	return nil
}

// PolicyFromName maps the configured policy name; unknown names fall
// back to allow-all.
func PolicyFromName(name string) StatusPolicy {
	if name == "terminal" {
		return TerminalStatusPolicy
	}
	return AllowAllPolicy
}
