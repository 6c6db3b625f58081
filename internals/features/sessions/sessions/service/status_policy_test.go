// file: internals/features/sessions/sessions/service/status_policy_test.go
package service

import (
	"testing"

	sessModel "tutorku_backend/internals/features/sessions/sessions/model"
)

func TestAllowAllPolicy(t *testing.T) {
	statuses := []sessModel.SessionStatus{
		sessModel.SessionPlanned,
		sessModel.SessionCompleted,
		sessModel.SessionCancelled,
		sessModel.SessionRescheduled,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			if err := AllowAllPolicy(from, to); err != nil {
				t.Errorf("AllowAllPolicy(%s, %s) = %v, want nil", from, to, err)
			}
		}
	}
}

func TestTerminalStatusPolicy(t *testing.T) {
	tests := []struct {
		name    string
		from    sessModel.SessionStatus
		to      sessModel.SessionStatus
		wantErr bool
	}{
		{"planned to completed", sessModel.SessionPlanned, sessModel.SessionCompleted, false},
		{"planned to cancelled", sessModel.SessionPlanned, sessModel.SessionCancelled, false},
		{"planned to rescheduled", sessModel.SessionPlanned, sessModel.SessionRescheduled, false},
		{"rescheduled to completed", sessModel.SessionRescheduled, sessModel.SessionCompleted, false},
		{"completed stays completed", sessModel.SessionCompleted, sessModel.SessionCompleted, false},
		{"cancelled stays cancelled", sessModel.SessionCancelled, sessModel.SessionCancelled, false},
		{"completed to planned", sessModel.SessionCompleted, sessModel.SessionPlanned, true},
		{"completed to cancelled", sessModel.SessionCompleted, sessModel.SessionCancelled, true},
		{"cancelled to planned", sessModel.SessionCancelled, sessModel.SessionPlanned, true},
		{"cancelled to rescheduled", sessModel.SessionCancelled, sessModel.SessionRescheduled, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TerminalStatusPolicy(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("TerminalStatusPolicy(%s, %s) = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestPolicyFromName(t *testing.T) {
	// Only the policy names themselves are observable, so probe each
	// returned func with a transition the two policies disagree on.
	probe := func(p StatusPolicy) bool {
		return p(sessModel.SessionCompleted, sessModel.SessionPlanned) == nil
	}

	if !probe(PolicyFromName("")) {
		t.Error(`PolicyFromName(""): want allow-all`)
	}
	if !probe(PolicyFromName("allow-all")) {
		t.Error(`PolicyFromName("allow-all"): want allow-all`)
	}
	if !probe(PolicyFromName("nonsense")) {
		t.Error(`PolicyFromName("nonsense"): want allow-all fallback`)
	}
	if probe(PolicyFromName("terminal")) {
		t.Error(`PolicyFromName("terminal"): want terminal policy`)
	}
}
