// file: internals/features/sessions/sessions/dto/session_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "tutorku_backend/internals/features/sessions/sessions/model"
)

/* =========================================================
   Helpers
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ParseTimestamp accepts RFC3339 or the local "YYYY-MM-DDTHH:MM" form the
// web client sends.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp: %q", s)
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateSessionRequest struct {
	StartAt string `json:"start_at" validate:"required"`
	EndAt   string `json:"end_at"   validate:"required"`

	Mode       *string `json:"mode"        validate:"omitempty,oneof=ONLINE OFFLINE"`
	Location   *string `json:"location"    validate:"omitempty,max=500"`
	OnlineLink *string `json:"online_link" validate:"omitempty,max=500"`
	Status     *string `json:"status"      validate:"omitempty,oneof=PLANNED COMPLETED CANCELLED RESCHEDULED"`
}

func (r CreateSessionRequest) ToModel(classID uuid.UUID, loc *time.Location) (model.TeachingSessionModel, error) {
	startAt, err := ParseTimestamp(r.StartAt, loc)
	if err != nil {
		return model.TeachingSessionModel{}, err
	}
	endAt, err := ParseTimestamp(r.EndAt, loc)
	if err != nil {
		return model.TeachingSessionModel{}, err
	}

	mode := model.MeetingOffline
	if r.Mode != nil {
		mode = model.MeetingMode(strings.ToUpper(strings.TrimSpace(*r.Mode)))
	}
	status := model.SessionPlanned
	if r.Status != nil {
		status = model.SessionStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
	}

	return model.TeachingSessionModel{
		TeachingSessionClassID:               classID,
		TeachingSessionStartAt:               startAt,
		TeachingSessionEndAt:                 endAt,
		TeachingSessionMode:                  mode,
		TeachingSessionLocation:              trimPtr(r.Location),
		TeachingSessionOnlineLink:            trimPtr(r.OnlineLink),
		TeachingSessionStatus:                status,
		TeachingSessionGeneratedFromSchedule: false,
	}, nil
}

type GenerateSessionsRequest struct {
	Weeks int `json:"weeks" validate:"omitempty,min=1,max=52"`
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PLANNED COMPLETED CANCELLED RESCHEDULED"`
}
