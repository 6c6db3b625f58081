// file: internals/features/sessions/schedules/dto/weekly_schedule_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "tutorku_backend/internals/features/sessions/schedules/model"
)

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

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Create: class_id is forced from the path by the controller.
// DayOfWeek is a pointer so 0 (Sunday) survives the required check.
type CreateWeeklyScheduleRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,min=0,max=6"`
	StartTime string `json:"start_time"  validate:"required"` // "HH:MM", parsed by the expander helpers
	EndTime   string `json:"end_time"    validate:"required"`

	IsActive   *bool   `json:"is_active"   validate:"omitempty"`
	Mode       *string `json:"mode"        validate:"omitempty,oneof=ONLINE OFFLINE"`
	Location   *string `json:"location"    validate:"omitempty,max=500"`
	OnlineLink *string `json:"online_link" validate:"omitempty,max=500"`
}

func (r CreateWeeklyScheduleRequest) ToModel(classID uuid.UUID) model.WeeklyScheduleModel {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	mode := model.MeetingOffline
	if r.Mode != nil {
		mode = model.MeetingMode(strings.ToUpper(strings.TrimSpace(*r.Mode)))
	}

	return model.WeeklyScheduleModel{
		WeeklyScheduleClassID:    classID,
		WeeklyScheduleDayOfWeek:  *r.DayOfWeek,
		WeeklyScheduleStartTime:  strings.TrimSpace(r.StartTime),
		WeeklyScheduleEndTime:    strings.TrimSpace(r.EndTime),
		WeeklyScheduleIsActive:   isActive,
		WeeklyScheduleMode:       mode,
		WeeklyScheduleLocation:   trimPtr(r.Location),
		WeeklyScheduleOnlineLink: trimPtr(r.OnlineLink),
	}
}

// Update (partial)
type UpdateWeeklyScheduleRequest struct {
	DayOfWeek  *int    `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	StartTime  *string `json:"start_time"  validate:"omitempty"`
	EndTime    *string `json:"end_time"    validate:"omitempty"`
	IsActive   *bool   `json:"is_active"   validate:"omitempty"`
	Mode       *string `json:"mode"        validate:"omitempty,oneof=ONLINE OFFLINE"`
	Location   *string `json:"location"    validate:"omitempty,max=500"`
	OnlineLink *string `json:"online_link" validate:"omitempty,max=500"`
}

// Apply mutates only the fields present in the request. Existing sessions
// are never retro-adjusted; the next expansion picks the change up.
func (r UpdateWeeklyScheduleRequest) Apply(m *model.WeeklyScheduleModel) {
	if r.DayOfWeek != nil {
		m.WeeklyScheduleDayOfWeek = *r.DayOfWeek
	}
	if r.StartTime != nil {
		m.WeeklyScheduleStartTime = strings.TrimSpace(*r.StartTime)
	}
	if r.EndTime != nil {
		m.WeeklyScheduleEndTime = strings.TrimSpace(*r.EndTime)
	}
	if r.IsActive != nil {
		m.WeeklyScheduleIsActive = *r.IsActive
	}
	if r.Mode != nil {
		m.WeeklyScheduleMode = model.MeetingMode(strings.ToUpper(strings.TrimSpace(*r.Mode)))
	}
	if r.Location != nil {
		m.WeeklyScheduleLocation = trimPtr(r.Location)
	}
	if r.OnlineLink != nil {
		m.WeeklyScheduleOnlineLink = trimPtr(r.OnlineLink)
	}
}
