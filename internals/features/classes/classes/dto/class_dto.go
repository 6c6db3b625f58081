// file: internals/features/classes/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "tutorku_backend/internals/features/classes/classes/model"
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

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &t
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateClassRequest struct {
	Name  string  `json:"name"  validate:"required,max=160"`
	Level *string `json:"level" validate:"omitempty,max=80"`

	DefaultMode       *string `json:"default_mode"        validate:"omitempty,oneof=ONLINE OFFLINE"`
	DefaultLocation   *string `json:"default_location"    validate:"omitempty,max=500"`
	DefaultOnlineLink *string `json:"default_online_link" validate:"omitempty,max=500"`

	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateClassRequest) ToModel(tutorID uuid.UUID) model.ClassModel {
	mode := model.MeetingOffline
	if r.DefaultMode != nil {
		mode = model.MeetingMode(strings.ToUpper(strings.TrimSpace(*r.DefaultMode)))
	}

	return model.ClassModel{
		ClassTutorUserID:       tutorID,
		ClassName:              strings.TrimSpace(r.Name),
		ClassLevel:             trimPtr(r.Level),
		ClassDefaultMode:       mode,
		ClassDefaultLocation:   trimPtr(r.DefaultLocation),
		ClassDefaultOnlineLink: trimPtr(r.DefaultOnlineLink),
		ClassStatus:            model.ClassActive,
		ClassStartDate:         parseDatePtr(r.StartDate),
		ClassEndDate:           parseDatePtr(r.EndDate),
	}
}

// Update (partial)
type UpdateClassRequest struct {
	Name  *string `json:"name"  validate:"omitempty,max=160"`
	Level *string `json:"level" validate:"omitempty,max=80"`

	DefaultMode       *string `json:"default_mode"        validate:"omitempty,oneof=ONLINE OFFLINE"`
	DefaultLocation   *string `json:"default_location"    validate:"omitempty,max=500"`
	DefaultOnlineLink *string `json:"default_online_link" validate:"omitempty,max=500"`

	Status    *string `json:"status"     validate:"omitempty,oneof=ACTIVE ARCHIVED"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.Name != nil {
		m.ClassName = strings.TrimSpace(*r.Name)
	}
	if r.Level != nil {
		m.ClassLevel = trimPtr(r.Level)
	}
	if r.DefaultMode != nil {
		m.ClassDefaultMode = model.MeetingMode(strings.ToUpper(strings.TrimSpace(*r.DefaultMode)))
	}
	if r.DefaultLocation != nil {
		m.ClassDefaultLocation = trimPtr(r.DefaultLocation)
	}
	if r.DefaultOnlineLink != nil {
		m.ClassDefaultOnlineLink = trimPtr(r.DefaultOnlineLink)
	}
	if r.Status != nil {
		m.ClassStatus = model.ClassStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
	}
	if r.StartDate != nil {
		m.ClassStartDate = parseDatePtr(r.StartDate)
	}
	if r.EndDate != nil {
		m.ClassEndDate = parseDatePtr(r.EndDate)
	}
}
