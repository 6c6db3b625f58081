// file: internals/features/sessions/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums
========================= */

type SessionStatus string

const (
	SessionPlanned     SessionStatus = "PLANNED"
	SessionCompleted   SessionStatus = "COMPLETED"
	SessionCancelled   SessionStatus = "CANCELLED"
	SessionRescheduled SessionStatus = "RESCHEDULED"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionPlanned, SessionCompleted, SessionCancelled, SessionRescheduled:
		return true
	}
	return false
}

type MeetingMode string

const (
	MeetingOnline  MeetingMode = "ONLINE"
	MeetingOffline MeetingMode = "OFFLINE"
)

/* =========================
   Model: TeachingSessionModel
========================= */

// TeachingSessionModel is one concrete dated occurrence of a class
// meeting, either created manually or expanded from a weekly schedule.
// (class_id, start_at) is unique: expansion relies on that index plus
// ON CONFLICT DO NOTHING to stay idempotent under concurrent runs.
// Rows are hard-deleted so a removed occurrence can be regenerated.
type TeachingSessionModel struct {
	// PK
	TeachingSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teaching_session_id" json:"teaching_session_id"`

	TeachingSessionClassID uuid.UUID `gorm:"type:uuid;not null;column:teaching_session_class_id;uniqueIndex:uq_teaching_sessions_class_start,priority:1" json:"teaching_session_class_id"`

	// Originating schedule; nil for manual sessions
	TeachingSessionScheduleID *uuid.UUID `gorm:"type:uuid;column:teaching_session_schedule_id;index:idx_teaching_sessions_schedule" json:"teaching_session_schedule_id,omitempty"`

	// Occurrence
	TeachingSessionStartAt time.Time `gorm:"type:timestamptz;not null;column:teaching_session_start_at;uniqueIndex:uq_teaching_sessions_class_start,priority:2" json:"teaching_session_start_at"`
	TeachingSessionEndAt   time.Time `gorm:"type:timestamptz;not null;column:teaching_session_end_at" json:"teaching_session_end_at"`

	// Meeting info, may override the schedule defaults
	TeachingSessionMode       MeetingMode `gorm:"type:varchar(8);not null;default:'OFFLINE';column:teaching_session_mode" json:"teaching_session_mode"`
	TeachingSessionLocation   *string     `gorm:"type:text;column:teaching_session_location" json:"teaching_session_location,omitempty"`
	TeachingSessionOnlineLink *string     `gorm:"type:text;column:teaching_session_online_link" json:"teaching_session_online_link,omitempty"`

	// Lifecycle
	TeachingSessionStatus                SessionStatus `gorm:"type:varchar(16);not null;default:'PLANNED';column:teaching_session_status;index:idx_teaching_sessions_status" json:"teaching_session_status"`
	TeachingSessionGeneratedFromSchedule bool          `gorm:"not null;default:false;column:teaching_session_generated_from_schedule" json:"teaching_session_generated_from_schedule"`

	// Snapshot of the schedule rule at generation time
	TeachingSessionScheduleSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:teaching_session_schedule_snapshot" json:"teaching_session_schedule_snapshot,omitempty"`

	TeachingSessionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:teaching_session_created_at" json:"teaching_session_created_at"`
	TeachingSessionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:teaching_session_updated_at" json:"teaching_session_updated_at"`
}

func (TeachingSessionModel) TableName() string { return "teaching_sessions" }

func (m *TeachingSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeachingSessionID == uuid.Nil {
		m.TeachingSessionID = uuid.New()
	}
	return nil
}
