// file: internals/features/sessions/sessions/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceAttended  AttendanceStatus = "ATTENDED"
	AttendanceAbsent    AttendanceStatus = "ABSENT"
	AttendanceNotMarked AttendanceStatus = "NOT_MARKED"
)

// AttendanceModel is one student's presence record for one session.
// Seeded NOT_MARKED for every student ACTIVE at session-creation time;
// unique per (session, student). Rows are not removed when the student
// later leaves the class and not back-filled when one joins later --
// the resync endpoint is the explicit opt-in for the latter.
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceSessionID     uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_id;uniqueIndex:uq_attendances_session_student,priority:1" json:"attendance_session_id"`
	AttendanceStudentUserID uuid.UUID `gorm:"type:uuid;not null;column:attendance_student_user_id;uniqueIndex:uq_attendances_session_student,priority:2;index:idx_attendances_student" json:"attendance_student_user_id"`

	AttendanceStatus AttendanceStatus `gorm:"type:varchar(16);not null;default:'NOT_MARKED';column:attendance_status" json:"attendance_status"`

	// Null until a tutor marks the row
	AttendanceMarkedAt *time.Time `gorm:"type:timestamptz;column:attendance_marked_at" json:"attendance_marked_at,omitempty"`
	AttendanceNote     *string    `gorm:"type:text;column:attendance_note" json:"attendance_note,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
