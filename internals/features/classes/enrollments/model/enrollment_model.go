// file: internals/features/classes/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentActive EnrollmentStatus = "ACTIVE"
	EnrollmentLeft   EnrollmentStatus = "LEFT"
)

// ClassEnrollmentModel is the membership edge between a class and a
// student identity. At most one row per (class, student): re-joining
// reactivates the existing edge instead of inserting a second one, and
// the unique index is the race guard on first assignment.
type ClassEnrollmentModel struct {
	// PK
	ClassEnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_enrollment_id" json:"class_enrollment_id"`

	// Edge
	ClassEnrollmentClassID       uuid.UUID `gorm:"type:uuid;not null;column:class_enrollment_class_id;uniqueIndex:uq_class_enrollments_class_student,priority:1" json:"class_enrollment_class_id"`
	ClassEnrollmentStudentUserID uuid.UUID `gorm:"type:uuid;not null;column:class_enrollment_student_user_id;uniqueIndex:uq_class_enrollments_class_student,priority:2;index:idx_class_enrollments_student" json:"class_enrollment_student_user_id"`

	ClassEnrollmentStatus EnrollmentStatus `gorm:"type:varchar(8);not null;default:'ACTIVE';column:class_enrollment_status" json:"class_enrollment_status"`

	ClassEnrollmentJoinedAt time.Time  `gorm:"type:timestamptz;not null;default:now();column:class_enrollment_joined_at" json:"class_enrollment_joined_at"`
	ClassEnrollmentLeftAt   *time.Time `gorm:"type:timestamptz;column:class_enrollment_left_at" json:"class_enrollment_left_at,omitempty"`
}

func (ClassEnrollmentModel) TableName() string { return "class_enrollments" }

func (m *ClassEnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassEnrollmentID == uuid.Nil {
		m.ClassEnrollmentID = uuid.New()
	}
	if m.ClassEnrollmentJoinedAt.IsZero() {
		m.ClassEnrollmentJoinedAt = time.Now()
	}
	return nil
}
