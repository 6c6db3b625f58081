// file: internals/features/classes/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums
========================= */

type MeetingMode string

const (
	MeetingOnline  MeetingMode = "ONLINE"
	MeetingOffline MeetingMode = "OFFLINE"
)

type ClassStatus string

const (
	ClassActive   ClassStatus = "ACTIVE"
	ClassArchived ClassStatus = "ARCHIVED"
)

/* =========================
   Model: ClassModel
========================= */

// ClassModel is the tutor-owned container every schedule, session and
// attendance row hangs off. Ownership is exactly one tutor.
type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	// Owner
	ClassTutorUserID uuid.UUID `gorm:"type:uuid;not null;column:class_tutor_user_id;index:idx_classes_tutor" json:"class_tutor_user_id"`

	ClassName  string  `gorm:"type:varchar(160);not null;column:class_name" json:"class_name"`
	ClassLevel *string `gorm:"type:varchar(80);column:class_level" json:"class_level,omitempty"`

	// Defaults copied onto manually created sessions
	ClassDefaultMode       MeetingMode `gorm:"type:varchar(8);not null;default:'OFFLINE';column:class_default_mode" json:"class_default_mode"`
	ClassDefaultLocation   *string     `gorm:"type:text;column:class_default_location" json:"class_default_location,omitempty"`
	ClassDefaultOnlineLink *string     `gorm:"type:text;column:class_default_online_link" json:"class_default_online_link,omitempty"`

	ClassStatus ClassStatus `gorm:"type:varchar(16);not null;default:'ACTIVE';column:class_status" json:"class_status"`

	// Validity window, both ends open-ended
	ClassStartDate *time.Time `gorm:"type:date;column:class_start_date" json:"class_start_date,omitempty"`
	ClassEndDate   *time.Time `gorm:"type:date;column:class_end_date" json:"class_end_date,omitempty"`

	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
