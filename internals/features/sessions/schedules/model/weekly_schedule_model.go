// file: internals/features/sessions/schedules/model/weekly_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingMode string

const (
	MeetingOnline  MeetingMode = "ONLINE"
	MeetingOffline MeetingMode = "OFFLINE"
)

/* =========================
   Model: WeeklyScheduleModel
========================= */

// WeeklyScheduleModel is one recurring weekly slot for a class, e.g.
// "every Tuesday 18:00-20:00". A class may carry several of them
// (Tue+Thu). Day-of-week convention: 0=Sunday .. 6=Saturday.
type WeeklyScheduleModel struct {
	// PK
	WeeklyScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:weekly_schedule_id" json:"weekly_schedule_id"`

	WeeklyScheduleClassID uuid.UUID `gorm:"type:uuid;not null;column:weekly_schedule_class_id;index:idx_weekly_schedules_class_dow,priority:1" json:"weekly_schedule_class_id"`

	// Recurrence rule
	WeeklyScheduleDayOfWeek int    `gorm:"not null;column:weekly_schedule_day_of_week;index:idx_weekly_schedules_class_dow,priority:2" json:"weekly_schedule_day_of_week"` // 0..6, 0=Sunday
	WeeklyScheduleStartTime string `gorm:"type:varchar(8);not null;column:weekly_schedule_start_time" json:"weekly_schedule_start_time"`                                  // "HH:MM"
	WeeklyScheduleEndTime   string `gorm:"type:varchar(8);not null;column:weekly_schedule_end_time" json:"weekly_schedule_end_time"`                                      // "HH:MM"

	WeeklyScheduleIsActive bool `gorm:"not null;default:true;column:weekly_schedule_is_active" json:"weekly_schedule_is_active"`

	// Meeting defaults stamped onto generated sessions
	WeeklyScheduleMode       MeetingMode `gorm:"type:varchar(8);not null;default:'OFFLINE';column:weekly_schedule_mode" json:"weekly_schedule_mode"`
	WeeklyScheduleLocation   *string     `gorm:"type:text;column:weekly_schedule_location" json:"weekly_schedule_location,omitempty"`
	WeeklyScheduleOnlineLink *string     `gorm:"type:text;column:weekly_schedule_online_link" json:"weekly_schedule_online_link,omitempty"`

	WeeklyScheduleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:weekly_schedule_created_at" json:"weekly_schedule_created_at"`
	WeeklyScheduleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:weekly_schedule_updated_at" json:"weekly_schedule_updated_at"`
	WeeklyScheduleDeletedAt gorm.DeletedAt `gorm:"column:weekly_schedule_deleted_at;index" json:"weekly_schedule_deleted_at,omitempty"`
}

func (WeeklyScheduleModel) TableName() string { return "weekly_schedules" }

func (m *WeeklyScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeeklyScheduleID == uuid.Nil {
		m.WeeklyScheduleID = uuid.New()
	}
	return nil
}
