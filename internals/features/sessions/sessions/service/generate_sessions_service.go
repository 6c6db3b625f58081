// file: internals/features/sessions/sessions/service/generate_sessions_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	schedModel "tutorku_backend/internals/features/sessions/schedules/model"
	sessModel "tutorku_backend/internals/features/sessions/sessions/model"
	"tutorku_backend/internals/configs"
)

/* =========================
   Generator + Options
========================= */

type Generator struct{ DB *gorm.DB }

type GenerateOptions struct {
	// Weeks is the expansion horizon; <=0 falls back to the configured
	// default. Callers should treat it as a tunable, not a constant.
	Weeks int
	// Now anchors week zero; zero value means time.Now(). Injected so
	// expansion is deterministic under test.
	Now       time.Time
	TZName    string
	BatchSize int
}

func (o *GenerateOptions) withDefaults() GenerateOptions {
	out := GenerateOptions{}
	if o != nil {
		out = *o
	}
	if out.Weeks <= 0 {
		out.Weeks = configs.GenerateWeeksDefault
		if out.Weeks <= 0 {
			out.Weeks = 4
		}
	}
	if out.Now.IsZero() {
		out.Now = time.Now()
	}
	if out.TZName == "" {
		out.TZName = configs.GetEnv("APP_TZ", "Asia/Jakarta")
	}
	if out.BatchSize <= 0 {
		out.BatchSize = 500
	}
	return out
}

/* =========================
   Public API
========================= */

// GenerateForClass expands every active weekly schedule of the class over
// the horizon and seeds attendance for each newly created session.
// Idempotent: re-running with the same horizon creates nothing; growing
// the horizon only adds the new weeks. Safe under concurrent invocation
// via the (class_id, start_at) unique index + ON CONFLICT DO NOTHING.
func (g *Generator) GenerateForClass(ctx context.Context, classID uuid.UUID, opts *GenerateOptions) ([]sessModel.TeachingSessionModel, error) {
	o := opts.withDefaults()

	loc, err := time.LoadLocation(o.TZName)
	if err != nil {
		loc = time.FixedZone(o.TZName, 7*3600)
	}

	// 1) Active schedules
	var schedules []schedModel.WeeklyScheduleModel
	if err := g.DB.WithContext(ctx).
		Where("weekly_schedule_class_id = ? AND weekly_schedule_is_active = TRUE", classID).
		Order("weekly_schedule_day_of_week, weekly_schedule_start_time").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, ErrNoActiveSchedule
	}

	// 2) Plan the horizon from this week's Monday
	anchor := MondayOfWeek(o.Now.In(loc))
	planned, err := PlanOccurrences(schedules, anchor, o.Weeks)
	if err != nil {
		return nil, err
	}

	// 3) Drop occurrences that already exist (fast path; the unique index
	// still guards the race below)
	starts := make([]time.Time, 0, len(planned))
	for _, p := range planned {
		starts = append(starts, p.StartAt)
	}
	var existing []time.Time
	if err := g.DB.WithContext(ctx).
		Model(&sessModel.TeachingSessionModel{}).
		Where("teaching_session_class_id = ? AND teaching_session_start_at IN ?", classID, starts).
		Pluck("teaching_session_start_at", &existing).Error; err != nil {
		return nil, err
	}
	taken := make(map[int64]struct{}, len(existing))
	for _, t := range existing {
		taken[t.UnixNano()] = struct{}{}
	}

	rows := make([]sessModel.TeachingSessionModel, 0, len(planned))
	newStarts := make([]time.Time, 0, len(planned))
	for _, p := range planned {
		if _, ok := taken[p.StartAt.UnixNano()]; ok {
			continue
		}
		sid := p.Schedule.WeeklyScheduleID
		rows = append(rows, sessModel.TeachingSessionModel{
			TeachingSessionClassID:               classID,
			TeachingSessionScheduleID:            &sid,
			TeachingSessionStartAt:               p.StartAt,
			TeachingSessionEndAt:                 p.EndAt,
			TeachingSessionMode:                  sessModel.MeetingMode(p.Schedule.WeeklyScheduleMode),
			TeachingSessionLocation:              p.Schedule.WeeklyScheduleLocation,
			TeachingSessionOnlineLink:            p.Schedule.WeeklyScheduleOnlineLink,
			TeachingSessionStatus:                sessModel.SessionPlanned,
			TeachingSessionGeneratedFromSchedule: true,
			TeachingSessionScheduleSnapshot:      buildScheduleSnapshot(p.Schedule),
		})
		newStarts = append(newStarts, p.StartAt)
	}
	if len(rows) == 0 {
		return []sessModel.TeachingSessionModel{}, nil
	}

	// 4) Idempotent insert (batched); a concurrent generator losing the
	// race is a skip, not an error
	if err := g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, o.BatchSize).Error; err != nil {
		return nil, err
	}

	// 5) Re-fetch the canonical rows for the planned slots; whoever won
	// the insert, these are the sessions that need an attendance roster
	var created []sessModel.TeachingSessionModel
	if err := g.DB.WithContext(ctx).
		Where("teaching_session_class_id = ? AND teaching_session_start_at IN ?", classID, newStarts).
		Order("teaching_session_start_at ASC").
		Find(&created).Error; err != nil {
		return nil, err
	}

	// 6) Seed attendance placeholders from the live roster
	seeder := AttendanceSeeder{DB: g.DB}
	for i := range created {
		if _, err := seeder.seedRows(ctx, created[i].TeachingSessionID, classID, o.BatchSize); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func buildScheduleSnapshot(s *schedModel.WeeklyScheduleModel) datatypes.JSONMap {
	out := datatypes.JSONMap{
		"weekly_schedule_id": s.WeeklyScheduleID.String(),
		"day_of_week":        s.WeeklyScheduleDayOfWeek,
		"start_time":         s.WeeklyScheduleStartTime,
		"end_time":           s.WeeklyScheduleEndTime,
		"mode":               string(s.WeeklyScheduleMode),
	}
	if s.WeeklyScheduleLocation != nil && *s.WeeklyScheduleLocation != "" {
		out["location"] = *s.WeeklyScheduleLocation
	}
	if s.WeeklyScheduleOnlineLink != nil && *s.WeeklyScheduleOnlineLink != "" {
		out["online_link"] = *s.WeeklyScheduleOnlineLink
	}
	return out
}
