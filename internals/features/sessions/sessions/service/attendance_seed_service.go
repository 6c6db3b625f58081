// file: internals/features/sessions/sessions/service/attendance_seed_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	enrollModel "tutorku_backend/internals/features/classes/enrollments/model"
	sessModel "tutorku_backend/internals/features/sessions/sessions/model"
)

// AttendanceSeeder creates NOT_MARKED attendance placeholders for every
// student ACTIVE in the session's class at call time. Roster is read at
// session-creation (or explicit resync), not lazily on attendance reads,
// so opening a session always shows a pre-populated roster.
type AttendanceSeeder struct{ DB *gorm.DB }

// SeedForSession seeds the given session and reports how many rows were
// actually inserted. Existing (session, student) rows are skipped, which
// makes re-invocation a no-op -- this is also the resync operation for
// students who joined after the session was generated.
func (s *AttendanceSeeder) SeedForSession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var sess sessModel.TeachingSessionModel
	if err := s.DB.WithContext(ctx).
		Where("teaching_session_id = ?", sessionID).
		Take(&sess).Error; err != nil {
		return 0, err
	}
	return s.seedRows(ctx, sessionID, sess.TeachingSessionClassID, 500)
}

func (s *AttendanceSeeder) seedRows(ctx context.Context, sessionID, classID uuid.UUID, batchSize int) (int, error) {
	var studentIDs []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Model(&enrollModel.ClassEnrollmentModel{}).
		Where("class_enrollment_class_id = ? AND class_enrollment_status = ?", classID, enrollModel.EnrollmentActive).
		Pluck("class_enrollment_student_user_id", &studentIDs).Error; err != nil {
		return 0, err
	}
	if len(studentIDs) == 0 {
		return 0, nil
	}

	rows := make([]sessModel.AttendanceModel, 0, len(studentIDs))
	for _, sid := range studentIDs {
		rows = append(rows, sessModel.AttendanceModel{
			AttendanceSessionID:     sessionID,
			AttendanceStudentUserID: sid,
			AttendanceStatus:        sessModel.AttendanceNotMarked,
		})
	}

	// Duplicate (session, student) means already seeded: skip, don't fail,
	// and don't abort the rest of the batch.
	tx := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, batchSize)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(tx.RowsAffected), nil
}
