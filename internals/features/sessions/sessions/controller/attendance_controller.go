// file: internals/features/sessions/sessions/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "tutorku_backend/internals/features/classes/classes/model"
	sessDTO "tutorku_backend/internals/features/sessions/sessions/dto"
	sessModel "tutorku_backend/internals/features/sessions/sessions/model"
	"tutorku_backend/internals/features/sessions/sessions/service"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ===============================
// Helpers
// ===============================

// Resolve tutor + class + session from the path and verify the chain of
// ownership (tutor owns class, session belongs to class) in one place.
func (ctl *AttendanceController) resolveSession(c *fiber.Ctx) (*sessModel.TeachingSessionModel, error) {
	tutorID, err := helperAuth.GetTutorID(c)
	if err != nil {
		return nil, err
	}
	classID, perr := uuid.Parse(c.Params("class_id"))
	if perr != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "class_id invalid")
	}
	sessionID, perr := uuid.Parse(c.Params("session_id"))
	if perr != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "session_id invalid")
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_tutor_user_id = ?", classID, tutorID).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "class not found or not yours")
	}

	var sess sessModel.TeachingSessionModel
	err = ctl.DB.WithContext(c.Context()).
		Where("teaching_session_id = ? AND teaching_session_class_id = ?", sessionID, classID).
		Take(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &sess, nil
}

// ===============================
// Handlers
// ===============================

// PUT /api/t/classes/:class_id/sessions/:session_id/students/:student_id/attendance
// Upsert on (session, student): marking twice keeps a single row with
// the latest status/note and a fresh marked_at.
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	sess, err := ctl.resolveSession(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	studentID, perr := uuid.Parse(c.Params("student_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
	}

	var req sessDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "status invalid (ATTENDED or ABSENT)")
	}

	now := time.Now()
	var note *string
	if req.Note != nil {
		if v := strings.TrimSpace(*req.Note); v != "" {
			note = &v
		}
	}
	row := sessModel.AttendanceModel{
		AttendanceSessionID:     sess.TeachingSessionID,
		AttendanceStudentUserID: studentID,
		AttendanceStatus:        sessModel.AttendanceStatus(strings.ToUpper(req.Status)),
		AttendanceMarkedAt:      &now,
		AttendanceNote:          note,
	}

	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_session_id"},
				{Name: "attendance_student_user_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_status",
				"attendance_note",
				"attendance_marked_at",
				"attendance_updated_at",
			}),
		}).
		Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Return the canonical row (the upsert may have kept the original PK).
	var saved sessModel.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_session_id = ? AND attendance_student_user_id = ?", sess.TeachingSessionID, studentID).
		Take(&saved).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "attendance marked", saved)
}

// GET /api/t/classes/:class_id/sessions/:session_id/attendance
func (ctl *AttendanceController) ListBySession(c *fiber.Ctx) error {
	sess, err := ctl.resolveSession(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var rows []sessModel.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_session_id = ?", sess.TeachingSessionID).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "attendance fetched", fiber.Map{
		"total": len(rows),
		"items": rows,
	})
}

// GET /api/t/classes/:class_id/sessions/:session_id/students/:student_id/attendance
func (ctl *AttendanceController) GetForStudent(c *fiber.Ctx) error {
	sess, err := ctl.resolveSession(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	studentID, perr := uuid.Parse(c.Params("student_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
	}

	var row sessModel.AttendanceModel
	derr := ctl.DB.WithContext(c.Context()).
		Where("attendance_session_id = ? AND attendance_student_user_id = ?", sess.TeachingSessionID, studentID).
		Take(&row).Error
	if errors.Is(derr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "no attendance record for this student in this session")
	}
	if derr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, derr.Error())
	}

	return helper.JsonOK(c, "attendance fetched", row)
}

// DELETE /api/t/classes/:class_id/sessions/:session_id/students/:student_id/attendance
// Manual reset path; the row is not resurrected automatically.
func (ctl *AttendanceController) DeleteForStudent(c *fiber.Ctx) error {
	sess, err := ctl.resolveSession(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	studentID, perr := uuid.Parse(c.Params("student_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("attendance_session_id = ? AND attendance_student_user_id = ?", sess.TeachingSessionID, studentID).
		Delete(&sessModel.AttendanceModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}

	return helper.JsonDeleted(c, "attendance deleted", fiber.Map{
		"session_id":      sess.TeachingSessionID,
		"student_user_id": studentID,
	})
}

// POST /api/t/classes/:class_id/sessions/:session_id/attendance/resync
// Opt-in roster resync: back-fills placeholders for students who joined
// after the session was generated; never removes rows for leavers.
func (ctl *AttendanceController) Resync(c *fiber.Ctx) error {
	sess, err := ctl.resolveSession(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	seeder := service.AttendanceSeeder{DB: ctl.DB}
	created, serr := seeder.SeedForSession(c.Context(), sess.TeachingSessionID)
	if serr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, serr.Error())
	}

	return helper.JsonOK(c, "attendance resynced", fiber.Map{
		"created_count": created,
	})
}
