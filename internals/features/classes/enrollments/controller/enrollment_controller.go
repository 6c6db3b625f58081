// file: internals/features/classes/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "tutorku_backend/internals/features/classes/classes/model"
	enrollDTO "tutorku_backend/internals/features/classes/enrollments/dto"
	enrollModel "tutorku_backend/internals/features/classes/enrollments/model"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

func (ctl *EnrollmentController) parseCtxIDs(c *fiber.Ctx) (tutorID, classID uuid.UUID, err error) {
	tutorID, err = helperAuth.GetTutorID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	classID, perr := uuid.Parse(c.Params("class_id"))
	if perr != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "class_id invalid")
	}
	return tutorID, classID, nil
}

func (ctl *EnrollmentController) ensureClassOwned(c *fiber.Ctx, classID, tutorID uuid.UUID) error {
	var n int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_tutor_user_id = ?", classID, tutorID).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "class not found or not yours")
	}
	return nil
}

// ===============================
// Handlers
// ===============================

// POST /api/t/classes/:class_id/students
// Three outcomes on one (class, student) edge:
//   - no row       → insert ACTIVE
//   - row LEFT     → reactivate in place (joined_at refreshed, left_at cleared)
//   - row ACTIVE   → 409
//
// Concurrent first-assign races resolve at the unique index; a losing
// insert is reported as the same 409.
func (ctl *EnrollmentController) Assign(c *fiber.Ctx) error {
	tutorID, classID, err := ctl.parseCtxIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var req enrollDTO.AssignStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, perr := uuid.Parse(req.StudentUserID)
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_user_id invalid")
	}

	var existing enrollModel.ClassEnrollmentModel
	ferr := ctl.DB.WithContext(c.Context()).
		Where("class_enrollment_class_id = ? AND class_enrollment_student_user_id = ?", classID, studentID).
		Take(&existing).Error

	switch {
	case ferr == nil && existing.ClassEnrollmentStatus == enrollModel.EnrollmentActive:
		return helper.JsonError(c, fiber.StatusConflict, "student already enrolled in this class")

	case ferr == nil:
		// LEFT edge: rejoin reuses the row.
		now := time.Now()
		existing.ClassEnrollmentStatus = enrollModel.EnrollmentActive
		existing.ClassEnrollmentJoinedAt = now
		existing.ClassEnrollmentLeftAt = nil
		if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "student re-enrolled", existing)

	case errors.Is(ferr, gorm.ErrRecordNotFound):
		row := enrollModel.ClassEnrollmentModel{
			ClassEnrollmentClassID:       classID,
			ClassEnrollmentStudentUserID: studentID,
			ClassEnrollmentStatus:        enrollModel.EnrollmentActive,
			ClassEnrollmentJoinedAt:      time.Now(),
		}
		if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
			if isDuplicateKey(err) {
				return helper.JsonError(c, fiber.StatusConflict, "student already enrolled in this class")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "student enrolled", row)

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, ferr.Error())
	}
}

// GET /api/t/classes/:class_id/students
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	tutorID, classID, err := ctl.parseCtxIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).
		Model(&enrollModel.ClassEnrollmentModel{}).
		Where("class_enrollment_class_id = ?", classID)

	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		if status != string(enrollModel.EnrollmentActive) && status != string(enrollModel.EnrollmentLeft) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status must be ACTIVE or LEFT")
		}
		tx = tx.Where("class_enrollment_status = ?", status)
	}

	var rows []enrollModel.ClassEnrollmentModel
	if err := tx.Order("class_enrollment_joined_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "enrollments fetched", rows)
}

// DELETE /api/t/classes/:class_id/students/:student_id
// Removal keeps the edge and its history: status flips to LEFT and the
// row stays behind for future sessions to skip.
func (ctl *EnrollmentController) Remove(c *fiber.Ctx) error {
	tutorID, classID, err := ctl.parseCtxIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	studentID, perr := uuid.Parse(c.Params("student_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
	}

	var row enrollModel.ClassEnrollmentModel
	ferr := ctl.DB.WithContext(c.Context()).
		Where("class_enrollment_class_id = ? AND class_enrollment_student_user_id = ? AND class_enrollment_status = ?",
			classID, studentID, enrollModel.EnrollmentActive).
		Take(&row).Error
	if errors.Is(ferr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "active enrollment not found")
	}
	if ferr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, ferr.Error())
	}

	now := time.Now()
	row.ClassEnrollmentStatus = enrollModel.EnrollmentLeft
	row.ClassEnrollmentLeftAt = &now
	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "student removed from class", row)
}
