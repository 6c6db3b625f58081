// file: internals/features/sessions/sessions/controller/session_controller.go
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
	sessDTO "tutorku_backend/internals/features/sessions/sessions/dto"
	sessModel "tutorku_backend/internals/features/sessions/sessions/model"
	"tutorku_backend/internals/features/sessions/sessions/service"
	"tutorku_backend/internals/configs"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type SessionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Policy    service.StatusPolicy
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{
		DB:        db,
		Validator: validator.New(),
		Policy:    service.PolicyFromName(configs.SessionStatusPolicy),
	}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

const dateLayout = "2006-01-02"

// ===============================
// Helpers
// ===============================

// Ownership check: a class that is absent or not the caller's is the
// same 404, so the response never reveals whether the id exists.
func (ctl *SessionController) ensureClassOwned(c *fiber.Ctx, classID, tutorID uuid.UUID) error {
	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_tutor_user_id = ?", classID, tutorID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "class not found or not yours")
	}
	return nil
}

func (ctl *SessionController) takeSession(c *fiber.Ctx, classID, sessionID uuid.UUID) (*sessModel.TeachingSessionModel, error) {
	var sess sessModel.TeachingSessionModel
	err := ctl.DB.WithContext(c.Context()).
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

func parseCtxIDs(c *fiber.Ctx) (tutorID, classID uuid.UUID, err error) {
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

// ===============================
// Handlers
// ===============================

// POST /api/t/classes/:class_id/sessions
// Manual one-off session; bypasses expansion. A duplicate (class,
// start_at) here is an explicit conflict, not a skip: the caller's
// intent is create-new.
func (ctl *SessionController) CreateManual(c *fiber.Ctx) error {
	tutorID, classID, err := parseCtxIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var req sessDTO.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row, err := req.ToModel(classID, time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a session already exists for this class at that start time")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "session created", row)
}

// POST /api/t/classes/:class_id/generate-sessions
// Explicit expansion trigger; idempotent, horizon is a tunable.
func (ctl *SessionController) Generate(c *fiber.Ctx) error {
	tutorID, classID, err := parseCtxIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var req sessDTO.GenerateSessionsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := ctl.Validator.Struct(req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	gen := service.Generator{DB: ctl.DB}
	created, err := gen.GenerateForClass(c.Context(), classID, &service.GenerateOptions{Weeks: req.Weeks})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSchedule):
			return helper.JsonError(c, fiber.StatusBadRequest, "class has no active weekly schedule")
		case errors.Is(err, service.ErrInvalidTimeFormat):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "sessions generated", fiber.Map{
		"created_count": len(created),
		"sessions":      created,
	})
}

// GET /api/t/classes/:class_id/sessions?status=&start_date=&end_date=
func (ctl *SessionController) List(c *fiber.Ctx) error {
	tutorID, classID, err := parseCtxIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).
		Model(&sessModel.TeachingSessionModel{}).
		Where("teaching_session_class_id = ?", classID)

	if s := strings.ToUpper(strings.TrimSpace(c.Query("status"))); s != "" {
		if !sessModel.SessionStatus(s).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid (PLANNED/COMPLETED/CANCELLED/RESCHEDULED)")
		}
		tx = tx.Where("teaching_session_status = ?", s)
	}
	if s := strings.TrimSpace(c.Query("start_date")); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "start_date invalid (YYYY-MM-DD)")
		}
		tx = tx.Where("teaching_session_start_at >= ?", t)
	}
	if s := strings.TrimSpace(c.Query("end_date")); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_date invalid (YYYY-MM-DD)")
		}
		// inclusive end-of-day
		tx = tx.Where("teaching_session_start_at < ?", t.AddDate(0, 0, 1))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []sessModel.TeachingSessionModel
	if err := tx.Order("teaching_session_start_at ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "sessions fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PATCH /api/t/classes/:class_id/sessions/:session_id/status
func (ctl *SessionController) PatchStatus(c *fiber.Ctx) error {
	tutorID, classID, err := parseCtxIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	sessionID, perr := uuid.Parse(c.Params("session_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id invalid")
	}

	var req sessDTO.UpdateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sess, ferr := ctl.takeSession(c, classID, sessionID)
	if ferr != nil {
		return helper.JsonError(c, ferr.(*fiber.Error).Code, ferr.Error())
	}

	next := sessModel.SessionStatus(strings.ToUpper(req.Status))
	if err := ctl.Policy(sess.TeachingSessionStatus, next); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Attendance rows are untouched by status changes.
	sess.TeachingSessionStatus = next
	if err := ctl.DB.WithContext(c.Context()).
		Model(sess).
		Update("teaching_session_status", next).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "session status updated", sess)
}

// DELETE /api/t/classes/:class_id/sessions/:session_id
// Session owns its attendance rows: one transaction removes both.
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	tutorID, classID, err := parseCtxIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	sessionID, perr := uuid.Parse(c.Params("session_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id invalid")
	}

	sess, ferr := ctl.takeSession(c, classID, sessionID)
	if ferr != nil {
		return helper.JsonError(c, ferr.(*fiber.Error).Code, ferr.Error())
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_session_id = ?", sessionID).
			Delete(&sessModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(sess).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "session deleted", sess)
}
