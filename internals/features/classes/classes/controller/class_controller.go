// file: internals/features/classes/classes/controller/class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "tutorku_backend/internals/features/classes/classes/dto"
	classModel "tutorku_backend/internals/features/classes/classes/model"
	enrollModel "tutorku_backend/internals/features/classes/enrollments/model"
	schedModel "tutorku_backend/internals/features/sessions/schedules/model"
	sessModel "tutorku_backend/internals/features/sessions/sessions/model"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ===============================
// Helpers
// ===============================

func (ctl *ClassController) takeOwned(c *fiber.Ctx, classID, tutorID uuid.UUID) (*classModel.ClassModel, error) {
	var row classModel.ClassModel
	err := ctl.DB.WithContext(c.Context()).
		Where("class_id = ? AND class_tutor_user_id = ?", classID, tutorID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "class not found or not yours")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &row, nil
}

// ===============================
// Handlers
// ===============================

// POST /api/t/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	tutorID, err := helperAuth.GetTutorID(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := req.ToModel(tutorID)
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "class created", row)
}

// GET /api/t/classes
func (ctl *ClassController) List(c *fiber.Ctx) error {
	tutorID, err := helperAuth.GetTutorID(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).
		Model(&classModel.ClassModel{}).
		Where("class_tutor_user_id = ?", tutorID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []classModel.ClassModel
	if err := tx.Order("class_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "classes fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/t/classes/:class_id
// Detail includes the active roster.
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	tutorID, err := helperAuth.GetTutorID(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	classID, perr := uuid.Parse(c.Params("class_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id invalid")
	}

	row, ferr := ctl.takeOwned(c, classID, tutorID)
	if ferr != nil {
		return helper.JsonError(c, ferr.(*fiber.Error).Code, ferr.Error())
	}

	var roster []enrollModel.ClassEnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("class_enrollment_class_id = ? AND class_enrollment_status = ?", classID, enrollModel.EnrollmentActive).
		Order("class_enrollment_joined_at ASC").
		Find(&roster).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "class fetched", fiber.Map{
		"class":             row,
		"enrolled_students": roster,
	})
}

// PATCH /api/t/classes/:class_id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	tutorID, err := helperAuth.GetTutorID(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	classID, perr := uuid.Parse(c.Params("class_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id invalid")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row, ferr := ctl.takeOwned(c, classID, tutorID)
	if ferr != nil {
		return helper.JsonError(c, ferr.(*fiber.Error).Code, ferr.Error())
	}

	req.Apply(row)
	if err := ctl.DB.WithContext(c.Context()).Save(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "class updated", row)
}

// DELETE /api/t/classes/:class_id
// The class owns everything under it: schedules, sessions and their
// attendance rows, plus enrollment edges, go in one transaction.
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	tutorID, err := helperAuth.GetTutorID(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	classID, perr := uuid.Parse(c.Params("class_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id invalid")
	}

	row, ferr := ctl.takeOwned(c, classID, tutorID)
	if ferr != nil {
		return helper.JsonError(c, ferr.(*fiber.Error).Code, ferr.Error())
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("attendance_session_id IN (?)",
				tx.Model(&sessModel.TeachingSessionModel{}).
					Select("teaching_session_id").
					Where("teaching_session_class_id = ?", classID),
			).
			Delete(&sessModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("teaching_session_class_id = ?", classID).
			Delete(&sessModel.TeachingSessionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("weekly_schedule_class_id = ?", classID).
			Delete(&schedModel.WeeklyScheduleModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_enrollment_class_id = ?", classID).
			Delete(&enrollModel.ClassEnrollmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(row).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "class deleted", row)
}
