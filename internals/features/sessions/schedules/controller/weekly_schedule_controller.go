// file: internals/features/sessions/schedules/controller/weekly_schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "tutorku_backend/internals/features/classes/classes/model"
	schedDTO "tutorku_backend/internals/features/sessions/schedules/dto"
	schedModel "tutorku_backend/internals/features/sessions/schedules/model"
	sessService "tutorku_backend/internals/features/sessions/sessions/service"
	"tutorku_backend/internals/configs"
	helper "tutorku_backend/internals/helpers"
	helperAuth "tutorku_backend/internals/helpers/auth"
)

type WeeklyScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWeeklyScheduleController(db *gorm.DB) *WeeklyScheduleController {
	return &WeeklyScheduleController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ===============================
// Helpers
// ===============================

func (ctl *WeeklyScheduleController) ensureClassOwned(c *fiber.Ctx, classID, tutorID uuid.UUID) error {
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

func (ctl *WeeklyScheduleController) resolveIDs(c *fiber.Ctx) (tutorID, classID uuid.UUID, err error) {
	tutorID, err = helperAuth.GetTutorID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	classID, perr := uuid.Parse(c.Params("class_id"))
	if perr != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "class_id invalid")
	}
	if err = ctl.ensureClassOwned(c, classID, tutorID); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return tutorID, classID, nil
}

// ===============================
// Handlers
// ===============================

// POST /api/t/classes/:class_id/schedules
// Creating a weekly slot immediately expands it over the configured
// horizon so the calendar is populated without a second call.
func (ctl *WeeklyScheduleController) Create(c *fiber.Ctx) error {
	_, classID, err := ctl.resolveIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var req schedDTO.CreateWeeklyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	// Clock strings go through the same parser the expander uses, so a
	// slot that validates here cannot fail generation later.
	if _, err := sessService.ParseClockString(req.StartTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := sessService.ParseClockString(req.EndTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := req.ToModel(classID)
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	generatedCount := 0
	if row.WeeklyScheduleIsActive {
		gen := sessService.Generator{DB: ctl.DB}
		created, gerr := gen.GenerateForClass(c.Context(), classID, &sessService.GenerateOptions{
			Weeks: configs.ScheduleCreateWeeks,
		})
		if gerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, gerr.Error())
		}
		generatedCount = len(created)
	}

	return helper.JsonCreated(c, "weekly schedule created", fiber.Map{
		"schedule":                 row,
		"generated_sessions_count": generatedCount,
	})
}

// GET /api/t/classes/:class_id/schedules
func (ctl *WeeklyScheduleController) List(c *fiber.Ctx) error {
	_, classID, err := ctl.resolveIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var rows []schedModel.WeeklyScheduleModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("weekly_schedule_class_id = ?", classID).
		Order("weekly_schedule_day_of_week, weekly_schedule_start_time").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "weekly schedules fetched", rows)
}

// PATCH /api/t/classes/:class_id/schedules/:schedule_id
// Already-generated sessions keep their snapshot; only future expansion
// sees the new rule.
func (ctl *WeeklyScheduleController) Update(c *fiber.Ctx) error {
	_, classID, err := ctl.resolveIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	scheduleID, perr := uuid.Parse(c.Params("schedule_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "schedule_id invalid")
	}

	var req schedDTO.UpdateWeeklyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.StartTime != nil {
		if _, err := sessService.ParseClockString(*req.StartTime); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if req.EndTime != nil {
		if _, err := sessService.ParseClockString(*req.EndTime); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var row schedModel.WeeklyScheduleModel
	derr := ctl.DB.WithContext(c.Context()).
		Where("weekly_schedule_id = ? AND weekly_schedule_class_id = ?", scheduleID, classID).
		Take(&row).Error
	if errors.Is(derr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "weekly schedule not found")
	}
	if derr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, derr.Error())
	}

	req.Apply(&row)
	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "weekly schedule updated", row)
}

// DELETE /api/t/classes/:class_id/schedules/:schedule_id
// Soft delete; sessions already expanded from this slot stay as they are.
func (ctl *WeeklyScheduleController) Delete(c *fiber.Ctx) error {
	_, classID, err := ctl.resolveIDs(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	scheduleID, perr := uuid.Parse(c.Params("schedule_id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "schedule_id invalid")
	}

	var row schedModel.WeeklyScheduleModel
	derr := ctl.DB.WithContext(c.Context()).
		Where("weekly_schedule_id = ? AND weekly_schedule_class_id = ?", scheduleID, classID).
		Take(&row).Error
	if errors.Is(derr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "weekly schedule not found")
	}
	if derr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, derr.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "weekly schedule deleted", row)
}
