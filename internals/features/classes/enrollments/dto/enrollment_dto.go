// file: internals/features/classes/enrollments/dto/enrollment_dto.go
package dto

type AssignStudentRequest struct {
	StudentUserID string `json:"student_user_id" validate:"required,uuid"`
}
