// file: internals/features/sessions/sessions/dto/attendance_dto.go
package dto

// MarkAttendanceRequest: only the two marked states are accepted here;
// NOT_MARKED is the seeded placeholder, reached again only by deleting
// the row.
type MarkAttendanceRequest struct {
	Status string  `json:"status" validate:"required,oneof=ATTENDED ABSENT"`
	Note   *string `json:"note"   validate:"omitempty,max=500"`
}
