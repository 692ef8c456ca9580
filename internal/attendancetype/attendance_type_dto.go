package attendancetype

import "time"

type MarkGeneralRequest struct {
	Date string `json:"date" binding:"required"`
}

// PostWardRequest is bound from multipart form data; the photo file itself
// is handled by the photo store, not the binder.
type PostWardRequest struct {
	Date string `form:"date" binding:"required"`
	Type string `form:"type" binding:"required"`
}

type TypedAttendanceResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Date         time.Time       `json:"date"`
	Type         string          `json:"type"`
	Photo        *string         `json:"photo,omitempty"`
	Status       string          `json:"status"`
	VerifiedBy   *string         `json:"verified_by,omitempty"`
	PostedByRole string          `json:"posted_by_role"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	User         *UserRefResponse `json:"user,omitempty"`
}

type UserRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func mapToResponse(rec *TypedAttendance) TypedAttendanceResponse {
	resp := TypedAttendanceResponse{
		ID:           rec.ID.String(),
		UserID:       rec.UserID.String(),
		Date:         rec.Date,
		Type:         rec.Type,
		Photo:        rec.Photo,
		Status:       rec.Status,
		PostedByRole: rec.PostedByRole,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if rec.VerifiedBy != nil {
		id := rec.VerifiedBy.String()
		resp.VerifiedBy = &id
	}
	if rec.User != nil {
		resp.User = &UserRefResponse{
			ID:    rec.User.ID.String(),
			Name:  rec.User.Name,
			Email: rec.User.Email,
			Role:  rec.User.Role,
		}
	}
	return resp
}
