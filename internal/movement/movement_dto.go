package movement

import "time"

type CheckoutRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type MovementLogResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Reason    string           `json:"reason"`
	Status    string           `json:"status"`
	OutTime   time.Time        `json:"out_time"`
	InTime    *time.Time       `json:"in_time,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	User      *UserRefResponse `json:"user,omitempty"`
}

type UserRefResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Contact      string  `json:"contact"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func mapToResponse(log *MovementLog) MovementLogResponse {
	resp := MovementLogResponse{
		ID:        log.ID.String(),
		UserID:    log.UserID.String(),
		Reason:    log.Reason,
		Status:    log.Status,
		OutTime:   log.OutTime,
		InTime:    log.InTime,
		CreatedAt: log.CreatedAt,
	}
	if log.User != nil {
		resp.User = &UserRefResponse{
			ID:           log.User.ID.String(),
			Name:         log.User.Name,
			Email:        log.User.Email,
			Contact:      log.User.ContactNumber,
			Role:         log.User.Role,
			ProfileImage: log.User.ProfileImage,
		}
	}
	return resp
}
