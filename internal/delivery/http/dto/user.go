package dto

import (
	"time"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FullName   *string   `json:"fullName,omitempty"`
	TargetRole *string   `json:"targetRole,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		TargetRole: u.TargetRole,
		CreatedAt:  u.CreatedAt,
	}
}
