package api

import (
	"time"

	"marketplace/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"6f1c2a9e-3f1d-4d7a-9d55-1b2f0c7e8a11"`
	Username  string    `json:"username" example:"bob"`
	Email     string    `json:"email" example:"bob@example.com"`
	IsAdmin   bool      `json:"is_admin" example:"false"`
	IsBanned  bool      `json:"is_banned" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
