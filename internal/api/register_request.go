package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" validate:"required" example:"bob"`
	Email    string `json:"email" validate:"required,email" example:"bob@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
