package api

// swagger:model api.SuccessResponse
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Product marked as paid"`
}

func Success(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}
