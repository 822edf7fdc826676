package api

// LoginResponse is the user record plus an access token when token
// issuing is enabled.
// swagger:model api.LoginResponse
type LoginResponse struct {
	UserResponse
	AccessToken string `json:"access_token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
