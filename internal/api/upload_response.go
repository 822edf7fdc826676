package api

// swagger:model api.UploadResponse
type UploadResponse struct {
	URL string `json:"url" example:"/api/uploads/0b6e2c1e-8d7c-4a4b-9a53-3f0a2b1c9d8e_photo.png"`
}
