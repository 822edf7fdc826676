package api

// SellerActionRequest names the acting user for mark-sold and delete.
// swagger:model api.SellerActionRequest
type SellerActionRequest struct {
	SellerID string `json:"seller_id" validate:"required" example:"1"`
}
