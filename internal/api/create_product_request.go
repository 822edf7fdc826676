package api

// Price is a pointer so an explicit 0 passes "required".
// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Title        string   `json:"title" validate:"required" example:"iPhone 13 Pro"`
	Description  string   `json:"description" validate:"required" example:"Barely used, 256GB"`
	Price        *float64 `json:"price" validate:"required,gte=0" example:"799.99"`
	ImageURL     string   `json:"image_url" validate:"required" example:"/api/uploads/0b6e..._phone.png"`
	Category     string   `json:"category" validate:"required" example:"Electronics"`
	Condition    string   `json:"condition" validate:"required,oneof='New' 'Like New' 'Good' 'Fair' 'Poor'" example:"Like New"`
	Location     string   `json:"location" validate:"required" example:"Downtown"`
	ContactPhone string   `json:"contact_phone" validate:"required" example:"555-123-4567"`
	SellerID     string   `json:"seller_id" validate:"required" example:"1"`
}
