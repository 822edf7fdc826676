// File: internal/model/product.go
package model

import "time"

// Product 商品資料列；SellerName 只在讀取時由 users join 帶出，寫入時忽略
type Product struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Price        float64   `db:"price" json:"price"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	Category     string    `db:"category" json:"category"`
	Condition    string    `db:"condition" json:"condition"`
	Location     string    `db:"location" json:"location"`
	ContactPhone string    `db:"contact_phone" json:"contact_phone"`
	SellerID     string    `db:"seller_id" json:"seller_id"`
	SellerName   string    `db:"seller_name" json:"seller_name"`
	IsSold       bool      `db:"is_sold" json:"is_sold"`
	IsPaid       bool      `db:"is_paid" json:"is_paid"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ProductFilter narrows ListProducts. Empty fields do not filter.
type ProductFilter struct {
	Category string
	Query    string
}
