// File: internal/store/product.go
package store

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/database"
	"marketplace/internal/model"
)

// AllCategories is the category filter value that disables filtering.
const AllCategories = "All"

const productSelect = `SELECT p.id, p.title, p.description, p.price, p.image_url, p.category,
		p.condition, p.location, p.contact_phone, p.seller_id, u.username,
		p.is_sold, p.is_paid, p.created_at
	 FROM products p JOIN users u ON p.seller_id = u.id`

func scanProduct(row rowScanner) (*model.Product, error) {
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.Category,
		&p.Condition,
		&p.Location,
		&p.ContactPhone,
		&p.SellerID,
		&p.SellerName,
		&p.IsSold,
		&p.IsPaid,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListProducts 查詢商品並帶出賣家名稱。Category 為空或 "All" 時不過濾，
// 否則精確比對；Query 以不分大小寫比對標題或描述
func ListProducts(ctx context.Context, db database.DB, f model.ProductFilter) ([]model.Product, error) {
	var (
		where []string
		args  []any
	)
	if f.Category != "" && f.Category != AllCategories {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if f.Query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(f.Query)) + "%"
		args = append(args, pattern, pattern)
		where = append(where, fmt.Sprintf(
			`(LOWER(p.title) LIKE $%d ESCAPE '\' OR LOWER(p.description) LIKE $%d ESCAPE '\')`,
			len(args)-1, len(args)))
	}

	query := productSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.created_at, p.id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, productID string) (*model.Product, error) {
	row := db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, productID)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", notFound(err))
	}
	return p, nil
}

// GetProductSellerID returns only the owner of a product, without the
// users join, so products whose seller row is gone still resolve.
func GetProductSellerID(ctx context.Context, db database.DB, productID string) (string, error) {
	var sellerID string
	if err := db.QueryRowContext(ctx,
		`SELECT seller_id FROM products WHERE id = $1`,
		productID,
	).Scan(&sellerID); err != nil {
		return "", fmt.Errorf("GetProductSellerID: %w", notFound(err))
	}
	return sellerID, nil
}

// CreateProduct 新增商品，ID 與 CreatedAt 由呼叫端指定
func CreateProduct(ctx context.Context, db database.DB, p *model.Product) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO products
		 (id, title, description, price, image_url, category, condition, location,
		  contact_phone, seller_id, is_sold, is_paid, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID,
		p.Title,
		p.Description,
		p.Price,
		p.ImageURL,
		p.Category,
		p.Condition,
		p.Location,
		p.ContactPhone,
		p.SellerID,
		p.IsSold,
		p.IsPaid,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("CreateProduct: %w", err)
	}
	return nil
}

func MarkProductPaid(ctx context.Context, db database.DB, productID string) error {
	res, err := db.ExecContext(ctx, `UPDATE products SET is_paid = TRUE WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("MarkProductPaid: %w", err)
	}
	return requireAffected("MarkProductPaid", res)
}

func MarkProductSold(ctx context.Context, db database.DB, productID string) error {
	res, err := db.ExecContext(ctx, `UPDATE products SET is_sold = TRUE WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("MarkProductSold: %w", err)
	}
	return requireAffected("MarkProductSold", res)
}

func DeleteProduct(ctx context.Context, db database.DB, productID string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	return requireAffected("DeleteProduct", res)
}
