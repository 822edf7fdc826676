package products

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"marketplace/internal/api"
	"marketplace/internal/database"
	"marketplace/internal/model"
	"marketplace/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const msgMissingFields = "Missing required fields"

var (
	listProducts       = store.ListProducts
	getProductByID     = store.GetProductByID
	getProductSellerID = store.GetProductSellerID
	createProduct      = store.CreateProduct
	markProductPaid    = store.MarkProductPaid
	markProductSold    = store.MarkProductSold
	deleteProduct      = store.DeleteProduct
	getUserByID        = store.GetUserByID
	newID              = uuid.NewString
	timeNow            = time.Now
)

func productNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Product not found"})
}

// @Summary     List products
// @Description 列出商品並附上賣家名稱。category 為空或 "All" 時不過濾；query 不分大小寫比對標題或描述
// @Tags        products
// @Produce     json
// @Param       category query    string false "Category name or All"
// @Param       query    query    string false "Search text"
// @Success     200      {array}  model.Product
// @Failure     500      {object} api.ErrorResponse
// @Router      /products [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := listProducts(c.Request().Context(), db, model.ProductFilter{
			Category: c.QueryParam("category"),
			Query:    c.QueryParam("query"),
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, products)
	}
}

// @Summary     Get a product by ID
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} model.Product
// @Failure     404 {object} api.ErrorResponse "Product not found"
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := getProductByID(c.Request().Context(), db, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return productNotFound(c)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, p)
	}
}

// @Summary     Create a product
// @Description 為既有賣家建立未售出、未付款的商品
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateProductRequest true "Listing"
// @Success     201  {object} model.Product
// @Failure     400  {object} api.ErrorResponse "Missing required fields"
// @Failure     404  {object} api.ErrorResponse "Seller not found"
// @Failure     500  {object} api.ErrorResponse "Failed to create product"
// @Router      /products [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgMissingFields})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err, msgMissingFields)})
		}

		ctx := c.Request().Context()
		seller, err := getUserByID(ctx, db, req.SellerID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Seller not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fmt.Sprintf("Failed to create product: %v", err)})
		}

		p := &model.Product{
			ID:           newID(),
			Title:        req.Title,
			Description:  req.Description,
			Price:        *req.Price,
			ImageURL:     req.ImageURL,
			Category:     req.Category,
			Condition:    req.Condition,
			Location:     req.Location,
			ContactPhone: req.ContactPhone,
			SellerID:     seller.ID,
			SellerName:   seller.Username,
			CreatedAt:    timeNow().UTC(),
		}
		if err := createProduct(ctx, db, p); err != nil {
			c.Logger().Errorf("create product: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fmt.Sprintf("Failed to create product: %v", err)})
		}
		return c.JSON(http.StatusCreated, p)
	}
}

// @Summary     Mark a product as paid
// @Description 設定已付款旗標；與售出、刪除不同，這裡不檢查擁有者
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} api.SuccessResponse
// @Failure     404 {object} api.ErrorResponse "Product not found"
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id}/pay [put]
func MarkPaidHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		// TODO: require the buyer or seller once payments carry an actor.
		err := markProductPaid(c.Request().Context(), db, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return productNotFound(c)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.Success("Product marked as paid"))
	}
}

// @Summary     Mark a product as sold
// @Description 只有賣家或管理員可以標記售出
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id   path     string                  true "Product ID"
// @Param       body body     api.SellerActionRequest true "Acting user"
// @Success     200  {object} api.SuccessResponse
// @Failure     400  {object} api.ErrorResponse "Missing seller_id"
// @Failure     403  {object} api.ErrorResponse "Unauthorized"
// @Failure     404  {object} api.ErrorResponse "Product or user not found"
// @Failure     500  {object} api.ErrorResponse
// @Router      /products/{id}/sold [put]
func MarkSoldHandler(db database.DB) echo.HandlerFunc {
	return sellerActionHandler(db, func(ctx context.Context, db database.DB, id string) error {
		return markProductSold(ctx, db, id)
	}, "Product marked as sold")
}

// @Summary     Delete a product
// @Description 只有賣家或管理員可以刪除商品
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id   path     string                  true "Product ID"
// @Param       body body     api.SellerActionRequest true "Acting user"
// @Success     200  {object} api.SuccessResponse
// @Failure     400  {object} api.ErrorResponse "Missing seller_id"
// @Failure     403  {object} api.ErrorResponse "Unauthorized"
// @Failure     404  {object} api.ErrorResponse "Product or user not found"
// @Failure     500  {object} api.ErrorResponse
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB) echo.HandlerFunc {
	return sellerActionHandler(db, func(ctx context.Context, db database.DB, id string) error {
		return deleteProduct(ctx, db, id)
	}, "Product deleted successfully")
}

type productAction func(ctx context.Context, db database.DB, productID string) error

// sellerActionHandler 確認操作者為賣家或管理員後才執行 action
func sellerActionHandler(db database.DB, action productAction, message string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SellerActionRequest
		if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing seller_id"})
		}

		ctx := c.Request().Context()
		productID := c.Param("id")

		ownerID, err := getProductSellerID(ctx, db, productID)
		if errors.Is(err, store.ErrNotFound) {
			return productNotFound(c)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		actor, err := getUserByID(ctx, db, req.SellerID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		if actor.ID != ownerID && !actor.IsAdmin {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Unauthorized"})
		}

		err = action(ctx, db, productID)
		if errors.Is(err, store.ErrNotFound) {
			return productNotFound(c)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.Success(message))
	}
}
