package categories

import (
	"net/http"

	"marketplace/internal/api"
	"marketplace/internal/database"
	"marketplace/internal/store"

	"github.com/labstack/echo/v4"
)

var listCategories = store.ListCategories

// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {array}  model.Category
// @Failure     500 {object} api.ErrorResponse
// @Router      /categories [get]
func ListCategoriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := listCategories(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, categories)
	}
}
