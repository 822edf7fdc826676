package uploads

import (
	"errors"
	"net/http"

	"marketplace/internal/api"
	"marketplace/internal/upload"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// URLPrefix is where stored files are served from.
const URLPrefix = "/api/uploads/"

const formField = "file"

var newID = uuid.NewString

// @Summary     Upload an image
// @Description 以唯一檔名儲存 png、jpg、jpeg 或 gif 圖片並回傳網址
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Image"
// @Success     201  {object} api.UploadResponse
// @Failure     400  {object} api.ErrorResponse "No file part, No selected file or File type not allowed"
// @Failure     413  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /uploads [post]
func UploadHandler(storage *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		fh, err := c.FormFile(formField)
		if err != nil {
			// 檔名為空的 part 會被解析成一般表單欄位
			if form := c.Request().MultipartForm; form != nil {
				if _, ok := form.Value[formField]; ok {
					return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No selected file"})
				}
			}
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No file part"})
		}
		if fh.Filename == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No selected file"})
		}
		if !upload.AllowedExtension(fh.Filename) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "File type not allowed"})
		}

		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		defer src.Close()

		name := newID() + "_" + upload.Sanitize(fh.Filename)
		if err := storage.Save(name, src); err != nil {
			c.Logger().Errorf("upload: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save file"})
		}
		return c.JSON(http.StatusCreated, api.UploadResponse{URL: URLPrefix + name})
	}
}

// @Summary     Fetch an uploaded file
// @Tags        uploads
// @Produce     octet-stream
// @Param       filename path     string true "Stored file name"
// @Success     200      {file}   binary
// @Failure     404      {object} api.ErrorResponse "File not found"
// @Router      /uploads/{filename} [get]
func ServeUploadHandler(storage *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		path, err := storage.Path(c.Param("filename"))
		if errors.Is(err, upload.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "File not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.File(path)
	}
}
