package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail mirrors the {"detail": ...} error body the frontend expects.
type ErrorDetail struct {
	Detail interface{} `json:"detail"`
}

// SuccessResponse writes the payload as-is with 200. Endpoint payloads are
// consumed directly by the dashboard, so there is no response envelope.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// NoContentResponse writes no content response.
func NoContentResponse(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// BadRequestResponse writes bad request error with detail.
func BadRequestResponse(c echo.Context, detail interface{}) error {
	return c.JSON(http.StatusBadRequest, ErrorDetail{Detail: detail})
}

// InternalServerErrorResponse writes internal server error with detail.
func InternalServerErrorResponse(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ErrorDetail{Detail: detail})
}

// AppErrorResponse writes application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorDetail{Detail: appErr.Error()})
	}
	return InternalServerErrorResponse(c, err.Error())
}
