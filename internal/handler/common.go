package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"arta-api/internal/dto"
)

// internalError converts an unexpected failure into the 500 envelope. The
// underlying error text goes out best-effort; domain failures never reach
// this path.
func internalError(c echo.Context, message string, err error) error {
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
