package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler maps application errors to HTTP responses. Engine
// errors carry a stable kind alongside the message so clients can react
// to the taxonomy instead of parsing text.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			body := map[string]string{"error": ve.Error(), "title": "validation error"}
			if kind := expr.Kind(ve); kind != "" {
				body["kind"] = kind
			}
			_ = c.JSON(http.StatusBadRequest, body)
			return
		}

		var nf *NotFoundError
		if errors.As(err, &nf) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": nf.Error(), "title": "not found"})
			return
		}

		if kind := expr.Kind(err); kind != "" {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error(), "kind": kind})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
