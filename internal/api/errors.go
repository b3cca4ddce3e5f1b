package api

import (
	"errors"
	"net/http"

	"github.com/ukaji3/sheetserve/pkg/sheetserve/catalog"
)

// httpStatusFromError maps catalog lookup errors to HTTP status codes.
// Unknown errors map to 500 Internal Server Error.
func httpStatusFromError(err error) int {
	var tableNotFound *catalog.TableNotFoundError
	var rowNotFound *catalog.RowNotFoundError

	switch {
	case errors.As(err, &tableNotFound):
		return http.StatusNotFound
	case errors.As(err, &rowNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
