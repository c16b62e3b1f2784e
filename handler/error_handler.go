package handler

import (
	"go-iptv-portal/common"
	"net/http"
)

// ErrorHandlingMiddleware adapts handlers that return *common.AppError into
// plain http.HandlerFuncs, sending the error response in one place.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
