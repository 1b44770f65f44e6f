package middlewares

import (
	"errors"
	"net/http"
)

// MsgBodyTooLarge is the client message for oversized request bodies
const MsgBodyTooLarge = "Request body too large"

// BodyLimit caps request bodies at limit bytes.
// A declared Content-Length over the limit is refused before the handler runs.
// Bodies without a length are cut off while reading, see IsBodyTooLarge.
func BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				WriteError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
				return
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsBodyTooLarge reports whether err came from reading past the BodyLimit
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
