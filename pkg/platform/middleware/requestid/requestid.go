// Package requestid assigns every request a UUID so log lines and error
// reports from one scoring pass can be correlated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"churnsight/pkg/requestcontext"
)

// Header carries the request ID back to the client.
const Header = "X-Request-Id"

// Middleware generates a request ID unless the client supplied one, stores
// it in the context, and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
