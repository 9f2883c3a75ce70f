package envelope

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// Recoverer turns handler panics into an INTERNAL failure response. It has
// the func(http.Handler) http.Handler form used by chi routers.
func Recoverer(l *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				if l != nil {
					l.Error(r.Context(), "handler panic", logger.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  fmt.Sprint(rec),
						"stack":  string(debug.Stack()),
					})
				}
				Write(w, fmt.Errorf("panic: %v", rec))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
