package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/angelmondragon/gash-demo/api/responses"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

// Recoverer turns a panicking mock handler into a 500 envelope. Aborted handlers are
// re-panicked so net/http can drop the connection as usual.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				ctx := r.Context()
				err := fmt.Errorf("mock handler panic: %v", rec)
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"method": r.Method,
						"path":   r.URL.Path,
						"route":  routePattern(r),
					})
					logg.Error(ctx, "mock.handler_panic", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mock handler failed"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
