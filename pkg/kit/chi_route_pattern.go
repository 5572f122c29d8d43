package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RoutePatternOrPath labels a request by its chi route pattern so that
// /orders/o_123 and /orders/o_456 share one metric series.
func RoutePatternOrPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if rp := rc.RoutePattern(); rp != "" {
			return rp
		}
	}
	return r.URL.Path
}
