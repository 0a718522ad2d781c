package middleware

import "net/http"

// Chain composes middleware into one. The first argument is outermost, so
// Chain(RateLimit(l), Auth(a)) throttles before it authenticates. Nil
// entries are skipped, which lets optional stages be passed unconditionally.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	active := make([]func(http.Handler) http.Handler, 0, len(middlewares))
	for _, mw := range middlewares {
		if mw != nil {
			active = append(active, mw)
		}
	}
	return func(handler http.Handler) http.Handler {
		for i := len(active) - 1; i >= 0; i-- {
			handler = active[i](handler)
		}
		return handler
	}
}
