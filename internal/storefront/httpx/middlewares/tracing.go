package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const operationName = "storefront.http"

// Trace instruments every request with an otelhttp server span. chi only
// knows the route pattern once it has routed the request, so the span is
// renamed to "METHOD /pattern" on the way out.
func Trace(next http.Handler) http.Handler {
	return otelhttp.NewMiddleware(operationName,
		otelhttp.WithSpanNameFormatter(spanName),
	)(nameByRoute(next))
}

func spanName(_ string, r *http.Request) string {
	if pattern := routePattern(r); pattern != "" {
		return r.Method + " " + pattern
	}
	return r.Method
}

func nameByRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		pattern := routePattern(r)
		if pattern == "" {
			return
		}
		span := trace.SpanFromContext(r.Context())
		span.SetName(r.Method + " " + pattern)
		span.SetAttributes(attribute.String("http.route", pattern))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
