package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
	err    error
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) SetError(err error) {
	w.err = err
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func middlewareObservability(ins instrument.Instrumentation) Middleware {
	tracer := ins.Tracer("http.server")
	meter := ins.Meter("http.server")

	requestCounter, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests received"))
	if err != nil {
		slog.Error("failed to create http request counter", "error", err)
	}

	durationHistogram, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request duration in milliseconds"))
	if err != nil {
		slog.Error("failed to create http duration histogram", "error", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			start := time.Now()

			ctx, span := tracer.Start(
				r.Context(),
				r.Method+" "+route,
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.HTTPRouteKey.String(route),
				),
			)
			defer span.End()

			slog.InfoContext(ctx, "request received",
				"method", r.Method,
				"path", route,
				"uri", r.RequestURI,
			)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []attribute.KeyValue{
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRouteKey.String(route),
				semconv.HTTPResponseStatusCodeKey.Int(status),
			}

			if rec.err != nil {
				span.RecordError(rec.err)
			}
			if status >= http.StatusInternalServerError {
				if rec.err != nil {
					span.SetStatus(codes.Error, rec.err.Error())
				} else {
					span.SetStatus(codes.Error, http.StatusText(status))
				}
			} else {
				span.SetStatus(codes.Ok, "")
			}

			span.SetAttributes(attrs...)
			span.SetAttributes(
				semconv.NetworkProtocolVersionKey.String(r.Proto),
				semconv.ServerAddressKey.String(r.Host),
				attribute.String("http.target", r.URL.Path),
				attribute.String("http.user_agent", r.UserAgent()),
				attribute.Int("http.response_content_length", rec.bytes),
			)

			if requestCounter != nil {
				requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			}
			if durationHistogram != nil {
				durationHistogram.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(attrs...))
			}

			slog.InfoContext(ctx, "response sent",
				"method", r.Method,
				"path", route,
				"uri", r.RequestURI,
				"status", status,
				"bytes", rec.bytes,
				"latency_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
