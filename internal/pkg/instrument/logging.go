package instrument

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

func initLogging(serviceName string, lp *sdklog.LoggerProvider, maskFields []string) {
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "ts"
			case slog.LevelKey:
				a.Key = "severity"
			case slog.SourceKey:
				if src, ok := a.Value.Any().(*slog.Source); ok {
					if strings.Contains(src.File, "/internal/") {
						relPath := filepath.Join("internal", strings.SplitAfter(src.File, "/internal/")[1])
						return slog.Attr{
							Key:   "file",
							Value: slog.StringValue(fmt.Sprintf("%s:%d", relPath, src.Line)),
						}
					}
					return slog.Attr{}
				}
			}
			return a
		},
	})

	var handler slog.Handler = jsonHandler
	if lp != nil {
		handler = &multiHandler{handlers: []slog.Handler{
			jsonHandler,
			otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(lp)),
		}}
	}

	slog.SetDefault(slog.New(&contextHandler{
		Handler:     &maskHandler{handler: handler, maskKeys: buildMaskKeys(maskFields)},
		serviceName: serviceName,
	}))
}

// contextHandler stamps every record with the correlation ID and service name.
type contextHandler struct {
	slog.Handler
	serviceName string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if cid := GetCorrelationID(ctx); cid != "" {
		r.AddAttrs(slog.String("_cID", cid))
	}
	if h.serviceName != "" {
		r.AddAttrs(slog.String("service", h.serviceName))
	}
	return h.Handler.Handle(ctx, r)
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range m.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range m.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(m.handlers))
	for _, handler := range m.handlers {
		handlers = append(handlers, handler.WithAttrs(attrs))
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(m.handlers))
	for _, handler := range m.handlers {
		handlers = append(handlers, handler.WithGroup(name))
	}
	return &multiHandler{handlers: handlers}
}

// maskHandler replaces the values of configured attribute keys with "***"
// so credentials and one-time codes never reach log output.
type maskHandler struct {
	handler  slog.Handler
	maskKeys map[string]struct{}
}

func (h *maskHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *maskHandler) Handle(ctx context.Context, record slog.Record) error {
	if len(h.maskKeys) == 0 {
		return h.handler.Handle(ctx, record)
	}

	masked := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		masked.AddAttrs(maskAttr(attr, h.maskKeys))
		return true
	})

	return h.handler.Handle(ctx, masked)
}

func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &maskHandler{handler: h.handler.WithAttrs(attrs), maskKeys: h.maskKeys}
}

func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{handler: h.handler.WithGroup(name), maskKeys: h.maskKeys}
}

func buildMaskKeys(fields []string) map[string]struct{} {
	maskKeys := make(map[string]struct{})
	for _, field := range fields {
		field = strings.TrimSpace(strings.ToLower(field))
		if field == "" {
			continue
		}
		maskKeys[field] = struct{}{}
	}
	return maskKeys
}

func maskAttr(attr slog.Attr, maskKeys map[string]struct{}) slog.Attr {
	if _, found := maskKeys[strings.ToLower(attr.Key)]; found {
		return slog.String(attr.Key, "***")
	}

	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		masked := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			masked = append(masked, maskAttr(ga, maskKeys))
		}
		attr.Value = slog.GroupValue(masked...)
	}

	return attr
}
