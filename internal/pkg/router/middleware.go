package router

import (
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/uid"
)

// Middleware decorates an http.Handler.
type Middleware func(next http.Handler) http.Handler

// Chain applies middlewares to h so the first middleware runs outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some proxies.
	HeaderRequestID = "X-Request-ID"
)

func matchedRoutePath(r *http.Request) string {
	pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath()
	if pattern != "" {
		return pattern
	}
	return r.URL.Path
}

func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				slog.ErrorContext(r.Context(), "panic on the server",
					"because", rvr,
					"stack", string(debug.Stack()),
				)
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func middlewareIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rip := realIP(r); rip != "" {
			r.RemoteAddr = rip
		}
		next.ServeHTTP(w, r)
	})
}

func realIP(r *http.Request) string {
	var ip string

	if tcip := r.Header.Get("True-Client-IP"); tcip != "" {
		ip = tcip
	} else if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		ip = xrip
	} else if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip, _, _ = strings.Cut(xff, ",")
	}
	if ip == "" || net.ParseIP(ip) == nil {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err == nil && net.ParseIP(host) != nil {
			return host
		}
		return ""
	}
	return ip
}

func normalizeCID(v string) string {
	if strings.ContainsAny(v, "\r\n") {
		return ""
	}
	v = strings.TrimSpace(v)
	const maxLen = 128
	if len(v) > maxLen {
		v = v[:maxLen]
	}
	return v
}

func middlewareCorrelationID(uid uid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := normalizeCID(r.Header.Get(HeaderCorrelationID))
			if cid == "" {
				cid = normalizeCID(r.Header.Get(HeaderRequestID))
			}
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(instrument.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func middlewareMaintenance(cfg config.Config) Middleware {
	endpoints := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			endpoint = strings.TrimSpace(endpoint)
			if endpoint == "" {
				continue
			}
			endpoints[endpoint] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, blocked := endpoints[matchedRoutePath(r)]; blocked {
				writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func middlewareAuthentication(verifier jwt.JWT, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(p[1])
			if err != nil {
				writeJSON(w, errorResponse{Message: "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.SetAuth(r.Context(), claims)))
		})
	}
}
