package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// GetParam reads a path parameter from the request context (as stored by httprouter).
func (r *Request) GetParam(key string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(key)
}

// GetParamInt64 reads a path parameter and parses it as int64.
func (r *Request) GetParamInt64(key string) (int64, error) {
	value, err := strconv.ParseInt(r.GetParam(key), 10, 64)
	if err != nil {
		return 0, goerror.NewInvalidFormat("param must integer value")
	}
	return value, nil
}

// GetQuery reads a query string value, trimmed.
func (r *Request) GetQuery(key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// GetQueryInt32 reads a query string value as int32; empty means zero.
func (r *Request) GetQueryInt32(key string) (int32, error) {
	queryValue := r.GetQuery(key)
	if queryValue == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(queryValue, 10, 32)
	if err != nil {
		return 0, goerror.NewInvalidFormat()
	}

	return int32(value), nil
}

// DecodeBody decodes the JSON body into dst, rejecting unknown fields and
// trailing content.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return goerror.NewInvalidFormat()
	}

	return nil
}

// ReadRawBody drains and returns the raw request body, bounded by limit.
// It is used by webhook handlers that verify payload signatures.
func (r *Request) ReadRawBody(limit int64) ([]byte, error) {
	if r == nil || r.Body == nil {
		return nil, goerror.NewInvalidFormat()
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit))
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}
	return body, nil
}
