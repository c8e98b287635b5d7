package app

import (
	"encoding/json"
	"testing"

	"github.com/seyia90/authstarter/docs"
	"github.com/swaggo/swag/v2"
)

func TestAPIDocumentCoversRegisteredRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc() error = %v", err)
	}

	var doc struct {
		Swagger string                     `json:"swagger"`
		Info    struct{ Title string }     `json:"info"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("generated document is not valid JSON: %v", err)
	}

	if doc.Swagger != "2.0" {
		t.Errorf("swagger version = %q, want %q", doc.Swagger, "2.0")
	}
	if doc.Info.Title != "Auth Starter API" {
		t.Errorf("title = %q, want %q", doc.Info.Title, "Auth Starter API")
	}

	routes := []string{
		"/api/v1/auth/signup",
		"/api/v1/auth/login",
		"/api/v1/auth/otp/request",
		"/api/v1/auth/otp/resend",
		"/api/v1/auth/verify/phone",
		"/api/v1/auth/verify/email",
		"/api/v1/auth/password/forgot",
		"/api/v1/auth/password/reset",
		"/api/v1/auth/password/forgot-token",
		"/api/v1/auth/password/reset-token",
		"/api/v1/auth/profile",
		"/api/v1/users",
		"/api/v1/users/{id}",
		"/api/v1/notifications",
		"/api/v1/notifications/{id}/schedule",
		"/api/v1/notifications/{id}/send",
		"/api/v1/notification-preferences",
		"/api/v1/payments/intent",
		"/api/v1/payments/webhook",
	}
	for _, route := range routes {
		if _, ok := doc.Paths[route]; !ok {
			t.Errorf("document is missing path %s", route)
		}
	}
}
