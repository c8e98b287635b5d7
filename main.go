package main

import (
	"context"
	"time"

	"github.com/seyia90/authstarter/internal/app"
)

// @title           Auth Starter API
// @version         1.0
// @description     Auth Starter provides authentication, OTP verification, marketing notification and payment APIs.
// @contact.name    Contact Support
// @contact.email   support@authstarter.dev
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	application := app.New()
	application.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx)
}
