// Package mail abstracts outbound email delivery.
//
// The OTP engine treats email as a best-effort channel: a send failure is
// surfaced to the caller but never rolls back state that was already decided.
package mail

import (
	"context"
	"io"
)

// Message represents an email payload, provider-agnostic.
type Message struct {
	// From is an optional explicit sender; falls back to the configured default.
	From string
	// To lists the recipients.
	To []string
	// Subject is the email subject line.
	Subject string
	// TextBody is the plain-text body; used when HTMLBody is empty.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
}

// Mail abstracts an email provider (SMTP, third-party API, etc).
type Mail interface {
	io.Closer
	// Send dispatches the given message using the underlying provider.
	Send(ctx context.Context, msg Message) error
}
