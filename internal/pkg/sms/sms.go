// Package sms provides outbound text-message delivery and phone number
// canonicalization.
package sms

import (
	"context"
	"io"
)

// Message is a single outbound text message.
type Message struct {
	// To is the destination number in E.164 form.
	To string
	// Body is the message text.
	Body string
}

// SMS abstracts a text-message provider.
type SMS interface {
	io.Closer

	Send(ctx context.Context, msg Message) error
}
