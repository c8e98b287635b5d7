package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrTermiiAPIKeyRequired is returned when the API key is missing.
var ErrTermiiAPIKeyRequired = errors.New("termii api key is required")

const defaultTermiiBaseURL = "https://api.ng.termii.com/api/sms/send"

// Termii is an SMS implementation backed by the Termii messaging API.
type Termii struct {
	apiKey   string
	senderID string
	baseURL  string
	client   *http.Client
}

// TermiiConfig configures the Termii client.
type TermiiConfig struct {
	// APIKey authenticates against the Termii API.
	APIKey string
	// SenderID is the alphanumeric sender shown to recipients.
	SenderID string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// Timeout bounds each HTTP request. Defaults to 10s.
	Timeout time.Duration
}

// NewTermii constructs a Termii SMS sender.
func NewTermii(cfg TermiiConfig) (*Termii, error) {
	if cfg.APIKey == "" {
		return nil, ErrTermiiAPIKeyRequired
	}

	if cfg.SenderID == "" {
		cfg.SenderID = "AppNotify"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultTermiiBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Termii{
		apiKey:   cfg.APIKey,
		senderID: cfg.SenderID,
		baseURL:  cfg.BaseURL,
		client:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type termiiRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	SMS     string `json:"sms"`
	Type    string `json:"type"`
	Channel string `json:"channel"`
	APIKey  string `json:"api_key"`
}

type termiiResponse struct {
	Code      string `json:"code"`
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
}

// Send delivers one message through the Termii API. Any non-ok response
// code from the provider is surfaced as an error.
func (t *Termii) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(termiiRequest{
		To:      msg.To,
		From:    t.senderID,
		SMS:     msg.Body,
		Type:    "plain",
		Channel: "generic",
		APIKey:  t.apiKey,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body termiiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode termii response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || body.Code != "ok" {
		if body.Message != "" {
			return fmt.Errorf("termii rejected message: %s", body.Message)
		}
		return fmt.Errorf("termii rejected message: status %d", resp.StatusCode)
	}

	return nil
}

// Close implements io.Closer for interface compatibility.
func (t *Termii) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
