package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the EmailJS REST send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSClient delivers contact payloads through the EmailJS REST API.
// Initialization amounts to carrying the public key; each Send makes exactly
// one outbound call.
type EmailJSClient struct {
	PublicKey string
	Endpoint  string
	Client    *http.Client
}

// NewEmailJSClient creates a client authorized by the given public key.
func NewEmailJSClient(publicKey string) *EmailJSClient {
	return &EmailJSClient{
		PublicKey: publicKey,
		Endpoint:  DefaultEndpoint,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Payload `json:"template_params"`
}

// Send posts the payload to the configured service and template. Any non-2xx
// response is a delivery failure; the response body is only read for the
// error message.
func (c *EmailJSClient) Send(ctx context.Context, serviceID, templateID string, payload Payload) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         c.PublicKey,
		TemplateParams: payload,
	})
	if err != nil {
		return fmt.Errorf("encoding send request: %w", err)
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email relay returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	return nil
}
