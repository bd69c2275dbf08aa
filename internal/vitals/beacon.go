package vitals

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CollectURL is the analytics collector endpoint.
const CollectURL = "https://www.google-analytics.com/collect"

// HTTPBeacon forwards session-final metrics to the analytics collector over
// HTTP, standing in for the browser's sendBeacon.
type HTTPBeacon struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPBeacon creates a beacon against the default collector.
func NewHTTPBeacon() *HTTPBeacon {
	return &HTTPBeacon{
		Endpoint: CollectURL,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// SendBeacon posts the collect payload. Failures are returned for logging
// only; callers never surface them.
func (b *HTTPBeacon) SendBeacon(metric Metric, trackingID string) error {
	endpoint := b.Endpoint
	if endpoint == "" {
		endpoint = CollectURL
	}
	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	body := CollectBody(metric, trackingID)
	resp, err := client.Post(endpoint, "application/x-www-form-urlencoded", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting beacon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("beacon collector returned %d", resp.StatusCode)
	}
	return nil
}
