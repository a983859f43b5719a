// README: Conversion tracker: optional analytics ping on booking submission.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// ConversionTracker fires a conversion event at an analytics collector.
// Absence of configuration disables it; failures are logged and dropped.
type ConversionTracker struct {
	url    string
	label  string
	client *http.Client
}

func NewConversionTracker(url, label string) *ConversionTracker {
	if url == "" {
		return nil
	}
	return &ConversionTracker{
		url:    url,
		label:  label,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *ConversionTracker) Track(ctx context.Context) {
	payload := map[string]string{
		"event":     "conversion",
		"send_to":   c.label,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("conversion: marshal event: %v", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("conversion: build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("conversion: send event: %v", err)
		return
	}
	resp.Body.Close()
}
