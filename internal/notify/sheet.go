// README: Sheet logger: fire-and-forget JSON POST of each booking enquiry.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"charter/internal/modules/booking"
)

const outboundTimeout = 10 * time.Second

// SheetLogger posts booking rows to an external sheet endpoint. Every error
// path logs and returns; a failed log call must never surface to the user.
type SheetLogger struct {
	url    string
	client *http.Client
}

// NewSheetLogger returns nil when no URL is configured, which disables
// logging entirely.
func NewSheetLogger(url string) *SheetLogger {
	if url == "" {
		return nil
	}
	return &SheetLogger{
		url:    url,
		client: &http.Client{Timeout: outboundTimeout},
	}
}

func (s *SheetLogger) LogBooking(ctx context.Context, entry booking.LogEntry) {
	body, err := json.Marshal(entry)
	if err != nil {
		log.Printf("sheet: marshal entry: %v", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("sheet: build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("sheet: post booking: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		log.Printf("sheet: endpoint returned %d", resp.StatusCode)
	}
}
