package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	topic      string
	enabled    bool
	priority   string
}

// RunInfo is what a run reports when it finishes.
type RunInfo struct {
	SpreadsheetID string
	Identifiers   int
	Appended      int
	NoMatch       int
	Failed        int
}

type NotificationError struct {
	Type       string
	StatusCode int
	Underlying error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failed [%s]: %v", e.Type, e.Underlying)
}

func NewClient(baseURL, topic string, enabled bool, priority string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		topic:    topic,
		enabled:  enabled,
		priority: priority,
	}
}

// SendNotification posts message to the topic once. Delivery is best effort.
func (c *Client) SendNotification(ctx context.Context, message string) error {
	if !c.enabled {
		log.Debug().Msg("Notifications disabled, skipping")
		return nil
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.topic)
	log.Debug().
		Str("url", url).
		Str("message", message).
		Msg("Sending notification")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		return &NotificationError{Type: "client", Underlying: err}
	}

	req.Header.Set("Content-Type", "text/plain")
	if c.priority != "" {
		req.Header.Set("Priority", c.priority)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NotificationError{Type: "network", Underlying: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &NotificationError{
			Type:       categorizeHTTPError(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Underlying: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status),
		}
	}

	log.Debug().Int("status_code", resp.StatusCode).Msg("Notification sent successfully")
	return nil
}

// NotifyRunComplete reports a successful run. Failures are logged, not returned.
func (c *Client) NotifyRunComplete(ctx context.Context, info RunInfo) {
	if err := c.SendNotification(ctx, formatRunMessage(info)); err != nil {
		log.Warn().Err(err).Msg("Run summary notification failed")
	}
}

// NotifyRunFailed reports a failed run. Failures are logged, not returned.
func (c *Client) NotifyRunFailed(ctx context.Context, runErr error) {
	if err := c.SendNotification(ctx, "View stats update failed: "+runErr.Error()); err != nil {
		log.Warn().Err(err).Msg("Run failure notification failed")
	}
}

func formatRunMessage(info RunInfo) string {
	var sb strings.Builder

	if info.Appended == 1 {
		sb.WriteString("View stats: 1 row appended\n")
	} else {
		sb.WriteString(fmt.Sprintf("View stats: %d rows appended\n", info.Appended))
	}
	sb.WriteString(fmt.Sprintf("Videos read: %d\n", info.Identifiers))
	if info.NoMatch > 0 {
		sb.WriteString(fmt.Sprintf("Not found: %d\n", info.NoMatch))
	}
	if info.Failed > 0 {
		sb.WriteString(fmt.Sprintf("Failed lookups: %d\n", info.Failed))
	}
	if info.SpreadsheetID != "" {
		sb.WriteString(fmt.Sprintf("Sheet: https://docs.google.com/spreadsheets/d/%s\n", info.SpreadsheetID))
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func categorizeHTTPError(statusCode int) string {
	switch {
	case statusCode == 401 || statusCode == 403:
		return "auth"
	case statusCode == 429:
		return "rate_limit"
	case statusCode >= 400 && statusCode < 500:
		return "client"
	case statusCode >= 500:
		return "server"
	default:
		return "unknown"
	}
}
