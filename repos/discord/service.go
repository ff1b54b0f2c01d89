package discord

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/guildwatch/announcer/pkg/notification"
	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// ErrWebhook means Discord did not accept the message.
var ErrWebhook = errors.New("discord webhook failed")

const (
	defaultTimeout = 10 * time.Second

	// Attempts per message while Discord answers 429.
	maxAttempts = 3
)

// Service posts notifications to a single Discord webhook.
type Service struct {
	webhookURL string
	httpClient *http.Client
}

func NewService(webhookURL string) *Service {
	return &Service{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (s *Service) Name() string {
	return "discord"
}

// Send posts n as a message with a single embed.
func (s *Service) Send(ctx context.Context, n notification.Notification) error {
	return s.sendPayload(ctx, NewPayload(n))
}

// NewPayload converts a notification into the webhook body.
func NewPayload(n notification.Notification) WebhookPayload {
	fields := make([]EmbedField, 0, len(n.Fields))
	for _, f := range n.Fields {
		fields = append(fields, EmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	embed := Embed{
		Title:  n.Title,
		Color:  n.Color,
		Fields: fields,
	}
	if n.Author.Name != "" {
		embed.Author = &EmbedAuthor{
			Name:    n.Author.Name,
			URL:     n.Author.URL,
			IconURL: n.Author.IconURL,
		}
	}
	if !n.Timestamp.IsZero() {
		embed.Timestamp = n.Timestamp.UTC().Format(time.RFC3339)
	}

	return WebhookPayload{
		Content: n.Content,
		Embeds:  []Embed{embed},
	}
}

// sendPayload posts payload, waiting out rate limits.
func (s *Service) sendPayload(ctx context.Context, payload WebhookPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return xerrors.Errorf("marshal payload (%v): %w", err, ErrWebhook)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(data))
		if err != nil {
			return xerrors.Errorf("create request (%v): %w", err, ErrWebhook)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return xerrors.Errorf("%v: %w", err, ErrWebhook)
		}
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()

		if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK {
			log.Trace("Webhook accepted the message")
			return nil
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return xerrors.Errorf("status %d (%s): %w", resp.StatusCode, bytes.TrimSpace(snippet), ErrWebhook)
		}

		wait := retryAfter(resp.Header.Get("Retry-After"))
		log.Debugf("Webhook rate limited, attempt %d/%d, waiting %s", attempt, maxAttempts, wait)
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return xerrors.Errorf("%v: %w", ctx.Err(), ErrWebhook)
		case <-time.After(wait):
		}
	}

	return xerrors.Errorf("still rate limited after %d attempts: %w", maxAttempts, ErrWebhook)
}

// retryAfter parses a Retry-After header given in seconds, fractions allowed.
func retryAfter(header string) time.Duration {
	if header == "" {
		return time.Second
	}
	seconds, err := strconv.ParseFloat(header, 64)
	if err != nil || seconds < 0 {
		return time.Second
	}
	return time.Duration(seconds * float64(time.Second))
}
