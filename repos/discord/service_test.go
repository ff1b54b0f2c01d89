package discord

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/guildwatch/announcer/pkg/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotification() notification.Notification {
	return notification.Notification{
		MatchID: 7000000002,
		Content: "https://stratz.com/matches/7000000002",
		Author: notification.Author{
			Name:    "Royal Games",
			URL:     "https://stratz.com/guilds/4242",
			IconURL: "https://steamusercontent-a.akamaihd.net/ugc/123/",
		},
		Title: "Victory · Ranked · All Draft",
		Color: 0x57F287,
		Fields: []notification.Field{
			{Name: "Radiant", Value: "a\nb", Inline: true},
			{Name: "Duration", Value: "12:34"},
		},
		Timestamp: time.Unix(1700000000, 0),
	}
}

func TestNewPayload(t *testing.T) {
	payload := NewPayload(testNotification())

	assert.Equal(t, "https://stratz.com/matches/7000000002", payload.Content)
	require.Len(t, payload.Embeds, 1)

	embed := payload.Embeds[0]
	require.NotNil(t, embed.Author)
	assert.Equal(t, "Royal Games", embed.Author.Name)
	assert.Equal(t, "https://stratz.com/guilds/4242", embed.Author.URL)
	assert.Equal(t, "Victory · Ranked · All Draft", embed.Title)
	assert.Equal(t, 0x57F287, embed.Color)
	assert.Equal(t, "2023-11-14T22:13:20Z", embed.Timestamp)
	assert.Equal(t, []EmbedField{
		{Name: "Radiant", Value: "a\nb", Inline: true},
		{Name: "Duration", Value: "12:34"},
	}, embed.Fields)
}

func TestNewPayloadWithoutAuthor(t *testing.T) {
	n := testNotification()
	n.Author = notification.Author{}
	n.Timestamp = time.Time{}

	embed := NewPayload(n).Embeds[0]
	assert.Nil(t, embed.Author)
	assert.Empty(t, embed.Timestamp)
}

func TestSend(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	s := NewService(server.URL)
	assert.Equal(t, "discord", s.Name())
	require.NoError(t, s.Send(context.Background(), testNotification()))

	assert.Equal(t, "https://stratz.com/matches/7000000002", body["content"])
	embeds := body["embeds"].([]any)
	require.Len(t, embeds, 1)
	embed := embeds[0].(map[string]any)
	author := embed["author"].(map[string]any)
	assert.Equal(t, "https://steamusercontent-a.akamaihd.net/ugc/123/", author["icon_url"])
	fields := embed["fields"].([]any)
	assert.Len(t, fields, 2)
}

func TestSendAcceptsOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	assert.NoError(t, NewService(server.URL).Send(context.Background(), testNotification()))
}

func TestSendRetriesWhenRateLimited(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, NewService(server.URL).Send(context.Background(), testNotification()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSendGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Retry-After", "0.01")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	err := NewService(server.URL).Send(context.Background(), testNotification())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWebhook))
	assert.Equal(t, int32(maxAttempts), atomic.LoadInt32(&calls))
}

func TestSendStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid Form Body"}`))
	}))
	defer server.Close()

	err := NewService(server.URL).Send(context.Background(), testNotification())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWebhook))
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "Invalid Form Body")
}

func TestSendNetworkError(t *testing.T) {
	err := NewService("http://localhost:1").Send(context.Background(), testNotification())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWebhook))
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, time.Second, retryAfter(""))
	assert.Equal(t, time.Second, retryAfter("soon"))
	assert.Equal(t, time.Second, retryAfter("-1"))
	assert.Equal(t, 2*time.Second, retryAfter("2"))
	assert.Equal(t, 1500*time.Millisecond, retryAfter("1.5"))
}
