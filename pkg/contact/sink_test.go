package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testSubmission() Submission {
	return Submission{
		ID:         "4f1c1c2e-0000-4000-8000-000000000001",
		Name:       "Asha",
		Email:      "asha@example.com",
		City:       "Pune",
		Message:    "Need a quote",
		File:       "plan.pdf",
		ReceivedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewLogSink(zap.New(core))

	require.NoError(t, sink.Deliver(context.Background(), testSubmission()))

	entries := logs.FilterMessage("Contact form submission").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "Asha", fields["name"])
	assert.Equal(t, "asha@example.com", fields["email"])
	assert.Equal(t, "plan.pdf", fields["file"])
}

func TestWebhookSink(t *testing.T) {
	var got Submission

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, time.Second)
	require.NoError(t, sink.Deliver(context.Background(), testSubmission()))
	assert.Equal(t, testSubmission(), got)
}

func TestWebhookSinkRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookSink(srv.URL, time.Second).Deliver(context.Background(), testSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestWebhookSinkCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, NewWebhookSink(srv.URL, time.Second).Deliver(ctx, testSubmission()))
}

type failingSink struct {
	calls *int
}

func (f failingSink) Deliver(context.Context, Submission) error {
	*f.calls++
	return errors.New("boom")
}

func TestMultiSinkDeliversToAll(t *testing.T) {
	calls := 0
	core, logs := observer.New(zap.InfoLevel)

	sink := NewMultiSink(failingSink{calls: &calls}, NewLogSink(zap.New(core)), failingSink{calls: &calls})

	err := sink.Deliver(context.Background(), testSubmission())
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, logs.Len())
}
