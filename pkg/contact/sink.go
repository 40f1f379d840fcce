package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Sink is somewhere a submission gets delivered to.
type Sink interface {
	Deliver(context.Context, Submission) error
}

type logSink struct {
	logger *zap.Logger
}

// NewLogSink records submissions in the log and nothing else.
func NewLogSink(logger *zap.Logger) Sink {
	return logSink{logger: logger}
}

func (l logSink) Deliver(_ context.Context, s Submission) error {
	l.logger.Info("Contact form submission",
		zap.String("id", s.ID),
		zap.String("name", s.Name),
		zap.String("email", s.Email),
		zap.String("phone", s.Phone),
		zap.String("city", s.City),
		zap.String("message", s.Message),
		zap.String("file", s.File),
		zap.Time("receivedAt", s.ReceivedAt),
	)

	return nil
}

type webhookSink struct {
	url    string
	client *http.Client
}

// NewWebhookSink POSTs each submission as JSON to url. There is no retry.
func NewWebhookSink(url string, timeout time.Duration) Sink {
	return webhookSink{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (w webhookSink) Deliver(ctx context.Context, s Submission) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not deliver submission %s: %w", s.ID, err)
	}

	defer resp.Body.Close()
	io.Copy(ioutil.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook rejected submission %s: %s", s.ID, resp.Status)
	}

	return nil
}

type multiSink []Sink

// NewMultiSink delivers to every sink in order, even after one fails.
func NewMultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Deliver(ctx context.Context, s Submission) error {
	var err error

	for _, sink := range m {
		err = multierr.Append(err, sink.Deliver(ctx, s))
	}

	return err
}
