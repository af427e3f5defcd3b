// Package refine is the boundary to the AI refinement webhook: one JSON POST
// carrying the report's captured payload, a hard deadline, schema validation
// of the response, and an adapter that accepts both the current and the
// legacy response shapes.
package refine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/entity"
)

// Client posts capture payloads to the refinement webhook.
type Client struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
	logger     *slog.Logger
}

// Config holds webhook configuration.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.RefineTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		url:        cfg.WebhookURL,
		timeout:    timeout,
		logger:     logger,
	}
}

// Refine sends the report's original capture for refinement and returns the
// adapted result. A call that outlives the deadline is aborted and surfaced
// as a timeout so the caller can queue an explicit retry; the payload is
// never silently lost.
func (c *Client) Refine(ctx context.Context, rep *entity.Report) (*Result, error) {
	reqID := uuid.New().String()
	start := time.Now()

	body := requestBody(rep)
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode refine request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build refine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("refine.http.request",
		"req_id", reqID,
		"report_id", rep.ID,
		"capture_mode", rep.CaptureMode,
		"content_length", len(bs),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		elapsed := time.Since(start).Milliseconds()
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			c.logger.Error("refine.http.timeout", "req_id", reqID, "elapsed_ms", elapsed)
			return nil, fmt.Errorf("refine webhook: %w", errors.Join(common.ErrTimeout, err))
		}
		c.logger.Error("refine.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", elapsed)
		return nil, fmt.Errorf("refine webhook: %w", errors.Join(common.ErrOffline, err))
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("refine.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("refine.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("refine webhook status %d: %w", resp.StatusCode, common.ErrRemoteRejected)
	}

	if err := validateResponse(raw); err != nil {
		c.logger.Error("refine.response.invalid", "req_id", reqID, "error", err)
		return nil, fmt.Errorf("refine response: %w", errors.Join(common.ErrRemoteRejected, err))
	}

	result, err := adaptResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("refine response: %w", errors.Join(common.ErrRemoteRejected, err))
	}
	return result, nil
}

// requestBody builds the webhook payload from the report's capture.
func requestBody(rep *entity.Report) map[string]any {
	body := map[string]any{
		"reportId":    rep.ID.String(),
		"projectId":   rep.ProjectID.String(),
		"reportDate":  rep.ReportDate,
		"captureMode": rep.CaptureMode,
		"entries":     rep.Entries(),
	}
	if rep.OriginalInput != nil {
		body["originalInput"] = rep.OriginalInput
	}
	return body
}
