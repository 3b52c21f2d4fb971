package ocr

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nacc-tools/disclosure-etl/internal/common"
)

// typhoonPrompt asks for markdown so table structure survives into the
// parser stage.
const typhoonPrompt = "Extract all text from this document page as markdown. Preserve tables. Respond with the text only."

// typhoonClient wraps the Typhoon OCR API, which speaks the OpenAI chat
// protocol with image content parts.
type typhoonClient struct {
	cfg    common.OCRConfig
	api    *openai.Client
	logger *slog.Logger
}

func newTyphoonClient(cfg common.OCRConfig, logger *slog.Logger) *typhoonClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &typhoonClient{cfg: cfg, api: openai.NewClientWithConfig(oc), logger: logger}
}

// OCRImage sends one page image and returns its text. Rate-limit and
// timeout errors are retried with exponential backoff up to MaxRetries;
// anything else fails immediately.
func (c *typhoonClient) OCRImage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", common.WrapError(err, "read page image")
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			c.logger.Warn("ocr.typhoon.retry",
				"attempt", attempt, "backoff", backoff.String(), "error", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := c.request(ctx, dataURL)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable(err) {
			return "", err
		}
	}
	return "", common.NewAppError("OCR_RETRIES", "retries exhausted", common.WrapError(lastErr, "typhoon ocr"))
}

func (c *typhoonClient) request(ctx context.Context, dataURL string) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: float32(c.cfg.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: typhoonPrompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", common.NewAppError("OCR_EMPTY", "no choices in response", common.ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// retryable classifies transient failures: HTTP 429, 5xx, and timeouts.
func retryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || common.IsTransient(err)
}
