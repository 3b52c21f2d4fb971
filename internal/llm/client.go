package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
)

// Client parses OCR text into fragments via an OpenAI-compatible chat API.
type Client struct {
	cfg    common.LLMConfig
	api    *openai.Client
	logger *slog.Logger
}

var _ PageParser = (*Client)(nil)
var _ DocumentParser = (*Client)(nil)

// NewClient builds an LLM parser client.
func NewClient(cfg common.LLMConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &Client{cfg: cfg, api: openai.NewClientWithConfig(oc), logger: logger}
}

// ParsePage extracts one page's fragment.
func (c *Client) ParsePage(ctx context.Context, req PageRequest) (entity.Fragment, error) {
	frag, err := c.complete(ctx, BuildPagePrompt(req), "page", req.DocID, req.PageNumber)
	if err != nil {
		return entity.Fragment{}, err
	}
	frag.PageNumber = req.PageNumber
	if frag.PageType == "" {
		frag.PageType = req.PageType
	}
	return frag, nil
}

// ParseDocument extracts a whole document as a single fragment.
func (c *Client) ParseDocument(ctx context.Context, req DocumentRequest) (entity.Fragment, error) {
	frag, err := c.complete(ctx, BuildDocumentPrompt(req), "document", req.DocID, 1)
	if err != nil {
		return entity.Fragment{}, err
	}
	frag.PageNumber = 1
	return frag, nil
}

func (c *Client) complete(ctx context.Context, user, unit, docID string, page int) (entity.Fragment, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.parse.start",
		"req_id", rid, "unit", unit, "doc_id", docID, "page", page,
		"model", c.cfg.Model, "text_len", len(user))

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		c.logger.Error("llm.parse.http_error",
			"req_id", rid, "doc_id", docID, "page", page, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return entity.Fragment{}, common.WrapError(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return entity.Fragment{}, common.NewAppError("LLM_EMPTY", "no choices in response", common.ErrMalformedResponse)
	}

	frag, err := DecodeFragment(resp.Choices[0].Message.Content, c.logger)
	if err != nil {
		c.logger.Error("llm.parse.decode_error",
			"req_id", rid, "doc_id", docID, "page", page, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return entity.Fragment{}, err
	}

	c.logger.Info("llm.parse.ok",
		"req_id", rid, "doc_id", docID, "page", page,
		"assets", len(frag.Assets), "statements", len(frag.Statements),
		"elapsed_ms", time.Since(start).Milliseconds())
	return frag, nil
}

// DecodeFragment runs the full response path: layered JSON recovery,
// sanitation, schema validation, then decoding into the fragment type.
func DecodeFragment(content string, logger *slog.Logger) (entity.Fragment, error) {
	raw, err := RecoverJSON(content)
	if err != nil {
		return entity.Fragment{}, err
	}
	clean, _, err := SanitizeFragmentJSON(raw, logger)
	if err != nil {
		return entity.Fragment{}, common.NewAppError("LLM_MALFORMED", err.Error(), common.ErrMalformedResponse)
	}
	if err := ValidateFragmentJSON(clean); err != nil {
		return entity.Fragment{}, err
	}
	var frag entity.Fragment
	if err := json.Unmarshal(clean, &frag); err != nil {
		return entity.Fragment{}, common.NewAppError("LLM_MALFORMED", err.Error(), common.ErrMalformedResponse)
	}
	return frag, nil
}
