package openai

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	oai "github.com/sashabaranov/go-openai"

	"github.com/claimdesk/claims-intake/internal/common"
)

// Config for the OpenAI generation client.
type Config struct {
	APIKey      string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // e.g., "gpt-4o-mini"
	Temperature float32       // 0..2
	Timeout     time.Duration // per-call timeout
}

// Client implements llm.Generator using the Chat Completions API.
type Client struct {
	api    *oai.Client
	cfg    Config
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = oai.GPT4oMini
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	// go-openai marshals Temperature with omitempty, so an exact 0 would be
	// dropped from the request and the API would use its own default. The
	// smallest positive float32 keeps the field on the wire and is
	// indistinguishable from 0 for sampling.
	if cfg.Temperature == 0 {
		cfg.Temperature = math.SmallestNonzeroFloat32
	}
	if logger == nil {
		logger = slog.Default()
	}

	clientConfig := oai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:    oai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
		logger: logger,
	}
}

// Generate sends one prompt and returns the raw completion text. Failures come
// back as UpstreamError; the caller decides whether to fall back or surface.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	c.logger.Info("llm.generate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"prompt_len", len(prompt),
	)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, oai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		ResponseFormat: &oai.ChatCompletionResponseFormat{
			Type: oai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []oai.ChatCompletionMessage{
			{Role: oai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.logger.Error("llm.generate.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &common.UpstreamError{Stage: common.StageGenerate, Cause: err}
	}
	if len(resp.Choices) == 0 {
		c.logger.Error("llm.generate.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &common.UpstreamError{Stage: common.StageGenerate, Cause: errors.New("no choices in response")}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.logger.Info("llm.generate.ok",
		"req_id", rid,
		"response_len", len(content),
		"tokens", resp.Usage.TotalTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}
