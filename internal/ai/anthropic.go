package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhishek622/careercraft/internal/config"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
)

const defaultAnthropicModel = "claude-3-7-sonnet-latest"

// Anthropic calls the Claude Messages API. It has no schema mode, so object
// requests embed the schema in the system prompt.
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	logger    *zap.Logger
}

var _ Generator = (*Anthropic)(nil)

func NewAnthropic(cfg config.AIConfig, log *zap.Logger) *Anthropic {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		logger:    log,
	}
}

func (a *Anthropic) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	maxTokens := a.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}
	var temperature *float64
	if req.Temperature != nil {
		t := float64(*req.Temperature)
		temperature = &t
	}
	return a.send(ctx, req.System, req.Prompt, maxTokens, temperature)
}

func (a *Anthropic) GenerateObject(ctx context.Context, req ObjectRequest, out interface{}) error {
	system := strings.TrimSpace(req.System + "\n\n" + schemaInstruction(req.Schema))
	zero := 0.0

	raw, err := a.send(ctx, system, req.Prompt, a.maxTokens, &zero)
	if err != nil {
		return err
	}
	if err := decodeObject(raw, out); err != nil {
		a.logger.Warn("anthropic object decode failed",
			zap.String("schema", req.Name),
			zap.String("response", raw),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (a *Anthropic) send(ctx context.Context, system, prompt string, maxTokens int64, temperature *float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if temperature != nil {
		params.Temperature = anthropic.Float(*temperature)
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
