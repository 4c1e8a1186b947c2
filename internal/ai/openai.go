package ai

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abhishek622/careercraft/internal/config"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGroqModel   = "meta-llama/llama-4-maverick-17b-128e-instruct"
	groqBaseURL        = "https://api.groq.com/openai/v1"
)

// OpenAI talks to OpenAI or any OpenAI-compatible endpoint such as Groq.
type OpenAI struct {
	client *openai.Client
	name   string
	model  string
	// nativeSchema selects the json_schema response format; otherwise
	// json_object is requested and the schema travels in the system prompt.
	nativeSchema bool
	maxTokens    int
	timeout      time.Duration
	logger       *zap.Logger
}

var _ Generator = (*OpenAI)(nil)

func NewOpenAI(cfg config.AIConfig, log *zap.Logger) *OpenAI {
	return newOpenAICompatible("openai", cfg, defaultOpenAIModel, "", true, log)
}

// NewGroq uses Groq's OpenAI-compatible API.
func NewGroq(cfg config.AIConfig, log *zap.Logger) *OpenAI {
	return newOpenAICompatible("groq", cfg, defaultGroqModel, groqBaseURL, false, log)
}

func newOpenAICompatible(name string, cfg config.AIConfig, model, baseURL string, nativeSchema bool, log *zap.Logger) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		model = cfg.Model
	}
	return &OpenAI{
		client:       openai.NewClientWithConfig(clientCfg),
		name:         name,
		model:        model,
		nativeSchema: nativeSchema,
		maxTokens:    cfg.MaxTokens,
		timeout:      cfg.Timeout,
		logger:       log,
	}
}

func (o *OpenAI) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model:     o.model,
		Messages:  messages(req.System, req.Prompt),
		MaxTokens: o.maxTokens,
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}
	if req.Temperature != nil {
		chatReq.Temperature = wireTemperature(*req.Temperature)
	}

	return o.complete(ctx, chatReq)
}

func (o *OpenAI) GenerateObject(ctx context.Context, req ObjectRequest, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model:       o.model,
		MaxTokens:   o.maxTokens,
		Temperature: wireTemperature(0),
	}
	if o.nativeSchema {
		chatReq.Messages = messages(req.System, req.Prompt)
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Name,
				Schema: req.Schema,
			},
		}
	} else {
		system := strings.TrimSpace(req.System + "\n\n" + schemaInstruction(req.Schema))
		chatReq.Messages = messages(system, req.Prompt)
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	raw, err := o.complete(ctx, chatReq)
	if err != nil {
		return err
	}
	if err := decodeObject(raw, out); err != nil {
		o.logger.Warn("object decode failed",
			zap.String("provider", o.name),
			zap.String("schema", req.Name),
			zap.String("response", raw),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (o *OpenAI) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", o.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices returned", o.name)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

// wireTemperature keeps zero on the wire; go-openai omits a 0 temperature,
// which providers read as their default of 1.
func wireTemperature(t float32) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

func messages(system, prompt string) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	return append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})
}
