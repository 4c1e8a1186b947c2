// Package ai adapts hosted generative-model providers to a single Generator
// interface with a free-text mode and a schema-constrained object mode.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhishek622/careercraft/internal/config"
	"github.com/abhishek622/careercraft/internal/validate"
	"go.uber.org/zap"
)

var (
	ErrEmptyResponse   = errors.New("empty response from model")
	ErrSchemaViolation = errors.New("model output does not match schema")
)

// Generator is implemented by every provider.
type Generator interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
	// GenerateObject decodes the model's structured output into out and
	// validates it with its `validate` struct tags.
	GenerateObject(ctx context.Context, req ObjectRequest, out interface{}) error
}

type TextRequest struct {
	System      string
	Prompt      string
	Temperature *float32
	MaxTokens   int
}

type ObjectRequest struct {
	Name   string
	System string
	Prompt string
	Schema *Schema
}

// Temperature returns a pointer for TextRequest.Temperature.
func Temperature(t float32) *float32 {
	return &t
}

// New builds the provider selected by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig, log *zap.Logger) (Generator, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGemini(ctx, cfg, log)
	case "openai":
		return NewOpenAI(cfg, log), nil
	case "groq":
		return NewGroq(cfg, log), nil
	case "anthropic":
		return NewAnthropic(cfg, log), nil
	}
	return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
}

// decodeObject parses raw model output into out and checks its constraints.
func decodeObject(raw string, out interface{}) error {
	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("failed to parse ai response: %w", err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s", ErrSchemaViolation, validate.Message(err))
	}
	return nil
}

// CleanJSON strips markdown code fences and any prose around the outermost JSON object.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	clean = strings.TrimSpace(clean)

	if strings.HasPrefix(clean, "{") || strings.HasPrefix(clean, "[") {
		return clean
	}

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end == -1 || start >= end {
		return clean
	}
	return clean[start : end+1]
}

// schemaInstruction is appended to prompts for providers without native schema support.
func schemaInstruction(s *Schema) string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return ""
	}
	return "Return ONLY a single valid JSON object, no markdown and no explanation, matching this JSON Schema:\n" + string(b)
}
