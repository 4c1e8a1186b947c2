package chat

import (
	"context"
	"fmt"

	"github.com/abhishek622/careercraft/internal/ai"
)

const systemPrompt = `You are CareerCraft AI, a friendly career assistant. Help with resumes,
cover letters, interview preparation and job search questions. Be concise and practical.`

// Assistant answers single free-form prompts. There is no conversation memory.
type Assistant struct {
	gen         ai.Generator
	temperature float32
}

func NewAssistant(gen ai.Generator, temperature float32) *Assistant {
	return &Assistant{gen: gen, temperature: temperature}
}

func (a *Assistant) Ask(ctx context.Context, prompt string) (string, error) {
	text, err := a.gen.GenerateText(ctx, ai.TextRequest{
		System:      systemPrompt,
		Prompt:      prompt,
		Temperature: ai.Temperature(a.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat ask: %w", err)
	}
	return text, nil
}
