// Package ats scores resume text for applicant-tracking-system compatibility.
package ats

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhishek622/careercraft/internal/ai"
	"github.com/abhishek622/careercraft/pkg/model"
	"go.uber.org/zap"
)

// maxPromptChars bounds the resume text sent to the model.
const maxPromptChars = 15000

const systemPrompt = `You are an expert ATS (Applicant Tracking System) resume reviewer.

Evaluate how well the resume would pass automated ATS filters: keyword coverage,
section structure, clear job titles and dates, quantified achievements, and
formatting that parsers can read.

Rules:
- "score" is an integer from 0 to 100.
- "suggestions" holds 1 to 6 short, concrete, actionable improvements, most important first.
- Base every suggestion only on the provided text. Never invent experience.`

// ScoreSchema is the object the model must return.
var ScoreSchema = &ai.Schema{
	Type:     ai.TypeObject,
	Required: []string{"score", "suggestions"},
	Properties: map[string]*ai.Schema{
		"score": {
			Type:        ai.TypeInteger,
			Description: "ATS compatibility score",
			Minimum:     ai.Float(0),
			Maximum:     ai.Float(100),
		},
		"suggestions": {
			Type:        ai.TypeArray,
			Description: "actionable improvements, most important first",
			Items:       &ai.Schema{Type: ai.TypeString},
			MinItems:    ai.Int(1),
			MaxItems:    ai.Int(6),
		},
	},
}

type Scorer struct {
	gen    ai.Generator
	logger *zap.Logger
}

func NewScorer(gen ai.Generator, logger *zap.Logger) *Scorer {
	return &Scorer{gen: gen, logger: logger}
}

// Score asks the model for a schema-constrained score and shapes it for display.
// Callers validate the minimum text length before calling.
func (s *Scorer) Score(ctx context.Context, text string) (*model.ScoreRes, error) {
	var result model.ScoreResult
	req := ai.ObjectRequest{
		Name:   "ats_score",
		System: systemPrompt,
		Prompt: buildPrompt(text),
		Schema: ScoreSchema,
	}
	if err := s.gen.GenerateObject(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("ats score: %w", err)
	}

	res := Shape(result)
	s.logger.Debug("ats_score: scored",
		zap.Int("score", res.ATSScore),
		zap.Int("suggestions", len(res.Suggestions)),
		zap.Int("text_chars", utf8.RuneCountInString(text)),
	)
	return res, nil
}

// Shape converts the model object to the response, keeping the first
// MaxDisplayedSuggestions suggestions.
func Shape(result model.ScoreResult) *model.ScoreRes {
	n := len(result.Suggestions)
	if n > model.MaxDisplayedSuggestions {
		n = model.MaxDisplayedSuggestions
	}
	suggestions := make([]string, 0, n)
	for _, sg := range result.Suggestions[:n] {
		suggestions = append(suggestions, strings.TrimSpace(sg))
	}
	var score int
	if result.Score != nil {
		score = *result.Score
	}
	return &model.ScoreRes{
		ATSScore:    score,
		Suggestions: suggestions,
	}
}

func buildPrompt(text string) string {
	text = strings.ToValidUTF8(text, "�")
	if utf8.RuneCountInString(text) > maxPromptChars {
		text = string([]rune(text)[:maxPromptChars]) + "\n...[resume truncated for length]"
	}
	return fmt.Sprintf("Score this resume and list improvements.\n\nRESUME START:\n%s\nRESUME END", text)
}
