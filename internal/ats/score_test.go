package ats

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/abhishek622/careercraft/internal/ai"
	"github.com/abhishek622/careercraft/pkg/model"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	result model.ScoreResult
	err    error
	req    ai.ObjectRequest
	calls  int
}

func (f *fakeGenerator) GenerateText(context.Context, ai.TextRequest) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeGenerator) GenerateObject(_ context.Context, req ai.ObjectRequest, out interface{}) error {
	f.calls++
	f.req = req
	if f.err != nil {
		return f.err
	}
	*(out.(*model.ScoreResult)) = f.result
	return nil
}

func intPtr(v int) *int { return &v }

func TestShape_TruncatesToFour(t *testing.T) {
	res := Shape(model.ScoreResult{
		Score:       intPtr(64),
		Suggestions: []string{"one", " two ", "three", "four", "five", "six"},
	})
	want := []string{"one", "two", "three", "four"}
	if res.ATSScore != 64 {
		t.Fatalf("unexpected score %d", res.ATSScore)
	}
	if !reflect.DeepEqual(res.Suggestions, want) {
		t.Fatalf("Suggestions = %v, want %v", res.Suggestions, want)
	}
}

func TestShape_KeepsShortLists(t *testing.T) {
	res := Shape(model.ScoreResult{Score: intPtr(90), Suggestions: []string{"only"}})
	if len(res.Suggestions) != 1 || res.Suggestions[0] != "only" {
		t.Fatalf("unexpected suggestions %v", res.Suggestions)
	}
}

func TestScorer_Score(t *testing.T) {
	gen := &fakeGenerator{result: model.ScoreResult{
		Score:       intPtr(77),
		Suggestions: []string{"a", "b", "c", "d", "e"},
	}}
	s := NewScorer(gen, zap.NewNop())

	res, err := s.Score(context.Background(), strings.Repeat("resume ", 10))
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected one generator call, got %d", gen.calls)
	}
	if gen.req.Schema != ScoreSchema || gen.req.Name != "ats_score" {
		t.Fatalf("unexpected object request %+v", gen.req)
	}
	if !strings.Contains(gen.req.Prompt, "resume resume") {
		t.Fatalf("prompt does not carry resume text: %q", gen.req.Prompt)
	}
	if res.ATSScore != 77 || len(res.Suggestions) != model.MaxDisplayedSuggestions {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestScorer_ScoreError(t *testing.T) {
	gen := &fakeGenerator{err: ai.ErrSchemaViolation}
	s := NewScorer(gen, zap.NewNop())

	_, err := s.Score(context.Background(), strings.Repeat("x", 40))
	if !errors.Is(err, ai.ErrSchemaViolation) {
		t.Fatalf("expected wrapped ErrSchemaViolation, got %v", err)
	}
}

func TestBuildPrompt_Truncates(t *testing.T) {
	long := strings.Repeat("é", maxPromptChars+50)
	p := buildPrompt(long)
	if !strings.Contains(p, "[resume truncated for length]") {
		t.Fatal("expected truncation marker")
	}
	if strings.Count(p, "é") != maxPromptChars {
		t.Fatalf("expected %d runes of resume, got %d", maxPromptChars, strings.Count(p, "é"))
	}
}
