package ai

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhishek622/careercraft/pkg/model"
	"google.golang.org/genai"
)

type scored struct {
	Score       int      `json:"score" validate:"min=0,max=100"`
	Suggestions []string `json:"suggestions" validate:"min=1,max=6"`
}

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Sure! Here it is: {\"a\":1} hope that helps", `{"a":1}`},
		{"whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
		{"no json", "nothing here", "nothing here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanJSON(tc.in); got != tc.want {
				t.Fatalf("CleanJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeObject(t *testing.T) {
	var out scored
	if err := decodeObject("```json\n{\"score\": 81, \"suggestions\": [\"Quantify impact\"]}\n```", &out); err != nil {
		t.Fatalf("decodeObject returned error: %v", err)
	}
	if out.Score != 81 || len(out.Suggestions) != 1 {
		t.Fatalf("unexpected decoded value %+v", out)
	}
}

func TestDecodeObject_Errors(t *testing.T) {
	var out scored

	if err := decodeObject("   ", &out); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}

	if err := decodeObject("not json", &out); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}

	err := decodeObject(`{"score": 140, "suggestions": ["x"]}`, &out)
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
	if !strings.Contains(err.Error(), "score must be at most 100") {
		t.Fatalf("expected field detail in error, got %v", err)
	}
}

func TestDecodeObject_ScoreResult(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr string
	}{
		"missing score":    {`{"suggestions":["Add metrics"]}`, "score is required"},
		"null score":       {`{"score":null,"suggestions":["Add metrics"]}`, "score is required"},
		"negative":         {`{"score":-1,"suggestions":["Add metrics"]}`, "score must be at least 0"},
		"no suggestions":   {`{"score":50,"suggestions":[]}`, "suggestions must contain at least 1 items"},
		"blank suggestion": {`{"score":50,"suggestions":["  "]}`, "must not be empty"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var out model.ScoreResult
			err := decodeObject(tc.raw, &out)
			if !errors.Is(err, ErrSchemaViolation) {
				t.Fatalf("expected ErrSchemaViolation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	var out model.ScoreResult
	if err := decodeObject(`{"score":0,"suggestions":["Start over"]}`, &out); err != nil {
		t.Fatalf("explicit zero score must be accepted: %v", err)
	}
	if out.Score == nil || *out.Score != 0 {
		t.Fatalf("unexpected score %v", out.Score)
	}
}

func testSchema() *Schema {
	return &Schema{
		Type:     TypeObject,
		Required: []string{"score", "suggestions"},
		Properties: map[string]*Schema{
			"score": {Type: TypeInteger, Minimum: Float(0), Maximum: Float(100)},
			"suggestions": {
				Type:     TypeArray,
				Items:    &Schema{Type: TypeString},
				MinItems: Int(1),
				MaxItems: Int(6),
			},
		},
	}
}

func TestSchema_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(testSchema())
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	if decoded["type"] != "object" {
		t.Fatalf("unexpected type %v", decoded["type"])
	}
	if decoded["additionalProperties"] != false {
		t.Fatalf("object schema should close additional properties: %s", b)
	}
	props := decoded["properties"].(map[string]interface{})
	score := props["score"].(map[string]interface{})
	if score["maximum"] != float64(100) {
		t.Fatalf("unexpected score maximum %v", score["maximum"])
	}
	if _, ok := score["additionalProperties"]; ok {
		t.Fatal("non-object schema should not carry additionalProperties")
	}
	sugg := props["suggestions"].(map[string]interface{})
	if sugg["maxItems"] != float64(6) {
		t.Fatalf("unexpected maxItems %v", sugg["maxItems"])
	}
}

func TestSchema_ToGenai(t *testing.T) {
	g := testSchema().toGenai()
	if g.Type != genai.TypeObject {
		t.Fatalf("unexpected root type %v", g.Type)
	}
	score := g.Properties["score"]
	if score.Type != genai.TypeInteger || *score.Maximum != 100 || *score.Minimum != 0 {
		t.Fatalf("unexpected score schema %+v", score)
	}
	sugg := g.Properties["suggestions"]
	if sugg.Type != genai.TypeArray || sugg.Items.Type != genai.TypeString {
		t.Fatalf("unexpected suggestions schema %+v", sugg)
	}
	if *sugg.MinItems != 1 || *sugg.MaxItems != 6 {
		t.Fatalf("unexpected item bounds %d..%d", *sugg.MinItems, *sugg.MaxItems)
	}
	if len(g.PropertyOrdering) != 2 || g.PropertyOrdering[0] != "score" {
		t.Fatalf("unexpected property ordering %v", g.PropertyOrdering)
	}
}

func TestSchemaInstruction(t *testing.T) {
	got := schemaInstruction(testSchema())
	if !strings.Contains(got, `"suggestions"`) || !strings.HasPrefix(got, "Return ONLY") {
		t.Fatalf("unexpected instruction %q", got)
	}
}
