package model

// MaxDisplayedSuggestions caps the suggestions returned to clients.
const MaxDisplayedSuggestions = 4

// ScoreReq carries the resume text; shorter than 30 characters is rejected.
type ScoreReq struct {
	Text string `json:"text" binding:"min=30"`
}

// ScoreResult is the object the model is constrained to produce.
type ScoreResult struct {
	Score       *int     `json:"score" validate:"required,min=0,max=100"`
	Suggestions []string `json:"suggestions" validate:"min=1,max=6,dive,notblank"`
}

type ScoreRes struct {
	ATSScore    int      `json:"atsScore"`
	Suggestions []string `json:"suggestions"`
}
