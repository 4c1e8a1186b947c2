package model

type ChatReq struct {
	Prompt string `json:"prompt" binding:"notblank"`
}

type ChatRes struct {
	Response string `json:"response"`
}
