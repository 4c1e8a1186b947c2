package model

type HealthRes struct {
	Status   string `json:"status"`
	Env      string `json:"env"`
	Provider string `json:"provider"`
}
