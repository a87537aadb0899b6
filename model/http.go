package model

type AnalyzeRequestBody struct {
	Key          string `json:"key"`
	TicksPerBeat int    `json:"ticks_per_beat"`
	Voices       Voices `json:"voices"`
}

type AnalyzeResponse struct {
	ID          string   `json:"id"`
	Key         string   `json:"key"`
	Buckets     int      `json:"buckets"`
	Progression []string `json:"progression"`
}

type ErrorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"detail"`
}
