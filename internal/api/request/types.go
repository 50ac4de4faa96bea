package request

// CommandRequest is the request body for sending a gameplay command
type CommandRequest struct {
	Command string `json:"command"`
}

// SubmitScoreRequest is the request body for submitting a final result
type SubmitScoreRequest struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	Level  int    `json:"level"`
	Lines  int    `json:"lines"`
}
