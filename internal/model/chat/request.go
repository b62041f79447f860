package chat

// DefaultModel is used when a request does not name a model.
const DefaultModel = "gpt-4"

// Request is the body of POST /api/chat.
type Request struct {
	Message string `json:"message"`
	Model   string `json:"model"`
}

// Response is the success body of POST /api/chat.
type Response struct {
	Response string `json:"response"`
}

// ModelInfo describes one selectable model returned by GET /api/models.
type ModelInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ModelList is the body of GET /api/models.
type ModelList struct {
	Models []ModelInfo `json:"models"`
}
