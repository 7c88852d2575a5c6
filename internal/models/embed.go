package models

// BatchEmbedRequest is the validated payload for POST /embed.
type BatchEmbedRequest struct {
	Texts []string `json:"texts"`
}

// BatchEmbedResponse carries one vector per input text, in input order.
type BatchEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// SingleEmbedRequest is the validated payload for POST /embed/single.
type SingleEmbedRequest struct {
	Text string `json:"text"`
}

// SingleEmbedResponse carries the vector for a single text.
type SingleEmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// HealthResponse is the fixed body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every 4xx / 5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
