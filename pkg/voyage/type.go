package voyage

import pkghttp "support-srv/pkg/http"

// voyageImpl implements IVoyage using the Voyage AI API.
type voyageImpl struct {
	apiKey     string
	httpClient pkghttp.IClient
}

// Request defines the request body for Embedding API
type Request struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// Response defines the response body from Embedding API
type Response struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// Embedding represents a single embedding object
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// Usage represents token usage
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}
