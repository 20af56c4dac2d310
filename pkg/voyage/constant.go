package voyage

const (
	// Endpoint is the Voyage embeddings API URL.
	Endpoint = "https://api.voyageai.com/v1/embeddings"

	// Model is the embedding model used for all requests.
	Model = "voyage-multilingual-2"
)

// VoyageConfig holds the configuration for the Voyage client
type VoyageConfig struct {
	APIKey string
}
