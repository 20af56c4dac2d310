package qdrant

import (
	"time"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
)

// Config holds Qdrant configuration
type Config struct {
	Host    string
	Port    int
	UseTLS  bool
	APIKey  string
	Timeout time.Duration
}

// SearchParams describes one similarity search.
type SearchParams struct {
	Collection     string
	Vector         []float32
	Filter         *pb.Filter
	Limit          uint64
	ScoreThreshold float32
}

// SearchResult represents a search result from Qdrant
type SearchResult struct {
	ID      string
	Score   float32
	Payload map[string]interface{}
}

// qdrantImpl implements IQdrant over gRPC.
type qdrantImpl struct {
	conn              *grpc.ClientConn
	pointsClient      pb.PointsClient
	collectionsClient pb.CollectionsClient
	defaultTimeout    time.Duration
}
