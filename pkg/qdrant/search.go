package qdrant

import (
	"context"

	pb "github.com/qdrant/go-client/qdrant"
)

// Search performs a vector similarity search.
func (c *qdrantImpl) Search(ctx context.Context, params SearchParams) ([]SearchResult, error) {
	if params.Collection == "" {
		return nil, ErrEmptyCollection
	}
	if len(params.Vector) == 0 {
		return nil, ErrInvalidVector
	}
	limit := params.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	req := &pb.SearchPoints{
		CollectionName: params.Collection,
		Vector:         params.Vector,
		Limit:          limit,
		Filter:         params.Filter,
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{
				Enable: true,
			},
		},
	}
	if params.ScoreThreshold > 0 {
		threshold := params.ScoreThreshold
		req.ScoreThreshold = &threshold
	}

	resp, err := c.pointsClient.Search(ctx, req)
	if err != nil {
		return nil, WrapError(err, "failed to search")
	}

	results := make([]SearchResult, 0, len(resp.Result))
	for _, hit := range resp.Result {
		payload := make(map[string]interface{})
		for key, value := range hit.Payload {
			payload[key] = valueToInterface(value)
		}

		var id string
		if hit.Id != nil {
			id = hit.Id.GetUuid()
		}

		results = append(results, SearchResult{
			ID:      id,
			Score:   hit.Score,
			Payload: payload,
		})
	}

	return results, nil
}

// valueToInterface converts a qdrant payload Value into a native Go value.
func valueToInterface(v *pb.Value) interface{} {
	if v == nil {
		return nil
	}
	switch kind := v.Kind.(type) {
	case *pb.Value_NullValue:
		return nil
	case *pb.Value_DoubleValue:
		return kind.DoubleValue
	case *pb.Value_IntegerValue:
		return kind.IntegerValue
	case *pb.Value_StringValue:
		return kind.StringValue
	case *pb.Value_BoolValue:
		return kind.BoolValue
	case *pb.Value_StructValue:
		fields := kind.StructValue.GetFields()
		m := make(map[string]interface{}, len(fields))
		for key, value := range fields {
			m[key] = valueToInterface(value)
		}
		return m
	case *pb.Value_ListValue:
		values := kind.ListValue.GetValues()
		list := make([]interface{}, 0, len(values))
		for _, value := range values {
			list = append(list, valueToInterface(value))
		}
		return list
	default:
		return nil
	}
}
