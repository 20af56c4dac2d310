package usecase

import (
	"support-srv/internal/model"
)

func payloadString(payload map[string]interface{}, key, fallback string) string {
	if v, ok := payload[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func payloadInt(payload map[string]interface{}, key string, fallback int) int {
	switch v := payload[key].(type) {
	case float64:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

func questionFromPayload(id string, payload map[string]interface{}, score float32) *model.Question {
	return &model.Question{
		ID:            id,
		Text:          payloadString(payload, "question_text", ""),
		ResponseType:  payloadString(payload, "response_type", model.ResponseTypeText),
		SubCategoryID: payloadString(payload, "sub_category_id", ""),
		BatchID:       payloadInt(payload, "batch_id", 0),
		Cluster:       payloadString(payload, "cluster", ""),
		ScaleMin:      payloadInt(payload, "scale_min", 0),
		ScaleMax:      payloadInt(payload, "scale_max", 0),
		Score:         float64(score),
	}
}

func suggestionFromPayload(id string, payload map[string]interface{}, score float32) model.Suggestion {
	return model.Suggestion{
		ID:          id,
		Title:       payloadString(payload, "title", ""),
		Description: payloadString(payload, "description", ""),
		Cluster:     payloadString(payload, "cluster", ""),
		Score:       float64(score),
	}
}
