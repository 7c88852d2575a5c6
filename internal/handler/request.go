package handler

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/ahmednasr/embedding-server/internal/models"
	"github.com/ahmednasr/embedding-server/internal/service"
)

// parseBatchRequest validates a POST /embed body into a typed request.
//
//	{"texts": ["a", "b"]}
//
// A body that is not a JSON object, or lacks "texts", is reported as a
// missing field; a "texts" value that is not an array of strings is a type
// error. No limit is placed on the length of individual strings.
func parseBatchRequest(body []byte) (models.BatchEmbedRequest, error) {
	raw, err := lookupField(body, "texts")
	if err != nil {
		return models.BatchEmbedRequest{}, err
	}
	if firstByte(raw) != '[' {
		return models.BatchEmbedRequest{}, service.InvalidRequest("'texts' must be a list")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return models.BatchEmbedRequest{}, service.InvalidRequest("'texts' must be a list")
	}

	texts := make([]string, len(items))
	for i, item := range items {
		if firstByte(item) != '"' {
			return models.BatchEmbedRequest{}, service.InvalidRequest("'texts' must be a list of strings")
		}
		if err := json.Unmarshal(item, &texts[i]); err != nil {
			return models.BatchEmbedRequest{}, service.InvalidRequest("'texts' must be a list of strings")
		}
	}
	return models.BatchEmbedRequest{Texts: texts}, nil
}

// parseSingleRequest validates a POST /embed/single body.
//
//	{"text": "a"}
func parseSingleRequest(body []byte) (models.SingleEmbedRequest, error) {
	raw, err := lookupField(body, "text")
	if err != nil {
		return models.SingleEmbedRequest{}, err
	}
	if firstByte(raw) != '"' {
		return models.SingleEmbedRequest{}, service.InvalidRequest("'text' must be a string")
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return models.SingleEmbedRequest{}, service.InvalidRequest("'text' must be a string")
	}
	return models.SingleEmbedRequest{Text: text}, nil
}

// lookupField decodes body as a JSON object and returns the raw value of key.
func lookupField(body []byte, key string) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, service.InvalidRequest("Missing '%s' field", key)
	}
	raw, ok := fields[key]
	if !ok {
		return nil, service.InvalidRequest("Missing '%s' field", key)
	}
	return raw, nil
}

func firstByte(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
