package client

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/voyago/rides-go-sdk/internal/common/logger"
)

// Decode maps a JSON payload into T, best effort. A top-level decode failure
// yields nil; a field-level mismatch leaves that field at its zero value and
// keeps whatever else decoded. Decode problems are logged rather than
// returned so the success path of callers stays simple.
func Decode[T any](log *logger.Logger, raw []byte) *T {
	if len(raw) == 0 {
		return nil
	}

	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		log.Warn("Discarding undecodable payload", zap.Error(err), zap.Int("size", len(raw)))
		return nil
	}

	result := new(T)
	if !decodeWeak(log, root, result) {
		return nil
	}
	return result
}

// DecodeList extracts the named list field from the payload and maps each
// element into T. A missing field, a wrong-shaped root, or an undecodable
// payload all yield an empty slice, never an error.
func DecodeList[T any](log *logger.Logger, raw []byte, field string) []*T {
	items := make([]*T, 0)
	if len(raw) == 0 {
		return items
	}

	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		log.Warn("Discarding undecodable payload", zap.Error(err), zap.Int("size", len(raw)))
		return items
	}

	list, ok := root[field].([]any)
	if !ok {
		return items
	}

	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		value := new(T)
		if decodeWeak(log, obj, value) {
			items = append(items, value)
		}
	}
	return items
}

// decodeWeak runs a tolerant mapstructure decode keyed on json tags.
// mapstructure keeps decoding past per-field failures, so a partially
// populated result still counts as success.
func decodeWeak(log *logger.Logger, input any, result any) bool {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		log.Warn("Failed to build decoder", zap.Error(err))
		return false
	}

	if err := decoder.Decode(input); err != nil {
		if _, ok := input.(map[string]any); ok {
			// Field-level failures; the rest of the value decoded.
			log.Warn("Partial decode", zap.Error(err))
			return true
		}
		log.Warn("Discarding payload with unexpected root shape", zap.Error(err))
		return false
	}
	return true
}
