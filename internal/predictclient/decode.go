package predictclient

import (
	"bytes"
	"encoding/json"
	"errors"

	"homeprice/pkg/types"
)

var (
	errNotJSON  = errors.New("body is not JSON")
	errNullBody = errors.New("null body")
)

// decodePredict reads a /predict body field by field. Only a body that is
// not JSON at all, or is JSON null, is a DecodeError. Any other JSON value
// yields a response: a non-object or a success that is not true is an
// application failure, and a field of the wrong type is left at its zero
// value without hiding the others.
func decodePredict(status int, b []byte) (types.PredictResponse, error) {
	var out types.PredictResponse
	if !json.Valid(b) {
		return out, &DecodeError{Status: status, Err: errNotJSON}
	}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return out, &DecodeError{Status: status, Err: errNullBody}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return out, nil
	}
	field(fields, "success", &out.Success)
	field(fields, "predicted_price", &out.PredictedPrice)
	field(fields, "predicted_price_crores", &out.PredictedPriceCrores)
	field(fields, "confidence_lower", &out.ConfidenceLower)
	field(fields, "confidence_upper", &out.ConfidenceUpper)
	field(fields, "features_used", &out.FeaturesUsed)
	field(fields, "model_accuracy", &out.ModelAccuracy)
	field(fields, "error", &out.Error)
	return out, nil
}

func field(fields map[string]json.RawMessage, key string, v any) {
	if raw, ok := fields[key]; ok {
		_ = json.Unmarshal(raw, v)
	}
}
