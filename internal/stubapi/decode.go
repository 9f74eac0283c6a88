package stubapi

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"homeprice/internal/form"
)

// serverDefaults are the values used for fields absent from the body.
var serverDefaults = map[string]float64{
	"property_type":       0,
	"bhk":                 2,
	"size_sqft":           1000,
	"price_per_sqft":      5000,
	"furnished_status":    0,
	"total_floors":        5,
	"age_of_property":     5,
	"nearby_schools":      2,
	"nearby_hospitals":    1,
	"public_transport":    1,
	"parking_space":       1,
	"security":            1,
	"amenities":           1,
	"facing":              0,
	"owner_type":          0,
	"availability_status": 0,
}

// decodeFeatures coerces a request body into raw field values. Absent
// fields take serverDefaults; a field that is present but null, or a
// string that is not a number of the field's kind, is an error. Integer
// fields truncate numeric input toward zero.
func decodeFeatures(body map[string]json.RawMessage) ([16]float64, error) {
	var raw [16]float64
	for i, f := range form.Fields {
		msg, ok := body[f.Key]
		if !ok {
			raw[i] = serverDefaults[f.Key]
			continue
		}
		v, err := coerce(f, msg)
		if err != nil {
			return raw, fmt.Errorf("%s: %w", f.Key, err)
		}
		raw[i] = v
	}
	return raw, nil
}

func coerce(f form.Field, msg json.RawMessage) (float64, error) {
	var v any
	if err := json.Unmarshal(msg, &v); err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%s() argument must be a string or a number, not null", f.Kind)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case float64:
		if f.Kind == form.KindInt {
			return math.Trunc(x), nil
		}
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		if f.Kind == form.KindInt {
			n, err := strconv.Atoi(s)
			if err != nil {
				return 0, fmt.Errorf("invalid literal for int(): %q", x)
			}
			return float64(n), nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("could not convert string to float: %q", x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported value %s", string(msg))
	}
}
