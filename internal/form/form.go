package form

import (
	"homeprice/pkg/types"
)

// Form holds the raw text of every field plus its current feedback.
// It is not safe for concurrent use.
type Form struct {
	values   []string
	feedback []Feedback
}

// New returns a form holding the initial value of every field.
func New() *Form {
	f := &Form{
		values:   make([]string, len(Fields)),
		feedback: make([]Feedback, len(Fields)),
	}
	f.Reset()
	return f
}

// Reset restores initial values and clears all feedback.
func (f *Form) Reset() {
	for i, fd := range Fields {
		f.values[i] = fd.Initial()
		f.feedback[i] = FeedbackNeutral
	}
}

// Input stores raw as the value of key and recomputes its feedback.
func (f *Form) Input(key, raw string) (Feedback, error) {
	i, ok := fieldIndex[key]
	if !ok {
		return FeedbackNeutral, unknownFieldError{key: key}
	}
	return f.SetAt(i, raw), nil
}

// SetAt stores raw as the value of Fields[i] and returns its feedback.
func (f *Form) SetAt(i int, raw string) Feedback {
	f.values[i] = raw
	f.feedback[i] = Fields[i].Check(raw)
	return f.feedback[i]
}

// Blur applies the focus-lost rule to key.
func (f *Form) Blur(key string) Feedback {
	i, ok := fieldIndex[key]
	if !ok {
		return FeedbackNeutral
	}
	f.feedback[i] = Fields[i].Blur(f.values[i], f.feedback[i])
	return f.feedback[i]
}

// Value returns the raw text of key.
func (f *Form) Value(key string) string {
	if i, ok := fieldIndex[key]; ok {
		return f.values[i]
	}
	return ""
}

// Feedback returns the current feedback of key.
func (f *Form) Feedback(key string) Feedback {
	if i, ok := fieldIndex[key]; ok {
		return f.feedback[i]
	}
	return FeedbackNeutral
}

// Values returns a copy of every raw value keyed by field.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(Fields))
	for i, fd := range Fields {
		out[fd.Key] = f.values[i]
	}
	return out
}

// Request builds the outgoing request from the current values. See
// BuildRequest.
func (f *Form) Request() (types.PredictRequest, []string) {
	return BuildRequest(f.Values())
}

// BuildRequest parses every schema field out of values. Fields that are
// missing or do not parse stay nil in the request and are returned in
// schema order; feedback never blocks building. Keys outside the schema
// are ignored.
func BuildRequest(values map[string]string) (types.PredictRequest, []string) {
	var req types.PredictRequest
	var unparsed []string
	for _, fd := range Fields {
		raw := values[fd.Key]
		if fd.Kind == KindFloat {
			v, ok := ParseFloat(raw)
			if !ok {
				unparsed = append(unparsed, fd.Key)
				continue
			}
			*floatSlot(&req, fd.Key) = &v
			continue
		}
		v, ok := ParseInt(raw)
		if !ok {
			unparsed = append(unparsed, fd.Key)
			continue
		}
		*intSlot(&req, fd.Key) = &v
	}
	return req, unparsed
}

func floatSlot(r *types.PredictRequest, key string) **float64 {
	switch key {
	case "size_sqft":
		return &r.SizeSqFt
	case "price_per_sqft":
		return &r.PricePerSqFt
	}
	panic("form: no float field " + key)
}

func intSlot(r *types.PredictRequest, key string) **int {
	switch key {
	case "property_type":
		return &r.PropertyType
	case "bhk":
		return &r.BHK
	case "furnished_status":
		return &r.FurnishedStatus
	case "total_floors":
		return &r.TotalFloors
	case "age_of_property":
		return &r.AgeOfProperty
	case "nearby_schools":
		return &r.NearbySchools
	case "nearby_hospitals":
		return &r.NearbyHospitals
	case "public_transport":
		return &r.PublicTransport
	case "parking_space":
		return &r.ParkingSpace
	case "security":
		return &r.Security
	case "amenities":
		return &r.Amenities
	case "facing":
		return &r.Facing
	case "owner_type":
		return &r.OwnerType
	case "availability_status":
		return &r.AvailabilityStatus
	}
	panic("form: no int field " + key)
}
