// Package form describes the 16-field property form: its schema, the
// number parsing rules applied to raw input, advisory range feedback, and
// assembly of the outgoing prediction request.
package form

// Kind is the numeric type a field is parsed into.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

func (k Kind) String() string {
	if k == KindFloat {
		return "float"
	}
	return "int"
}

// Widget is the input control a field is edited with.
type Widget int

const (
	WidgetNumber Widget = iota
	WidgetSelect
)

// Option is one choice of a select field.
type Option struct {
	Value int
	Label string
}

// Field is the static description of one form input.
type Field struct {
	Key    string
	Label  string
	Kind   Kind
	Widget Widget
	// Min and Max bound number fields. Select fields ignore them.
	Min, Max float64
	// Step is the value granularity for number fields; 0 means any.
	Step    float64
	Options []Option
}

// Initial returns the value the field holds after a reset: the first
// option of a select, empty for a number input.
func (f Field) Initial() string {
	if f.Widget == WidgetSelect && len(f.Options) > 0 {
		return itoa(f.Options[0].Value)
	}
	return ""
}

// OptionLabel returns the label of the option whose value is raw.
func (f Field) OptionLabel(raw string) (string, bool) {
	v, ok := ParseInt(raw)
	if !ok {
		return "", false
	}
	for _, o := range f.Options {
		if o.Value == v {
			return o.Label, true
		}
	}
	return "", false
}

func yesNo() []Option { return []Option{{0, "No"}, {1, "Yes"}} }

// Fields lists the form inputs in request order.
var Fields = []Field{
	{Key: "property_type", Label: "Property Type", Kind: KindInt, Widget: WidgetSelect,
		Options: []Option{{0, "Apartment"}, {1, "Independent House"}, {2, "Villa"}}},
	{Key: "bhk", Label: "BHK", Kind: KindInt, Widget: WidgetNumber, Min: 1, Max: 10, Step: 1},
	{Key: "size_sqft", Label: "Size (sq ft)", Kind: KindFloat, Widget: WidgetNumber, Min: 100, Max: 10000},
	{Key: "price_per_sqft", Label: "Price per sq ft", Kind: KindFloat, Widget: WidgetNumber, Min: 0, Max: 100000},
	{Key: "furnished_status", Label: "Furnished Status", Kind: KindInt, Widget: WidgetSelect,
		Options: []Option{{0, "Unfurnished"}, {1, "Semi-furnished"}, {2, "Furnished"}}},
	{Key: "total_floors", Label: "Total Floors", Kind: KindInt, Widget: WidgetNumber, Min: 1, Max: 50, Step: 1},
	{Key: "age_of_property", Label: "Age of Property (years)", Kind: KindInt, Widget: WidgetNumber, Min: 0, Max: 100, Step: 1},
	{Key: "nearby_schools", Label: "Nearby Schools", Kind: KindInt, Widget: WidgetNumber, Min: 0, Max: 20, Step: 1},
	{Key: "nearby_hospitals", Label: "Nearby Hospitals", Kind: KindInt, Widget: WidgetNumber, Min: 0, Max: 20, Step: 1},
	{Key: "public_transport", Label: "Public Transport", Kind: KindInt, Widget: WidgetSelect,
		Options: []Option{{0, "Low"}, {1, "Medium"}, {2, "High"}}},
	{Key: "parking_space", Label: "Parking Space", Kind: KindInt, Widget: WidgetSelect, Options: yesNo()},
	{Key: "security", Label: "Security", Kind: KindInt, Widget: WidgetSelect, Options: yesNo()},
	{Key: "amenities", Label: "Amenities", Kind: KindInt, Widget: WidgetSelect,
		Options: []Option{{0, "Basic"}, {1, "Standard"}, {2, "Premium"}, {3, "Luxury"}}},
	{Key: "facing", Label: "Facing", Kind: KindInt, Widget: WidgetSelect,
		Options: []Option{{0, "North"}, {1, "South"}, {2, "East"}, {3, "West"}}},
	{Key: "owner_type", Label: "Owner Type", Kind: KindInt, Widget: WidgetSelect,
		Options: []Option{{0, "Owner"}, {1, "Builder"}, {2, "Broker"}}},
	{Key: "availability_status", Label: "Availability", Kind: KindInt, Widget: WidgetSelect,
		Options: []Option{{0, "Ready to Move"}, {1, "Under Construction"}}},
}

var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(Fields))
	for i, f := range Fields {
		m[f.Key] = i
	}
	return m
}()

// Lookup returns the field with the given JSON key.
func Lookup(key string) (Field, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return Field{}, false
	}
	return Fields[i], true
}
