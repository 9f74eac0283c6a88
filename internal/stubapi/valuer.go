package stubapi

import (
	"errors"
	"math"
)

// Features is the 19-value vector a valuer sees: the 16 request fields in
// request order followed by the three engineered ones.
type Features struct {
	Raw                  [16]float64
	PricePerBHK          float64
	TotalNearbyAmenities float64
	AvgFloorHeight       float64
}

// Len is the number of features reported as features_used.
func (Features) Len() int { return 19 }

// Vector returns the features in model order.
func (f Features) Vector() []float64 {
	v := make([]float64, 0, f.Len())
	v = append(v, f.Raw[:]...)
	return append(v, f.PricePerBHK, f.TotalNearbyAmenities, f.AvgFloorHeight)
}

// Indexes into Features.Raw.
const (
	idxBHK             = 1
	idxSizeSqFt        = 2
	idxPricePerSqFt    = 3
	idxTotalFloors     = 5
	idxNearbySchools   = 7
	idxNearbyHospitals = 8
)

var errDivisionByZero = errors.New("division by zero")

// engineer derives price per BHK, total nearby amenities and average floor
// height from the raw fields.
func engineer(raw [16]float64) (Features, error) {
	f := Features{Raw: raw}
	bhk := raw[idxBHK]
	if bhk+1 == 0 {
		return f, errDivisionByZero
	}
	f.PricePerBHK = raw[idxPricePerSqFt] * bhk
	f.TotalNearbyAmenities = raw[idxNearbySchools] + raw[idxNearbyHospitals]
	f.AvgFloorHeight = raw[idxTotalFloors] / (bhk + 1)
	return f, nil
}

// Valuer turns a feature vector into a price in lakhs.
type Valuer interface {
	Value(f Features) (float64, error)
	Ready() bool
}

// AreaValuer is the development valuer: area times price per square foot,
// expressed in lakhs. It is deterministic and has no learned parameters.
type AreaValuer struct{}

func (AreaValuer) Ready() bool { return true }

func (AreaValuer) Value(f Features) (float64, error) {
	v := f.Raw[idxSizeSqFt] * f.Raw[idxPricePerSqFt] / 1e5
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("value out of range")
	}
	return v, nil
}

// round2 rounds to two decimals.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
