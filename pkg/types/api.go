package types

// PredictRequest is the 16-field property record sent to POST /predict.
// A nil field is an input that did not parse as a number; it encodes as
// JSON null.
type PredictRequest struct {
	// Property category code (0=Apartment, 1=Independent House, 2=Villa).
	// example: 0
	PropertyType *int `json:"property_type" example:"0"`
	// Bedrooms, hall and kitchen count.
	// example: 2
	BHK *int `json:"bhk" example:"2"`
	// Built-up area in square feet.
	// example: 1000
	SizeSqFt *float64 `json:"size_sqft" example:"1000"`
	// Price per square foot.
	// example: 5000
	PricePerSqFt *float64 `json:"price_per_sqft" example:"5000"`
	// Furnishing code (0=Unfurnished, 1=Semi-furnished, 2=Furnished).
	// example: 0
	FurnishedStatus *int `json:"furnished_status" example:"0"`
	// Floors in the building.
	// example: 5
	TotalFloors *int `json:"total_floors" example:"5"`
	// Age in years.
	// example: 5
	AgeOfProperty *int `json:"age_of_property" example:"5"`
	// Schools nearby.
	// example: 2
	NearbySchools *int `json:"nearby_schools" example:"2"`
	// Hospitals nearby.
	// example: 1
	NearbyHospitals *int `json:"nearby_hospitals" example:"1"`
	// Public transport accessibility code (0=Low, 1=Medium, 2=High).
	// example: 1
	PublicTransport *int `json:"public_transport" example:"1"`
	// Parking available (0=No, 1=Yes).
	// example: 1
	ParkingSpace *int `json:"parking_space" example:"1"`
	// Security available (0=No, 1=Yes).
	// example: 1
	Security *int `json:"security" example:"1"`
	// Amenities code.
	// example: 1
	Amenities *int `json:"amenities" example:"1"`
	// Facing code (0=North, 1=South, 2=East, 3=West).
	// example: 0
	Facing *int `json:"facing" example:"0"`
	// Owner type code (0=Owner, 1=Builder, 2=Broker).
	// example: 0
	OwnerType *int `json:"owner_type" example:"0"`
	// Availability code (0=Ready to move, 1=Under construction).
	// example: 0
	AvailabilityStatus *int `json:"availability_status" example:"0"`
}

// PredictResponse is the JSON body returned by POST /predict regardless of
// HTTP status. Only one of the payload fields or Error is meaningful, gated
// by Success.
type PredictResponse struct {
	// True when the payload fields are valid.
	// example: true
	Success bool `json:"success" example:"true"`
	// Predicted price in lakhs.
	// example: 52.5
	PredictedPrice float64 `json:"predicted_price" example:"52.5"`
	// Predicted price in crores.
	// example: 0.53
	PredictedPriceCrores float64 `json:"predicted_price_crores" example:"0.53"`
	// Lower bound of the confidence band in lakhs.
	// example: 49.88
	ConfidenceLower float64 `json:"confidence_lower" example:"49.88"`
	// Upper bound of the confidence band in lakhs.
	// example: 55.13
	ConfidenceUpper float64 `json:"confidence_upper" example:"55.13"`
	// Number of model features (including engineered ones).
	// example: 19
	FeaturesUsed int `json:"features_used" example:"19"`
	// Reported model accuracy, informational.
	// example: 98.09%
	ModelAccuracy string `json:"model_accuracy,omitempty" example:"98.09%"`
	// Failure message when Success is false.
	Error string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// example: healthy
	Status       string `json:"status" example:"healthy"`
	ModelLoaded  bool   `json:"model_loaded" example:"true"`
	ScalerLoaded bool   `json:"scaler_loaded" example:"true"`
}

// ErrorResponse is a consistent JSON error payload for non-predict routes.
type ErrorResponse struct {
	// Error message.
	// example: not found
	Error string `json:"error" example:"not found"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
