package models

// EstimateRequest is the input of the delivery-time estimator.
// Numeric fields are pointers so a missing field can be told apart
// from a legitimate zero.
type EstimateRequest struct {
	DeliveryPersonRating *float64 `json:"deliveryPersonRating"` // 1 to 5
	Distance             *float64 `json:"distance"`             // km
	PreparationTime      *float64 `json:"preparationTime"`      // minutes
	VehicleType          string   `json:"vehicleType"`          // "bike" or anything else
	OrderType            string   `json:"orderType,omitempty"`  // "normal" (default) or "delicate"
	WeatherCondition     string   `json:"weatherCondition"`
}

// Breakdown is the additive decomposition of an estimate. Each component
// is rounded to whole minutes and the components sum exactly to the
// estimated time.
type Breakdown struct {
	PreparationTime int `json:"preparationTime"`
	TravelTime      int `json:"travelTime"`
	WeatherDelay    int `json:"weatherDelay"`
	TrafficDelay    int `json:"trafficDelay"`
}

// EstimateFactors echoes the inputs the estimate was computed from.
type EstimateFactors struct {
	DeliveryPersonRating float64 `json:"deliveryPersonRating"`
	VehicleType          string  `json:"vehicleType"`
	Distance             float64 `json:"distance"`
	WeatherCondition     string  `json:"weatherCondition"`
}

// DeliveryEstimate is the estimator output. It is transient and never
// persisted alongside the order it accompanies.
type DeliveryEstimate struct {
	PredictionID  string          `json:"predictionId"`
	EstimatedTime int             `json:"estimatedTime"` // minutes
	Breakdown     Breakdown       `json:"breakdown"`
	Confidence    float64         `json:"confidence"`
	Factors       EstimateFactors `json:"factors"`
}

// BatchEstimateRequest is the body of POST /api/predict/batch.
type BatchEstimateRequest struct {
	Orders []EstimateRequest `json:"orders"`
}

// BatchEstimateResult is the per-item outcome of a batch prediction.
// Results are returned in input order; a failed item carries its error
// without affecting the rest of the batch.
type BatchEstimateResult struct {
	Index    int               `json:"index"`
	Success  bool              `json:"success"`
	Estimate *DeliveryEstimate `json:"estimate,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ModelInfo describes the (simulated) prediction model.
type ModelInfo struct {
	Name            string             `json:"name"`
	Version         string             `json:"version"`
	Type            string             `json:"type"`
	TrainedAt       string             `json:"trainedAt"`
	TrainingSamples int                `json:"trainingSamples"`
	Features        []string           `json:"features"`
	Metrics         map[string]float64 `json:"metrics"`
}
