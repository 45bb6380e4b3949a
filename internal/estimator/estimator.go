// Package estimator computes heuristic delivery-time estimates. The
// "model" is deliberate arithmetic, not statistics: a travel-time curve
// over distance, vehicle and courier rating, plus fixed weather and
// order-handling delays and a bounded random traffic component.
package estimator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quickbite/quickbite-api/internal/models"
)

const (
	minutesPerKm = 3.0

	// Bikes cut through traffic; everything else is slower in the city.
	speedFactorBike  = 1.2
	speedFactorOther = 0.8

	// Courier efficiency interpolates linearly from 0.7 at rating 1 to
	// 1.0 at rating 5.
	efficiencyFloor = 0.7
	efficiencySpan  = 0.3

	delicateOrderDelay = 3.0 // minutes
	trafficDelayCapMin = 10.0
)

// weatherDelays maps a weather condition to fixed extra minutes. Unknown
// conditions contribute no delay.
var weatherDelays = map[string]float64{
	"clear":      0,
	"cloudy":     1,
	"rainy":      3,
	"light_rain": 3,
	"stormy":     8,
	"heavy_rain": 8,
	"storm":      15,
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Estimator produces delivery-time estimates. The random source behind
// the traffic component is injected so tests can seed it; the zero
// latency is replaced in production with a small sleep simulating model
// inference time.
type Estimator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	latency time.Duration
}

// New creates an estimator with the given traffic-randomness seed and
// simulated inference latency.
func New(seed int64, latency time.Duration) *Estimator {
	return &Estimator{
		rng:     rand.New(rand.NewSource(seed)),
		latency: latency,
	}
}

// Estimate validates the request and computes the estimate. The breakdown
// components are rounded individually and summed, so they always add up
// to the estimated time exactly.
func (e *Estimator) Estimate(ctx context.Context, req models.EstimateRequest) (*models.DeliveryEstimate, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if e.latency > 0 {
		select {
		case <-time.After(e.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	rating := *req.DeliveryPersonRating
	distance := *req.Distance
	prep := math.Max(*req.PreparationTime, 0)

	speedFactor := speedFactorOther
	if req.VehicleType == "bike" {
		speedFactor = speedFactorBike
	}
	efficiency := efficiencyFloor + (rating-1)/4*efficiencySpan
	travel := distance * minutesPerKm / speedFactor / efficiency

	weather := weatherDelays[req.WeatherCondition]

	traffic := e.trafficDelay(distance)
	if req.OrderType == "delicate" {
		// Reported inside the traffic component to keep the published
		// four-field breakdown additive.
		traffic += delicateOrderDelay
	}

	breakdown := models.Breakdown{
		PreparationTime: int(math.Round(prep)),
		TravelTime:      int(math.Round(travel)),
		WeatherDelay:    int(math.Round(weather)),
		TrafficDelay:    int(math.Round(traffic)),
	}

	return &models.DeliveryEstimate{
		PredictionID:  uuid.New().String(),
		EstimatedTime: breakdown.PreparationTime + breakdown.TravelTime + breakdown.WeatherDelay + breakdown.TrafficDelay,
		Breakdown:     breakdown,
		Confidence:    confidence(rating, distance, req.WeatherCondition),
		Factors: models.EstimateFactors{
			DeliveryPersonRating: rating,
			VehicleType:          req.VehicleType,
			Distance:             distance,
			WeatherCondition:     req.WeatherCondition,
		},
	}, nil
}

// trafficDelay draws a uniform delay in [0, min(distance*0.5, 10)] minutes.
func (e *Estimator) trafficDelay(distance float64) float64 {
	bound := math.Min(distance*0.5, trafficDelayCapMin)
	if bound <= 0 {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64() * bound
}

// confidence is a rule-based score in [0.6, 0.95]: higher for mid-range
// courier ratings and short trips, lower in bad weather. Illustrative
// only, not a statistical quantity.
func confidence(rating, distance float64, weather string) float64 {
	score := 0.9
	if rating >= 3.5 && rating <= 4.5 {
		score += 0.05
	}
	if distance > 10 {
		score -= 0.1
	}
	switch weather {
	case "stormy", "heavy_rain", "storm":
		score -= 0.15
	case "rainy", "light_rain":
		score -= 0.05
	}
	return math.Min(0.95, math.Max(0.6, score))
}

func validate(req models.EstimateRequest) error {
	switch {
	case req.DeliveryPersonRating == nil:
		return &ValidationError{Field: "deliveryPersonRating", Message: "is required"}
	case *req.DeliveryPersonRating < 1 || *req.DeliveryPersonRating > 5:
		return &ValidationError{Field: "deliveryPersonRating", Message: "must be between 1 and 5"}
	case req.Distance == nil:
		return &ValidationError{Field: "distance", Message: "is required"}
	case *req.Distance < 0:
		return &ValidationError{Field: "distance", Message: "must not be negative"}
	case req.PreparationTime == nil:
		return &ValidationError{Field: "preparationTime", Message: "is required"}
	case *req.PreparationTime < 0:
		return &ValidationError{Field: "preparationTime", Message: "must not be negative"}
	case req.VehicleType == "":
		return &ValidationError{Field: "vehicleType", Message: "is required"}
	case req.WeatherCondition == "":
		return &ValidationError{Field: "weatherCondition", Message: "is required"}
	}
	return nil
}
