package airquality

import (
	"math"
)

// Coefficients of the closed-form approximation.
const (
	pm25Weight = 1.35
	pm10Weight = 0.55

	windDispersion = 10.0

	humidityThreshold = 50.0
	humidityWeight    = 0.5

	inversionMinTemp = 5.0
	inversionMaxTemp = 20.0
	inversionBonus   = 18.0

	rushHourBonus = 20.0

	winterBonus = 40.0
	dustBonus   = 12.0
)

// ValidateReading checks every precondition of EstimateAQI and reports all
// offending fields at once.
func ValidateReading(r EnvironmentalReading) error {
	verr := &ValidationError{}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"pm25", r.PM25},
		{"pm10", r.PM10},
		{"windSpeed", r.WindSpeed},
		{"temperature", r.Temperature},
		{"humidity", r.Humidity},
	} {
		if !IsFinite(f.v) {
			verr.Add(f.name, ReasonNonNumeric)
		}
	}

	if err := CheckStruct(r, verr); err != nil {
		return err
	}
	return verr.OrNil()
}

// EstimateAQI computes the AQI approximation for a reading. Validation runs
// before any arithmetic.
func EstimateAQI(r EnvironmentalReading) (Estimate, error) {
	if err := ValidateReading(r); err != nil {
		return Estimate{}, err
	}

	b := Breakdown{
		Base:      r.PM25*pm25Weight + r.PM10*pm10Weight,
		Wind:      -windDispersion * math.Log1p(r.WindSpeed),
		Humidity:  humidityAdjustment(r.Humidity),
		Inversion: inversionAdjustment(r.Temperature),
		RushHour:  rushHourAdjustment(r.Hour),
		Seasonal:  seasonalAdjustment(r.Month),
	}
	b.Raw = b.Base + b.Wind + b.Humidity + b.Inversion + b.RushHour + b.Seasonal

	aqi := int(math.Round(clamp(b.Raw, 0, MaxAQI)))
	return Estimate{
		AQI:       aqi,
		Category:  Classify(float64(aqi)),
		Breakdown: b,
	}, nil
}

func humidityAdjustment(humidity float64) float64 {
	if humidity > humidityThreshold {
		return (humidity - humidityThreshold) * humidityWeight
	}
	return 0
}

// Winter thermal inversion traps pollutants near the ground.
func inversionAdjustment(temp float64) float64 {
	if temp >= inversionMinTemp && temp <= inversionMaxTemp {
		return inversionBonus
	}
	return 0
}

func rushHourAdjustment(hour int) float64 {
	if (hour >= 8 && hour <= 10) || (hour >= 18 && hour <= 20) {
		return rushHourBonus
	}
	return 0
}

func seasonalAdjustment(month int) float64 {
	switch {
	case month >= 10 || month <= 2:
		return winterBonus
	case month >= 3 && month <= 5:
		return dustBonus
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
