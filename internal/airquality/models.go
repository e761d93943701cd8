package airquality

import (
	"time"
)

// MaxAQI is the top of the national AQI scale; estimates never exceed it.
const MaxAQI = 500

// EnvironmentalReading is the input to Estimate. Concentrations are µg/m³.
type EnvironmentalReading struct {
	PM25        float64 `json:"pm25" toml:"pm25" validate:"gte=0"`
	PM10        float64 `json:"pm10" toml:"pm10" validate:"gte=0"`
	WindSpeed   float64 `json:"windSpeed" toml:"wind_speed" validate:"gte=0"`
	Temperature float64 `json:"temperature" toml:"temperature"`
	Humidity    float64 `json:"humidity" toml:"humidity" validate:"gte=0,lte=100"`
	Hour        int     `json:"hour" toml:"hour" validate:"gte=0,lte=23"`
	Month       int     `json:"month" toml:"month" validate:"gte=1,lte=12"`
}

// Estimate is the result of the estimator: an integer AQI in [0, MaxAQI]
// and its band.
type Estimate struct {
	AQI       int       `json:"aqi"`
	Category  Category  `json:"category"`
	Breakdown Breakdown `json:"breakdown"`
}

// Breakdown lists the additive contribution of every step before clamping.
type Breakdown struct {
	Base      float64 `json:"base"`
	Wind      float64 `json:"wind"`
	Humidity  float64 `json:"humidity"`
	Inversion float64 `json:"inversion"`
	RushHour  float64 `json:"rushHour"`
	Seasonal  float64 `json:"seasonal"`
	Raw       float64 `json:"raw"`
}

// Station is a named place on the dashboard whose conditions are entered by
// hand, one reading per monitor. Hour and month of monitor readings are
// ignored; they are stamped at refresh time.
type Station struct {
	Name     string                 `json:"name"`
	Monitors []EnvironmentalReading `json:"monitors"`
}

// Snapshot is the dashboard view of a station at a point in time.
type Snapshot struct {
	Station   string               `json:"station"`
	Timestamp time.Time            `json:"timestamp"` // always UTC
	Reading   EnvironmentalReading `json:"reading"`
	Estimate  Estimate             `json:"estimate"`
	Monitors  int                  `json:"monitors"`
}

// OutlookDay is one entry of the hand-entered multi-day outlook.
type OutlookDay struct {
	Label    string    `json:"day"`
	Date     time.Time `json:"date"`
	AQI      int       `json:"aqi"`
	Category Category  `json:"category"`
}
