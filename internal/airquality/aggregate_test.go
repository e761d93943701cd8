package airquality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateReadingsAverages(t *testing.T) {
	got := AggregateReadings([]EnvironmentalReading{
		{PM25: 100, PM10: 200, WindSpeed: 2, Temperature: 10, Humidity: 60, Hour: 9, Month: 11},
		{PM25: 120, PM10: 160, WindSpeed: 4, Temperature: 14, Humidity: 70, Hour: 3, Month: 2},
	})

	assert.Equal(t, EnvironmentalReading{
		PM25:        110,
		PM10:        180,
		WindSpeed:   3,
		Temperature: 12,
		Humidity:    65,
		Hour:        9,
		Month:       11,
	}, got)
}

func TestAggregateReadingsEmpty(t *testing.T) {
	got := AggregateReadings(nil)
	assert.NoError(t, ValidateReading(got))
}
