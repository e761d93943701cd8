package airquality

// AggregateReadings combines the monitors of a station into a single reading.
// Numeric fields are averaged; hour and month come from the first reading.
func AggregateReadings(readings []EnvironmentalReading) EnvironmentalReading {
	if len(readings) == 0 {
		return EnvironmentalReading{Month: 1}
	}

	var (
		sumPM25     float64
		sumPM10     float64
		sumWind     float64
		sumTemp     float64
		sumHumidity float64
	)

	for _, r := range readings {
		sumPM25 += r.PM25
		sumPM10 += r.PM10
		sumWind += r.WindSpeed
		sumTemp += r.Temperature
		sumHumidity += r.Humidity
	}

	n := float64(len(readings))

	return EnvironmentalReading{
		PM25:        sumPM25 / n,
		PM10:        sumPM10 / n,
		WindSpeed:   sumWind / n,
		Temperature: sumTemp / n,
		Humidity:    sumHumidity / n,
		Hour:        readings[0].Hour,
		Month:       readings[0].Month,
	}
}
