package airquality

// Category is a CPCB air quality band.
type Category string

const (
	CategoryGood         Category = "Good"
	CategorySatisfactory Category = "Satisfactory"
	CategoryModerate     Category = "Moderate"
	CategoryPoor         Category = "Poor"
	CategoryVeryPoor     Category = "VeryPoor"
	CategorySevere       Category = "Severe"
)

// Band is one row of the CPCB scale. Upper bounds are inclusive.
type Band struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Lower    int      `json:"lower"`
	Upper    int      `json:"upper"`
}

var scale = []Band{
	{CategoryGood, "Good", 0, 50},
	{CategorySatisfactory, "Satisfactory", 51, 100},
	{CategoryModerate, "Moderate", 101, 200},
	{CategoryPoor, "Poor", 201, 300},
	{CategoryVeryPoor, "Very Poor", 301, 400},
	{CategorySevere, "Severe", 401, MaxAQI},
}

// Scale returns a copy of the CPCB band table, lowest band first.
func Scale() []Band {
	out := make([]Band, len(scale))
	copy(out, scale)
	return out
}

// Classify maps an AQI value onto its band.
func Classify(aqi float64) Category {
	switch {
	case aqi <= 50:
		return CategoryGood
	case aqi <= 100:
		return CategorySatisfactory
	case aqi <= 200:
		return CategoryModerate
	case aqi <= 300:
		return CategoryPoor
	case aqi <= 400:
		return CategoryVeryPoor
	default:
		return CategorySevere
	}
}

// Rank orders categories from Good (0) to Severe (5). Unknown values rank -1.
func (c Category) Rank() int {
	for i, b := range scale {
		if b.Category == c {
			return i
		}
	}
	return -1
}

// Label is the human readable band name.
func (c Category) Label() string {
	if i := c.Rank(); i >= 0 {
		return scale[i].Label
	}
	return string(c)
}

// Valid reports whether c is one of the six CPCB bands.
func (c Category) Valid() bool {
	return c.Rank() >= 0
}
