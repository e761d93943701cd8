package advisory

import (
	"github.com/i474232898/ncr-air-quality/internal/airquality"
)

// Kind separates long-term prevention from short-term response.
type Kind string

const (
	KindPreventive Kind = "preventive"
	KindTentative  Kind = "tentative"
)

// Measure is a recommended action. Tentative measures apply from their
// Trigger category upwards; preventive measures always apply.
type Measure struct {
	Kind        Kind                `json:"kind"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Trigger     airquality.Category `json:"trigger,omitempty"`
}

var preventive = []Measure{
	{KindPreventive, "Green Cover Expansion", "Increase urban green spaces and tree plantations along major roads to absorb pollutants.", ""},
	{KindPreventive, "Traffic Management", "Implement odd-even vehicle policy and promote EV adoption during high-AQI periods.", ""},
	{KindPreventive, "Industrial Emission Control", "Enforce stricter emission norms for factories and thermal power plants in the NCR belt.", ""},
	{KindPreventive, "Dust Suppression", "Deploy water sprinklers and anti-smog guns at construction sites and arterial roads.", ""},
}

var tentative = []Measure{
	{KindTentative, "Stay Indoors", "Keep windows closed and use air purifiers when AQI exceeds 200. Limit outdoor activities.", airquality.CategoryPoor},
	{KindTentative, "Health Precautions", "Wear N95 masks outdoors. Keep inhalers and medication ready for respiratory conditions.", airquality.CategoryPoor},
	{KindTentative, "School Advisories", "Suspend outdoor school activities when AQI is severe. Shift to indoor physical education.", airquality.CategorySevere},
	{KindTentative, "Emergency Protocols", "Activate GRAP measures and issue public health advisories through local administration.", airquality.CategorySevere},
}

// All returns every measure, preventive first.
func All() []Measure {
	out := make([]Measure, 0, len(preventive)+len(tentative))
	out = append(out, preventive...)
	return append(out, tentative...)
}

// ForCategory returns the preventive measures plus the tentative measures
// triggered at or below c.
func ForCategory(c airquality.Category) []Measure {
	out := append([]Measure(nil), preventive...)
	for _, m := range tentative {
		if c.Rank() >= m.Trigger.Rank() {
			out = append(out, m)
		}
	}
	return out
}
