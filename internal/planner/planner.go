// Package planner sizes tree plantation and dust suppression for an area from
// its pollution levels relative to the regional worst case, and prices it.
package planner

import (
	"math"

	"github.com/i474232898/ncr-air-quality/internal/airquality"
)

// Planning constants for a 10,000 population area.
const (
	BaseTrees = 300
	MaxTrees  = 1200

	RoadLengthKm    = 25.0
	TruckCoverageKm = 8.0

	TruckCost          Rupees = 4_500_000
	TruckAnnualOpCost  Rupees = 1_000_000
	TreeCost           Rupees = 2_500
	minTrucksForBudget        = 1
	minTreesForBudget         = 100
)

// RegionalPollutionInput is a location's readings next to the regional maxima.
type RegionalPollutionInput struct {
	AQI     float64 `json:"aqi" validate:"gte=0,ltefield=MaxAQI"`
	MaxAQI  float64 `json:"maxAqi" validate:"gt=0"`
	PM10    float64 `json:"pm10" validate:"gte=0,ltefield=MaxPM10"`
	MaxPM10 float64 `json:"maxPm10" validate:"gt=0"`
}

// ResourcePlan is the outcome of Plan.
type ResourcePlan struct {
	PollutionIndex  float64 `json:"pollutionIndex"`
	DustIndex       float64 `json:"dustIndex"`
	TreesRequired   int     `json:"treesRequired"`
	SprinklerTrucks int     `json:"sprinklerTrucks"`
	TruckBudget     Rupees  `json:"truckBudget"`
	TreeBudget      Rupees  `json:"treeBudget"`
	TotalBudget     Rupees  `json:"totalBudget"`
}

// Validate checks the preconditions of Plan and reports every offending field.
func Validate(in RegionalPollutionInput) error {
	verr := &airquality.ValidationError{}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"aqi", in.AQI},
		{"maxAqi", in.MaxAQI},
		{"pm10", in.PM10},
		{"maxPm10", in.MaxPM10},
	} {
		if !airquality.IsFinite(f.v) {
			verr.Add(f.name, airquality.ReasonNonNumeric)
		}
	}

	if err := airquality.CheckStruct(in, verr); err != nil {
		return err
	}
	return verr.OrNil()
}

// Plan derives the resource and budget plan for an area.
func Plan(in RegionalPollutionInput) (ResourcePlan, error) {
	if err := Validate(in); err != nil {
		return ResourcePlan{}, err
	}

	p := ResourcePlan{
		PollutionIndex: ratio(in.AQI, in.MaxAQI),
		DustIndex:      ratio(in.PM10, in.MaxPM10),
	}
	p.TreesRequired = TreesRequired(p.PollutionIndex)
	p.SprinklerTrucks = SprinklerTrucks(p.DustIndex)
	p.TruckBudget, p.TreeBudget, p.TotalBudget = Budget(p.SprinklerTrucks, p.TreesRequired)
	return p, nil
}

// TreesRequired interpolates between the baseline and the full remediation
// planting.
func TreesRequired(pollutionIndex float64) int {
	return int(math.Round(BaseTrees + pollutionIndex*(MaxTrees-BaseTrees)))
}

// SprinklerTrucks sizes the fleet for one to two passes a day over the road
// network, depending on dust.
func SprinklerTrucks(dustIndex float64) int {
	frequency := 1 + dustIndex
	return int(math.Round(RoadLengthKm * frequency / TruckCoverageKm))
}

// Budget prices trucks (purchase plus one year of operation) and trees.
// Deployments below the minimum viable size get no budget line.
func Budget(trucks, trees int) (truckBudget, treeBudget, total Rupees) {
	if trucks >= minTrucksForBudget {
		truckBudget = Rupees(trucks) * (TruckCost + TruckAnnualOpCost)
	}
	if trees >= minTreesForBudget {
		treeBudget = Rupees(trees) * TreeCost
	}
	return truckBudget, treeBudget, truckBudget + treeBudget
}

// ratio is capped at 1 even though validation already bounds v by limit.
func ratio(v, limit float64) float64 {
	return math.Min(v/limit, 1)
}
