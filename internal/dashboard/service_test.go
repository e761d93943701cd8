package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/ncr-air-quality/internal/airquality"
	"github.com/i474232898/ncr-air-quality/internal/metrics"
	"github.com/i474232898/ncr-air-quality/internal/store"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func newTestService(t *testing.T, reg prometheus.Registerer) *Service {
	t.Helper()
	return NewService(store.NewMemoryStore(10, 0), Options{
		Stations: []airquality.Station{
			{Name: "Anand Vihar", Monitors: []airquality.EnvironmentalReading{
				{PM25: 100, PM10: 170, WindSpeed: 2, Temperature: 14, Humidity: 55},
				{PM25: 120, PM10: 194, WindSpeed: 2, Temperature: 16, Humidity: 65},
			}},
			{Name: "Lodhi Road", Monitors: []airquality.EnvironmentalReading{
				{PM25: 30, PM10: 60, WindSpeed: 4, Temperature: 30, Humidity: 40},
			}},
			{Name: "Empty"},
		},
		Outlook:       []int{178, 195, 152, 120, 89, 65, 48},
		RegionMaxAQI:  500,
		RegionMaxPM10: 300,
		Location:      ist,
		Metrics:       metrics.New(reg),
	})
}

func TestRefreshStationStampsLocalTime(t *testing.T) {
	svc := newTestService(t, prometheus.NewRegistry())

	// 03:30 UTC is 09:00 in Delhi.
	now := time.Date(2025, 11, 3, 3, 30, 0, 0, time.UTC)
	snap, err := svc.RefreshStation(context.Background(), "Anand Vihar", now)
	require.NoError(t, err)

	assert.Equal(t, 9, snap.Reading.Hour)
	assert.Equal(t, 11, snap.Reading.Month)
	assert.Equal(t, 110.0, snap.Reading.PM25)
	assert.Equal(t, 182.0, snap.Reading.PM10)
	assert.Equal(t, 2, snap.Monitors)
	assert.Equal(t, 321, snap.Estimate.AQI)
	assert.Equal(t, airquality.CategoryVeryPoor, snap.Estimate.Category)
	assert.Equal(t, time.UTC, snap.Timestamp.Location())

	latest, err := svc.GetLatest("Anand Vihar")
	require.NoError(t, err)
	assert.Equal(t, snap, latest)
}

func TestRefreshStationErrors(t *testing.T) {
	svc := newTestService(t, prometheus.NewRegistry())
	now := time.Now()

	_, err := svc.RefreshStation(context.Background(), "Nowhere", now)
	assert.ErrorIs(t, err, ErrUnknownStation)

	_, err = svc.RefreshStation(context.Background(), "Empty", now)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.RefreshStation(ctx, "Lodhi Road", now)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRefreshAllContinuesPastFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := newTestService(t, reg)

	err := svc.RefreshAll(context.Background(), time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC))
	require.Error(t, err, "the station without monitors fails")

	for _, name := range []string{"Anand Vihar", "Lodhi Road"} {
		_, err := svc.GetLatest(name)
		assert.NoError(t, err, name)
	}

	_, err = svc.GetLatest("Empty")
	assert.ErrorIs(t, err, store.ErrNotFound)

	n, err := testutil.GatherAndCount(reg, "ncr_air_quality_station_refreshes_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per refreshed station")
}

func TestGetLatestUnknownStation(t *testing.T) {
	svc := newTestService(t, prometheus.NewRegistry())

	_, err := svc.GetLatest("Nowhere")
	assert.ErrorIs(t, err, ErrUnknownStation)

	_, err = svc.GetRange("Nowhere", time.Time{}, time.Now())
	assert.ErrorIs(t, err, ErrUnknownStation)
}

func TestPlanForStation(t *testing.T) {
	svc := newTestService(t, prometheus.NewRegistry())

	_, _, err := svc.PlanForStation("Anand Vihar")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.RefreshStation(context.Background(), "Anand Vihar", time.Date(2025, 11, 3, 3, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	plan, snap, err := svc.PlanForStation("Anand Vihar")
	require.NoError(t, err)
	assert.Equal(t, 321, snap.Estimate.AQI)
	assert.InDelta(t, 321.0/500, plan.PollutionIndex, 1e-12)
	assert.InDelta(t, 182.0/300, plan.DustIndex, 1e-12)
	assert.Equal(t, 878, plan.TreesRequired)
	assert.Equal(t, 5, plan.SprinklerTrucks)
}

func TestPlanForStationAboveRegionalMax(t *testing.T) {
	svc := NewService(store.NewMemoryStore(0, 0), Options{
		Stations: []airquality.Station{{Name: "Bawana", Monitors: []airquality.EnvironmentalReading{
			{PM25: 90, PM10: 420, Temperature: 25, Humidity: 30},
		}}},
		RegionMaxAQI:  500,
		RegionMaxPM10: 300,
	})
	_, err := svc.RefreshStation(context.Background(), "Bawana", time.Now())
	require.NoError(t, err)

	_, _, err = svc.PlanForStation("Bawana")
	verr, ok := airquality.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"pm10"}, verr.FieldNames())
}

func TestStationsSorted(t *testing.T) {
	svc := newTestService(t, prometheus.NewRegistry())
	assert.Equal(t, []string{"Anand Vihar", "Empty", "Lodhi Road"}, svc.Stations())
	assert.True(t, svc.HasStation("Lodhi Road"))
	assert.False(t, svc.HasStation("lodhi road"))
}

func TestOutlook(t *testing.T) {
	svc := NewService(store.NewMemoryStore(0, 0), Options{
		Outlook:  []int{178, 420, -5, 900},
		Location: ist,
	})

	// 20:00 UTC on the 3rd is already the 4th in Delhi.
	days := svc.Outlook(time.Date(2025, 11, 3, 20, 0, 0, 0, time.UTC))
	require.Len(t, days, 4)

	assert.Equal(t, "Today", days[0].Label)
	assert.Equal(t, "Tomorrow", days[1].Label)
	assert.Equal(t, "Day 3", days[2].Label)
	assert.Equal(t, 4, days[0].Date.Day())
	assert.Equal(t, 5, days[1].Date.Day())

	assert.Equal(t, airquality.CategoryModerate, days[0].Category)
	assert.Equal(t, airquality.CategorySevere, days[1].Category)
	assert.Equal(t, 0, days[2].AQI)
	assert.Equal(t, airquality.CategoryGood, days[2].Category)
	assert.Equal(t, airquality.MaxAQI, days[3].AQI)
}
