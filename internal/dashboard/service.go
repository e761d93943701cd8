package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/i474232898/ncr-air-quality/internal/airquality"
	"github.com/i474232898/ncr-air-quality/internal/metrics"
	"github.com/i474232898/ncr-air-quality/internal/planner"
)

// ErrUnknownStation is returned for a station that is not configured.
var ErrUnknownStation = errors.New("unknown station")

// Store is the contract the in-memory snapshot store satisfies.
type Store interface {
	SaveSnapshot(snapshot airquality.Snapshot)
	GetLatest(station string) (airquality.Snapshot, error)
	GetRange(station string, from, to time.Time) ([]airquality.Snapshot, error)
}

// Options configures a Service.
type Options struct {
	Stations []airquality.Station

	// Outlook holds hand-entered AQI values, today first.
	Outlook []int

	// Regional worst case used when planning from a station snapshot.
	RegionMaxAQI  float64
	RegionMaxPM10 float64

	// Location is the local time zone used to stamp hour and month.
	Location *time.Location

	Metrics *metrics.Metrics
}

// Service keeps the dashboard's station snapshots current and answers the
// read side of the dashboard.
type Service struct {
	store    Store
	stations map[string]airquality.Station
	names    []string
	outlook  []int
	maxAQI   float64
	maxPM10  float64
	loc      *time.Location
	metrics  *metrics.Metrics
}

// NewService creates a new Service.
func NewService(store Store, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	stations := make(map[string]airquality.Station, len(opts.Stations))
	names := make([]string, 0, len(opts.Stations))
	for _, st := range opts.Stations {
		if _, dup := stations[st.Name]; !dup {
			names = append(names, st.Name)
		}
		stations[st.Name] = st
	}
	sort.Strings(names)

	return &Service{
		store:    store,
		stations: stations,
		names:    names,
		outlook:  append([]int(nil), opts.Outlook...),
		maxAQI:   opts.RegionMaxAQI,
		maxPM10:  opts.RegionMaxPM10,
		loc:      loc,
		metrics:  opts.Metrics,
	}
}

// Stations returns the configured station names, sorted.
func (s *Service) Stations() []string {
	return append([]string(nil), s.names...)
}

// HasStation reports whether name is configured.
func (s *Service) HasStation(name string) bool {
	_, ok := s.stations[name]
	return ok
}

// RefreshStation estimates the current AQI of a station from its monitors,
// stamped with the local hour and month of now, and stores the snapshot.
func (s *Service) RefreshStation(ctx context.Context, name string, now time.Time) (airquality.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return airquality.Snapshot{}, err
	}

	st, ok := s.stations[name]
	if !ok {
		return airquality.Snapshot{}, fmt.Errorf("%w: %s", ErrUnknownStation, name)
	}
	if len(st.Monitors) == 0 {
		return airquality.Snapshot{}, fmt.Errorf("station %s has no monitors", name)
	}

	local := now.In(s.loc)
	reading := airquality.AggregateReadings(st.Monitors)
	reading.Hour = local.Hour()
	reading.Month = int(local.Month())

	est, err := airquality.EstimateAQI(reading)
	s.metrics.ObserveRefresh(name, est.AQI, err)
	if err != nil {
		return airquality.Snapshot{}, fmt.Errorf("estimate for %s: %w", name, err)
	}

	snapshot := airquality.Snapshot{
		Station:   name,
		Timestamp: now.UTC(),
		Reading:   reading,
		Estimate:  est,
		Monitors:  len(st.Monitors),
	}
	s.store.SaveSnapshot(snapshot)

	log.WithFields(log.Fields{
		"station":  name,
		"aqi":      est.AQI,
		"category": est.Category,
	}).Debug("station refreshed")

	return snapshot, nil
}

// RefreshAll refreshes every station concurrently. A failing station does
// not stop the others; all failures are returned joined.
func (s *Service) RefreshAll(ctx context.Context, now time.Time) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, name := range s.names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			if _, err := s.RefreshStation(ctx, name, now); err != nil {
				log.WithError(err).WithField("station", name).Warn("station refresh failed")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(name)
	}

	wg.Wait()
	return errors.Join(errs...)
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(name string) (airquality.Snapshot, error) {
	if !s.HasStation(name) {
		return airquality.Snapshot{}, fmt.Errorf("%w: %s", ErrUnknownStation, name)
	}
	return s.store.GetLatest(name)
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(name string, from, to time.Time) ([]airquality.Snapshot, error) {
	if !s.HasStation(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStation, name)
	}
	return s.store.GetRange(name, from, to)
}

// PlanForStation plans resources for a station from its latest snapshot and
// the regional maxima.
func (s *Service) PlanForStation(name string) (planner.ResourcePlan, airquality.Snapshot, error) {
	snap, err := s.GetLatest(name)
	if err != nil {
		return planner.ResourcePlan{}, airquality.Snapshot{}, err
	}

	plan, err := planner.Plan(planner.RegionalPollutionInput{
		AQI:     float64(snap.Estimate.AQI),
		MaxAQI:  s.maxAQI,
		PM10:    snap.Reading.PM10,
		MaxPM10: s.maxPM10,
	})
	if err != nil {
		return planner.ResourcePlan{}, snap, err
	}
	s.metrics.ObservePlan()
	return plan, snap, nil
}
