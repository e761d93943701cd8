package httpapi

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/ncr-air-quality/internal/advisory"
	"github.com/i474232898/ncr-air-quality/internal/airquality"
	"github.com/i474232898/ncr-air-quality/internal/dashboard"
	"github.com/i474232898/ncr-air-quality/internal/directory"
	"github.com/i474232898/ncr-air-quality/internal/metrics"
	"github.com/i474232898/ncr-air-quality/internal/planner"
	"github.com/i474232898/ncr-air-quality/internal/store"
)

var validate = airquality.Validator()

type handlers struct {
	service *dashboard.Service
	metrics *metrics.Metrics
	now     func() time.Time
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *dashboard.Service, m *metrics.Metrics) {
	h := &handlers{service: service, metrics: m, now: time.Now}

	v1 := app.Group("/api/v1")

	v1.Post("/aqi/estimate", h.estimate)
	v1.Get("/aqi/scale", func(c *fiber.Ctx) error {
		return c.JSON(airquality.Scale())
	})
	v1.Post("/resources/plan", h.plan)

	v1.Get("/stations", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"stations": service.Stations()})
	})
	v1.Get("/stations/:station/current", h.stationCurrent)
	v1.Get("/stations/:station/history", h.stationHistory)
	v1.Get("/stations/:station/plan", h.stationPlan)

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"days": service.Outlook(h.now())})
	})
	v1.Get("/hospitals", func(c *fiber.Ctx) error {
		results := directory.Search(c.Query("area"))
		if results == nil {
			results = []directory.AreaResult{}
		}
		return c.JSON(fiber.Map{"results": results})
	})
	v1.Get("/strategies", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"measures": advisory.All()})
	})
}

// estimateRequest uses pointers so a missing field is told apart from zero.
type estimateRequest struct {
	PM25        *float64 `json:"pm25" validate:"required"`
	PM10        *float64 `json:"pm10" validate:"required"`
	WindSpeed   *float64 `json:"windSpeed" validate:"required"`
	Temperature *float64 `json:"temperature" validate:"required"`
	Humidity    *float64 `json:"humidity" validate:"required"`
	Hour        *int     `json:"hour" validate:"required"`
	Month       *int     `json:"month" validate:"required"`
}

func (r estimateRequest) toReading() airquality.EnvironmentalReading {
	return airquality.EnvironmentalReading{
		PM25:        *r.PM25,
		PM10:        *r.PM10,
		WindSpeed:   *r.WindSpeed,
		Temperature: *r.Temperature,
		Humidity:    *r.Humidity,
		Hour:        *r.Hour,
		Month:       *r.Month,
	}
}

type estimateResponse struct {
	airquality.Estimate
	Label    string             `json:"label"`
	Measures []advisory.Measure `json:"measures"`
}

func (h *handlers) estimate(c *fiber.Ctx) error {
	var req estimateRequest
	if verr, err := bindJSON(c, &req); err != nil {
		return err
	} else if verr != nil {
		return h.validationFailed(c, "estimate", verr)
	}

	est, err := airquality.EstimateAQI(req.toReading())
	if err != nil {
		if verr, ok := airquality.AsValidationError(err); ok {
			return h.validationFailed(c, "estimate", verr)
		}
		return err
	}
	h.metrics.ObserveEstimate(string(est.Category))

	return c.JSON(estimateResponse{
		Estimate: est,
		Label:    est.Category.Label(),
		Measures: advisory.ForCategory(est.Category),
	})
}

type planRequest struct {
	AQI     *float64 `json:"aqi" validate:"required"`
	MaxAQI  *float64 `json:"maxAqi" validate:"required"`
	PM10    *float64 `json:"pm10" validate:"required"`
	MaxPM10 *float64 `json:"maxPm10" validate:"required"`
}

type planResponse struct {
	planner.ResourcePlan
	Display planDisplay `json:"display"`
}

type planDisplay struct {
	TruckBudget string `json:"truckBudget"`
	TreeBudget  string `json:"treeBudget"`
	TotalBudget string `json:"totalBudget"`
}

func newPlanResponse(p planner.ResourcePlan) planResponse {
	return planResponse{
		ResourcePlan: p,
		Display: planDisplay{
			TruckBudget: p.TruckBudget.String(),
			TreeBudget:  p.TreeBudget.String(),
			TotalBudget: p.TotalBudget.String(),
		},
	}
}

func (h *handlers) plan(c *fiber.Ctx) error {
	var req planRequest
	if verr, err := bindJSON(c, &req); err != nil {
		return err
	} else if verr != nil {
		return h.validationFailed(c, "plan", verr)
	}

	p, err := planner.Plan(planner.RegionalPollutionInput{
		AQI:     *req.AQI,
		MaxAQI:  *req.MaxAQI,
		PM10:    *req.PM10,
		MaxPM10: *req.MaxPM10,
	})
	if err != nil {
		if verr, ok := airquality.AsValidationError(err); ok {
			return h.validationFailed(c, "plan", verr)
		}
		return err
	}
	h.metrics.ObservePlan()

	return c.JSON(newPlanResponse(p))
}

func (h *handlers) stationCurrent(c *fiber.Ctx) error {
	name, err := stationParam(c)
	if err != nil {
		return err
	}

	snapshot, err := h.service.GetLatest(name)
	if err != nil {
		return stationError(err)
	}

	return c.JSON(fiber.Map{
		"snapshot": snapshot,
		"label":    snapshot.Estimate.Category.Label(),
		"measures": advisory.ForCategory(snapshot.Estimate.Category),
	})
}

func (h *handlers) stationHistory(c *fiber.Ctx) error {
	name, err := stationParam(c)
	if err != nil {
		return err
	}

	var req historyQuery
	if err := req.bind(c); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	snapshots, err := h.service.GetRange(name, req.From, req.To)
	if err != nil {
		return stationError(err)
	}

	return c.JSON(fiber.Map{
		"station":   name,
		"from":      req.From,
		"to":        req.To,
		"snapshots": snapshots,
	})
}

func (h *handlers) stationPlan(c *fiber.Ctx) error {
	name, err := stationParam(c)
	if err != nil {
		return err
	}

	p, snapshot, err := h.service.PlanForStation(name)
	if err != nil {
		if verr, ok := airquality.AsValidationError(err); ok {
			h.metrics.ObserveValidationError("station_plan")
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   true,
				"message": verr.Error(),
				"fields":  verr.Fields,
			})
		}
		return stationError(err)
	}

	return c.JSON(fiber.Map{
		"station":  name,
		"snapshot": snapshot,
		"plan":     newPlanResponse(p),
	})
}

// bindJSON decodes the body into a request struct of pointers. A value of
// the wrong JSON type is reported as non-numeric on its field, a missing
// field as required.
func bindJSON(c *fiber.Ctx, out any) (*airquality.ValidationError, error) {
	verr := &airquality.ValidationError{}

	if err := c.BodyParser(out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			verr.Add(typeErr.Field, airquality.ReasonNonNumeric)
			return verr, nil
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if err := airquality.CheckStruct(out, verr); err != nil {
		return nil, err
	}
	if len(verr.Fields) > 0 {
		return verr, nil
	}
	return nil, nil
}

func (h *handlers) validationFailed(c *fiber.Ctx, operation string, verr *airquality.ValidationError) error {
	h.metrics.ObserveValidationError(operation)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   true,
		"message": verr.Error(),
		"fields":  verr.Fields,
	})
}

func stationParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("station"))
	if err != nil || name == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid station name")
	}
	return name, nil
}

func stationError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrUnknownStation):
		return fiber.NewError(fiber.StatusNotFound, "unknown station")
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "no air quality data for requested station")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch air quality data")
	}
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

func (q *historyQuery) bind(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	q.From = from
	q.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
