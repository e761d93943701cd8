package dashboard

import (
	"fmt"
	"time"

	"github.com/i474232898/ncr-air-quality/internal/airquality"
)

// Outlook returns the hand-entered multi-day outlook starting on the local
// day of now. Values are clamped to the AQI scale before classification.
func (s *Service) Outlook(now time.Time) []airquality.OutlookDay {
	local := now.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)

	days := make([]airquality.OutlookDay, 0, len(s.outlook))
	for i, v := range s.outlook {
		aqi := min(max(v, 0), airquality.MaxAQI)
		days = append(days, airquality.OutlookDay{
			Label:    outlookLabel(i),
			Date:     start.AddDate(0, 0, i),
			AQI:      aqi,
			Category: airquality.Classify(float64(aqi)),
		})
	}
	return days
}

func outlookLabel(i int) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("Day %d", i+1)
	}
}
