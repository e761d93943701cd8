package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/ncr-air-quality/internal/airquality"
)

func titles(ms []Measure) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Title)
	}
	return out
}

func TestForCategory(t *testing.T) {
	assert.Len(t, ForCategory(airquality.CategoryGood), 4)
	assert.Len(t, ForCategory(airquality.CategoryModerate), 4)

	poor := titles(ForCategory(airquality.CategoryPoor))
	assert.Len(t, poor, 6)
	assert.Contains(t, poor, "Stay Indoors")
	assert.NotContains(t, poor, "School Advisories")

	severe := titles(ForCategory(airquality.CategorySevere))
	assert.Len(t, severe, 8)
	assert.Contains(t, severe, "Emergency Protocols")
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 8)
	assert.Equal(t, KindPreventive, all[0].Kind)
	assert.Equal(t, KindTentative, all[len(all)-1].Kind)
}
