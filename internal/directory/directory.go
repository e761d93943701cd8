// Package directory is a static lookup of hospitals across Delhi NCR for
// respiratory and pollution related care.
package directory

import (
	"sort"
	"strings"

	"github.com/i474232898/ncr-air-quality/internal/common"
)

// Hospital is one directory entry.
type Hospital struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// AreaResult groups the hospitals of one area.
type AreaResult struct {
	Area      string     `json:"area"`
	Hospitals []Hospital `json:"hospitals"`
}

var areas = sortedAreas()

func sortedAreas() []string {
	names := make([]string, 0, len(hospitals))
	for area := range hospitals {
		names = append(names, area)
	}
	sort.Strings(names)
	return names
}

// Areas lists every area in the directory, sorted.
func Areas() []string {
	return append([]string(nil), areas...)
}

// Search returns the areas whose name contains query, ignoring case and
// surrounding whitespace. A blank query matches nothing.
func Search(query string) []AreaResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}

	var results []AreaResult
	for _, area := range areas {
		if !common.ContainsFold(area, q) {
			continue
		}
		results = append(results, AreaResult{
			Area:      area,
			Hospitals: append([]Hospital(nil), hospitals[area]...),
		})
	}
	return results
}
