package planner

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	crore = 10_000_000
	lakh  = 100_000
)

var indianEnglish = language.MustParse("en-IN")

// Rupees is an amount in Indian rupees.
type Rupees int64

// String renders the amount like FormatINR. Crore and lakh hundredths are
// computed in integer arithmetic so exact halves always round up.
func (r Rupees) String() string {
	n := int64(r)
	switch {
	case n >= crore:
		return "₹" + hundredths((n*100+crore/2)/crore) + " Cr"
	case n >= lakh:
		return "₹" + hundredths((n*100+lakh/2)/lakh) + " L"
	default:
		return "₹" + groupIndian(n)
	}
}

// FormatINR renders an amount the way the dashboard shows budgets: crore
// and lakh with two decimals rounded half up, smaller amounts as a grouped
// integer.
func FormatINR(amount float64) string {
	switch {
	case amount >= crore:
		return "₹" + hundredths(roundHalfUp(amount*100/crore)) + " Cr"
	case amount >= lakh:
		return "₹" + hundredths(roundHalfUp(amount*100/lakh)) + " L"
	default:
		return "₹" + groupIndian(int64(math.Round(amount)))
	}
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// hundredths renders a non-negative count of hundredths as 12.34.
func hundredths(h int64) string {
	return fmt.Sprintf("%d.%02d", h/100, h%100)
}

// groupIndian groups digits as 12,34,567.
func groupIndian(n int64) string {
	return message.NewPrinter(indianEnglish).Sprintf("%d", n)
}
