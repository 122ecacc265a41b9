package estimate

import "time"

// PricingPeriod is a span of years with one monthly subscription price in GBP.
// StartYear is inclusive and EndYear exclusive.
type PricingPeriod struct {
	StartYear    int
	EndYear      int
	MonthlyPrice float64
	Region       string
}

// PricingHistory is the individual premium plan price over time. The periods
// are contiguous and do not overlap.
var PricingHistory = []PricingPeriod{
	{StartYear: 2009, EndYear: 2011, MonthlyPrice: 9.99, Region: "UK/EU"},
	{StartYear: 2011, EndYear: 2021, MonthlyPrice: 9.99, Region: "US/Global"},
	{StartYear: 2021, EndYear: 2023, MonthlyPrice: 9.99, Region: "Most markets"},
	{StartYear: 2023, EndYear: 2024, MonthlyPrice: 10.99, Region: "US/UK"},
	{StartYear: 2024, EndYear: 2025, MonthlyPrice: 11.99, Region: "US/UK"},
}

// PriceFor finds the pricing period containing year. The second result is
// false when no period covers it.
func PriceFor(year int) (PricingPeriod, bool) {
	for _, p := range PricingHistory {
		if year >= p.StartYear && year < p.EndYear {
			return p, true
		}
	}
	return PricingPeriod{}, false
}

// YearCost is one year of the subscription breakdown. Unpriced years have no
// matching PricingPeriod and contribute nothing.
type YearCost struct {
	Year         int     `yaml:"year"`
	MonthlyPrice float64 `yaml:"monthly_price"`
	Months       int     `yaml:"months"`
	Total        float64 `yaml:"total"`
	Priced       bool    `yaml:"priced"`
	Partial      bool    `yaml:"partial,omitempty"`
}

type Subscription struct {
	StartYear int        `yaml:"start_year"`
	EndYear   int        `yaml:"end_year"`
	Years     int        `yaml:"years"`
	Total     float64    `yaml:"total"`
	Breakdown []YearCost `yaml:"breakdown"`
}

// SubscriptionCost totals what was paid for years in [start, end), in GBP.
// Past years count twelve months. When end reaches past now's year, now's
// year counts only the months elapsed so far. Years after now are skipped.
func SubscriptionCost(start, end int, now time.Time) Subscription {
	sub := Subscription{StartYear: start, EndYear: end}
	if end > start {
		sub.Years = end - start
	}

	currentYear := now.Year()
	for year := start; year < end; year++ {
		if year > currentYear {
			break
		}
		yc := YearCost{Year: year, Months: 12}
		if year == currentYear {
			yc.Months = int(now.Month())
			yc.Partial = true
		}
		if p, ok := PriceFor(year); ok {
			yc.Priced = true
			yc.MonthlyPrice = p.MonthlyPrice
			yc.Total = p.MonthlyPrice * float64(yc.Months)
		}
		sub.Total += yc.Total
		sub.Breakdown = append(sub.Breakdown, yc)
	}
	return sub
}

// Period is a run of consecutive breakdown years sharing one price.
// EndYear is inclusive.
type Period struct {
	StartYear    int     `yaml:"start_year"`
	EndYear      int     `yaml:"end_year"`
	MonthlyPrice float64 `yaml:"monthly_price"`
	Total        float64 `yaml:"total"`
	Priced       bool    `yaml:"priced"`
}

// Periods collapses a breakdown into display periods.
func Periods(breakdown []YearCost) []Period {
	var periods []Period
	for _, yc := range breakdown {
		if n := len(periods); n > 0 {
			last := &periods[n-1]
			if last.Priced == yc.Priced && last.MonthlyPrice == yc.MonthlyPrice && last.EndYear+1 == yc.Year {
				last.EndYear = yc.Year
				last.Total += yc.Total
				continue
			}
		}
		periods = append(periods, Period{
			StartYear:    yc.Year,
			EndYear:      yc.Year,
			MonthlyPrice: yc.MonthlyPrice,
			Total:        yc.Total,
			Priced:       yc.Priced,
		})
	}
	return periods
}
