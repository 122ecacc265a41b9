// Package report turns aggregated listening statistics into the text summary
// and the plain artist listing.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ademuri/streaming-stats/internal/analysis"
	"github.com/ademuri/streaming-stats/internal/estimate"
)

type PodiumEntry struct {
	Rank     int                   `yaml:"rank"`
	Name     string                `yaml:"name"`
	Plays    int                   `yaml:"plays"`
	Earnings estimate.Earnings     `yaml:"earnings"`
	Band     estimate.BandEarnings `yaml:"band"`
}

type Average struct {
	Artists  int                   `yaml:"artists"`
	Listens  float64               `yaml:"listens"`
	Earnings estimate.Earnings     `yaml:"earnings"`
	Band     estimate.BandEarnings `yaml:"band"`
}

type SubscriptionSummary struct {
	StartYear int               `yaml:"start_year"`
	EndYear   int               `yaml:"end_year"`
	Years     int               `yaml:"years"`
	Total     float64           `yaml:"total"`
	Periods   []estimate.Period `yaml:"periods"`
}

// Summary holds every figure in the text report. Money is in Currency,
// except where a field says otherwise.
type Summary struct {
	Currency      estimate.Currency `yaml:"currency"`
	TotalListens  int               `yaml:"total_listens"`
	ValidListens  int               `yaml:"valid_listens"`
	BlankTracks   int               `yaml:"blank_tracks"`
	ArtistCount   int               `yaml:"artist_count"`
	EarliestYear  int               `yaml:"earliest_year"`
	LatestYear    int               `yaml:"latest_year"`
	PerStreamRate float64           `yaml:"per_stream_rate"`
	Streaming     estimate.Earnings `yaml:"streaming"`
	MostPlayed    []PodiumEntry     `yaml:"most_played"`
	Average       Average           `yaml:"average"`

	Subscription  SubscriptionSummary          `yaml:"subscription"`
	AlbumPurchase estimate.AlbumPurchaseResult `yaml:"album_purchase"`
}

// Build computes the summary. The subscription covers every year from the
// earliest to the latest year with listening data.
func Build(stats *analysis.Stats, cur estimate.Currency, now time.Time) Summary {
	valid := stats.ValidListens()
	s := Summary{
		Currency:      cur,
		TotalListens:  stats.TotalTracks,
		ValidListens:  valid,
		BlankTracks:   stats.BlankTracks,
		ArtistCount:   len(stats.Artists),
		EarliestYear:  stats.MinYear,
		LatestYear:    stats.MaxYear,
		PerStreamRate: estimate.Convert(estimate.PayPerStreamUSD, estimate.USD, cur),
		Streaming:     estimate.ForPlays(valid, cur),
	}

	for i, r := range stats.MostPlayed() {
		if r.Name == "" {
			break
		}
		s.MostPlayed = append(s.MostPlayed, PodiumEntry{
			Rank:     i + 1,
			Name:     r.Name,
			Plays:    r.Plays,
			Earnings: estimate.ForPlays(r.Plays, cur),
			Band:     estimate.Band(float64(r.Plays), cur),
		})
	}

	avg := stats.AverageListensPerArtist()
	s.Average = Average{
		Artists:  len(stats.Artists),
		Listens:  avg,
		Earnings: estimate.ForAverage(avg, cur),
		Band:     estimate.Band(avg, cur),
	}

	sub := estimate.SubscriptionCost(stats.MinYear, stats.MaxYear+1, now)
	s.Subscription = SubscriptionSummary{
		StartYear: sub.StartYear,
		EndYear:   sub.EndYear - 1,
		Years:     sub.Years,
		Total:     estimate.Convert(sub.Total, estimate.GBP, cur),
	}
	for _, p := range estimate.Periods(sub.Breakdown) {
		p.MonthlyPrice = estimate.Convert(p.MonthlyPrice, estimate.GBP, cur)
		p.Total = estimate.Convert(p.Total, estimate.GBP, cur)
		s.Subscription.Periods = append(s.Subscription.Periods, p)
	}

	s.AlbumPurchase = estimate.AlbumPurchase(stats, -1, cur)
	return s
}

var ordinals = []string{"Most", "Second most", "Third most"}

// Text writes the human-readable report.
func Text(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	c := s.Currency
	share := int(estimate.ArtistStreamingShare * 100)

	fmt.Fprintf(bw, "=== STREAMING REVENUE ===\n")
	fmt.Fprintf(bw, "Money to labels over %s listens:\n", humanize.Comma(int64(s.ValidListens)))
	fmt.Fprintf(bw, "  %s%.4f per listen: %s\n", c.Symbol(), s.PerStreamRate, c.Format(s.Streaming.Label))
	fmt.Fprintf(bw, "\nMoney to artists (%d%% of label revenue):\n", share)
	fmt.Fprintf(bw, "  %s\n\n", c.Format(s.Streaming.Artist))

	for i, p := range s.MostPlayed {
		fmt.Fprintf(bw, "%s played artist at %s plays: %s\n", ordinals[i], humanize.Comma(int64(p.Plays)), p.Name)
		fmt.Fprintf(bw, "  Label earned: %s - %s\n", c.Format(p.Band.LabelLow), c.Format(p.Band.LabelHigh))
		fmt.Fprintf(bw, "  Artist earned (%d%%): %s - %s\n", share, c.Format(p.Band.ArtistLow), c.Format(p.Band.ArtistHigh))
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "Average listens across %s artists: %.2f\n", humanize.Comma(int64(s.Average.Artists)), s.Average.Listens)
	fmt.Fprintf(bw, "  Average label earnings: %s - %s\n", c.Format(s.Average.Band.LabelLow), c.Format(s.Average.Band.LabelHigh))
	fmt.Fprintf(bw, "  Average artist earnings (%d%%): %s - %s\n\n", share, c.Format(s.Average.Band.ArtistLow), c.Format(s.Average.Band.ArtistHigh))

	sub := s.Subscription
	fmt.Fprintf(bw, "=== SUBSCRIPTION COST (Historical Pricing) ===\n")
	fmt.Fprintf(bw, "Period: %d - %d (%d years)\n", sub.StartYear, sub.EndYear, sub.Years)
	fmt.Fprintf(bw, "Total paid: %s\n", c.Format(sub.Total))
	if len(sub.Periods) > 0 {
		fmt.Fprintf(bw, "\nBreakdown by period:\n")
		for _, p := range sub.Periods {
			fmt.Fprintf(bw, "%s\n", FormatPeriod(p, c))
		}
	}

	ap := s.AlbumPurchase
	fmt.Fprintf(bw, "\n=== BUYING ALBUMS INSTEAD ===\n")
	fmt.Fprintf(bw, "%d albums played at least %d times: %s, of which artists get %s\n",
		ap.AlbumCount, ap.Threshold, c.Format(ap.TotalCost), c.Format(ap.ArtistEarnings))

	return bw.Flush()
}

// FormatPeriod renders one subscription period, e.g. "2011-2020: £9.99/month = £1198.80".
func FormatPeriod(p estimate.Period, c estimate.Currency) string {
	years := fmt.Sprintf("%d", p.StartYear)
	if p.EndYear != p.StartYear {
		years = fmt.Sprintf("%d-%d", p.StartYear, p.EndYear)
	}
	if !p.Priced {
		return fmt.Sprintf("%s: unpriced", years)
	}
	return fmt.Sprintf("%s: %s/month = %s", years, c.Format(p.MonthlyPrice), c.Format(p.Total))
}

// ArtistExport writes "<plays>: <name>" for every artist in first-seen order.
func ArtistExport(w io.Writer, stats *analysis.Stats) error {
	bw := bufio.NewWriter(w)
	for _, a := range stats.Artists {
		if _, err := fmt.Fprintf(bw, "%d: %s\n", a.Plays, a.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}
