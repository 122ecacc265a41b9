package estimate

import "github.com/ademuri/streaming-stats/internal/analysis"

const (
	// PayPerStreamUSD is the average amount a label receives per stream.
	PayPerStreamUSD = 0.004

	// PayPerStreamLowUSD and PayPerStreamHighUSD bound the band estimate.
	PayPerStreamLowUSD  = 0.003
	PayPerStreamHighUSD = 0.005

	// ArtistStreamingShare is the artist's cut of the label's streaming revenue.
	ArtistStreamingShare = 0.20

	// ArtistAlbumShare is the artist's cut of an album sale.
	ArtistAlbumShare = 0.20

	AlbumPriceGBP = 10.00
	AlbumPriceUSD = 12.99

	// DefaultAlbumPurchaseThreshold is the number of album plays that makes an
	// album "worth buying".
	DefaultAlbumPurchaseThreshold = 5
)

// Earnings is what a number of streams paid the label, and the artist's share of that.
type Earnings struct {
	Label  float64 `yaml:"label"`
	Artist float64 `yaml:"artist"`
}

func streamEarnings(plays float64, ratePerStreamUSD float64, cur Currency) Earnings {
	label := Convert(plays*ratePerStreamUSD, USD, cur)
	return Earnings{Label: label, Artist: label * ArtistStreamingShare}
}

// ForPlays estimates label and artist earnings for plays streams.
func ForPlays(plays int, cur Currency) Earnings {
	return streamEarnings(float64(plays), PayPerStreamUSD, cur)
}

func ForAverage(plays float64, cur Currency) Earnings {
	return streamEarnings(plays, PayPerStreamUSD, cur)
}

// BandEarnings is the low/high alternate estimate.
type BandEarnings struct {
	LabelLow   float64 `yaml:"label_low"`
	LabelHigh  float64 `yaml:"label_high"`
	ArtistLow  float64 `yaml:"artist_low"`
	ArtistHigh float64 `yaml:"artist_high"`
}

// Band estimates earnings between PayPerStreamLowUSD and PayPerStreamHighUSD.
func Band(plays float64, cur Currency) BandEarnings {
	low := streamEarnings(plays, PayPerStreamLowUSD, cur)
	high := streamEarnings(plays, PayPerStreamHighUSD, cur)
	return BandEarnings{
		LabelLow:   low.Label,
		LabelHigh:  high.Label,
		ArtistLow:  low.Artist,
		ArtistHigh: high.Artist,
	}
}

func AlbumPrice(cur Currency) float64 {
	if cur == USD {
		return AlbumPriceUSD
	}
	return AlbumPriceGBP
}

// ArtistEarnings is a ranked artist with its streaming estimate attached.
type ArtistEarnings struct {
	analysis.ArtistStat `yaml:",inline"`
	Earnings            `yaml:",inline"`
}

// TopArtists ranks artists as analysis.Stats.TopArtists does and attaches earnings.
func TopArtists(stats *analysis.Stats, n int, cur Currency) []ArtistEarnings {
	var out []ArtistEarnings
	for _, a := range stats.TopArtists(n) {
		out = append(out, ArtistEarnings{ArtistStat: a, Earnings: ForPlays(a.Plays, cur)})
	}
	return out
}

// AlbumComparison sets what the streams of an album paid against what one
// purchase of it would have paid the artist.
type AlbumComparison struct {
	analysis.AlbumStat `yaml:",inline"`
	Plays              int      `yaml:"album_plays"`
	Streaming          Earnings `yaml:"streaming"`
	PurchaseArtist     float64  `yaml:"purchase_artist"`
	Multiple           float64  `yaml:"multiple"`
	HasMultiple        bool     `yaml:"has_multiple"`
}

// CompareAlbums returns the top n real albums with their purchase comparison.
// Streaming earnings are based on total track plays, not album plays.
func CompareAlbums(stats *analysis.Stats, n int, cur Currency) []AlbumComparison {
	purchase := AlbumPrice(cur) * ArtistAlbumShare
	var out []AlbumComparison
	for _, a := range stats.TopAlbums(n) {
		streaming := ForPlays(a.TrackPlays, cur)
		multiple, ok := ArtistMultiple(purchase, streaming.Artist)
		out = append(out, AlbumComparison{
			AlbumStat:      a,
			Plays:          a.AlbumPlays(),
			Streaming:      streaming,
			PurchaseArtist: purchase,
			Multiple:       multiple,
			HasMultiple:    ok,
		})
	}
	return out
}

// ArtistMultiple is how many times more the artist earns from a purchase than
// from streaming. It reports false when streaming earned nothing.
func ArtistMultiple(purchase, streaming float64) (float64, bool) {
	if streaming == 0 {
		return 0, false
	}
	return purchase / streaming, true
}

type AlbumPurchaseResult struct {
	Threshold      int                  `yaml:"threshold"`
	AlbumCount     int                  `yaml:"album_count"`
	TotalCost      float64              `yaml:"total_cost"`
	ArtistEarnings float64              `yaml:"artist_earnings"`
	Albums         []analysis.AlbumStat `yaml:"albums"`
}

// AlbumPurchase prices buying every real album played at least threshold
// times. A negative threshold uses DefaultAlbumPurchaseThreshold.
func AlbumPurchase(stats *analysis.Stats, threshold int, cur Currency) AlbumPurchaseResult {
	if threshold < 0 {
		threshold = DefaultAlbumPurchaseThreshold
	}
	res := AlbumPurchaseResult{Threshold: threshold}
	for _, a := range stats.RealAlbums() {
		if a.AlbumPlays() >= threshold {
			res.Albums = append(res.Albums, a)
		}
	}
	res.AlbumCount = len(res.Albums)
	res.TotalCost = float64(res.AlbumCount) * AlbumPrice(cur)
	res.ArtistEarnings = res.TotalCost * ArtistAlbumShare
	return res
}
