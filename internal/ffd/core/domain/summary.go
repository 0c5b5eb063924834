package domain

import "github.com/montanaflynn/stats"

// Summary describes the combined magnitude sample.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Q25    float64
	Q75    float64
}

// Summarize computes summary statistics over the distribution's combined,
// sorted magnitudes. Returns the zero Summary when no events were detected.
func (d *Distribution) Summarize() Summary {
	if len(d.Magnitudes) == 0 {
		return Summary{}
	}

	mean, _ := stats.Mean(d.Magnitudes)
	stdDev, _ := stats.StandardDeviation(d.Magnitudes)
	min, _ := stats.Min(d.Magnitudes)
	max, _ := stats.Max(d.Magnitudes)
	median, _ := stats.Median(d.Magnitudes)
	q25, _ := stats.Percentile(d.Magnitudes, 25)
	q75, _ := stats.Percentile(d.Magnitudes, 75)

	return Summary{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}
}
