package domain

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoDatasets             = errors.New("at least one dataset is required")
	ErrZeroExposure           = errors.New("combined exposure time is zero")
	ErrUndetectableMagnitude  = errors.New("event magnitude below every detection limit")
	ErrZeroDetectableExposure = errors.New("detectable exposure time is zero for an event")
)

// Distribution is the combined flare frequency distribution of a set of
// heterogeneous campaigns. All derived slices are parallel, index-aligned
// and sorted ascending by magnitude. A Distribution is never mutated after
// construction, so concurrent reads need no locking; recompute by
// constructing a new one.
type Distribution struct {
	Datasets      []Dataset
	TotalCount    int
	TotalExposure float64

	Magnitudes         []float64
	DetectableExposure []float64
	NaiveCumFreq       []float64
	CorrectedCumFreq   []float64
}

// NewDistribution merges the event lists of all datasets and computes the
// naive and detection-limit-corrected cumulative frequency curves.
//
// The naive curve divides the count of events at or above each magnitude by
// the combined exposure time of every campaign, as if each event had been
// detectable throughout. The corrected curve instead weights each event by
// the inverse of the exposure time in which that event's magnitude was
// actually detectable, compensating for campaigns with high detection
// limits contributing no faint events.
//
// All validation happens here; a constructed Distribution is internally
// consistent or construction failed outright.
func NewDistribution(datasets []Dataset) (*Distribution, error) {
	if len(datasets) == 0 {
		return nil, ErrNoDatasets
	}

	d := &Distribution{Datasets: datasets}

	expts := make([]float64, len(datasets))
	limits := make([]float64, len(datasets))
	for i, ds := range datasets {
		d.TotalCount += ds.Count()
		expts[i] = ds.ExposureTime
		limits[i] = ds.DetectionLimit
	}
	d.TotalExposure = floats.Sum(expts)

	if d.TotalExposure == 0 {
		return nil, ErrZeroExposure
	}

	d.Magnitudes = make([]float64, 0, d.TotalCount)
	for _, ds := range datasets {
		d.Magnitudes = append(d.Magnitudes, ds.Magnitudes...)
	}
	sort.Float64s(d.Magnitudes)

	// Sort (limit, exposure) pairs by detection limit, then cumulative-sum
	// the exposures. cumExpts[i] is the total exposure of all campaigns
	// whose limit is at or below limits[i].
	order := make([]int, len(datasets))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return limits[order[a]] < limits[order[b]] })

	sortedLimits := make([]float64, len(order))
	sortedExpts := make([]float64, len(order))
	for i, j := range order {
		sortedLimits[i] = limits[j]
		sortedExpts[i] = expts[j]
	}
	cumExpts := make([]float64, len(sortedExpts))
	floats.CumSum(cumExpts, sortedExpts)

	d.DetectableExposure = make([]float64, d.TotalCount)
	for i, m := range d.Magnitudes {
		// Upper-bound search: a campaign whose limit equals the event
		// magnitude exactly counts as able to detect it.
		n := sort.Search(len(sortedLimits), func(k int) bool { return sortedLimits[k] > m })
		if n == 0 {
			return nil, fmt.Errorf("%w: magnitude %g, lowest limit %g",
				ErrUndetectableMagnitude, m, sortedLimits[0])
		}
		d.DetectableExposure[i] = cumExpts[n-1]
		if d.DetectableExposure[i] == 0 {
			return nil, fmt.Errorf("%w: magnitude %g", ErrZeroDetectableExposure, m)
		}
	}

	d.NaiveCumFreq = make([]float64, d.TotalCount)
	for i := range d.NaiveCumFreq {
		d.NaiveCumFreq[i] = float64(d.TotalCount-i) / d.TotalExposure
	}

	// Corrected curve: running sum of 1/detectable-exposure from the
	// highest magnitude down. Each term already has units of events per
	// unit time, so no further normalization is applied.
	d.CorrectedCumFreq = make([]float64, d.TotalCount)
	running := 0.0
	for i := d.TotalCount - 1; i >= 0; i-- {
		running += 1.0 / d.DetectableExposure[i]
		d.CorrectedCumFreq[i] = running
	}

	return d, nil
}

// CumFreq returns the corrected or naive cumulative frequency curve. The
// corrected curve is the better default for heterogeneous campaigns; the
// naive one is the conventional choice for a single large survey.
func (d *Distribution) CumFreq(corrected bool) []float64 {
	if corrected {
		return d.CorrectedCumFreq
	}
	return d.NaiveCumFreq
}
