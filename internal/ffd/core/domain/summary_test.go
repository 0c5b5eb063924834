package domain

import "testing"

func TestDistribution_Summarize(t *testing.T) {
	datasets := []Dataset{
		{Name: "a", DetectionLimit: 0, ExposureTime: 10, Magnitudes: []float64{1, 2, 3, 4}},
	}

	d, err := NewDistribution(datasets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := d.Summarize()

	if s.Mean != 2.5 {
		t.Fatalf("mean = %g, want 2.5", s.Mean)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Fatalf("min/max = %g/%g, want 1/4", s.Min, s.Max)
	}
	if s.Median != 2.5 {
		t.Fatalf("median = %g, want 2.5", s.Median)
	}
	if s.Q25 >= s.Median || s.Q75 <= s.Median {
		t.Fatalf("quartiles out of order: q25=%g median=%g q75=%g", s.Q25, s.Median, s.Q75)
	}
}

func TestDistribution_Summarize_NoEvents(t *testing.T) {
	datasets := []Dataset{
		{Name: "quiet", DetectionLimit: 1, ExposureTime: 10, Magnitudes: []float64{}},
	}

	d, err := NewDistribution(datasets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := d.Summarize(); s != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}
