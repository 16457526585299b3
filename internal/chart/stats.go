package chart

import (
	"gonum.org/v1/gonum/stat"

	"binpack-service/internal/packing"
)

// Summary aggregates per-run packing metrics.
type Summary struct {
	Bins              int
	Items             int
	TotalLoad         float64
	Utilization       []float64
	MeanUtilization   float64
	StdDevUtilization float64
}

// Summarize derives bin counts, loads, and utilization statistics from a
// finished packing.
func Summarize(bins []*packing.Bin, capacity float64) Summary {
	if len(bins) == 0 {
		return Summary{}
	}

	s := Summary{
		Bins:        len(bins),
		Utilization: make([]float64, len(bins)),
	}
	for i, bin := range bins {
		s.Items += bin.Count()
		s.TotalLoad += bin.Load()
		s.Utilization[i] = bin.Load() / capacity
	}

	s.MeanUtilization = stat.Mean(s.Utilization, nil)
	if len(s.Utilization) > 1 {
		s.StdDevUtilization = stat.StdDev(s.Utilization, nil)
	}

	return s
}
