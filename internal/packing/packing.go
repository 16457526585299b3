package packing

import (
	"fmt"
	"math"
	"sort"
)

type firstFitPacker struct{}

type bestFitPacker struct{}

// New creates a Packer for the given strategy.
func New(strategy Strategy) (Packer, error) {
	switch strategy {
	case FirstFit:
		return NewFirstFitDecreasing(), nil
	case BestFit:
		return NewBestFitDecreasing(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// NewFirstFitDecreasing creates a Packer implementing first-fit decreasing.
func NewFirstFitDecreasing() Packer {
	return &firstFitPacker{}
}

// NewBestFitDecreasing creates a Packer implementing best-fit decreasing.
func NewBestFitDecreasing() Packer {
	return &bestFitPacker{}
}

func (p *firstFitPacker) Pack(weights []float64, capacity float64) ([]*Bin, error) {
	return FirstFitDecreasing(weights, capacity)
}

func (p *bestFitPacker) Pack(weights []float64, capacity float64) ([]*Bin, error) {
	return BestFitDecreasing(weights, capacity)
}

// FirstFitDecreasing sorts the weights descending and places each into the
// first open bin with room, opening a new bin when none fits. Bins are
// returned in creation order. The number of bins is a heuristic upper bound,
// not guaranteed minimal.
func FirstFitDecreasing(weights []float64, capacity float64) ([]*Bin, error) {
	sorted, err := prepare(weights, capacity)
	if err != nil {
		return nil, err
	}

	var bins []*Bin
	for _, weight := range sorted {
		placed := false
		for _, bin := range bins {
			if bin.CanFit(weight) {
				if err := bin.Add(weight); err != nil {
					return nil, err
				}
				placed = true
				break
			}
		}
		if !placed {
			bin, err := openBin(capacity, weight)
			if err != nil {
				return nil, err
			}
			bins = append(bins, bin)
		}
	}

	return bins, nil
}

// BestFitDecreasing sorts the weights descending and places each into the open
// bin that would be left with the least remaining capacity, opening a new bin
// when none fits. Ties break towards the earliest-created bin. Every item
// scans all open bins, trading extra work for denser packing on inputs with
// many near-capacity combinations.
func BestFitDecreasing(weights []float64, capacity float64) ([]*Bin, error) {
	sorted, err := prepare(weights, capacity)
	if err != nil {
		return nil, err
	}

	var bins []*Bin
	for _, weight := range sorted {
		best := -1
		bestRemaining := math.MaxFloat64
		for i, bin := range bins {
			if !bin.CanFit(weight) {
				continue
			}
			// Strict less-than keeps the earliest bin on ties.
			if remaining := bin.Remaining() - weight; remaining < bestRemaining {
				bestRemaining = remaining
				best = i
			}
		}
		if best >= 0 {
			if err := bins[best].Add(weight); err != nil {
				return nil, err
			}
			continue
		}
		bin, err := openBin(capacity, weight)
		if err != nil {
			return nil, err
		}
		bins = append(bins, bin)
	}

	return bins, nil
}

// prepare validates the input and returns a descending copy of the weights.
// The sort is stable, so equal weights keep their original relative order.
// The caller's slice is never mutated.
func prepare(weights []float64, capacity float64) ([]float64, error) {
	if !(capacity > 0) || math.IsInf(capacity, 1) {
		return nil, fmt.Errorf("%w, got %g", ErrInvalidCapacity, capacity)
	}

	for i, weight := range weights {
		if !(weight > 0) || math.IsInf(weight, 1) {
			return nil, fmt.Errorf("%w: weight %g at position %d must be a positive finite number", ErrInvalidWeight, weight, i)
		}
		if weight > capacity {
			return nil, fmt.Errorf("%w: weight %g at position %d exceeds capacity %g", ErrInvalidWeight, weight, i, capacity)
		}
	}

	sorted := make([]float64, len(weights))
	copy(sorted, weights)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i] > sorted[j]
	})

	return sorted, nil
}

func openBin(capacity, weight float64) (*Bin, error) {
	bin, err := NewBin(capacity)
	if err != nil {
		return nil, err
	}
	if err := bin.Add(weight); err != nil {
		return nil, err
	}
	return bin, nil
}
