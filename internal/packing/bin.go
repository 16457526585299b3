package packing

import (
	"fmt"
	"math"
)

// Bin is a fixed-capacity container holding item weights in placement order.
// Items are only ever appended; the load never exceeds the capacity.
type Bin struct {
	capacity float64
	items    []float64
	load     float64
}

// NewBin creates an empty bin bound to the given capacity.
func NewBin(capacity float64) (*Bin, error) {
	if !(capacity > 0) || math.IsInf(capacity, 1) {
		return nil, fmt.Errorf("%w, got %g", ErrInvalidCapacity, capacity)
	}
	return &Bin{capacity: capacity}, nil
}

// Capacity returns the fixed capacity of the bin.
func (b *Bin) Capacity() float64 {
	return b.capacity
}

// Load returns the sum of the weights placed in the bin.
func (b *Bin) Load() float64 {
	return b.load
}

// Remaining returns the spare capacity left in the bin.
func (b *Bin) Remaining() float64 {
	return b.capacity - b.load
}

// Count returns the number of items placed in the bin.
func (b *Bin) Count() int {
	return len(b.items)
}

// Items returns a defensive copy of the item weights in placement order.
func (b *Bin) Items() []float64 {
	out := make([]float64, len(b.items))
	copy(out, b.items)
	return out
}

// CanFit reports whether the weight fits into the remaining capacity.
func (b *Bin) CanFit(weight float64) bool {
	return weight <= b.Remaining()
}

// Add appends the weight to the bin. It fails with ErrOverCapacity when the
// weight does not fit; callers are expected to check CanFit first.
func (b *Bin) Add(weight float64) error {
	if !b.CanFit(weight) {
		return fmt.Errorf("%w: weight %g, remaining %g", ErrOverCapacity, weight, b.Remaining())
	}
	b.items = append(b.items, weight)
	b.load += weight
	return nil
}
