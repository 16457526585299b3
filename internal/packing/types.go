package packing

import (
	"fmt"
	"strings"
)

// Strategy identifies a packing heuristic.
type Strategy string

const (
	// FirstFit sorts items descending and places each into the first bin with room.
	FirstFit Strategy = "ffd"
	// BestFit sorts items descending and places each into the tightest-fitting bin with room.
	BestFit Strategy = "bfd"
)

// Packer describes the behaviour required from a packing algorithm.
// Implementations are stateless and safe for concurrent use.
type Packer interface {
	Pack(weights []float64, capacity float64) ([]*Bin, error)
}

// StrategyInfo describes an available strategy for listing purposes.
type StrategyInfo struct {
	Strategy    Strategy
	Name        string
	Description string
}

// Strategies returns the available packing strategies in a stable order.
func Strategies() []StrategyInfo {
	return []StrategyInfo{
		{
			Strategy:    FirstFit,
			Name:        "First-Fit Decreasing",
			Description: "places each item into the first open bin with room, else opens a new bin",
		},
		{
			Strategy:    BestFit,
			Name:        "Best-Fit Decreasing",
			Description: "places each item into the open bin leaving the least room after placement, else opens a new bin",
		},
	}
}

// ParseStrategy resolves a user-supplied strategy name. Short and long forms
// are accepted, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ffd", "first-fit", "firstfit", "first-fit-decreasing":
		return FirstFit, nil
	case "bfd", "best-fit", "bestfit", "best-fit-decreasing":
		return BestFit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
