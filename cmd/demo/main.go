// Command demo packs a sample set of weights and prints the resulting bins
// as a text chart. Weights, capacity, and algorithm can be overridden via flags.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"binpack-service/internal/chart"
	"binpack-service/internal/packing"
)

func main() {
	kingpinApp := kingpin.New("binpack-demo", "Packs a sample set of weights into fixed-capacity bins and prints the result")
	weightsFlag := kingpinApp.Flag("weights", "Comma-separated item weights").Default("4,8,1,4,2,1").String()
	capacityFlag := kingpinApp.Flag("capacity", "Bin capacity").Default("10").Float64()
	algorithmFlag := kingpinApp.Flag("algorithm", "Packing algorithm (ffd or bfd)").Default("ffd").String()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	weights, err := parseWeights(*weightsFlag)
	if err != nil {
		kingpinApp.Fatalf("invalid weights: %v", err)
	}

	strategy, err := packing.ParseStrategy(*algorithmFlag)
	if err != nil {
		kingpinApp.Fatalf("invalid algorithm: %v", err)
	}

	packer, err := packing.New(strategy)
	if err != nil {
		kingpinApp.Fatalf("initialize packer: %v", err)
	}

	bins, err := packer.Pack(weights, *capacityFlag)
	if err != nil {
		kingpinApp.Fatalf("packing failed: %v", err)
	}

	fmt.Printf("%s over %d weights (capacity %g)\n\n", strategy, len(weights), *capacityFlag)
	fmt.Print(chart.RenderText(bins, *capacityFlag))
}

// parseWeights parses a comma-separated string of weights into a slice of floats.
func parseWeights(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	weights := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		weights = append(weights, value)
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("no weights provided")
	}
	return weights, nil
}
