package chart

import (
	"strings"
	"testing"

	"binpack-service/internal/packing"
)

func packedBins(t *testing.T, weights []float64, capacity float64) []*packing.Bin {
	t.Helper()

	bins, err := packing.FirstFitDecreasing(weights, capacity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return bins
}

func TestRenderTextOneLinePerBin(t *testing.T) {
	t.Parallel()

	bins := packedBins(t, []float64{4, 8, 1, 4, 2, 1}, 10)
	out := RenderText(bins, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// one line per bin plus the summary line
	if want := len(bins) + 1; len(lines) != want {
		t.Fatalf("expected %d lines, got %d:\n%s", want, len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "bin  1 [") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "bins") {
		t.Fatalf("expected summary line, got %q", lines[len(lines)-1])
	}
}

func TestRenderTextFullBinFillsBar(t *testing.T) {
	t.Parallel()

	bins := packedBins(t, []float64{10}, 10)
	out := RenderText(bins, 10)

	if strings.Contains(strings.SplitN(out, "\n", 2)[0], ".") {
		t.Fatalf("expected no empty cells for a full bin, got %q", out)
	}
}

func TestRenderTextEmptyRun(t *testing.T) {
	t.Parallel()

	out := RenderText(nil, 10)
	if !strings.Contains(out, "0 bins") {
		t.Fatalf("expected empty summary, got %q", out)
	}
}

func TestRenderSVGStructure(t *testing.T) {
	t.Parallel()

	bins := packedBins(t, []float64{4, 8, 1, 4, 2, 1}, 10)
	out := string(RenderSVG(bins, 10))

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Fatalf("expected an svg document, got %q", out)
	}

	items := 0
	for _, bin := range bins {
		items += bin.Count()
	}
	// one rect per item segment plus one outline per bin
	if got := strings.Count(out, "<rect"); got != items+len(bins) {
		t.Fatalf("expected %d rects, got %d", items+len(bins), got)
	}
	if !strings.Contains(out, "capacity 10") {
		t.Fatalf("expected capacity label in %q", out)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	bins := packedBins(t, []float64{5, 5, 5}, 5)
	s := Summarize(bins, 5)

	if s.Bins != 3 || s.Items != 3 {
		t.Fatalf("expected 3 bins and 3 items, got %d and %d", s.Bins, s.Items)
	}
	if s.TotalLoad != 15 {
		t.Fatalf("expected total load 15, got %g", s.TotalLoad)
	}
	if s.MeanUtilization != 1 {
		t.Fatalf("expected mean utilization 1, got %g", s.MeanUtilization)
	}
	if s.StdDevUtilization != 0 {
		t.Fatalf("expected zero stddev, got %g", s.StdDevUtilization)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil, 10)
	if s.Bins != 0 || s.MeanUtilization != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}
