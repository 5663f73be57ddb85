// Command kernelbench times the FFT and sparse echelon engines across a
// sweep of sizes and renders an interactive go-echarts scatter, the same
// "run a sweep, plot it" shape as the teacher's Additionnals/plot_pacs_sweep.go
// (there reading pre-computed JSON rows; here generating the rows itself
// since the kernel has no persistence layer of its own to read from).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/aklitzke/algebra-kernel/fft"
	"github.com/aklitzke/algebra-kernel/prof"
	"github.com/aklitzke/algebra-kernel/ring"
	"github.com/aklitzke/algebra-kernel/sparse"
	"github.com/aklitzke/algebra-kernel/zn"
)

// fftModulus is an NTT-friendly 31-bit prime comfortably under
// zn.MaxModulusBits; it is large enough that random FFT inputs rarely
// collide with small special values, matching the teacher's own choice of
// a single fixed working modulus across a sweep (cmd/analysis/main.go).
const fftModulus = 2013265921 // 15*2^27 + 1, supports power-of-two transforms up to N=2^27

type fftRow struct {
	logN   int
	micros int64
}

type sparseRow struct {
	rows, cols int
	micros     int64
}

func parseIntList(spec string) []int {
	parts := strings.Split(spec, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "kernelbench: skipping invalid size %q: %v\n", p, err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// findOmega returns a primitive n-th root of unity in z, by exhaustive
// search over small generator candidates. n must divide z.Modulus()-1.
func findOmega(z zn.Fast64, n int64) ring.Element {
	order := z.Modulus() - 1
	if order%n != 0 {
		panic("kernelbench: fftModulus-1 must be divisible by n")
	}
	for g := int32(2); g < 10000; g++ {
		cand := ring.Pow(z, z.FromInt(g), uint64(order/n))
		// n is a power of two, so cand is primitive iff it isn't also an
		// (n/2)-th root of unity.
		if z.IsOne(ring.Pow(z, cand, uint64(n/2))) {
			continue
		}
		return cand
	}
	panic("kernelbench: no primitive root found in search range")
}

func benchFFT(logNs []int) []fftRow {
	z := zn.NewFast64(fftModulus)
	rows := make([]fftRow, 0, len(logNs))
	for _, logN := range logNs {
		n := int64(1) << uint(logN)
		omega := findOmega(z, n)
		table := fft.NewCooleyTukeyFastmul(z, omega, logN)

		src := rand.New(rand.NewSource(int64(logN) + 1))
		values := make([]ring.Element, n)
		for i := range values {
			values[i] = z.FromInt(int32(src.Intn(1 << 20)))
		}

		start := time.Now()
		fft.FFT(table, values)
		fft.InvFFT(table, values)
		elapsed := time.Since(start)
		prof.Track(start, fmt.Sprintf("fft-roundtrip-logN%d", logN))

		rows = append(rows, fftRow{logN: logN, micros: elapsed.Microseconds()})
		fmt.Fprintf(os.Stderr, "[kernelbench] fft logN=%d roundtrip=%s\n", logN, elapsed)
	}
	return rows
}

func benchSparse(sizes []int, density float64) []sparseRow {
	rows := make([]sparseRow, 0, len(sizes))
	for _, n := range sizes {
		field := zn.NewFast64(1009)
		builder := sparse.NewMatrixBuilder(field)
		for j := 0; j < n; j++ {
			builder.AddCol()
		}
		src := rand.New(rand.NewSource(int64(n) + 7))
		for i := 0; i < n; i++ {
			builder.AddZeroRow()
			entries := map[int]ring.Element{i: field.One()}
			for j := i + 1; j < n; j++ {
				if src.Float64() < density {
					entries[j] = field.FromInt(int32(1 + src.Intn(1008)))
				}
			}
			for col, val := range entries {
				builder.Set(i, col, val)
			}
		}
		m := builder.Build(256)

		start := time.Now()
		_, stats := sparse.GBRowEchelon(field, m)
		elapsed := time.Since(start)
		prof.Track(start, fmt.Sprintf("sparse-echelon-n%d", n))

		rows = append(rows, sparseRow{rows: n, cols: n, micros: elapsed.Microseconds()})
		fmt.Fprintf(os.Stderr, "[kernelbench] sparse n=%d pivotRounds=%d elimOps=%d elapsed=%s\n",
			n, stats.PivotRounds, stats.EliminationOps, elapsed)
	}
	return rows
}

func render(outPath string, fftRows []fftRow, sparseRows []sparseRow) error {
	page := components.NewPage().SetPageTitle("Kernel microbenchmarks")

	fftChart := charts.NewScatter()
	fftChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "FFT round-trip time vs log2(N)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "log2(N)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds", Type: "value"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
			},
		}),
	)
	fftItems := make([]opts.ScatterData, 0, len(fftRows))
	for _, r := range fftRows {
		fftItems = append(fftItems, opts.ScatterData{Value: []interface{}{r.logN, r.micros}})
	}
	fftChart.AddSeries("Cooley-Tukey round trip", fftItems,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 10}))

	sparseChart := charts.NewScatter()
	sparseChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sparse echelon time vs matrix size"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "rows = cols", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds", Type: "value"}),
	)
	sparseItems := make([]opts.ScatterData, 0, len(sparseRows))
	for _, r := range sparseRows {
		sparseItems = append(sparseItems, opts.ScatterData{Value: []interface{}{r.rows, r.micros}})
	}
	sparseChart.AddSeries("GBRowEchelon", sparseItems,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "diamond", SymbolSize: 10}))

	page.AddCharts(fftChart, sparseChart)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()
	return page.Render(f)
}

func main() {
	fftSizes := flag.String("fft-logn", "4,6,8,10", "comma-separated log2(N) values to benchmark the FFT at")
	sparseSizes := flag.String("sparse-n", "32,64,128", "comma-separated row/column counts to benchmark sparse echelon at")
	density := flag.Float64("sparse-density", 0.05, "probability of a nonzero above the diagonal in the sparse benchmark matrix")
	out := flag.String("out", "kernelbench.html", "output HTML report path")
	flag.Parse()

	fftRows := benchFFT(parseIntList(*fftSizes))
	sparseRowsResult := benchSparse(parseIntList(*sparseSizes), *density)

	if err := render(*out, fftRows, sparseRowsResult); err != nil {
		fmt.Fprintf(os.Stderr, "kernelbench: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "kernelbench: wrote %s\n", *out)

	for _, e := range prof.SnapshotAndReset() {
		fmt.Fprintf(os.Stderr, "[kernelbench] prof: %s took %s\n", e.Label, e.Dur)
	}
}
