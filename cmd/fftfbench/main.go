// Command fftfbench times Calc for each transform type on a list of sizes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/cwbudde/algo-fftf"
	"github.com/cwbudde/algo-fftf/internal/cpu"
)

type benchResult struct {
	size    int
	typ     fftf.Type
	dir     fftf.Direction
	nsPerOp float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "64,256,1000,1024,4096", "comma-separated sizes")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		typeList = flag.String("types", "all", "transform types: complex, real, dct, all")
		mode     = flag.String("mode", "all", "direction: forward, backward, all")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	types, err := resolveTypes(*typeList)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rnd := rand.New(rand.NewSource(*seed))
	features := cpu.DetectFeatures()

	fmt.Printf("arch=%s vector=%dB iters=%d warmup=%d\n", features.Architecture, features.VectorWidth(), *iters, *warmup)
	fmt.Printf("%8s  %8s  %9s  %12s\n", "size", "type", "direction", "ns/op")

	var results []benchResult

	for _, n := range sizes {
		for _, typ := range types {
			for _, dir := range resolveModes(*mode) {
				res, err := benchmark(rnd, typ, dir, n, *iters, *warmup)
				if err != nil {
					fmt.Printf("%8d  %8s  %9s  %12s\n", n, typ, dir, "skipped")
					continue
				}

				results = append(results, res)
				fmt.Printf("%8d  %8s  %9s  %12.1f\n", n, typ, dir, res.nsPerOp)
			}
		}
	}

	if len(results) == 0 {
		return
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].nsPerOp/float64(results[i].size) < results[j].nsPerOp/float64(results[j].size)
	})

	best := results[0]
	fmt.Printf("\nlowest ns/point: %s %s n=%d (%.2f ns/point)\n",
		best.typ, best.dir, best.size, best.nsPerOp/float64(best.size))
}

func benchmark(rnd *rand.Rand, typ fftf.Type, dir fftf.Direction, n, iters, warmup int) (benchResult, error) {
	probe := fftf.Instance{Type: typ, Direction: dir, Lengths: []int{n}}
	inLen, outLen := probe.BufferLens()

	in, err := fftf.Malloc(fftf.BackendKiss, inLen)
	if err != nil {
		return benchResult{}, err
	}

	out, err := fftf.Malloc(fftf.BackendKiss, outLen)
	if err != nil {
		return benchResult{}, err
	}

	for i := range in {
		in[i] = rnd.Float32()*2 - 1
	}

	inst, err := fftf.New(fftf.BackendKiss, typ, dir, fftf.Dim1D, []int{n}, in, out)
	if err != nil {
		return benchResult{}, err
	}
	defer inst.Destroy()

	for range warmup {
		if err := inst.Calc(); err != nil {
			return benchResult{}, err
		}
	}

	runtime.GC()

	start := time.Now()

	for range iters {
		if err := inst.Calc(); err != nil {
			return benchResult{}, err
		}
	}

	elapsed := time.Since(start)

	return benchResult{
		size:    n,
		typ:     typ,
		dir:     dir,
		nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
	}, nil
}

func resolveModes(mode string) []fftf.Direction {
	switch mode {
	case "forward":
		return []fftf.Direction{fftf.Forward}
	case "backward", "inverse":
		return []fftf.Direction{fftf.Backward}
	default:
		return []fftf.Direction{fftf.Forward, fftf.Backward}
	}
}

func resolveTypes(list string) ([]fftf.Type, error) {
	if list == "all" {
		return []fftf.Type{fftf.TypeComplex, fftf.TypeReal, fftf.TypeDCT}, nil
	}

	var out []fftf.Type

	for _, part := range strings.Split(list, ",") {
		switch strings.TrimSpace(part) {
		case "complex":
			out = append(out, fftf.TypeComplex)
		case "real":
			out = append(out, fftf.TypeReal)
		case "dct":
			out = append(out, fftf.TypeDCT)
		case "":
		default:
			return nil, fmt.Errorf("unknown transform type %q", part)
		}
	}

	return out, nil
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
