package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/TomTonic/rnd"
	"github.com/TomTonic/rnd/engines"
	"github.com/TomTonic/rnd/stats"
)

var runners = map[string]func(w io.Writer, s uint64, samples int){
	"pcg32":          run[uint32, engines.PCG32, *engines.PCG32],
	"smallfast32":    run[uint32, engines.SmallFast32, *engines.SmallFast32],
	"smallfast64":    run[uint64, engines.SmallFast64, *engines.SmallFast64],
	"xoshiro256ss":   run[uint64, engines.Xoshiro256SS, *engines.Xoshiro256SS],
	"romuduojr":      run[uint64, engines.RomuDuoJr, *engines.RomuDuoJr],
	"konadare192":    run[uint64, engines.Konadare192, *engines.Konadare192],
	"xorshift64star": run[uint64, engines.XorShift64Star, *engines.XorShift64Star],
	"narrow16":       run[uint16, engines.Narrow16, *engines.Narrow16],
	"narrow8":        run[uint8, engines.Narrow8, *engines.Narrow8],
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "engines:", strings.Join(slices.Sorted(maps.Keys(runners)), ", "))
		os.Exit(2)
	}
	s := cfg.seedValue()
	fmt.Printf("engine %s, seed %#x\n", cfg.Engine, s)
	runners[cfg.Engine](os.Stdout, s, cfg.Samples)
}

func run[T rnd.Word, E comparable, P rnd.Engine[T, E]](w io.Writer, s uint64, samples int) {
	r := rnd.NewSeededFrom64[T, E, P](s)
	fmt.Fprintf(w, "value bits: %d\n", r.ValueBits())

	for i := range samples {
		fmt.Fprintf(w, "sample %d: next=%d below(100)=%d between(-10,10)=%d float64=%.6f float32=%.6f\n",
			i, r.Next(), r.Below(100), rnd.Between(&r, -10, 10), r.Float64(), r.Float32())
	}

	heads := 0
	for range 1000 {
		if r.CoinFlip() {
			heads++
		}
	}
	fmt.Fprintf(w, "coin flips: %d heads of 1000\n", heads)
	fmt.Fprintf(w, "chance(0.25): %v\n", r.Chance(0.25))
	fmt.Fprintf(w, "gaussian(0,1): %.4f\n", r.Gaussian(0, 1))
	gs := make([]float64, 10_000)
	for i := range gs {
		gs[i] = r.Gaussian(5, 1)
	}
	mean, _, stddev := stats.Statistics(gs)
	fmt.Fprintf(w, "gaussian(5,1) x%d: mean=%.3f stddev=%.3f within 5%%: %v\n", len(gs), mean, stddev,
		stats.FloatsEqualWithTolerance(mean, 5, 5) && stats.FloatsEqualWithTolerance(stddev, 1, 5))
	fmt.Fprintf(w, "colour: #%06x\n", r.RGB8())

	fruit := []string{"apple", "banana", "cherry", "durian"}
	fmt.Fprintf(w, "element: %s, index: %d\n", rnd.Element(&r, fruit), r.Index(len(fruit)))
	r.Shuffle(len(fruit), func(i, j int) { fruit[i], fruit[j] = fruit[j], fruit[i] })
	fmt.Fprintf(w, "shuffled: %s\n", strings.Join(fruit, " "))

	child := r.Split()
	fmt.Fprintf(w, "split: parent=%d child=%d\n", r.Next(), child.Next())

	skipped, stepped := r, r
	skipped.Discard(1000)
	for range 1000 {
		stepped.Next()
	}
	fmt.Fprintf(w, "discard(1000) matches 1000 draws: %v\n", skipped == stepped)
}
