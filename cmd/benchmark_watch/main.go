package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kettleby/ripple"
	"github.com/olekukonko/tablewriter"
)

type benchmarkConfig struct {
	name        string
	width       int
	totalLayers int
	nSources    int
	iterations  int
}

func main() {
	log.Print("Starting watcher benchmark, please wait...")
	defer log.Print("Finished watcher benchmark")

	cfgs := []benchmarkConfig{
		{
			name:        "narrow shallow",
			width:       10,
			totalLayers: 5,
			nSources:    2,
			iterations:  50_000,
		},
		{
			name:        "wide shallow",
			width:       1000,
			totalLayers: 3,
			nSources:    4,
			iterations:  2_000,
		},
		{
			name:        "narrow deep",
			width:       5,
			totalLayers: 100,
			nSources:    3,
			iterations:  1_000,
		},
		{
			name:        "dense",
			width:       100,
			totalLayers: 10,
			nSources:    6,
			iterations:  5_000,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "width", "layers", "nSources",
		"iterations", "deliveries", "time", "updates/s",
	})

	for _, cfg := range cfgs {
		deliveries, elapsed := runBenchmark(cfg)
		perSec := float64(cfg.iterations) / elapsed.Seconds()
		table.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.width)),
			humanize.Comma(int64(cfg.totalLayers)),
			humanize.Comma(int64(cfg.nSources)),
			humanize.Comma(int64(cfg.iterations)),
			humanize.Comma(deliveries),
			elapsed.Round(time.Millisecond).String(),
			humanize.CommafWithDigits(perSec, 0),
		})
	}

	table.Render()
}

// runBenchmark builds a layered graph: a row of source signals, then
// totalLayers rows of computed cells each summing nSources cells of the
// row above, then one watcher per cell of the last row. Each iteration
// writes one random source and lets the graph settle.
func runBenchmark(cfg benchmarkConfig) (deliveries int64, elapsed time.Duration) {
	rs := ripple.CreateReactiveSystem(func(from any, err error) {
		log.Panic(err)
	})

	rnd := rand.New(rand.NewSource(42))

	sources := make([]*ripple.Signal[int], cfg.width)
	for i := range sources {
		sources[i] = ripple.NewSignal(rs, i)
	}

	prev := make([]ripple.Readable[int], cfg.width)
	for i, s := range sources {
		prev[i] = s
	}
	for layer := 0; layer < cfg.totalLayers; layer++ {
		row := make([]ripple.Readable[int], cfg.width)
		for i := range row {
			ins := make([]ripple.Readable[int], cfg.nSources)
			for k := range ins {
				ins[k] = prev[(i+k)%len(prev)]
			}
			row[i] = ripple.NewComputed(rs, func(oldValue int) (int, error) {
				sum := 0
				for _, in := range ins {
					sum += in.Value()
				}
				return sum, nil
			})
		}
		prev = row
	}

	for _, leaf := range prev {
		ripple.Watch(rs, leaf.Value, func(newValue, oldValue int, onCleanup func(func())) error {
			deliveries++
			return nil
		})
	}

	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		src := sources[rnd.Intn(len(sources))]
		src.Set(src.Peek() + 1)
	}
	elapsed = time.Since(start)

	fmt.Fprintf(os.Stderr, "%s: %s deliveries\n", cfg.name, humanize.Comma(deliveries))
	return deliveries, elapsed
}
