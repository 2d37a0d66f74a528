package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kettleby/ripple"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkPropagation()
}

// benchmarkPropagation builds w independent chains of h computed cells
// hanging off one signal, attaches an effect at the end of each chain and
// measures how long one source write takes to settle.
func benchmarkPropagation() {
	tbl := table.NewWriter()
	tbl.SetTitle("Ripple Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := ripple.CreateReactiveSystem(func(from any, err error) {
				log.Panic(err)
			})
			src := ripple.NewSignal(rs, 1)
			for i := 0; i < w; i++ {
				var last ripple.Readable[int] = src
				for j := 0; j < h; j++ {
					prev := last
					last = ripple.NewComputed(rs, func(oldValue int) (int, error) {
						return prev.Value() + 1, nil
					})
				}

				ripple.Effect(rs, func() error {
					last.Value()
					return nil
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
}
