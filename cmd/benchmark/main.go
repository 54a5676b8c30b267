package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	widthKey  = "width"
	heightKey = "height"
	itersKey  = "iters"
	pprofKey  = "pprof"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Time write propagation through reactive graphs",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  widthKey,
				Usage: "Largest number of parallel chains",
				Value: 1_000,
			},
			&cli.UintFlag{
				Name:  heightKey,
				Usage: "Largest chain length",
				Value: 1_000,
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes timed per grid cell",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  pprofKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(pprofKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	ww := steps(int(cmd.Uint(widthKey)))
	hh := steps(int(cmd.Uint(heightKey)))
	iters := int(cmd.Uint(itersKey))

	log.Printf("warming up")
	benchmarkPropagate(ww, hh, iters, false)

	benchmarkPropagate(ww, hh, iters, true)
	benchmarkArrayPush(ww, iters)
	return nil
}

// steps returns 1, 10, 100... up to and including limit.
func steps(limit int) []int {
	var out []int
	for n := 1; n <= limit; n *= 10 {
		out = append(out, n)
	}
	if len(out) == 0 || out[len(out)-1] != limit {
		out = append(out, limit)
	}
	return out
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRow(table.Row{
		name,
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	})
}

func newRuntime() *reactive.Runtime {
	return reactive.New(reactive.WithErrorHandler(func(err error) {
		log.Panic(err)
	}))
}

func benchmarkPropagate(ww, hh []int, iters int, shouldRender bool) {
	tbl := newTable("Propagation")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := newRuntime()
			src := reactive.Ref(rt, 1)
			for i := 0; i < w; i++ {
				var last interface{ Value() int } = src
				for j := 0; j < h; j++ {
					prev := last
					last = reactive.Computed(rt, func(oldValue int) int {
						return prev.Value() + 1
					})
				}

				tail := last
				if _, err := reactive.Effect(rt, func() error {
					tail.Value()
					return nil
				}); err != nil {
					log.Panic(err)
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}
			rt.Close()

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkArrayPush(ww []int, iters int) {
	tbl := newTable("Array push")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rt := newRuntime()
		arr := rt.WrapArray(&[]any{})
		for i := 0; i < w; i++ {
			if _, err := reactive.Effect(rt, func() error {
				arr.Len()
				return nil
			}); err != nil {
				log.Panic(err)
			}
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			arr.Push(i, i+1, i+2)
			tach.AddTime(time.Since(start))
		}
		rt.Close()

		appendCalc(tbl, fmt.Sprintf("push: %d watchers", w), tach)
	}

	tbl.Render()
}
