package main

import (
	"log"
	"math"
	"math/rand"

	"github.com/delaneyj/proxyparty/reactive"
)

type benchmarkTestConfig struct {
	name           string  // unique, shown in the table
	width          int64   // nodes per layer
	totalLayers    int64   // layers including the sources
	staticFraction float64 // fraction of nodes that always read all their sources
	nSources       int64   // sources read by each node
	readFraction   float64 // fraction of leaves read after each write
	iterations     int64
}

type intReader interface {
	Value() int
}

type benchmarkGraph struct {
	rt      *reactive.Runtime
	sources []*reactive.WriteableRef[int]
	layers  [][]*reactive.ComputedRef[int]
}

type benchmarkMakeGraphConfig struct {
	counter                      *int64
	width, totalLayers, nSources int64
	staticFraction               float64
}

func benchmarkMakeGraph(cfg *benchmarkMakeGraphConfig) *benchmarkGraph {
	rt := reactive.New(reactive.WithErrorHandler(func(err error) {
		log.Panic(err)
	}))
	sources := make([]*reactive.WriteableRef[int], cfg.width)
	for i := range sources {
		sources[i] = reactive.Ref(rt, i)
	}

	prev := make([]intReader, len(sources))
	for i, s := range sources {
		prev[i] = s
	}

	random := rand.New(rand.NewSource(0))
	graph := &benchmarkGraph{rt: rt, sources: sources}
	for l := int64(0); l < cfg.totalLayers-1; l++ {
		row := makeBenchmarkRow(&benchmarkRowConfig{
			rt:             rt,
			sources:        prev,
			counter:        cfg.counter,
			staticFraction: cfg.staticFraction,
			nSources:       cfg.nSources,
			rand:           random,
		})
		graph.layers = append(graph.layers, row)

		prev = make([]intReader, len(row))
		for i, c := range row {
			prev[i] = c
		}
	}
	return graph
}

type benchmarkRunGraphConfig struct {
	graph        *benchmarkGraph
	iterations   int64
	readFraction float64
}

// benchmarkRunGraph writes one source per iteration, reads some or all of
// the leaves, and returns the sum of the leaves read.
func benchmarkRunGraph(cfg *benchmarkRunGraphConfig) int {
	random := rand.New(rand.NewSource(0))
	leaves := cfg.graph.layers[len(cfg.graph.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - cfg.readFraction)))
	readLeaves := benchmarkRemoveElems(leaves, skipCount, random)

	sources := cfg.graph.sources
	for i := 0; i < int(cfg.iterations); i++ {
		sourceDex := i % len(sources)
		cfg.graph.rt.Batch(func() {
			sources[sourceDex].SetValue(i + sourceDex)
		})

		for _, leaf := range readLeaves {
			leaf.Value()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Value()
	}
	return sum
}

func benchmarkRemoveElems[T any](src []T, rmCount int, rand *rand.Rand) []T {
	out := make([]T, len(src))
	copy(out, src)
	for i := 0; i < rmCount; i++ {
		rmDex := rand.Intn(len(out))
		out[rmDex] = out[len(out)-1]
		out = out[:len(out)-1]
	}
	return out
}

type benchmarkRowConfig struct {
	rt             *reactive.Runtime
	sources        []intReader
	counter        *int64
	staticFraction float64
	nSources       int64
	rand           *rand.Rand
}

func makeBenchmarkRow(cfg *benchmarkRowConfig) []*reactive.ComputedRef[int] {
	row := make([]*reactive.ComputedRef[int], len(cfg.sources))

	for myDex := range cfg.sources {
		mySources := make([]intReader, 0, cfg.nSources)
		for sourceDex := 0; sourceDex < int(cfg.nSources); sourceDex++ {
			mySources = append(mySources, cfg.sources[(myDex+sourceDex)%len(cfg.sources)])
		}

		if cfg.rand.Float64() < cfg.staticFraction {
			row[myDex] = reactive.Computed(cfg.rt, func(oldValue int) int {
				*cfg.counter++
				sum := 0
				for _, source := range mySources {
					sum += source.Value()
				}
				return sum
			})
			continue
		}

		first := mySources[0]
		tail := mySources[1:]
		row[myDex] = reactive.Computed(cfg.rt, func(oldValue int) int {
			*cfg.counter++
			sum := first.Value()
			shouldDrop := sum&0x1 > 0
			dropDex := sum % len(tail)

			for i := 0; i < len(tail); i++ {
				if shouldDrop && i == dropDex {
					continue
				}
				sum += tail[i].Value()
			}
			return sum
		})
	}

	return row
}
