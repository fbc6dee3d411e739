/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"log"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/bytedance/gopkg/lang/fastrand"
	"github.com/bytedance/gopkg/util/gopool"
	"github.com/spf13/cobra"

	"github.com/cloudwego/refcount/refcpool"
)

type benchOptions struct {
	blocks  int
	rounds  int
	workers int
	cache   int
	direct  bool
	trace   bool
}

type workerResult struct {
	id      int
	ops     int
	elapsed time.Duration
	stats   refcpool.Stats
}

// allocFactory builds the allocator owned by one worker.
type allocFactory func(worker int) refcpool.Allocator

func newRootCmd() *cobra.Command {
	return newBenchCmd(nil)
}

// newBenchCmd returns the root command. A nil factory builds allocators
// from the command line flags.
func newBenchCmd(factory allocFactory) *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:          "refcbench",
		Short:        "Benchmark reference-count cell allocation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			newAlloc := factory
			if newAlloc == nil {
				newAlloc = opts.newFactory(cmd.ErrOrStderr())
			}
			results, err := run(opts, newAlloc)
			if err != nil {
				return err
			}
			return report(cmd, opts, results)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.blocks, "blocks", 32, "blocks worth of cells live at the peak of each round")
	f.IntVar(&opts.rounds, "rounds", 100, "allocate/free rounds per worker")
	f.IntVar(&opts.workers, "workers", 1, "workers, each with its own allocator")
	f.IntVar(&opts.cache, "cache", refcpool.DefaultCacheSize, "block cache size, negative disables it")
	f.BoolVar(&opts.direct, "direct", false, "allocate every cell from the heap instead of pooling")
	f.BoolVar(&opts.trace, "trace", false, "log every allocator event to stderr")
	return cmd
}

func (o *benchOptions) validate() error {
	switch {
	case o.blocks <= 0:
		return fmt.Errorf("--blocks must be > 0, got %d", o.blocks)
	case o.rounds <= 0:
		return fmt.Errorf("--rounds must be > 0, got %d", o.rounds)
	case o.workers <= 0:
		return fmt.Errorf("--workers must be > 0, got %d", o.workers)
	case o.cache == 0:
		// 0 would silently mean the default size
		return fmt.Errorf("--cache must be non-zero, use a negative value to disable it")
	}
	return nil
}

type statser interface {
	Stats() refcpool.Stats
}

func newAllocator(opts *benchOptions, tracer refcpool.Tracer) refcpool.Allocator {
	o := &refcpool.Option{CacheSize: opts.cache, Tracer: tracer}
	if opts.direct {
		return refcpool.NewDirect(o)
	}
	return refcpool.NewPool(o)
}

// newFactory gives every worker its own tracer prefix, block ids of
// different workers overlap.
func (o *benchOptions) newFactory(traceOut io.Writer) allocFactory {
	out := &lockedWriter{w: traceOut}
	return func(worker int) refcpool.Allocator {
		var tracer refcpool.Tracer
		if o.trace {
			prefix := fmt.Sprintf("REFCPOOL[w%d]: ", worker)
			tracer = refcpool.NewLogTracer(log.New(out, prefix, log.Lmicroseconds|log.Lmsgprefix))
		}
		return newAllocator(o, tracer)
	}
}

// lockedWriter serializes writes of loggers sharing one output.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// run starts one allocator per worker, allocators are never shared.
// A fatal allocator error in any worker is returned instead of a result.
func run(opts *benchOptions, newAlloc allocFactory) ([]workerResult, error) {
	results := make([]workerResult, opts.workers)
	errs := make([]error, opts.workers)
	pool := gopool.NewPool("refcbench", int32(opts.workers), gopool.NewConfig())

	var wg sync.WaitGroup
	for i := 0; i < opts.workers; i++ {
		i := i
		wg.Add(1)
		pool.Go(func() {
			defer wg.Done()
			// recovered here, gopool would only log it
			defer func() {
				if r := recover(); r != nil {
					errs[i] = workerPanic(i, r)
				}
			}()
			results[i] = churn(i, opts, newAlloc(i))
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func workerPanic(worker int, r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("worker %d: %w", worker, err)
	}
	return fmt.Errorf("worker %d: panic: %v", worker, r)
}

// churn fills opts.blocks blocks, frees them in random order and repeats.
func churn(id int, opts *benchOptions, a refcpool.Allocator) workerResult {
	n := opts.blocks * refcpool.BlockCells
	cells := make([]*int64, n)

	begin := time.Now()
	for r := 0; r < opts.rounds; r++ {
		for i := range cells {
			cells[i] = a.Alloc()
			*cells[i] = 1
		}
		shuffle(cells)
		for _, c := range cells {
			*c--
			a.Free(c)
		}
	}
	elapsed := time.Since(begin)

	a.ReleaseAll()

	res := workerResult{id: id, ops: 2 * n * opts.rounds, elapsed: elapsed}
	if s, ok := a.(statser); ok {
		res.stats = s.Stats()
	}
	return res
}

func shuffle(cells []*int64) {
	for i := len(cells) - 1; i > 0; i-- {
		j := fastrand.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}

func report(cmd *cobra.Command, opts *benchOptions, results []workerResult) error {
	strategy := "pool"
	if opts.direct {
		strategy = "direct"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "strategy=%s blocks=%d rounds=%d workers=%d cache=%d\n",
		strategy, opts.blocks, opts.rounds, opts.workers, opts.cache)

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "worker\tops\tns/op\tblocks\tcache hits\tcached\theap allocs\theap frees")
	for _, r := range results {
		nsop := float64(r.elapsed.Nanoseconds()) / float64(r.ops)
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%d\t%d\t%d\t%d\t%d\n",
			r.id, r.ops, nsop,
			r.stats.BlocksCreated, r.stats.CacheHits, r.stats.BlocksCached,
			r.stats.HeapAllocs, r.stats.HeapFrees)
	}
	return w.Flush()
}
