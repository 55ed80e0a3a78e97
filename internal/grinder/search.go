package grinder

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Range is a half-open interval of seed-space positions. A zero End
// means Space.
type Range struct {
	Start uint64
	End   uint64
}

// Progress is a snapshot of a running search.
type Progress struct {
	Done  uint64
	Total uint64
}

// Percent returns the share of the progression covered so far.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 100
	}
	return float64(p.Done) * 100 / float64(p.Total)
}

type Options struct {
	Range Range

	// Workers is the number of partitions scanned at once. Values below
	// one mean one.
	Workers int

	// OnProgress, if set, is called every ProgressEvery while the search
	// runs. It has no influence on the outcome.
	OnProgress    func(Progress)
	ProgressEvery time.Duration

	// ChunkSize is the number of positions per partition. Zero picks a
	// size from the range and Workers.
	ChunkSize uint64

	// OnChunk, if set, is called as each partition finishes.
	OnChunk func(index int, r Range, found int)
}

// Report is the outcome of a search.
type Report struct {
	// Results are in ascending position order.
	Results []Result

	// Capped is set when the search stopped at Config.Cap results; more
	// matches may exist past the last one.
	Capped bool

	Stride  Stride
	Scanned uint64
	Total   uint64
}

// minChunk is the smallest partition handed to a worker, in positions.
const minChunk = 1 << 18

// chunksPerWorker keeps workers busy while letting a capped search stop
// soon after its prefix is complete.
const chunksPerWorker = 16

type chunk struct {
	first uint64
	n     uint64
}

// Search scans the positions of opts.Range that can satisfy c and
// returns the first Config.Cap matches in position order.
//
// The progression is cut into contiguous chunks launched in order. Each
// chunk finds its own starting state by skip-ahead and keeps a private
// result list. Once the finished prefix of chunks holds Cap results,
// every later chunk is dropped, so the results are those of a single
// sequential scan regardless of Workers.
func Search(ctx context.Context, cfg *Config, c Constraints, opts Options) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stride, err := PlanStride(cfg, &c)
	if err != nil {
		return nil, err
	}
	rng := opts.Range
	if rng.End == 0 || rng.End > Space {
		rng.End = Space
	}
	if rng.Start > rng.End {
		return nil, fmt.Errorf("bad range: start %d is past end %d", rng.Start, rng.End)
	}
	workers := max(opts.Workers, 1)

	report := &Report{Stride: stride, Total: stride.Count(rng.Start, rng.End)}
	chunks := split(stride, rng, report.Total, workers, opts.ChunkSize)
	prog := &progress{total: report.Total}
	if opts.OnProgress != nil && opts.ProgressEvery > 0 {
		stop := prog.report(opts.OnProgress, opts.ProgressEvery)
		defer stop()
	}

	sc := newScanner(cfg, c, stride)
	m := newMerger(len(chunks), cfg.Cap)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ch := range chunks {
		if m.stopped(i) || gctx.Err() != nil {
			break
		}
		i, ch := i, ch
		g.Go(func() error {
			rs, err := sc.scan(gctx, ch.first, ch.n, func() bool { return m.stopped(i) }, prog)
			if err != nil {
				return err
			}
			m.finish(i, rs)
			if opts.OnChunk != nil {
				end := ch.first + ch.n*uint64(stride.Step)
				opts.OnChunk(i, Range{Start: ch.first, End: min(end, rng.End)}, len(rs))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report.Results, report.Capped = m.merge()
	report.Scanned = prog.done.Load()
	return report, nil
}

// split cuts the total positions of s within r into contiguous chunks.
func split(s Stride, r Range, total uint64, workers int, size uint64) []chunk {
	if total == 0 {
		return nil
	}
	if size == 0 {
		parts := uint64(workers * chunksPerWorker)
		size = max((total+parts-1)/parts, minChunk)
		if workers == 1 {
			size = total
		}
	}
	first := s.First(r.Start)
	var chunks []chunk
	for done := uint64(0); done < total; done += size {
		n := min(size, total-done)
		chunks = append(chunks, chunk{first: first + done*uint64(s.Step), n: n})
	}
	return chunks
}

// merger collects chunk results and tracks the last chunk still needed.
type merger struct {
	mu    sync.Mutex
	parts [][]Result
	done  []bool
	limit int
	cut   atomic.Int64
}

func newMerger(n, limit int) *merger {
	m := &merger{
		parts: make([][]Result, n),
		done:  make([]bool, n),
		limit: limit,
	}
	m.cut.Store(int64(n))
	return m
}

// stopped reports whether chunk i can no longer contribute.
func (m *merger) stopped(i int) bool {
	return int64(i) > m.cut.Load()
}

func (m *merger) finish(i int, rs []Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parts[i], m.done[i] = rs, true
	found := 0
	for j := range m.parts {
		if !m.done[j] {
			return
		}
		if found += len(m.parts[j]); found >= m.limit {
			m.cut.Store(int64(j))
			return
		}
	}
}

func (m *merger) merge() ([]Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Result
	for j, rs := range m.parts {
		if !m.done[j] {
			break
		}
		out = append(out, rs...)
		if len(out) >= m.limit {
			return out[:m.limit], true
		}
	}
	return out, false
}

// progress counts evaluated positions across all workers.
type progress struct {
	done  atomic.Uint64
	total uint64
}

func (p *progress) add(n uint64) {
	if p != nil && n > 0 {
		p.done.Add(n)
	}
}

func (p *progress) snapshot() Progress {
	return Progress{Done: p.done.Load(), Total: p.total}
}

// report calls fn every interval until the returned func is called.
func (p *progress) report(fn func(Progress), every time.Duration) func() {
	quit := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				fn(p.snapshot())
			case <-quit:
				return
			}
		}
	}()
	return func() {
		close(quit)
		wg.Wait()
	}
}
