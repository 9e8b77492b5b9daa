package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	metrics "github.com/rcrowley/go-metrics"

	"github.com/katalvlaran/kruskalbench/bfs"
	"github.com/katalvlaran/kruskalbench/builder"
	"github.com/katalvlaran/kruskalbench/core"
	"github.com/katalvlaran/kruskalbench/kruskal"
)

// ErrVerifyFailed indicates an MST result that contradicts the input graph's
// component structure.
var ErrVerifyFailed = errors.New("bench: MST verification failed")

// reservoirSize bounds the per-scenario timing sample.
const reservoirSize = 1028

// Result is the outcome of one scenario.
type Result struct {
	Scenario

	// Generated is the number of edges the generator actually produced.
	Generated int
	// MSTEdges is the number of accepted edges.
	MSTEdges int
	// TotalWeight is the MST weight.
	TotalWeight int64
	// Elapsed is the mean FindMST duration over all repeats.
	Elapsed time.Duration
}

// Runner executes scenarios sequentially. It is not safe for concurrent use:
// scenarios share the generator's random stream.
type Runner struct {
	cfg runnerConfig
}

// NewRunner resolves opts into a Runner.
func NewRunner(opts ...Option) *Runner {
	return &Runner{cfg: newRunnerConfig(opts...)}
}

// Registry returns the registry holding the per-scenario timing histograms.
func (r *Runner) Registry() metrics.Registry {
	return r.cfg.registry
}

// Run writes the header and one row per scenario to w and returns the results.
// It stops at the first generator, verification or write error.
func (r *Runner) Run(w io.Writer, scenarios []Scenario) ([]Result, error) {
	rep := NewReport(w)
	if err := rep.WriteHeader(); err != nil {
		return nil, fmt.Errorf("bench: write header: %w", err)
	}

	results := make([]Result, 0, len(scenarios))
	for i, sc := range scenarios {
		res, err := r.RunScenario(i, sc)
		if err != nil {
			return results, err
		}
		if err := rep.WriteRow(res); err != nil {
			return results, fmt.Errorf("bench: write row %d: %w", i, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// RunScenario generates the scenario's graph and times FindMST on it.
// idx distinguishes the timing histogram of equal scenarios; the histogram is
// cleared on every call.
func (r *Runner) RunScenario(idx int, sc Scenario) (Result, error) {
	mode := builder.ParseMode(sc.Mode)
	log := r.cfg.logger.With("scenario", idx, "label", sc.Label, "mode", mode)

	edges, err := builder.Generate(mode, sc.Vertices, sc.Edges, builder.WithRand(r.cfg.rng))
	if err != nil {
		return Result{}, fmt.Errorf("bench: scenario %d (%s): %w", idx, sc.Label, err)
	}
	log.Debug("graph generated", "vertices", sc.Vertices, "requested", sc.Edges, "generated", len(edges))

	hist := metrics.GetOrRegisterHistogram(histogramName(idx, mode, sc), r.cfg.registry,
		metrics.NewUniformSample(reservoirSize))
	hist.Clear()

	var (
		mst   []core.Edge
		total int64
	)
	for i := 0; i < r.cfg.repeat; i++ {
		start := time.Now()
		mst, total = kruskal.FindMST(edges, sc.Vertices)
		hist.Update(int64(time.Since(start)))
	}

	res := Result{
		Scenario:    sc,
		Generated:   len(edges),
		MSTEdges:    len(mst),
		TotalWeight: total,
		Elapsed:     time.Duration(hist.Mean()),
	}
	log.Debug("mst computed", "mst_edges", res.MSTEdges, "weight", res.TotalWeight,
		"elapsed", res.Elapsed, "runs", hist.Count())

	if r.cfg.verify {
		if err := verify(sc, edges, res); err != nil {
			log.Warn("verification failed", "err", err)
			return res, err
		}
		log.Debug("verified")
	}

	return res, nil
}

// verify checks |MST| = V − components, that the checked Kruskal entry point
// agrees on the weight, and for trees that the MST is the whole input.
func verify(sc Scenario, edges []core.Edge, res Result) error {
	comps, err := bfs.Components(sc.Vertices, edges)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrVerifyFailed, sc.Label, err)
	}
	if want := sc.Vertices - comps; res.MSTEdges != want {
		return fmt.Errorf("%w: %s: %d MST edges, want %d (%d components)",
			ErrVerifyFailed, sc.Label, res.MSTEdges, want, comps)
	}
	// Checked path: validated input, overflow detection and, for a connected
	// graph, a spanning tree requirement.
	_, checked, err := kruskal.Compute(edges, sc.Vertices, kruskal.WithSpanningTree(comps <= 1))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrVerifyFailed, sc.Label, err)
	}
	if checked != res.TotalWeight {
		return fmt.Errorf("%w: %s: checked weight %d, MST weight %d",
			ErrVerifyFailed, sc.Label, checked, res.TotalWeight)
	}
	if builder.ParseMode(sc.Mode) == builder.ModeTree {
		sum, err := core.TotalWeight(edges)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrVerifyFailed, sc.Label, err)
		}
		if sum != res.TotalWeight {
			return fmt.Errorf("%w: %s: tree weight %d, MST weight %d",
				ErrVerifyFailed, sc.Label, sum, res.TotalWeight)
		}
	}

	return nil
}

func histogramName(idx int, mode builder.Mode, sc Scenario) string {
	return fmt.Sprintf("kruskal.%d.%s.v%d.e%d", idx, mode, sc.Vertices, sc.Edges)
}
