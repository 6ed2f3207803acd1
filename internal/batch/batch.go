// Package batch balances a YAML list of reactions concurrently and reports
// the results in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/katalvlaran/stoich/internal/service"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrNoReactions is returned by Load for a file without entries.
var ErrNoReactions = errors.New("batch: no reactions")

// File is the YAML input document.
//
//	reactions:
//	  - H2 + O2 -> H2O
//	  - Fe + O2 -> Fe2O3
type File struct {
	Reactions []string `yaml:"reactions"`
}

// Report is the outcome of Run.
type Report struct {
	Results []service.Result `json:"results" yaml:"results"`
	Failed  int              `json:"failed" yaml:"failed"`
}

// Load decodes a batch file. Unknown keys are rejected.
func Load(r io.Reader) ([]string, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoReactions
		}

		return nil, fmt.Errorf("batch: decode: %w", err)
	}
	if len(f.Reactions) == 0 {
		return nil, ErrNoReactions
	}

	return f.Reactions, nil
}

// Balancer is the part of *service.Service Run needs.
type Balancer interface {
	Balance(ctx context.Context, surface, input string) (service.Result, error)
}

// Run balances every reaction with at most workers in flight (GOMAXPROCS
// when workers <= 0). Balancing failures are recorded in the report, not
// returned; only ctx cancellation aborts the run.
func Run(ctx context.Context, b Balancer, reactions []string, workers int) (*Report, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]service.Result, len(reactions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range reactions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], _ = b.Balance(gctx, service.SurfaceBatch, in)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	rep := &Report{Results: results}
	for _, r := range results {
		if !r.OK() {
			rep.Failed++
		}
	}

	return rep, nil
}
