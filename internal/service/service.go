// Package service is the facade every outer surface (CLI, REPL, batch, HTTP,
// MCP) calls: input normalisation, result caching, metrics and logging around
// balancer.Balance.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/stoich/balancer"
	"github.com/katalvlaran/stoich/internal/cache"
	"github.com/katalvlaran/stoich/internal/metrics"
	"github.com/katalvlaran/stoich/reaction"
	"golang.org/x/text/unicode/norm"
)

// Surface labels used for metrics and logs.
const (
	SurfaceCLI   = "cli"
	SurfaceREPL  = "repl"
	SurfaceBatch = "batch"
	SurfaceHTTP  = "http"
	SurfaceMCP   = "mcp"
)

// Term is one coefficient/formula pair of a Result.
type Term struct {
	Coefficient int64  `json:"coefficient" yaml:"coefficient"`
	Formula     string `json:"formula" yaml:"formula"`
}

// Result is the serializable outcome of one request. Exactly one of
// Balanced and Error is set.
type Result struct {
	Reaction  string   `json:"reaction" yaml:"reaction"`
	Balanced  string   `json:"balanced,omitempty" yaml:"balanced,omitempty"`
	Reactants []Term   `json:"reactants,omitempty" yaml:"reactants,omitempty"`
	Products  []Term   `json:"products,omitempty" yaml:"products,omitempty"`
	Elements  []string `json:"elements,omitempty" yaml:"elements,omitempty"`
	Nullity   int      `json:"nullity,omitempty" yaml:"nullity,omitempty"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty"`
	Kind      string   `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// OK reports whether the result carries a balanced reaction.
func (r Result) OK() bool { return r.Error == "" }

// FromBalanced converts a core result.
func FromBalanced(input string, b *balancer.Balanced) Result {
	res := Result{
		Reaction:  input,
		Balanced:  b.String(),
		Reactants: toTerms(b.Reactants),
		Products:  toTerms(b.Products),
		Elements:  make([]string, len(b.Elements)),
		Nullity:   b.Nullity,
	}
	for i, e := range b.Elements {
		res.Elements[i] = string(e)
	}

	return res
}

// FromError converts a core failure.
func FromError(input string, err error) Result {
	return Result{Reaction: input, Error: err.Error(), Kind: balancer.KindOf(err)}
}

func toTerms(ts []balancer.Term) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = Term{Coefficient: t.Coefficient, Formula: t.Formula}
	}

	return out
}

// Normalize applies NFKC and trims surrounding whitespace, so full-width
// letters and digits pasted from documents reach the ASCII grammar.
func Normalize(input string) string {
	return strings.TrimSpace(norm.NFKC.String(input))
}

// Service balances reactions. Safe for concurrent use.
type Service struct {
	cache   cache.Cache
	metrics *metrics.Metrics
	logger  *slog.Logger
	verify  bool
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables result caching. Nil disables it.
func WithCache(c cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithMetrics records request metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the logger, also handed to the balancer.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVerify toggles the balancer conservation re-check.
func WithVerify(v bool) Option {
	return func(s *Service) { s.verify = v }
}

// New builds a Service; without options it neither caches nor records metrics.
func New(opts ...Option) *Service {
	s := &Service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		verify: balancer.DefaultVerify,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Balance normalizes input, consults the cache, balances and records the
// outcome. The returned Result always describes the outcome; err is the
// balancer error (nil on success) so callers can branch with errors.Is.
func (s *Service) Balance(ctx context.Context, surface, input string) (Result, error) {
	start := time.Now()
	input = Normalize(input)

	key := cacheKey(input)
	if res, ok := s.lookup(ctx, key); ok {
		res.Reaction = input
		s.metrics.ObserveBalance(surface, "", time.Since(start))
		s.logger.Debug("balance served from cache", "surface", surface, "reaction", input)

		return res, nil
	}

	b, err := balancer.Balance(input, balancer.WithLogger(s.logger), balancer.WithVerify(s.verify))
	if err != nil {
		kind := balancer.KindOf(err)
		s.metrics.ObserveBalance(surface, kind, time.Since(start))
		s.logger.Info("balance failed", "surface", surface, "reaction", input, "kind", kind, "error", err)

		return FromError(input, err), err
	}

	res := FromBalanced(input, b)
	s.store(ctx, key, res)
	s.metrics.ObserveBalance(surface, "", time.Since(start))
	s.logger.Debug("balance succeeded", "surface", surface, "result", res.Balanced)

	return res, nil
}

// Explain runs the pipeline keeping every intermediate for reports.
// a is nil when the input does not parse; err is then the format error.
// The cache is not consulted.
func (s *Service) Explain(input string) (a *balancer.Analysis, b *balancer.Balanced, err error) {
	input = Normalize(input)
	a, err = balancer.Analyze(input, balancer.WithLogger(s.logger))
	if err != nil {
		return nil, nil, err
	}
	b, err = a.Balance(balancer.WithLogger(s.logger), balancer.WithVerify(s.verify))

	return a, b, err
}

// cacheKey is the canonical reaction text; "" when the input does not parse,
// which also keeps format errors out of the cache.
func cacheKey(input string) string {
	r, err := reaction.Parse(input)
	if err != nil {
		return ""
	}

	return r.String()
}

func (s *Service) lookup(ctx context.Context, key string) (Result, bool) {
	if s.cache == nil || key == "" {
		return Result{}, false
	}
	raw, err := s.cache.Get(ctx, key)
	switch {
	case errors.Is(err, cache.ErrMiss):
		s.metrics.ObserveCache("miss")
		return Result{}, false
	case err != nil:
		s.metrics.ObserveCache("error")
		s.logger.Warn("cache lookup failed", "error", err)
		return Result{}, false
	}

	var res Result
	if err = json.Unmarshal(raw, &res); err != nil {
		s.metrics.ObserveCache("error")
		s.logger.Warn("cache entry corrupt", "key", key, "error", err)
		return Result{}, false
	}
	s.metrics.ObserveCache("hit")

	return res, true
}

func (s *Service) store(ctx context.Context, key string, res Result) {
	if s.cache == nil || key == "" {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		s.logger.Warn("cache encode failed", "error", err)
		return
	}
	if err = s.cache.Set(ctx, key, raw); err != nil {
		s.logger.Warn("cache store failed", "error", err)
	}
}
