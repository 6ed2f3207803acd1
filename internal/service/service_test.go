package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/stoich/balancer"
	"github.com/katalvlaran/stoich/internal/cache"
	"github.com/katalvlaran/stoich/internal/metrics"
	"github.com/katalvlaran/stoich/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance_Success(t *testing.T) {
	svc := service.New()
	res, err := svc.Balance(context.Background(), service.SurfaceCLI, "  H2 + O2 -> H2O ")
	require.NoError(t, err)

	assert.True(t, res.OK())
	assert.Equal(t, "H2 + O2 -> H2O", res.Reaction)
	assert.Equal(t, "2 H2 + 1 O2 -> 2 H2O", res.Balanced)
	assert.Equal(t, []service.Term{{Coefficient: 2, Formula: "H2"}, {Coefficient: 1, Formula: "O2"}}, res.Reactants)
	assert.Equal(t, []service.Term{{Coefficient: 2, Formula: "H2O"}}, res.Products)
	assert.Equal(t, []string{"H", "O"}, res.Elements)
	assert.Equal(t, 1, res.Nullity)
}

func TestBalance_Failure(t *testing.T) {
	svc := service.New()
	res, err := svc.Balance(context.Background(), service.SurfaceCLI, "H2 -> O2")
	require.ErrorIs(t, err, balancer.ErrUnbalanceable)

	assert.False(t, res.OK())
	assert.Equal(t, balancer.KindUnbalanceable, res.Kind)
	assert.Equal(t, err.Error(), res.Error)
	assert.Empty(t, res.Balanced)
}

func TestBalance_NormalizesFullWidth(t *testing.T) {
	svc := service.New()
	// Full-width "Ｈ２" folds to "H2" under NFKC.
	res, err := svc.Balance(context.Background(), service.SurfaceREPL, "Ｈ２ + O2 -> H2O")
	require.NoError(t, err)
	assert.Equal(t, "2 H2 + 1 O2 -> 2 H2O", res.Balanced)
}

func TestBalance_CacheHit(t *testing.T) {
	mem := cache.NewMemory()
	reg := prometheus.NewRegistry()
	svc := service.New(service.WithCache(mem), service.WithMetrics(metrics.New(reg)))
	ctx := context.Background()

	first, err := svc.Balance(ctx, service.SurfaceHTTP, "H2 + O2 -> H2O")
	require.NoError(t, err)
	require.Equal(t, 1, mem.Len())

	// Different spacing, same canonical key.
	second, err := svc.Balance(ctx, service.SurfaceHTTP, "H2+O2->H2O")
	require.NoError(t, err)
	assert.Equal(t, first.Balanced, second.Balanced)
	assert.Equal(t, "H2+O2->H2O", second.Reaction)
	assert.Equal(t, 1, mem.Len())

	problems, err := testutil.GatherAndLint(reg)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestBalance_FailuresNotCached(t *testing.T) {
	mem := cache.NewMemory()
	svc := service.New(service.WithCache(mem))

	_, err := svc.Balance(context.Background(), service.SurfaceHTTP, "H2 + O2 -> H2O + He")
	require.ErrorIs(t, err, balancer.ErrInvalidCoefficients)
	_, err = svc.Balance(context.Background(), service.SurfaceHTTP, "H2 O2")
	require.ErrorIs(t, err, balancer.ErrFormat)
	assert.Zero(t, mem.Len())
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}
func (failingCache) Set(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func TestBalance_CacheErrorsDegrade(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	svc := service.New(service.WithCache(failingCache{}), service.WithLogger(logger))

	res, err := svc.Balance(context.Background(), service.SurfaceCLI, "Fe + O2 -> Fe2O3")
	require.NoError(t, err)
	assert.Equal(t, "4 Fe + 3 O2 -> 2 Fe2O3", res.Balanced)
	assert.Contains(t, logs.String(), "cache lookup failed")
	assert.Contains(t, logs.String(), "cache store failed")
}

func TestBalance_CorruptEntry(t *testing.T) {
	mem := cache.NewMemory()
	require.NoError(t, mem.Set(context.Background(), "H2 + O2 -> H2O", []byte("{")))
	svc := service.New(service.WithCache(mem))

	res, err := svc.Balance(context.Background(), service.SurfaceCLI, "H2 + O2 -> H2O")
	require.NoError(t, err)
	assert.Equal(t, "2 H2 + 1 O2 -> 2 H2O", res.Balanced)
}

func TestExplain(t *testing.T) {
	svc := service.New()

	a, b, err := svc.Explain(" C3H8 + O2 -> CO2 + H2O ")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Nullity())
	assert.Equal(t, "1 C3H8 + 5 O2 -> 3 CO2 + 4 H2O", b.String())

	a, b, err = svc.Explain("H2 + O2 -> H2O + H2O2")
	require.ErrorIs(t, err, balancer.ErrInvalidCoefficients)
	require.NotNil(t, a)
	assert.Equal(t, 2, a.Nullity())
	assert.Nil(t, b)

	a, _, err = svc.Explain("H2 + O2")
	require.ErrorIs(t, err, balancer.ErrFormat)
	assert.Nil(t, a)
}
