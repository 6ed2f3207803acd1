package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/stoich/balancer"
	"github.com/katalvlaran/stoich/internal/httpapi"
	"github.com/katalvlaran/stoich/internal/logging"
	"github.com/katalvlaran/stoich/internal/metrics"
	"github.com/katalvlaran/stoich/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	svc := service.New(service.WithMetrics(m))

	return httpapi.NewHandler(svc, m.Handler(), logging.NewNop())
}

func post(t *testing.T, h http.Handler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/balance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestBalance_OK(t *testing.T) {
	rec := post(t, newHandler(t), `{"reaction": "C3H8 + O2 -> CO2 + H2O"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.Contains(t, rec.Body.String(), `"balanced":"1 C3H8 + 5 O2 -> 3 CO2 + 4 H2O"`)

	var res service.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "1 C3H8 + 5 O2 -> 3 CO2 + 4 H2O", res.Balanced)
	assert.Len(t, res.Products, 2)
}

func TestBalance_Unprocessable(t *testing.T) {
	cases := []struct {
		reaction string
		kind     string
	}{
		{"H2 + O2", balancer.KindFormat},
		{"H2 -> O2", balancer.KindUnbalanceable},
		{"H2 + O2 -> H2O + He", balancer.KindInvalidCoefficients},
	}
	h := newHandler(t)
	for _, tc := range cases {
		t.Run(tc.reaction, func(t *testing.T) {
			body, err := json.Marshal(httpapi.BalanceRequest{Reaction: tc.reaction})
			require.NoError(t, err)

			rec := post(t, h, string(body), nil)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var er httpapi.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&er))
			assert.Equal(t, tc.kind, er.Kind)
			assert.NotEmpty(t, er.Error)
		})
	}
}

func TestBalance_BadRequest(t *testing.T) {
	h := newHandler(t)
	for _, body := range []string{`{`, `{"reaction": 1}`, `{}`, `{"reaction":"H2 -> H2","x":1}`} {
		rec := post(t, h, body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestRequestID(t *testing.T) {
	h := newHandler(t)

	rec := post(t, h, `{"reaction": "H2 + O2 -> H2O"}`, nil)
	_, err := uuid.Parse(rec.Header().Get(httpapi.RequestIDHeader))
	require.NoError(t, err)

	rec = post(t, h, `{"reaction": "H2 + O2 -> H2O"}`, http.Header{httpapi.RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", rec.Header().Get(httpapi.RequestIDHeader))
}

func TestHealthzAndMetrics(t *testing.T) {
	h := newHandler(t)
	post(t, h, `{"reaction": "H2 + O2 -> H2O"}`, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `stoich_balance_requests_total{kind="",outcome="ok",surface="http"} 1`)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/balance", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServe_Shutdown(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: newHandler(t)}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- httpapi.Serve(ctx, srv, time.Second, logging.NewNop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
