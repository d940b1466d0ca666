package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blotterhq/blotter"
	adapter "github.com/blotterhq/blotter/internal/adapters/http"
	"github.com/blotterhq/blotter/internal/logging"
	"github.com/blotterhq/blotter/pkg/adapters/memory"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *domain.Portfolio) {
	t.Helper()

	desk, err := blotter.New(blotter.WithArchive(memory.NewStore()))
	require.NoError(t, err)
	portfolio := domain.NewPortfolio(1_000_000)

	handler, err := adapter.NewHandler(desk, portfolio, logging.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, portfolio
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestServer_ExecuteUndoTrail(t *testing.T) {
	srv, portfolio := newTestServer(t)

	resp := postJSON(t, srv.URL+"/execute", map[string]any{
		"kind": "buy", "symbol": "AAPL", "quantity": 100, "price": 185.50,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.EqualValues(t, 100, portfolio.Position("AAPL"))

	resp = postJSON(t, srv.URL+"/undo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var opResult struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&opResult))
	resp.Body.Close()
	assert.True(t, opResult.OK)
	assert.EqualValues(t, 0, portfolio.Position("AAPL"))

	resp = postJSON(t, srv.URL+"/redo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&opResult))
	resp.Body.Close()
	assert.True(t, opResult.OK)

	resp, err := http.Get(srv.URL + "/trail")
	require.NoError(t, err)
	var trail struct {
		Len          int      `json:"len"`
		Descriptions []string `json:"descriptions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&trail))
	resp.Body.Close()
	assert.Equal(t, 1, trail.Len)
	require.Len(t, trail.Descriptions, 1)
	assert.Contains(t, trail.Descriptions[0], "AAPL")
}

func TestServer_RejectionStatusCodes(t *testing.T) {
	srv, _ := newTestServer(t)

	// Portfolio rejection: 422.
	resp := postJSON(t, srv.URL+"/execute", map[string]any{
		"kind": "sell", "symbol": "AAPL", "quantity": 10, "price": 100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// Malformed action: 400.
	resp = postJSON(t, srv.URL+"/execute", map[string]any{
		"kind": "buy", "symbol": "", "quantity": 10, "price": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Unknown kind: 400.
	resp = postJSON(t, srv.URL+"/execute", map[string]any{
		"kind": "short", "symbol": "AAPL", "quantity": 10, "price": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestServer_SnapshotArchivesAndPortfolio(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/execute", map[string]any{
		"kind": "buy", "symbol": "GOOGL", "quantity": 50, "price": 140.25,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/snapshot", map[string]any{"name": "eod"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/portfolio")
	require.NoError(t, err)
	var pf struct {
		Cash      float64          `json:"cash"`
		Positions map[string]int64 `json:"positions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pf))
	resp.Body.Close()
	assert.InDelta(t, 992_987.50, pf.Cash, 0.001)
	assert.EqualValues(t, 50, pf.Positions["GOOGL"])
}

func TestServer_ServesOpenAPISpec(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/openapi.yaml")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/yaml", resp.Header.Get("Content-Type"))
}
