package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clementfrmd/safeyield/internal/state"
	"github.com/clementfrmd/safeyield/internal/types"
)

func publishTestSnapshot(store *state.SnapshotStore) {
	store.Publish("test-cycle", []types.Pool{
		{ID: "a", Protocol: "Aave V3", Chain: "Ethereum", Stablecoin: "USDC", APY: 8, TvlUSD: 1000, SecurityScore: 90, YiieldScore: 100},
		{ID: "b", Protocol: "Spark", Chain: "Base", Stablecoin: "DAI", APY: 6, TvlUSD: 2000, SecurityScore: 80, YiieldScore: 90},
		{ID: "c", Protocol: "Fluid", Chain: "Ethereum", Stablecoin: "USDT", APY: 4, TvlUSD: 3000, SecurityScore: 75, YiieldScore: 80},
	})
}

func doRequest(ws *WebServer, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	ws.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthBeforeFirstSnapshot(t *testing.T) {
	ws := NewWebServer("0", state.NewSnapshotStore())

	rec := doRequest(ws, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "DEGRADED", body["status"])
}

func TestHealthWithFreshSnapshot(t *testing.T) {
	store := state.NewSnapshotStore()
	publishTestSnapshot(store)
	ws := NewWebServer("0", store)

	rec := doRequest(ws, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "OK", body["status"])
}

func TestGetPools(t *testing.T) {
	store := state.NewSnapshotStore()
	publishTestSnapshot(store)
	ws := NewWebServer("0", store)

	rec := doRequest(ws, http.MethodGet, "/api/pools")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, 3.0, body["count"])

	pools := body["pools"].([]interface{})
	require.Len(t, pools, 3)

	// Registry-backed pools carry their record and breakdown
	first := pools[0].(map[string]interface{})
	assert.Equal(t, "Aave V3", first["protocol"])
	assert.Contains(t, first, "score_breakdown")
	assert.Contains(t, first, "protocol_info")
}

func TestGetPoolsBeforeFirstSnapshot(t *testing.T) {
	ws := NewWebServer("0", state.NewSnapshotStore())

	rec := doRequest(ws, http.MethodGet, "/api/pools")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetPoolsChainFilter(t *testing.T) {
	store := state.NewSnapshotStore()
	publishTestSnapshot(store)
	ws := NewWebServer("0", store)

	rec := doRequest(ws, http.MethodGet, "/api/pools?chain=Ethereum")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2.0, decodeBody(t, rec)["count"])

	rec = doRequest(ws, http.MethodGet, "/api/pools?stablecoin=DAI")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, decodeBody(t, rec)["count"])
}

func TestGetTopPools(t *testing.T) {
	store := state.NewSnapshotStore()
	publishTestSnapshot(store)
	ws := NewWebServer("0", store)

	rec := doRequest(ws, http.MethodGet, "/api/pools/top?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	pools := body["pools"].([]interface{})
	require.Len(t, pools, 2)

	// Highest APY first (snapshot order is preserved)
	first := pools[0].(map[string]interface{})
	assert.Equal(t, 8.0, first["apy"])
}

func TestGetProtocols(t *testing.T) {
	ws := NewWebServer("0", state.NewSnapshotStore())

	rec := doRequest(ws, http.MethodGet, "/api/protocols")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Greater(t, body["count"], 20.0)
}

func TestGetProtocolBySlug(t *testing.T) {
	ws := NewWebServer("0", state.NewSnapshotStore())

	rec := doRequest(ws, http.MethodGet, "/api/protocols/aave-v3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Aave V3", decodeBody(t, rec)["name"])

	rec = doRequest(ws, http.MethodGet, "/api/protocols/not-a-protocol")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSummary(t *testing.T) {
	store := state.NewSnapshotStore()
	publishTestSnapshot(store)
	ws := NewWebServer("0", store)

	rec := doRequest(ws, http.MethodGet, "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, 6000.0, summary["total_tvl_usd"])
	assert.Equal(t, 3.0, summary["pool_count"])
}

func TestCapProxyRejectsBadNetworkID(t *testing.T) {
	ws := NewWebServer("0", state.NewSnapshotStore())

	rec := doRequest(ws, http.MethodGet, "/api/proxy/cap/mainnet/usdc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	ws := NewWebServer("0", state.NewSnapshotStore())

	rec := doRequest(ws, http.MethodOptions, "/api/pools")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
