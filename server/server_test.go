package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routenav/builder"
	"github.com/katalvlaran/routenav/config"
	"github.com/katalvlaran/routenav/core"
	"github.com/katalvlaran/routenav/navigator"
	"github.com/katalvlaran/routenav/server"
)

func newTestServer(t *testing.T) (*httptest.Server, *navigator.Navigator) {
	t.Helper()

	nav, err := navigator.New(config.Default(), navigator.WithConstructor(builder.Layout(
		[]core.Node{
			{ID: 0, X: 100, Y: 100, Name: "A"},
			{ID: 1, X: 200, Y: 100, Name: "B"},
			{ID: 2, X: 200, Y: 200, Name: "C"},
			{ID: 3, X: 600, Y: 400, Name: "D"},
		},
		[2]core.NodeID{0, 1}, [2]core.NodeID{1, 2},
	)))
	require.NoError(t, err)

	srv := httptest.NewServer(server.NewHandler(nav, nil).Router())
	t.Cleanup(srv.Close)
	return srv, nav
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestGetGraph(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/api/graph", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["nodes"], 4)
	assert.Len(t, body["edges"], 2)
	assert.NotEmpty(t, body["generation"])

	stats := body["stats"].(map[string]any)
	assert.Equal(t, 2.0, stats["components"])
}

func TestRegenerate(t *testing.T) {
	srv, _ := newTestServer(t)

	_, before := do(t, http.MethodGet, srv.URL+"/api/graph", "")
	resp, after := do(t, http.MethodPost, srv.URL+"/api/graph/regenerate", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEqual(t, before["generation"], after["generation"])
}

func TestRouteLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/routes/current", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, route := do(t, http.MethodPost, srv.URL+"/api/routes", `{"start":0,"end":2,"algorithm":"astar"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, route["found"])
	assert.Equal(t, "A* Search", route["algorithmName"])
	assert.Equal(t, []any{0.0, 1.0, 2.0}, route["path"])
	assert.InDelta(t, 200.0, route["totalDistance"], 1e-9)

	instructions := route["instructions"].([]any)
	require.Len(t, instructions, 3)
	assert.Equal(t, "Turn right toward C", instructions[1].(map[string]any)["text"])
	assert.Equal(t, "B", instructions[1].(map[string]any)["fromName"])
	assert.Equal(t, "C", instructions[1].(map[string]any)["toName"])

	resp, current := do(t, http.MethodGet, srv.URL+"/api/routes/current", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, route["generation"], current["generation"])

	resp, _ = do(t, http.MethodDelete, srv.URL+"/api/routes/current", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/routes/current", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFindRoute_Errors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"start":`, http.StatusBadRequest},
		{"unknown field", `{"start":0,"end":1,"via":2}`, http.StatusBadRequest},
		{"same endpoints", `{"start":1,"end":1}`, http.StatusBadRequest},
		{"missing start", `{"end":1}`, http.StatusBadRequest},
		{"missing end", `{"start":0}`, http.StatusBadRequest},
		{"null start", `{"start":null,"end":1}`, http.StatusBadRequest},
		{"bad algorithm", `{"start":0,"end":1,"algorithm":"bfs"}`, http.StatusBadRequest},
		{"unknown node", `{"start":0,"end":42}`, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPost, srv.URL+"/api/routes", tc.body)
			assert.Equal(t, tc.want, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestFindRoute_Unreachable(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, route := do(t, http.MethodPost, srv.URL+"/api/routes", `{"start":0,"end":3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, route["found"])
	assert.Nil(t, route["path"])
	assert.Equal(t, 3.0, route["nodesVisited"])
}

func TestHealthAndMetrics(t *testing.T) {
	srv, nav := newTestServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, _ = do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		nav.Metrics().HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200")))
}

func TestMethodNotAllowed(t *testing.T) {
	srv, nav := newTestServer(t)

	resp, body := do(t, http.MethodPut, srv.URL+"/api/graph", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "method not allowed", body["error"])

	assert.Equal(t, 1.0, testutil.ToFloat64(
		nav.Metrics().HTTPRequestsTotal.WithLabelValues(http.MethodPut, "unmatched", "405")))
}

func TestNotFound_Counted(t *testing.T) {
	srv, nav := newTestServer(t)

	for _, path := range []string{"/nope", "/api/unknown/1", "/api/unknown/2"} {
		resp, body := do(t, http.MethodGet, srv.URL+path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "not found", body["error"])
	}

	// unmatched paths share one label
	assert.Equal(t, 3.0, testutil.ToFloat64(
		nav.Metrics().HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
