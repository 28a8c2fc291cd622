package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/clementfrmd/safeyield/internal/analyzer"
	"github.com/clementfrmd/safeyield/internal/config"
	"github.com/clementfrmd/safeyield/internal/logger"
	"github.com/clementfrmd/safeyield/internal/registry"
	"github.com/clementfrmd/safeyield/internal/state"
	"github.com/clementfrmd/safeyield/internal/types"
)

var webLogger = logger.GetForComponent("web_server")

//go:embed static/*
var staticFiles embed.FS

//go:embed static/index.html
var dashboardHTML []byte

// snapshotStaleAfter is how old the latest snapshot may be before the health
// endpoint reports the service as degraded.
const snapshotStaleAfter = 3 * time.Hour

// WebServer serves the pool listing API and the dashboard.
type WebServer struct {
	router    *mux.Router
	port      string
	store     *state.SnapshotStore
	proxy     *http.Client
	startedAt time.Time
}

// NewWebServer creates a new web server instance backed by the given
// snapshot store.
func NewWebServer(port string, store *state.SnapshotStore) *WebServer {
	if port == "" {
		port = "8080"
	}

	server := &WebServer{
		router:    mux.NewRouter(),
		port:      port,
		store:     store,
		proxy:     &http.Client{Timeout: 10 * time.Second},
		startedAt: time.Now().UTC(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (ws *WebServer) setupRoutes() {
	// Static files
	staticHandler := http.FileServer(http.FS(staticFiles))
	ws.router.PathPrefix("/static/").Handler(http.StripPrefix("/", staticHandler))

	// Dashboard routes
	ws.router.HandleFunc("/", ws.handleDashboard).Methods("GET")
	ws.router.HandleFunc("/dashboard", ws.handleDashboard).Methods("GET")

	// Health endpoint (direct route)
	ws.router.HandleFunc("/health", ws.handleHealth).Methods("GET")

	// API endpoints
	api := ws.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", ws.handleHealth).Methods("GET")
	api.HandleFunc("/pools", ws.handleGetPools).Methods("GET")
	api.HandleFunc("/pools/top", ws.handleGetTopPools).Methods("GET")
	api.HandleFunc("/protocols", ws.handleGetProtocols).Methods("GET")
	api.HandleFunc("/protocols/{slug}", ws.handleGetProtocol).Methods("GET")
	api.HandleFunc("/summary", ws.handleGetSummary).Methods("GET")
	api.HandleFunc("/proxy/cap/{networkId}/{token}", ws.handleCapProxy).Methods("GET")

	// Add CORS middleware
	ws.router.Use(ws.corsMiddleware)
	ws.router.Use(ws.loggingMiddleware)
}

// Start starts the web server
func (ws *WebServer) Start() error {
	webLogger.Info().Str("port", ws.port).Msg("Starting web server")

	server := &http.Server{
		Addr:         ":" + ws.port,
		Handler:      ws.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// poolView is a pool plus its on-demand score breakdown and the registry
// record backing the bonuses, when one exists.
type poolView struct {
	types.Pool
	Breakdown    types.ScoreBreakdown  `json:"score_breakdown"`
	ProtocolInfo *types.ProtocolRecord `json:"protocol_info,omitempty"`
}

func buildPoolViews(pools []types.Pool) []poolView {
	views := make([]poolView, 0, len(pools))
	for _, pool := range pools {
		view := poolView{
			Pool:      pool,
			Breakdown: analyzer.PoolScoreBreakdown(pool),
		}
		if record, ok := registry.Resolve(pool.Protocol); ok {
			view.ProtocolInfo = record
		}
		views = append(views, view)
	}
	return views
}

// handleHealth returns server health and the freshness of the latest snapshot
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	snapshot, ok := ws.store.Latest()
	hasErrors := !ok
	var snapshotInfo map[string]interface{}
	if ok {
		stale := time.Since(snapshot.Timestamp) > snapshotStaleAfter
		if stale {
			hasErrors = true
		}
		snapshotInfo = map[string]interface{}{
			"cycle_number":   snapshot.CycleNumber,
			"cycle_id":       snapshot.CycleID,
			"last_refresh":   snapshot.Timestamp,
			"pool_count":     len(snapshot.Pools),
			"snapshot_stale": stale,
		}
	} else {
		snapshotInfo = map[string]interface{}{
			"cycle_number":   0,
			"last_refresh":   nil,
			"pool_count":     0,
			"snapshot_stale": true,
		}
	}

	overallStatus := "OK"
	if hasErrors {
		overallStatus = "DEGRADED"
	}

	response := map[string]interface{}{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"system": map[string]interface{}{
			"version":          runtime.Version(),
			"goroutines_count": runtime.NumGoroutine(),
			"alloc_bytes":      memStats.Alloc,
			"sys_bytes":        memStats.Sys,
			"gc_cycles":        memStats.NumGC,
			"uptime_seconds":   int64(time.Since(ws.startedAt).Seconds()),
		},
		"component": map[string]interface{}{
			"name":    "safeyield-aggregator",
			"version": "1.0.0",
		},
		"snapshot": snapshotInfo,
	}

	statusCode := http.StatusOK
	if hasErrors {
		statusCode = http.StatusServiceUnavailable
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// handleDashboard serves the main dashboard HTML
func (ws *WebServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.WriteHeader(http.StatusOK)
	w.Write(dashboardHTML)
}

// handleGetPools returns the full pool set of the latest snapshot
func (ws *WebServer) handleGetPools(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := ws.store.Latest()
	if !ok {
		ws.writeErrorResponse(w, http.StatusServiceUnavailable, "No pool data available yet")
		return
	}

	pools := snapshot.Pools
	if chain := r.URL.Query().Get("chain"); chain != "" {
		filtered := make([]types.Pool, 0, len(pools))
		for _, pool := range pools {
			if pool.Chain == chain {
				filtered = append(filtered, pool)
			}
		}
		pools = filtered
	}
	if stablecoin := r.URL.Query().Get("stablecoin"); stablecoin != "" {
		filtered := make([]types.Pool, 0, len(pools))
		for _, pool := range pools {
			if pool.Stablecoin == stablecoin {
				filtered = append(filtered, pool)
			}
		}
		pools = filtered
	}

	response := map[string]interface{}{
		"pools":        buildPoolViews(pools),
		"count":        len(pools),
		"cycle_number": snapshot.CycleNumber,
		"last_refresh": snapshot.Timestamp,
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleGetTopPools returns the highest-APY pools of the latest snapshot
func (ws *WebServer) handleGetTopPools(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 && parsedLimit <= 100 {
			limit = parsedLimit
		}
	}

	snapshot, ok := ws.store.Latest()
	if !ok {
		ws.writeErrorResponse(w, http.StatusServiceUnavailable, "No pool data available yet")
		return
	}

	// Snapshot pools are already ranked by APY descending.
	pools := snapshot.Pools
	if len(pools) > limit {
		pools = pools[:limit]
	}

	response := map[string]interface{}{
		"pools":        buildPoolViews(pools),
		"count":        len(pools),
		"limit":        limit,
		"last_refresh": snapshot.Timestamp,
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleGetProtocols returns the full due-diligence registry
func (ws *WebServer) handleGetProtocols(w http.ResponseWriter, r *http.Request) {
	records := registry.All()

	response := map[string]interface{}{
		"protocols": records,
		"count":     len(records),
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleGetProtocol returns one registry record by slug or alias
func (ws *WebServer) handleGetProtocol(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	record, ok := registry.Resolve(slug)
	if !ok {
		ws.writeErrorResponse(w, http.StatusNotFound, "Protocol not found")
		return
	}

	ws.writeJSONResponse(w, http.StatusOK, record)
}

// handleGetSummary returns the aggregate statistics of the latest snapshot
func (ws *WebServer) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := ws.store.Latest()
	if !ok {
		ws.writeErrorResponse(w, http.StatusServiceUnavailable, "No pool data available yet")
		return
	}

	response := map[string]interface{}{
		"summary":      snapshot.Summary,
		"cycle_number": snapshot.CycleNumber,
		"last_refresh": snapshot.Timestamp,
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleCapProxy forwards lender metric requests to the cap.app API so the
// dashboard never calls it cross-origin.
func (ws *WebServer) handleCapProxy(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	networkID := vars["networkId"]
	token := vars["token"]

	if _, err := strconv.Atoi(networkID); err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, "Invalid network ID")
		return
	}

	url := fmt.Sprintf("%s/lender/%s/metrics/%s", config.CapAPIBaseURL, networkID, token)
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, url, nil)
	if err != nil {
		ws.writeErrorResponse(w, http.StatusInternalServerError, "Failed to build upstream request")
		return
	}

	resp, err := ws.proxy.Do(req)
	if err != nil {
		webLogger.Error().Err(err).Str("url", url).Msg("Cap proxy request failed")
		ws.writeErrorResponse(w, http.StatusBadGateway, "Upstream request failed")
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		webLogger.Error().Err(err).Msg("Failed to stream proxy response")
	}
}

// writeJSONResponse writes a JSON response
func (ws *WebServer) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		webLogger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response
func (ws *WebServer) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := map[string]interface{}{
		"error":     true,
		"message":   message,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// corsMiddleware adds CORS headers
func (ws *WebServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (ws *WebServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response writer wrapper to capture status code
		wrapper := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)

		webLogger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("HTTP request")
	})
}

// responseWriterWrapper wraps http.ResponseWriter to capture status code
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
