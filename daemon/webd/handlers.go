package webd

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotblauer/kinecalc/scenario"
	"github.com/tidwall/gjson"
	"go.uber.org/multierr"
)

// maxBodySize caps POST /scenario bodies; a scenario is a handful of numbers.
const maxBodySize = 64 << 10

func pingPong(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

type webDaemonStatus struct {
	StartedAt time.Time      `json:"started_at"`
	Uptime    string         `json:"uptime"`
	Runs      int64          `json:"runs"`
	Failures  int64          `json:"failures"`
	CacheHits int64          `json:"cache_hits"`
	CacheLen  int            `json:"cache_len"`
	Defaults  scenario.Input `json:"defaults"`
}

func (s *WebDaemon) statusReport(w http.ResponseWriter, r *http.Request) {
	st := webDaemonStatus{
		StartedAt: s.started,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Runs:      s.runs.Snapshot().Count(),
		Failures:  s.failures.Snapshot().Count(),
		CacheHits: s.cacheHits.Snapshot().Count(),
		CacheLen:  s.results.Len(),
		Defaults:  s.Defaults(),
	}
	writeJSON(w, http.StatusOK, st)
}

type scenarioResponse struct {
	Input         scenario.Input `json:"input"`
	NewVelocity   float64        `json:"new_velocity"`   // km/h
	NewDistance   float64        `json:"new_distance"`   // km
	RemainingFuel float64        `json:"remaining_fuel"` // kg
	FuelDepleted  bool           `json:"fuel_depleted"`
	Lines         []string       `json:"lines"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

func newScenarioResponse(in scenario.Input, res scenario.Result) scenarioResponse {
	rounded := res.Rounded()
	return scenarioResponse{
		Input:         in,
		NewVelocity:   rounded.NewVelocity,
		NewDistance:   rounded.NewDistance,
		RemainingFuel: rounded.RemainingFuel,
		FuelDepleted:  res.FuelDepleted(),
		Lines:         res.Lines(),
	}
}

func (s *WebDaemon) handleDefaultScenario(w http.ResponseWriter, r *http.Request) {
	in := s.Defaults()
	res, err := s.compute(in)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, newScenarioResponse(in, res))
}

// handleScenario computes the scenario posted as a JSON object of options.
// Options left out take the daemon's defaults.
// Values keep their JSON types so that, eg., "velocity": "100"
// is rejected as not a number.
func (s *WebDaemon) handleScenario(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.logger.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return
	}
	if !gjson.ValidBytes(body) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body is not valid JSON"})
		return
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be a JSON object"})
		return
	}

	values := make(map[string]any)
	parsed.ForEach(func(key, value gjson.Result) bool {
		values[key.String()] = jsonValue(value)
		return true
	})
	if err := scenario.CheckValues(values); err != nil {
		s.failures.Inc(1)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	in, err := scenario.FromValues(values, s.Defaults())
	if err != nil {
		s.failures.Inc(1)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.compute(in)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, newScenarioResponse(in, res))
}

// jsonValue maps a gjson value to the Go type it was sent as.
func jsonValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Number:
		return v.Float()
	case gjson.String:
		return v.Str
	case gjson.True, gjson.False:
		return v.Bool()
	case gjson.Null:
		return nil
	}
	return v.Value()
}

func (s *WebDaemon) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("Scenario rejected", "status", status, "error", err)
	resp := errorResponse{}
	errs := multierr.Errors(err)
	if len(errs) > 0 {
		resp.Error = errs[0].Error()
	}
	if len(errs) > 1 {
		for _, e := range errs {
			resp.Errors = append(resp.Errors, e.Error())
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	j, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(j)
}
