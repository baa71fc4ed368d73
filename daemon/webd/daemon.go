package webd

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/rotblauer/kinecalc/params"
	"github.com/rotblauer/kinecalc/scenario"
)

// WebDaemon serves scenario computations over HTTP.
type WebDaemon struct {
	Config  *params.WebDaemonConfig
	logger  *slog.Logger
	started time.Time

	defaultsMu sync.RWMutex
	defaults   scenario.Input

	// results memoizes scenario results by input hash.
	results *lru.Cache[uint64, scenario.Result]

	registry  metrics.Registry
	runs      metrics.Counter
	failures  metrics.Counter
	cacheHits metrics.Counter
}

// NewWebDaemon returns a daemon which computes against defaults
// for any option a request leaves out.
func NewWebDaemon(config *params.WebDaemonConfig, defaults scenario.Input) (*WebDaemon, error) {
	if config == nil {
		config = params.DefaultWebDaemonConfig()
	}
	if err := scenario.Validate(defaults); err != nil {
		return nil, fmt.Errorf("invalid default scenario: %w", err)
	}
	results, err := lru.New[uint64, scenario.Result](config.ResultCacheSize)
	if err != nil {
		return nil, err
	}
	registry := metrics.NewRegistry()
	return &WebDaemon{
		Config:   config,
		logger:   slog.With("d", "web"),
		started:  time.Now(),
		defaults: defaults,
		results:  results,

		registry:  registry,
		runs:      metrics.GetOrRegisterCounter("scenario/runs", registry),
		failures:  metrics.GetOrRegisterCounter("scenario/failures", registry),
		cacheHits: metrics.GetOrRegisterCounter("scenario/cache/hits", registry),
	}, nil
}

// Defaults returns the scenario used for options a request does not set.
func (s *WebDaemon) Defaults() scenario.Input {
	s.defaultsMu.RLock()
	defer s.defaultsMu.RUnlock()
	return s.defaults
}

// SetDefaults replaces the default scenario. Invalid scenarios are rejected
// with every failing parameter, and the previous defaults are kept.
func (s *WebDaemon) SetDefaults(in scenario.Input) error {
	if err := scenario.ValidateAll(in); err != nil {
		return err
	}
	s.defaultsMu.Lock()
	s.defaults = in
	s.defaultsMu.Unlock()
	s.logger.Info("Default scenario updated", "scenario", fmt.Sprintf("%+v", in))
	return nil
}

// Run listens on the configured network address and serves until the
// listener fails, returning the server error.
func (s *WebDaemon) Run() error {
	l, err := net.Listen(s.Config.Network, s.Config.Address)
	if err != nil {
		return err
	}
	s.started = time.Now()
	s.logger.Info("Starting web daemon", "network", s.Config.Network, "address", l.Addr().String())
	return http.Serve(l, s.NewRouter())
}

func (s *WebDaemon) NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(false)
	router.Use(loggingMiddleware)

	apiRoutes := router.NewRoute().Subrouter()
	apiRoutes.Use(permissiveCorsMiddleware)

	// /ping is a simple server healthcheck endpoint
	apiRoutes.Path("/ping").HandlerFunc(pingPong).Methods(http.MethodGet)

	apiJSONRoutes := apiRoutes.NewRoute().Subrouter()
	apiJSONRoutes.Use(contentTypeMiddlewareFunc("application/json"))

	apiJSONRoutes.Path("/status").HandlerFunc(s.statusReport).Methods(http.MethodGet)
	apiJSONRoutes.Path("/scenario").HandlerFunc(s.handleDefaultScenario).Methods(http.MethodGet)
	apiJSONRoutes.Path("/scenario").HandlerFunc(s.handleScenario).Methods(http.MethodPost)

	return router
}

// compute runs the scenario, consulting the result cache first.
func (s *WebDaemon) compute(in scenario.Input) (scenario.Result, error) {
	key, hashErr := hashstructure.Hash(in, hashstructure.FormatV2, nil)
	if hashErr == nil {
		if res, ok := s.results.Get(key); ok {
			s.cacheHits.Inc(1)
			return res, nil
		}
	} else {
		s.logger.Warn("Failed to hash scenario", "error", hashErr)
	}

	s.runs.Inc(1)
	res, err := scenario.Run(in)
	if err != nil {
		s.failures.Inc(1)
		return scenario.Result{}, err
	}
	if hashErr == nil {
		s.results.Add(key, res)
	}
	return res, nil
}
