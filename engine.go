package mathcompat

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/mathcompat/internal/infrastructure/config"
	"github.com/GriffinCanCode/mathcompat/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mathcompat/internal/infrastructure/monitoring"
	mathprovider "github.com/GriffinCanCode/mathcompat/internal/providers/math"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/GriffinCanCode/mathcompat/internal/service"
	"github.com/GriffinCanCode/mathcompat/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type (
	// Config is the engine configuration, normally read from the environment.
	Config = config.Config
	// Result is the outcome of a tool call.
	Result = types.Result
	// CallContext identifies the caller of a tool.
	CallContext = types.Context
	// Service describes a group of tools.
	Service = types.Service
	// Tool describes one callable tool and its parameters.
	Tool = types.Tool
)

// Failure codes carried by Result.Code
const (
	CodeInvalidArgument = common.CodeInvalidArgument
	CodeLengthMismatch  = common.CodeLengthMismatch
	CodeComputation     = common.CodeComputation
	CodeNotFound        = common.CodeNotFound
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return config.Default()
}

// Engine exposes the numeric routines as named tools
type Engine struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// New builds an engine from cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return newEngine(cfg, logger), nil
}

// NewFromEnv builds an engine configured from environment variables.
func NewFromEnv() (*Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// NewWithLogger builds an engine that logs through an existing zap logger.
// A nil logger falls back to the default JSON logger on stderr.
func NewWithLogger(cfg *Config, logger *zap.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return newEngine(cfg, logging.NewDefault()), nil
	}
	return newEngine(cfg, logging.Wrap(logger)), nil
}

func newEngine(cfg *Config, logger *logging.Logger) *Engine {
	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics(cfg.Metrics.Namespace)
	}

	registry := service.NewRegistry(logger, metrics)
	provider := mathprovider.NewProvider(&common.MathOps{
		DefaultBins:    cfg.Math.DefaultBins,
		MaxRangePoints: cfg.Math.MaxRangePoints,
		MaxBins:        cfg.Math.MaxBins,
	})
	if err := registry.Register(provider); err != nil {
		// The built-in provider ID is a constant that always validates
		panic(err)
	}

	return &Engine{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute runs the tool named by toolID ("math.quantile", ...). Invalid
// input yields a Result with Success false and a Code; a non-nil error is
// returned only when the context is cancelled mid-call.
func (e *Engine) Execute(ctx context.Context, toolID string, params map[string]interface{}, caller *CallContext) (*Result, error) {
	return e.registry.Execute(ctx, toolID, params, caller)
}

// Services lists the registered services and their tools.
func (e *Engine) Services() []Service {
	return e.registry.List(nil)
}

// Discover returns up to limit tools relevant to a free-text intent.
func (e *Engine) Discover(intent string, limit int) []Tool {
	return e.registry.Discover(intent, limit)
}

// Gatherer exposes the engine's Prometheus collectors. It is empty when
// metrics are disabled.
func (e *Engine) Gatherer() prometheus.Gatherer {
	return e.metrics.Registry()
}

// Sync flushes buffered log entries.
func (e *Engine) Sync() error {
	return e.logger.Sync()
}
