package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/mathcompat/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mathcompat/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/utilities"
	"github.com/GriffinCanCode/mathcompat/internal/shared/id"
	"github.com/GriffinCanCode/mathcompat/internal/shared/utils"
	"github.com/GriffinCanCode/mathcompat/internal/types"
	"go.uber.org/zap"
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry. A nil logger discards output
// and nil metrics record nothing.
func NewRegistry(logger *logging.Logger, metrics *monitoring.Metrics) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Registry{
		logger:  logger,
		metrics: metrics,
	}
}

// Register adds a service provider, replacing any provider with the same ID
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if err := utils.ValidateID(def.ID, "service ID", true); err != nil {
		return err
	}

	r.services.Store(def.ID, provider)
	r.metrics.SetRegisteredServices(r.count())
	r.logger.Debug("service registered",
		zap.String("service", def.ID),
		zap.Int("tools", len(def.Tools)),
	)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
	r.metrics.SetRegisteredServices(r.count())
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})

	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover finds the tools most relevant to a free-text intent. A limit
// below one yields no tools.
func (r *Registry) Discover(intent string, limit int) []types.Tool {
	if limit < 1 {
		return []types.Tool{}
	}

	type scoredTool struct {
		tool  types.Tool
		score float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredTool

	for _, def := range r.List(nil) {
		for _, tool := range def.Tools {
			if score := r.calculateRelevance(intentLower, tool); score > 0 {
				results = append(results, scoredTool{tool: tool, score: score})
			}
		}
	}

	// Sort by score descending, ID ascending on ties
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].tool.ID < results[j].tool.ID
	})

	output := make([]types.Tool, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].tool)
	}
	return output
}

// Execute runs a service tool. Malformed tool IDs and unknown services yield
// a failed result; a non-nil error means the provider itself failed.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (result *types.Result, err error) {
	serviceID, verr := utils.ValidateToolID(toolID)
	if verr != nil {
		return common.Failure(verr.Error())
	}
	if verr := utils.ValidateParamsDepth(params, utils.MaxParamDepth); verr != nil {
		return common.Failure(verr.Error())
	}

	provider, ok := r.Get(serviceID)
	if !ok {
		return common.NotFound(fmt.Sprintf("service not found: %s", serviceID))
	}

	callID := id.NewCallID()
	log := r.logger.ForCall(callID.String(), toolID)
	if appCtx != nil && appCtx.CallerID != nil {
		log = log.WithCaller(*appCtx.CallerID)
	}

	sw := utilities.NewStopwatch()
	defer func() {
		if p := recover(); p != nil {
			result, err = common.FailureFrom(common.Computation(toolID, p))
		}
		r.observe(log, serviceID, toolID, result, err, sw)
	}()

	return provider.Execute(ctx, toolID, params, appCtx)
}

// observe records metrics and a log line for one finished call
func (r *Registry) observe(log *logging.Logger, serviceID, toolID string, result *types.Result, err error, sw *utilities.Stopwatch) {
	elapsed := sw.Toc()

	switch {
	case err != nil:
		r.metrics.RecordServiceCall(serviceID, toolID, monitoring.StatusError, elapsed)
		r.metrics.RecordServiceError(serviceID, toolID, common.ErrorCode(err))
		log.Error("tool execution failed", zap.Error(err), zap.Duration("duration", elapsed))
	case result == nil:
		r.metrics.RecordServiceCall(serviceID, toolID, monitoring.StatusError, elapsed)
		r.metrics.RecordServiceError(serviceID, toolID, common.CodeComputation)
		log.Error("tool returned no result", zap.Duration("duration", elapsed))
	case !result.Success:
		r.metrics.RecordServiceCall(serviceID, toolID, monitoring.StatusFailure, elapsed)
		r.metrics.RecordServiceError(serviceID, toolID, result.Code)
		msg := ""
		if result.Error != nil {
			msg = *result.Error
		}
		log.Debug("tool rejected call",
			zap.String("code", result.Code),
			zap.String("error", msg),
			zap.Duration("duration", elapsed),
		)
	default:
		r.metrics.RecordServiceCall(serviceID, toolID, monitoring.StatusSuccess, elapsed)
		log.Debug("tool executed", zap.Duration("duration", elapsed))
	}
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func (r *Registry) count() int {
	n := 0
	r.services.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

func (r *Registry) calculateRelevance(intent string, tool types.Tool) float64 {
	score := 0.0

	// Check tool ID and name
	short := strings.ToLower(tool.ID[strings.LastIndex(tool.ID, ".")+1:])
	if strings.Contains(intent, short) || strings.Contains(intent, strings.ToLower(tool.Name)) {
		score += 10.0
	}

	// Check description words
	for _, word := range strings.Fields(strings.ToLower(tool.Description)) {
		if len(word) > 3 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	// Check parameter names
	for _, p := range tool.Parameters {
		if strings.Contains(intent, strings.ToLower(p.Name)) {
			score += 1.0
		}
	}

	return score
}
