package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/sets"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/statistics"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/utilities"
	"github.com/GriffinCanCode/mathcompat/internal/types"
)

// Provider implements the numeric compatibility tools
type Provider struct {
	// Module instances
	stats     *statistics.StatsOps
	sets      *sets.SetOps
	utilities *utilities.UtilityOps
}

// NewProvider creates a modular math provider. A nil ops uses DefaultOps.
func NewProvider(ops *common.MathOps) *Provider {
	if ops == nil {
		ops = common.DefaultOps()
	}

	return &Provider{
		stats:     &statistics.StatsOps{MathOps: ops},
		sets:      &sets.SetOps{MathOps: ops},
		utilities: &utilities.UtilityOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.sets.GetTools()...)
	tools = append(tools, m.utilities.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Numeric compatibility routines (quantiles, histograms, unique and overlap analysis, date and text helpers)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"statistics",
			"histogram",
			"sets",
			"dates",
			"conversions",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{
				Name: "UniqueStats",
				Fields: map[string]string{
					"values":      "array",
					"first_index": "array",
					"counts":      "array",
					"inverse":     "array",
				},
			},
			{
				Name: "Histogram",
				Fields: map[string]string{
					"counts": "array",
					"edges":  "array",
				},
			},
		},
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Statistics
	case "math.quantile":
		return m.stats.Quantile(ctx, params, appCtx)
	case "math.percentile":
		return m.stats.Percentile(ctx, params, appCtx)
	case "math.histogram":
		return m.stats.Histogram(ctx, params, appCtx)

	// Sets
	case "math.unique":
		return m.sets.Unique(ctx, params, appCtx)
	case "math.uniqueRanked":
		return m.sets.UniqueRanked(ctx, params, appCtx)
	case "math.uniqueStats":
		return m.sets.UniqueStats(ctx, params, appCtx)
	case "math.overlap1d":
		return m.sets.Overlap1D(ctx, params, appCtx)
	case "math.overlap1dPositions":
		return m.sets.Overlap1DPositions(ctx, params, appCtx)
	case "math.overlap2d":
		return m.sets.Overlap2D(ctx, params, appCtx)

	// Utilities
	case "math.datenum":
		return m.utilities.Datenum(ctx, params, appCtx)
	case "math.dtrange":
		return m.utilities.DateRange(ctx, params, appCtx)
	case "math.str2num":
		return m.utilities.Str2Num(ctx, params, appCtx)
	case "math.num2str":
		return m.utilities.Num2Str(ctx, params, appCtx)
	case "math.strcat":
		return m.utilities.Strcat(ctx, params, appCtx)
	case "math.zeroOrOne":
		return m.utilities.ZeroOrOne(ctx, params, appCtx)
	case "math.cell2mat":
		return m.utilities.Cell2Mat(ctx, params, appCtx)

	default:
		return common.NotFound(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
