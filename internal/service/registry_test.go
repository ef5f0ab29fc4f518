package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GriffinCanCode/mathcompat/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mathcompat/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
	"github.com/GriffinCanCode/mathcompat/internal/testutil"
	"github.com/GriffinCanCode/mathcompat/internal/types"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRegistry(t *testing.T) (*Registry, *monitoring.Metrics, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	metrics := monitoring.NewMetrics("test")
	return NewRegistry(logging.Wrap(zap.New(core)), metrics), metrics, logs
}

func TestRegister(t *testing.T) {
	r, metrics, _ := newTestRegistry(t)
	p := testutil.NewMockServiceProvider(t, "test")

	require.NoError(t, r.Register(p))

	_, ok := r.Get("test")
	assert.True(t, ok, "service should be registered")
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.RegisteredServices))

	r.Unregister("test")
	_, ok = r.Get("test")
	assert.False(t, ok)
	assert.Equal(t, 0.0, promtest.ToFloat64(metrics.RegisteredServices))
}

func TestRegisterInvalidID(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	for _, bad := range []string{"", "has.dot", "sp ace"} {
		p := new(testutil.MockServiceProvider)
		p.On("Definition").Return(types.Service{ID: bad})
		assert.Error(t, r.Register(p), bad)
	}
}

func TestList(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "beta")))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "alpha")))

	services := r.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "alpha", services[0].ID)
	assert.Equal(t, "beta", services[1].ID)

	cat := types.CategoryUtilities
	assert.Len(t, r.List(&cat), 2)

	other := types.CategoryStatistics
	assert.Empty(t, r.List(&other))
}

func TestDiscover(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	p := new(testutil.MockServiceProvider)
	p.On("Definition").Return(types.Service{
		ID:       "math",
		Category: types.CategoryMath,
		Tools: []types.Tool{
			{ID: "math.histogram", Name: "Histogram", Description: "Histogram bin counts"},
			{ID: "math.quantile", Name: "Quantile", Description: "Estimate quantiles"},
		},
	})
	require.NoError(t, r.Register(p))

	results := r.Discover("count values into histogram bins", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "math.histogram", results[0].ID)

	assert.Len(t, r.Discover("histogram quantile", 1), 1)
	assert.Empty(t, r.Discover("weather", 5))

	for _, limit := range []int{0, -1} {
		assert.NotPanics(t, func() {
			assert.Empty(t, r.Discover("histogram", limit))
		}, "limit=%d", limit)
	}
}

func TestExecute(t *testing.T) {
	r, metrics, logs := newTestRegistry(t)
	p := testutil.NewMockServiceProvider(t, "test")
	p.On("Execute", mock.Anything, "test.run", mock.Anything, mock.Anything).
		Return(&types.Result{Success: true, Data: map[string]interface{}{"result": "ok"}}, nil)
	require.NoError(t, r.Register(p))

	result, err := r.Execute(context.Background(), "test.run", map[string]interface{}{}, nil)
	require.NoError(t, err)
	testutil.AssertDataField(t, result, "result", "ok")

	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.ServiceCalls.WithLabelValues("test", "test.run", monitoring.StatusSuccess)))

	entries := logs.FilterMessage("tool executed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test.run", fields["tool"])
	assert.Regexp(t, `^call_[0-9A-Z]{26}$`, fields["call_id"])

	p.AssertExpectations(t)
}

func TestExecuteCallerID(t *testing.T) {
	r, _, logs := newTestRegistry(t)
	p := testutil.NewMockServiceProvider(t, "test")
	p.On("Execute", mock.Anything, "test.run", mock.Anything, mock.Anything).
		Return(&types.Result{Success: true}, nil)
	require.NoError(t, r.Register(p))

	caller := "batch-7"
	_, err := r.Execute(context.Background(), "test.run", nil, &types.Context{CallerID: &caller})
	require.NoError(t, err)

	entries := logs.FilterField(zap.String("caller_id", "batch-7")).All()
	assert.Len(t, entries, 1)
}

func TestExecuteFailures(t *testing.T) {
	r, metrics, _ := newTestRegistry(t)
	p := testutil.NewMockServiceProvider(t, "test")
	msg := "bins must be an integer"
	p.On("Execute", mock.Anything, "test.reject", mock.Anything, mock.Anything).
		Return(&types.Result{Success: false, Error: &msg, Code: common.CodeInvalidArgument}, nil)
	p.On("Execute", mock.Anything, "test.broken", mock.Anything, mock.Anything).
		Return(nil, errors.New("backend down"))
	p.On("Execute", mock.Anything, "test.panic", mock.Anything, mock.Anything).
		Panic("index out of range")
	require.NoError(t, r.Register(p))

	ctx := context.Background()

	t.Run("malformed tool ID", func(t *testing.T) {
		result, err := r.Execute(ctx, "no-dot", nil, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, common.CodeInvalidArgument)
	})

	t.Run("unknown service", func(t *testing.T) {
		result, err := r.Execute(ctx, "ghost.run", nil, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, common.CodeNotFound)
	})

	t.Run("params too deep", func(t *testing.T) {
		var nested interface{} = 1.0
		for i := 0; i < 20; i++ {
			nested = []interface{}{nested}
		}
		result, err := r.Execute(ctx, "test.run", map[string]interface{}{"values": nested}, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, common.CodeInvalidArgument)
	})

	t.Run("rejected call", func(t *testing.T) {
		result, err := r.Execute(ctx, "test.reject", nil, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, common.CodeInvalidArgument)
		assert.Equal(t, 1.0, promtest.ToFloat64(metrics.ServiceErrors.WithLabelValues("test", "test.reject", common.CodeInvalidArgument)))
		assert.Equal(t, 1.0, promtest.ToFloat64(metrics.ServiceCalls.WithLabelValues("test", "test.reject", monitoring.StatusFailure)))
	})

	t.Run("provider error", func(t *testing.T) {
		_, err := r.Execute(ctx, "test.broken", nil, nil)
		assert.EqualError(t, err, "backend down")
		assert.Equal(t, 1.0, promtest.ToFloat64(metrics.ServiceCalls.WithLabelValues("test", "test.broken", monitoring.StatusError)))
	})

	t.Run("provider panic", func(t *testing.T) {
		result, err := r.Execute(ctx, "test.panic", nil, nil)
		require.NoError(t, err)
		testutil.AssertErrorCode(t, result, common.CodeComputation)
		assert.Contains(t, *result.Error, "index out of range")
	})
}

func TestStats(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "test1")))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "test2")))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{string(types.CategoryUtilities): 2}, stats["categories"])
}

func TestNilDependencies(t *testing.T) {
	r := NewRegistry(nil, nil)
	p := testutil.NewMockServiceProvider(t, "test")
	p.On("Execute", mock.Anything, "test.run", mock.Anything, mock.Anything).
		Return(&types.Result{Success: true}, nil)
	require.NoError(t, r.Register(p))

	result, err := r.Execute(context.Background(), "test.run", nil, nil)
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)
}
