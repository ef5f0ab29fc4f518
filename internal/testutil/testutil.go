// Package testutil holds the mock provider and result assertions shared by
// registry, provider and engine tests.
package testutil

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/mathcompat/internal/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockServiceProvider is a testify mock of service.Provider.
type MockServiceProvider struct {
	mock.Mock
}

func (m *MockServiceProvider) Definition() types.Service {
	return m.Called().Get(0).(types.Service)
}

func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	result, _ := args.Get(0).(*types.Result)
	return result, args.Error(1)
}

// NewMockServiceProvider returns a mock whose Definition is a one-tool
// service named serviceID. Execute expectations are left to the caller.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)
	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategoryUtilities)).Maybe()
	return m
}

// CreateTestService builds a definition with a single "<id>.test" tool.
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()
	return types.Service{
		ID:       id,
		Name:     id + " (test)",
		Category: category,
		Tools: []types.Tool{
			{ID: id + ".test", Name: "test", Returns: "object"},
		},
	}
}

// AssertSuccess fails the test unless result succeeded.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result, "result")
	require.Truef(t, result.Success, "expected success, got %s: %s", result.Code, message(result))
}

// AssertError fails the test unless result is a failure with a message.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result, "result")
	require.False(t, result.Success, "expected failure, got success")
	require.NotNil(t, result.Error, "failure without a message")
}

// AssertErrorCode asserts a failure carrying code.
func AssertErrorCode(t *testing.T, result *types.Result, code string) {
	t.Helper()
	AssertError(t, result)
	require.Equalf(t, code, result.Code, "error: %s", *result.Error)
}

// AssertDataField asserts a successful result whose Data[field] equals expected.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)
	require.Contains(t, result.Data, field)
	require.Equalf(t, expected, result.Data[field], "field %s", field)
}

func message(result *types.Result) string {
	if result.Error == nil {
		return ""
	}
	return *result.Error
}
