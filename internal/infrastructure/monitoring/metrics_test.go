package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordServiceCall(t *testing.T) {
	m := NewMetrics("test")

	m.RecordServiceCall("math", "math.quantile", StatusSuccess, 2*time.Millisecond)
	m.RecordServiceCall("math", "math.quantile", StatusSuccess, 3*time.Millisecond)
	m.RecordServiceCall("math", "math.quantile", StatusFailure, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ServiceCalls.WithLabelValues("math", "math.quantile", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ServiceCalls.WithLabelValues("math", "math.quantile", StatusFailure)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ServiceDuration))
}

func TestRecordServiceError(t *testing.T) {
	m := NewMetrics("test")

	m.RecordServiceError("math", "math.histogram", "invalid_argument")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ServiceErrors.WithLabelValues("math", "math.histogram", "invalid_argument")))
}

func TestRegistryIsPrivate(t *testing.T) {
	a := NewMetrics("mathcompat")
	b := NewMetrics("mathcompat")

	a.SetRegisteredServices(3)
	b.SetRegisteredServices(1)

	families, err := a.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "mathcompat_registered_services")
	assert.Equal(t, 3.0, testutil.ToFloat64(a.RegisteredServices))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.RegisteredServices))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordServiceCall("math", "math.unique", StatusSuccess, time.Millisecond)
		m.RecordServiceError("math", "math.unique", "computation")
		m.SetRegisteredServices(1)
	})

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}
