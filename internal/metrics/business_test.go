package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("Success_CreateBusinessMetrics", func(t *testing.T) {
		provider, err := NewProvider("fleetflow_test")
		require.NoError(t, err)

		businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "fleetflow_test")

		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("fleetflow_test")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "fleetflow_test")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulOperation", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "staff", "create", "success")
	})

	t.Run("Success_RecordFailedOperation", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "staff", "create", "error")
	})

	t.Run("Success_RecordMultipleDomains", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "staff", "create", "success")
		bm.RecordOperation(context.Background(), "motorcycle", "list", "success")
		bm.RecordOperation(context.Background(), "auth", "login", "error")
	})
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("fleetflow_test")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "fleetflow_test")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulDuration", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "staff", "create", 123*time.Millisecond, "success")
	})

	t.Run("Success_RecordFailedDuration", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "staff", "create", 456*time.Millisecond, "error")
	})
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	t.Run("NoOp_RecordOperationDoesNotPanic", func(t *testing.T) {
		noOpMetrics.RecordOperation(context.Background(), "staff", "create", "success")
		noOpMetrics.RecordOperation(context.Background(), "motorcycle", "update", "error")
	})

	t.Run("NoOp_RecordDurationDoesNotPanic", func(t *testing.T) {
		noOpMetrics.RecordDuration(context.Background(), "staff", "create", 100*time.Millisecond, "success")
		noOpMetrics.RecordDuration(context.Background(), "motorcycle", "update", 200*time.Millisecond, "error")
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "staff", "create", "success")
	bm.RecordOperation(ctx, "staff", "create", "success")
	bm.RecordOperation(ctx, "staff", "create", "error")
	bm.RecordOperation(ctx, "motorcycle", "list", "success")
	bm.RecordOperation(ctx, "auth", "login", "success")

	bm.RecordDuration(ctx, "staff", "create", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "staff", "create", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "staff", "create", 100*time.Millisecond, "error")
	bm.RecordDuration(ctx, "motorcycle", "list", 10*time.Millisecond, "success")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	output := w.Body.String()

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="staff".*operation="create".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="staff".*operation="create".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="motorcycle".*operation="list".*status="success"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="staff".*operation="create".*status="success"`,
		`2`,
	)
}
