package providers

import (
	"insightd/internal/models"
	"insightd/internal/structures"
	"testing"
	"time"
)

func TestNewMetricsProvider_DisabledIsNoop(t *testing.T) {
	conf := &structures.Config{}
	metrics := NewMetricsProvider(conf, models.NewInsightStore())

	if _, ok := metrics.(*noopMetrics); !ok {
		t.Fatalf("expected noop metrics when disabled, got %T", metrics)
	}
}

// Collectors register against the default registry, so the enabled
// provider is constructed once for the whole test binary.
func TestNewMetricsProvider_Enabled(t *testing.T) {
	conf := &structures.Config{}
	conf.Metrics.Enabled = true
	metrics := NewMetricsProvider(conf, models.NewInsightStore())

	if _, ok := metrics.(*MetricsProvider); !ok {
		t.Fatalf("expected real metrics provider, got %T", metrics)
	}

	metrics.IncRequestsTotal("/insights", 200)
	metrics.ObserveRequestDuration("/insights", 12*time.Millisecond)
	metrics.IncCacheHits()
	metrics.IncCacheMisses()
	metrics.ObservePersistenceDuration(3 * time.Millisecond)
	metrics.IncAIRequests("extract_insight", "success")
	metrics.ObserveAIDuration("extract_insight", time.Second)
}
