package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(globalManager.framesProcessed.WithLabelValues("hand"))
	RecordFrameProcessed("hand")
	RecordFrameProcessed("hand")
	if got := testutil.ToFloat64(globalManager.framesProcessed.WithLabelValues("hand")) - before; got != 2 {
		t.Errorf("frames processed delta = %v, want 2", got)
	}

	before = testutil.ToFloat64(globalManager.eventsPublished.WithLabelValues("gesture.pinch.start"))
	RecordEventPublished("gesture.pinch.start")
	if got := testutil.ToFloat64(globalManager.eventsPublished.WithLabelValues("gesture.pinch.start")) - before; got != 1 {
		t.Errorf("events published delta = %v, want 1", got)
	}

	before = testutil.ToFloat64(globalManager.poseSolveFailures)
	RecordPoseSolveFailure()
	if got := testutil.ToFloat64(globalManager.poseSolveFailures) - before; got != 1 {
		t.Errorf("pose solve failures delta = %v, want 1", got)
	}

	UpdateBusSubscribers(7)
	if got := testutil.ToFloat64(globalManager.busSubscribers); got != 7 {
		t.Errorf("bus subscribers = %v, want 7", got)
	}

	RecordDetectDuration("face", 12.5)
	if n := testutil.CollectAndCount(globalManager.detectDuration, "kiro_pipeline_detect_duration_milliseconds"); n < 1 {
		t.Errorf("detect duration metric count = %d, want at least 1", n)
	}
}

func TestNewManagerAppliesOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(
		WithNamespace("probe"),
		WithSubsystem("test"),
		WithHistogramBuckets([]float64{1, 5, 25}),
		WithRegistry(reg),
	)
	m.framesProcessed.WithLabelValues("hand").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather returned error: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "probe_test_frames_processed_total" {
			found = true
		}
	}
	if !found {
		t.Error("renamed counter not found in custom registry")
	}
}

func TestNewManagerIgnoresEmptyOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(
		WithNamespace(""),
		WithSubsystem(""),
		WithHistogramBuckets(nil),
		WithRegistry(reg),
	)
	if m.namespace != "kiro" || m.subsystem != "pipeline" {
		t.Errorf("namespace/subsystem = %q/%q, want defaults kept", m.namespace, m.subsystem)
	}
	if len(m.histogramBuckets) == 0 {
		t.Error("histogram buckets emptied by nil option")
	}
}

func TestRegistryGathers(t *testing.T) {
	reg := Registry()
	if reg == nil {
		t.Fatal("Registry() = nil")
	}
	if _, err := reg.Gather(); err != nil {
		t.Errorf("Gather returned error: %v", err)
	}
}
