package sim

import (
	"math"
	"testing"

	"github.com/mselway/skyrocket/internal/plan"
	"github.com/mselway/skyrocket/internal/rocket"
)

func TestEngineLaunch(t *testing.T) {
	e := New(rocket.DefaultPhysics())

	e.Launch(plan.Plan{})

	snap := e.Snapshot()
	if len(snap.Rockets) != 1 {
		t.Fatalf("expected 1 rocket, got %d", len(snap.Rockets))
	}
	if snap.Launches != 1 {
		t.Errorf("expected 1 launch, got %d", snap.Launches)
	}
	r := snap.Rockets[0]
	if r.Fuel != 1200 || r.Left != 250 || r.Right != 250 {
		t.Errorf("unexpected launch state: fuel=%f thrusters=(%f, %f)", r.Fuel, r.Left, r.Right)
	}
}

func TestTickEmptyPoolRequestsPlan(t *testing.T) {
	e := New(rocket.DefaultPhysics())

	if !e.Tick(0.016) {
		t.Error("expected a plan request from an empty pool")
	}
	if len(e.Snapshot().Rockets) != 0 {
		t.Error("expected the pool to stay empty")
	}
}

func TestTickRequestsPlanPreUpdate(t *testing.T) {
	// gravity heavy enough to sink the rocket on its very first tick
	phys := rocket.Physics{Gravity: 1000, Lift: 0.7, Steer: 0.3, InitialFuel: 1200, InitialThrust: 250}
	e := New(phys)
	e.Launch(plan.Plan{})

	// the pool is non-empty going into this tick, so even though the
	// rocket lands during it no request fires
	if e.Tick(0.1) {
		t.Error("landing frame must not request a plan")
	}
	if len(e.Snapshot().Rockets) != 0 {
		t.Fatal("expected the rocket to be removed")
	}

	if !e.Tick(0.1) {
		t.Error("expected the following frame to request a plan")
	}
}

func TestTickRemovesLanded(t *testing.T) {
	e := New(rocket.DefaultPhysics())
	e.Launch(plan.Plan{})
	e.Launch(plan.Plan{0: {Left: 0, Right: 0}})

	// the second rocket cuts its thrusters after one tick and falls
	// below the ground line two ticks in
	e.Tick(0.05)
	e.Tick(0.05)

	snap := e.Snapshot()
	if len(snap.Rockets) != 1 {
		t.Fatalf("expected 1 rocket left, got %d", len(snap.Rockets))
	}
	if snap.Rockets[0].Left != 250 {
		t.Errorf("wrong rocket removed: survivor thrusters (%f, %f)", snap.Rockets[0].Left, snap.Rockets[0].Right)
	}
}

func TestDispatch(t *testing.T) {
	e := New(rocket.DefaultPhysics())

	if !e.Dispatch(Frame{Elapsed: 0.016}) {
		t.Error("expected a frame on an empty pool to request a plan")
	}

	if e.Dispatch(PlanReady{Draw: make([]float64, plan.DrawLen)}) {
		t.Error("a delivered plan must not request another")
	}
	snap := e.Snapshot()
	if len(snap.Rockets) != 1 {
		t.Fatalf("expected a launched rocket, got %d", len(snap.Rockets))
	}

	if e.Dispatch(Frame{Elapsed: 0.016}) {
		t.Error("expected no request while a rocket flies")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := New(rocket.DefaultPhysics())
	e.Launch(plan.Plan{})

	before := e.Snapshot()
	e.Tick(0.016)

	if before.Rockets[0].Tick != 0 {
		t.Error("snapshot mutated by a later tick")
	}
	if e.Snapshot().Rockets[0].Tick != 1 {
		t.Error("expected the engine to advance")
	}
}

type testMetric struct {
	count int
	last  Snapshot
}

func (m *testMetric) Name() string       { return "test" }
func (m *testMetric) Observe(s Snapshot) { m.count++; m.last = s }
func (m *testMetric) Value() float64     { return float64(m.count) }
func (m *testMetric) Reset()             { m.count = 0 }

func TestEngineMetrics(t *testing.T) {
	e := New(rocket.DefaultPhysics())
	metric := &testMetric{}
	e.AddMetric(metric)
	e.Launch(plan.Plan{})

	for i := 0; i < 10; i++ {
		e.Tick(0.016)
	}

	if metric.count != 10 {
		t.Errorf("expected 10 observations, got %d", metric.count)
	}
	if metric.last.Launches != 1 {
		t.Errorf("expected the snapshot to carry the launch count, got %d", metric.last.Launches)
	}

	vals := e.MetricValues()
	if vals["test"] != 10 {
		t.Errorf("expected metric value 10, got %f", vals["test"])
	}

	e.ResetMetrics()
	if metric.count != 0 {
		t.Error("expected reset to zero the metric")
	}
}

func TestSeededSource(t *testing.T) {
	src := NewSeededSource(42)

	draw := src.Draw(plan.DrawLen)
	if len(draw) != plan.DrawLen {
		t.Fatalf("expected %d values, got %d", plan.DrawLen, len(draw))
	}
	for i, v := range draw {
		if v < 0 || v >= 1000 || math.IsNaN(v) {
			t.Errorf("value %d out of range: %f", i, v)
		}
	}

	other := NewSeededSource(42).Draw(plan.DrawLen)
	for i := range draw {
		if draw[i] != other[i] {
			t.Fatalf("same seed diverged at value %d: %f vs %f", i, draw[i], other[i])
		}
	}
}
