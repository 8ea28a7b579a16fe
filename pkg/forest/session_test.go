package forest

import (
	"math"
	"testing"

	"github.com/DilaraLiyanage/forestplanner/pkg/spec"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	cfg := spec.Default()
	cfg.Seed = seed
	s, _, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionGeneratesFullLayout(t *testing.T) {
	s := newTestSession(t, 1)

	if got := len(s.Paths()); got != 5 {
		t.Errorf("paths = %d, want 5", got)
	}
	hub := s.HubCell()
	if hub.X != 25 || hub.Y != 25 {
		t.Errorf("hub cell = (%d,%d), want (25,25)", hub.X, hub.Y)
	}
	for i, p := range s.Paths() {
		if p.B != hub {
			t.Errorf("path %d does not terminate at hub", i)
		}
	}
	if got := len(s.Trees()); got != 20 {
		t.Errorf("trees = %d, want 20", got)
	}
	if s.Hedges() == nil || s.Annulus() == nil {
		t.Fatal("hedges and annulus must be built")
	}
	if !approxEqual(s.HubFootprint(), 0.55, 1e-9) {
		t.Errorf("hub footprint = %v, want 0.55", s.HubFootprint())
	}
	if !s.Report().Valid {
		t.Errorf("generation report invalid: %s", s.Report().Summary)
	}
}

func TestNewSessionRejectsInvalidSpec(t *testing.T) {
	cfg := spec.Default()
	cfg.Trees.Spacing = -1
	_, report, err := NewSession(cfg)
	if err == nil {
		t.Fatal("expected error for invalid spec")
	}
	if report == nil || report.Valid {
		t.Fatal("expected invalid schema report")
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := newTestSession(t, 42)
	b := newTestSession(t, 42)
	if len(a.Trees()) != len(b.Trees()) {
		t.Fatalf("tree counts differ: %d vs %d", len(a.Trees()), len(b.Trees()))
	}
	for i := range a.Trees() {
		if a.Trees()[i].Position != b.Trees()[i].Position {
			t.Fatalf("tree %d differs between identical seeds", i)
		}
	}
	for i := range a.Paths() {
		if a.Paths()[i] != b.Paths()[i] {
			t.Fatalf("path %d differs between identical seeds", i)
		}
	}
}

func TestApplyHubScalePreservesMargins(t *testing.T) {
	s := newTestSession(t, 7)

	before := s.Trees()
	dirs := make([]float64, len(before))
	for i, tr := range before {
		dirs[i] = math.Atan2(tr.Position.Z, tr.Position.X)
	}

	res := s.ApplyHubScale(2)
	if res.Clamped {
		t.Fatalf("scale 2 should not clamp, applied %v", res.Applied)
	}

	newFoot := s.HubFootprint()
	newOuter := s.Hedges().OuterRadius()
	for i, tr := range s.Trees() {
		want := newFoot + tr.HubGap
		if hd := newOuter + tr.OuterMargin; hd > want {
			want = hd
		}
		if !approxEqual(tr.Position.Length(), want, 1e-9) {
			t.Errorf("tree %d radius %.4f, want %.4f", i, tr.Position.Length(), want)
		}
		if ang := math.Atan2(tr.Position.Z, tr.Position.X); !approxEqual(ang, dirs[i], 1e-9) {
			t.Errorf("tree %d changed direction", i)
		}
	}
}

func TestApplyHubScaleIdempotent(t *testing.T) {
	s := newTestSession(t, 7)
	s.ApplyHubScale(1.5)
	res := s.ApplyHubScale(1.5)
	if res.TreesMoved != 0 {
		t.Errorf("repeated scale moved %d trees", res.TreesMoved)
	}
}

func TestApplyHubScaleClampsRange(t *testing.T) {
	s := newTestSession(t, 1)

	res := s.ApplyHubScale(5)
	if !res.Clamped || !approxEqual(res.Applied, 3, 1e-9) {
		t.Errorf("scale 5: applied %v clamped %v, want 3/true", res.Applied, res.Clamped)
	}
	res = s.ApplyHubScale(0.05)
	if !res.Clamped || !approxEqual(res.Applied, 0.2, 1e-9) {
		t.Errorf("scale 0.05: applied %v clamped %v, want 0.2/true", res.Applied, res.Clamped)
	}
}

func TestApplyHubScaleClampsAtInnerRing(t *testing.T) {
	cfg := spec.Default()
	cfg.Seed = 1
	cfg.Hedges.Inner.RadiusFrom = 1.0
	s, _, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	res := s.ApplyHubScale(1)
	if !res.Clamped {
		t.Fatal("tight inner ring must clamp the scale")
	}
	if res.Applied >= res.Requested {
		t.Errorf("clamped scale %v not below requested %v", res.Applied, res.Requested)
	}
}

func TestAdjustHubRadius(t *testing.T) {
	s := newTestSession(t, 3)

	res := s.AdjustHubRadius(0.02)
	if !approxEqual(s.HubRadius(), 0.52, 1e-9) {
		t.Errorf("hub radius = %v, want 0.52", s.HubRadius())
	}
	if res.Clamped {
		t.Error("small radius step should not clamp the scale")
	}
	if !approxEqual(s.HubFootprint(), 0.52*1.1, 1e-9) {
		t.Errorf("hub footprint = %v, want %v", s.HubFootprint(), 0.52*1.1)
	}

	// A large radius pushes the footprint into the inner hedge ring, so
	// the scale clamps back to keep the clearance.
	res = s.AdjustHubRadius(0.5)
	if !res.Clamped {
		t.Error("large radius step must clamp the scale")
	}
	innerScaled := 1.4 * 0.55 * (1 * 0.8)
	if s.HubFootprint() > innerScaled*0.95+1e-9 {
		t.Errorf("hub footprint %v exceeds inner ring clearance %v",
			s.HubFootprint(), innerScaled*0.95)
	}

	s.AdjustHubRadius(-10)
	if !approxEqual(s.HubRadius(), 0.05, 1e-9) {
		t.Errorf("hub radius floor = %v, want 0.05", s.HubRadius())
	}
}

func TestResetRestoresBaseline(t *testing.T) {
	s := newTestSession(t, 42)
	fresh := newTestSession(t, 42)

	s.ApplyHubScale(2.5)
	s.AdjustHubRadius(0.2)
	s.Reset()

	if !approxEqual(s.HubScale(), 1, 1e-9) {
		t.Errorf("hub scale after reset = %v", s.HubScale())
	}
	if !approxEqual(s.HubRadius(), 0.5, 1e-9) {
		t.Errorf("hub radius after reset = %v", s.HubRadius())
	}
	if len(s.Trees()) != len(fresh.Trees()) {
		t.Fatalf("tree count after reset = %d, want %d", len(s.Trees()), len(fresh.Trees()))
	}
	for i := range s.Trees() {
		if s.Trees()[i].Position != fresh.Trees()[i].Position {
			t.Fatalf("tree %d differs from fresh session after reset", i)
		}
	}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
