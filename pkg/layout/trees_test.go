package layout

import (
	"math/rand"
	"testing"

	"github.com/DilaraLiyanage/forestplanner/pkg/grid"
	"github.com/DilaraLiyanage/forestplanner/pkg/spec"
)

func placeDefault(t *testing.T, seed int64) ([]Tree, *Hedges, grid.Grid) {
	t.Helper()
	s := spec.Default()
	g, err := grid.New(s.Grid.Width, s.Grid.Height, spec.WorldHalfExtent)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	h := NewHedges(s.Hedges, s.Hub.FootprintRadius, 0.8)
	rng := rand.New(rand.NewSource(seed))
	trees, report := PlaceTrees(s.Trees, g, grid.NewCellSet(), h, s.Hub.FootprintRadius, rng)
	if !report.Valid {
		t.Fatalf("placement report invalid: %s", report.Summary)
	}
	return trees, h, g
}

func TestPlaceTreesReachesTarget(t *testing.T) {
	trees, _, _ := placeDefault(t, 1)
	if len(trees) != 20 {
		t.Fatalf("placed %d trees, want 20", len(trees))
	}

	counts := map[TreeSize]int{}
	for _, tr := range trees {
		counts[tr.Size]++
	}
	if counts[SizeSmall] != 5 || counts[SizeMedium] != 10 || counts[SizeTall] != 5 {
		t.Errorf("size distribution small=%d medium=%d tall=%d, want 5/10/5",
			counts[SizeSmall], counts[SizeMedium], counts[SizeTall])
	}
}

func TestPlaceTreesHonorsConstraints(t *testing.T) {
	trees, h, _ := placeDefault(t, 2)

	minR := h.BaseOuterRadius() + placementGap
	for i, tr := range trees {
		if r := tr.Position.Length(); r < minR {
			t.Errorf("tree %d at radius %.3f inside placement floor %.3f", i, r, minR)
		}
		if h.Forbidden(tr.Position) {
			t.Errorf("tree %d placed in forbidden region", i)
		}
	}

	spacing := spec.Default().Trees.Spacing
	for i := range trees {
		for j := i + 1; j < len(trees); j++ {
			if d := trees[i].Position.Distance(trees[j].Position); d < spacing {
				t.Errorf("trees %d and %d only %.3f apart, spacing %.1f", i, j, d, spacing)
			}
		}
	}
}

func TestPlaceTreesAvoidsPathCells(t *testing.T) {
	s := spec.Default()
	g, err := grid.New(s.Grid.Width, s.Grid.Height, spec.WorldHalfExtent)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	h := NewHedges(s.Hedges, s.Hub.FootprintRadius, 0.8)

	// Block a horizontal band of cells across the upper half.
	blocked := grid.NewCellSet()
	for x := 0; x < g.Width; x++ {
		blocked.Add(grid.Cell{X: x, Y: 40})
	}

	rng := rand.New(rand.NewSource(3))
	trees, _ := PlaceTrees(s.Trees, g, blocked, h, s.Hub.FootprintRadius, rng)
	for i, tr := range trees {
		if blocked.Has(g.ToGrid(tr.Position)) {
			t.Errorf("tree %d landed on a path cell", i)
		}
	}
}

func TestPlaceTreesDeterministicPositions(t *testing.T) {
	a, _, _ := placeDefault(t, 9)
	b, _, _ := placeDefault(t, 9)
	if len(a) != len(b) {
		t.Fatalf("runs differ in count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Position != b[i].Position || a[i].Size != b[i].Size {
			t.Fatalf("tree %d differs between identical seeds", i)
		}
	}
}

func TestPlaceTreesReportsShortfall(t *testing.T) {
	s := spec.Default()
	s.Trees = spec.TreesDef{Small: 50, Medium: 100, Tall: 50, Spacing: 6}
	g, err := grid.New(s.Grid.Width, s.Grid.Height, spec.WorldHalfExtent)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	h := NewHedges(s.Hedges, s.Hub.FootprintRadius, 0.8)

	rng := rand.New(rand.NewSource(4))
	trees, report := PlaceTrees(s.Trees, g, grid.NewCellSet(), h, s.Hub.FootprintRadius, rng)
	if len(trees) >= s.Trees.Total() {
		t.Fatalf("expected shortfall, placed all %d trees", len(trees))
	}
	if len(report.Warnings) == 0 {
		t.Error("shortfall must surface as a warning")
	}
}

func TestPlaceTreesMargins(t *testing.T) {
	trees, h, _ := placeDefault(t, 5)
	for i, tr := range trees {
		r := tr.Position.Length()
		if tr.OuterMargin < 0 || tr.HubGap < 0 {
			t.Fatalf("tree %d has negative margin", i)
		}
		if !approxEqual(tr.OuterMargin, r-h.OuterRadius(), 1e-9) {
			t.Errorf("tree %d outer margin %.4f, want %.4f", i, tr.OuterMargin, r-h.OuterRadius())
		}
	}
}
