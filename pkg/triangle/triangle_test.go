package triangle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/willbeason/chaos-game/pkg/errors"
	"github.com/willbeason/chaos-game/pkg/geometry"
	"github.com/willbeason/chaos-game/pkg/rng"
	"github.com/willbeason/chaos-game/pkg/transforms"
)

type plotted struct {
	X, Y float64
	C    color.Color
}

type recorder struct {
	points []plotted
}

func (r *recorder) Plot(x, y float64, c color.Color) {
	r.points = append(r.points, plotted{X: x, Y: y, C: c})
}

func (r *recorder) set() map[plotted]int {
	s := make(map[plotted]int, len(r.points))
	for _, p := range r.points {
		s[p]++
	}
	return s
}

func TestBounds(t *testing.T) {
	got := Bounds(500)
	want := [NumBounds]geometry.Point{{X: 250, Y: 0}, {X: 0, Y: 499}, {X: 499, Y: 499}}
	if got != want {
		t.Errorf("Bounds(500) = %v, want %v", got, want)
	}
}

func TestNewRejectsSize(t *testing.T) {
	for _, size := range []int{0, -10} {
		if _, err := New(size, nil, &recorder{}); !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
			t.Errorf("New(%d) error = %v, want %v", size, err, errors.ErrCodeInvalidConfiguration)
		}
	}
}

func TestNewStartsAtCentre(t *testing.T) {
	g, err := New(101, nil, &recorder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.Point() != (geometry.Point{X: 50, Y: 50}) {
		t.Errorf("Point() = %v, want (50, 50)", g.Point())
	}
	if g.Bounds() != Bounds(101) {
		t.Errorf("Bounds() = %v, want %v", g.Bounds(), Bounds(101))
	}
}

func TestRunDepthOne(t *testing.T) {
	rec := &recorder{}
	g, err := New(500, nil, rec)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	g.Run(1)

	want := []plotted{
		{X: 250, Y: 125, C: Colors[0]},
		{X: 125, Y: 374, C: Colors[1]},
		{X: 374, Y: 374, C: Colors[2]},
	}
	if len(rec.points) != len(want) {
		t.Fatalf("plot calls = %d, want %d", len(rec.points), len(want))
	}
	for i := range want {
		if rec.points[i] != want[i] {
			t.Errorf("plot %d = %+v, want %+v", i, rec.points[i], want[i])
		}
	}
}

// enumerate counts every vertex sequence of length 1 to depth.
func enumerate(depth int) int {
	count := 0
	var walk func(seq []int)
	walk = func(seq []int) {
		if len(seq) == depth {
			return
		}
		for i := 0; i < NumBounds; i++ {
			count++
			walk(append(seq, i))
		}
	}
	walk(nil)
	return count
}

func TestPlotCountMaxDepth(t *testing.T) {
	want := int64(5230176600) // (3^21 - 3) / 2
	if got := int64(PlotCount(MaxDepth)); got != want {
		t.Errorf("PlotCount(%d) = %d, want %d", MaxDepth, got, want)
	}
}

func TestRunPlotCount(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{depth: 0, want: 0},
		{depth: 1, want: 3},
		{depth: 2, want: 12},
		{depth: 3, want: 39},
		{depth: 6, want: 1092},
	}

	for _, tt := range tests {
		rec := &recorder{}
		g, err := New(500, nil, rec)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		g.Run(tt.depth)

		if len(rec.points) != tt.want {
			t.Errorf("Run(%d) plot calls = %d, want %d", tt.depth, len(rec.points), tt.want)
		}
		if n := enumerate(tt.depth); n != tt.want {
			t.Errorf("enumerate(%d) = %d, want %d", tt.depth, n, tt.want)
		}
		if n := PlotCount(tt.depth); n != tt.want {
			t.Errorf("PlotCount(%d) = %d, want %d", tt.depth, n, tt.want)
		}
		pow := int(math.Pow(3, float64(tt.depth+1)))
		if closed := (pow - 3) / 2; closed != tt.want {
			t.Errorf("(3^(%d+1)-3)/2 = %d, want %d", tt.depth, closed, tt.want)
		}
	}
}

func TestRunReproducible(t *testing.T) {
	run := func() map[plotted]int {
		rec := &recorder{}
		g, err := New(500, nil, rec)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		g.Run(2)
		return rec.set()
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("distinct points = %d and %d", len(first), len(second))
	}
	for p, n := range first {
		if second[p] != n {
			t.Errorf("point %+v plotted %d times, then %d times", p, n, second[p])
		}
	}
}

func TestRunIgnoresRandomSource(t *testing.T) {
	recA, recB := &recorder{}, &recorder{}
	a, _ := New(500, rand.New(rand.NewSource(1)), recA)
	b, _ := New(500, rand.New(rand.NewSource(2)), recB)

	a.Run(4)
	b.Run(4)

	for i := range recA.points {
		if recA.points[i] != recB.points[i] {
			t.Fatalf("plot %d differs: %+v vs %+v", i, recA.points[i], recB.points[i])
		}
	}
}

func TestRunRestoresPoint(t *testing.T) {
	g, err := New(500, nil, &recorder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	start := g.Point()

	g.Run(5)

	if g.Point() != start {
		t.Errorf("Point() after Run = %v, want %v", g.Point(), start)
	}
}

func TestDescendRestoresSubtree(t *testing.T) {
	g, err := New(500, nil, &recorder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, p := range []geometry.Point{{X: 3, Y: 411}, {X: 499, Y: 0}, {X: 137, Y: 138}} {
		g.point = p
		g.descend(2, 6)
		if g.point != p {
			t.Errorf("point after subtree = %v, want %v", g.point, p)
		}
	}
}

func TestVertexForRoll(t *testing.T) {
	want := []int{0, 0, 1, 1, 2, 2}
	for roll, w := range want {
		if got := vertexForRoll(roll); got != w {
			t.Errorf("vertexForRoll(%d) = %d, want %d", roll, got, w)
		}
	}
}

func TestVertexForRollMatchesWeightedSelection(t *testing.T) {
	uniform := transforms.Catalog{
		{Transform: transforms.Linear{}, Weight: 2},
		{Transform: transforms.Linear{}, Weight: 2},
		{Transform: transforms.Linear{}, Weight: 2},
	}

	for roll := 0; roll < 2*NumBounds; roll++ {
		got, err := uniform.Select(&rng.Sequence{Values: []int{roll}}, 0)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if got != vertexForRoll(roll) {
			t.Errorf("roll %d: Select() = %d, vertexForRoll() = %d", roll, got, vertexForRoll(roll))
		}
	}
}

func TestGenerateDistribution(t *testing.T) {
	rec := &recorder{}
	g, err := New(500, rand.New(rand.NewSource(1)), rec)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const runs = 30000
	if err := g.Generate(runs); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(rec.points) != runs {
		t.Fatalf("plot calls = %d, want %d", len(rec.points), runs)
	}

	counts := make(map[color.Color]int)
	for _, p := range rec.points {
		counts[p.C]++
	}
	for i, c := range Colors {
		freq := float64(counts[c]) / runs
		if math.Abs(freq-1.0/3.0) > 0.02 {
			t.Errorf("vertex %d frequency = %.4f, want 1/3 within 0.02", i, freq)
		}
	}
}

func TestGenerateStaysInTriangle(t *testing.T) {
	rec := &recorder{}
	g, err := New(500, rand.New(rand.NewSource(8)), rec)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := g.Generate(10000); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	b := g.Bounds()
	a, c, d := b[0].XY(), b[1].XY(), b[2].XY()
	for i, p := range rec.points {
		// Integer halving can leave a point up to two pixels off an edge; the
		// slack is scaled by the longest edge length.
		if !geometry.InTriangle(geometry.XY{X: p.X, Y: p.Y}, a, c, d, 2*560) {
			t.Fatalf("point %d (%v, %v) lies outside the triangle", i, p.X, p.Y)
		}
	}
}

func TestGenerateNeedsSource(t *testing.T) {
	g, err := New(500, nil, &recorder{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := g.Generate(1); !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
		t.Errorf("Generate() error = %v, want %v", err, errors.ErrCodeInvalidConfiguration)
	}
}

func TestGenerateFollowsRolls(t *testing.T) {
	rec := &recorder{}
	g, err := New(100, &rng.Sequence{Values: []int{5, 0, 3}}, rec)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := g.Generate(3); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Start (50, 50); bounds (50, 0), (0, 99), (99, 99).
	want := []plotted{
		{X: 74, Y: 74, C: Colors[2]},
		{X: 62, Y: 37, C: Colors[0]},
		{X: 31, Y: 68, C: Colors[1]},
	}
	for i := range want {
		if rec.points[i] != want[i] {
			t.Errorf("plot %d = %+v, want %+v", i, rec.points[i], want[i])
		}
	}
}
