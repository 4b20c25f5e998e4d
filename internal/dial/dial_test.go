package dial

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/dialtimer/internal/timer"
)

func countKinds(grid [][]Cell) map[Kind]int {
	counts := make(map[Kind]int)
	for _, row := range grid {
		for _, cell := range row {
			counts[cell.Kind]++
		}
	}
	return counts
}

func rowText(row []Cell) string {
	var b strings.Builder
	for _, cell := range row {
		b.WriteString(cell.Text)
	}
	return b.String()
}

func TestNormalizeRows(t *testing.T) {
	cases := map[int]int{0: 13, 13: 13, 14: 13, 21: 21, 22: 21, 100: 31}
	for in, want := range cases {
		if got := NormalizeRows(in); got != want {
			t.Fatalf("NormalizeRows(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestGridDimensions(t *testing.T) {
	grid := Grid(timer.DefaultSnapshot(), 21)
	if len(grid) != 21 {
		t.Fatalf("expected 21 rows, got %d", len(grid))
	}
	for i, row := range grid {
		if len(row) != 43 {
			t.Fatalf("row %d: expected 43 cols, got %d", i, len(row))
		}
	}
}

func TestGridFullDialIsAllArc(t *testing.T) {
	counts := countKinds(Grid(timer.DefaultSnapshot(), 21))
	if counts[KindArc] == 0 {
		t.Fatalf("expected arc cells for a full 60 minute timer")
	}
	if counts[KindTrack] != 0 {
		t.Fatalf("expected no track cells, got %d", counts[KindTrack])
	}
}

func TestGridEmptyArcWhenDone(t *testing.T) {
	s := timer.Snapshot{Minutes: 25, Remaining: 0, State: timer.Idle}
	counts := countKinds(Grid(s, 21))
	if counts[KindArc] != 0 {
		t.Fatalf("expected no arc cells, got %d", counts[KindArc])
	}
	if counts[KindTrack] == 0 {
		t.Fatalf("expected the track to remain visible")
	}
}

func TestGridArcProportionalToFraction(t *testing.T) {
	full := countKinds(Grid(timer.DefaultSnapshot(), 21))
	ring := full[KindArc]

	half := countKinds(Grid(timer.Snapshot{Minutes: 30, Remaining: 1800}, 21))
	if half[KindArc]+half[KindTrack] != ring {
		t.Fatalf("ring size changed: %d vs %d", half[KindArc]+half[KindTrack], ring)
	}
	ratio := float64(half[KindArc]) / float64(ring)
	if ratio < 0.4 || ratio > 0.6 {
		t.Fatalf("expected roughly half the ring painted, got %.2f", ratio)
	}

	quarter := countKinds(Grid(timer.Snapshot{Minutes: 30, Remaining: 900}, 21))
	ratio = float64(quarter[KindArc]) / float64(ring)
	if ratio < 0.15 || ratio > 0.35 {
		t.Fatalf("expected roughly a quarter of the ring painted, got %.2f", ratio)
	}
}

func TestGridArcStartsAtTwelveClockwise(t *testing.T) {
	grid := Grid(timer.Snapshot{Minutes: 15, Remaining: 900}, 21)
	l := newLayout(21)
	for r, row := range grid {
		for c, cell := range row {
			if cell.Kind != KindArc {
				continue
			}
			if c < l.cx || r > l.cy {
				t.Fatalf("arc cell at row %d col %d outside the first quadrant", r, c)
			}
		}
	}
}

func TestGridLabelsAndTicks(t *testing.T) {
	grid := Grid(timer.DefaultSnapshot(), 21)
	if top := strings.TrimSpace(rowText(grid[0])); top != "0" {
		t.Fatalf("expected 0 label at 12 o'clock, got %q", top)
	}
	if bottom := strings.TrimSpace(rowText(grid[len(grid)-1])); bottom != "30" {
		t.Fatalf("expected 30 label at 6 o'clock, got %q", bottom)
	}
	middle := rowText(grid[10])
	if !strings.HasPrefix(middle, "45") || !strings.HasSuffix(strings.TrimRight(middle, " "), "15") {
		t.Fatalf("expected 45 and 15 labels on the centre row, got %q", middle)
	}

	counts := countKinds(grid)
	if counts[KindTick] == 0 {
		t.Fatalf("expected minute tick marks")
	}
	if counts[KindLabel] < 12 {
		t.Fatalf("expected at least 12 label cells, got %d", counts[KindLabel])
	}
}

func TestGridReadoutAndCaption(t *testing.T) {
	s := timer.Snapshot{Minutes: 25, Remaining: 125, State: timer.Running}
	grid := Grid(s, 13)
	l := newLayout(13)
	if !strings.Contains(rowText(grid[l.cy]), "02:05") {
		t.Fatalf("expected readout on centre row, got %q", rowText(grid[l.cy]))
	}
	if !strings.Contains(rowText(grid[l.cy+1]), "25 Min") {
		t.Fatalf("expected caption under readout, got %q", rowText(grid[l.cy+1]))
	}
	if Caption(s) != "25 Min" {
		t.Fatalf("unexpected caption %q", Caption(s))
	}
}

func TestRenderContainsReadout(t *testing.T) {
	out := Render(timer.DefaultSnapshot(), Options{Rows: 21})
	if !strings.Contains(out, "60:00") {
		t.Fatalf("expected readout in rendered dial")
	}
	if lines := strings.Count(out, "\n") + 1; lines != 21 {
		t.Fatalf("expected 21 lines, got %d", lines)
	}
}
