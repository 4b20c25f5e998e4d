// Package dial rasterises the timer dial into terminal cells.
//
// The grid uses two columns per row unit so the circle looks round in a
// typical terminal font. Angles run clockwise from 12 o'clock.
package dial

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/timer"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

// Kind classifies a grid cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindTrack
	KindArc
	KindTick
	KindLabel
	KindTime
	KindCaption
)

const (
	arcGlyph   = "█"
	trackGlyph = "░"
	tickGlyph  = "·"
)

// Cell is one terminal cell of the dial.
type Cell struct {
	Kind Kind
	Text string
}

// Palette styles each kind of cell.
type Palette struct {
	Arc     lipgloss.Style
	Track   lipgloss.Style
	Tick    lipgloss.Style
	Label   lipgloss.Style
	Time    lipgloss.Style
	Caption lipgloss.Style
}

// Options controls rendering.
type Options struct {
	// Rows is the dial height. It is clamped and rounded down to an odd
	// number so the centre falls on a row.
	Rows    int
	Palette Palette
}

type layout struct {
	rows, cols  int
	cx, cy      int
	labelRadius float64
	ringRadius  float64
	tickRadius  float64
}

func newLayout(rows int) layout {
	rows = NormalizeRows(rows)
	labelRadius := float64(rows-1) / 2
	return layout{
		rows:        rows,
		cols:        2*rows + 1,
		cx:          rows,
		cy:          (rows - 1) / 2,
		labelRadius: labelRadius,
		ringRadius:  labelRadius - 2,
		tickRadius:  labelRadius - 3,
	}
}

// NormalizeRows clamps rows to the supported range and makes it odd.
func NormalizeRows(rows int) int {
	rows = util.Clamp(rows, config.MinDialRows, config.MaxDialRows)
	if rows%2 == 0 {
		rows--
	}
	return rows
}

// Caption is the line shown under the time readout.
func Caption(s timer.Snapshot) string {
	return fmt.Sprintf("%d Min", s.Minutes)
}

// Grid lays out the dial for s without styling.
func Grid(s timer.Snapshot, rows int) [][]Cell {
	l := newLayout(rows)
	grid := make([][]Cell, l.rows)
	for r := range grid {
		grid[r] = make([]Cell, l.cols)
		for c := range grid[r] {
			grid[r][c] = Cell{Kind: KindEmpty, Text: " "}
		}
	}

	fraction := s.Arc().Fraction()
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			dx := float64(c-l.cx) / 2
			dy := float64(r - l.cy)
			if math.Abs(math.Hypot(dx, dy)-l.ringRadius) >= 0.5 {
				continue
			}
			if cellFraction(dx, dy) < fraction {
				grid[r][c] = Cell{Kind: KindArc, Text: arcGlyph}
			} else {
				grid[r][c] = Cell{Kind: KindTrack, Text: trackGlyph}
			}
		}
	}

	vx := float64(l.cx) / 2
	vy := float64(l.cy)
	for _, mark := range timer.DialMarks() {
		if mark.Labeled {
			x, y := mark.Point(vx, vy, l.labelRadius)
			col, row := int(math.Round(x*2)), int(math.Round(y))
			label := mark.Label()
			place(grid, row, col-len(label)/2, label, KindLabel)
			continue
		}
		x, y := mark.Point(vx, vy, l.tickRadius)
		col, row := int(math.Round(x*2)), int(math.Round(y))
		if inBounds(grid, row, col) && grid[row][col].Kind == KindEmpty {
			grid[row][col] = Cell{Kind: KindTick, Text: tickGlyph}
		}
	}

	readout := s.FormattedTime()
	place(grid, l.cy, l.cx-len(readout)/2, readout, KindTime)
	caption := Caption(s)
	place(grid, l.cy+1, l.cx-len(caption)/2, caption, KindCaption)
	return grid
}

// cellFraction is the clockwise share of a turn from 12 o'clock to the
// point (dx, dy), with dy growing downward.
func cellFraction(dx, dy float64) float64 {
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle / (2 * math.Pi)
}

func place(grid [][]Cell, row, col int, text string, kind Kind) {
	for i, r := range text {
		if inBounds(grid, row, col+i) {
			grid[row][col+i] = Cell{Kind: kind, Text: string(r)}
		}
	}
}

func inBounds(grid [][]Cell, row, col int) bool {
	return row >= 0 && row < len(grid) && col >= 0 && col < len(grid[row])
}

// Render draws the dial for s as styled text.
func Render(s timer.Snapshot, opts Options) string {
	grid := Grid(s, opts.Rows)
	lines := make([]string, 0, len(grid))
	for _, row := range grid {
		lines = append(lines, renderRow(row, opts.Palette))
	}
	return strings.Join(lines, "\n")
}

// renderRow styles runs of same-kind cells together to keep escape codes
// short.
func renderRow(row []Cell, p Palette) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].Kind == row[start].Kind {
			continue
		}
		var run strings.Builder
		for _, cell := range row[start:i] {
			run.WriteString(cell.Text)
		}
		b.WriteString(styleFor(row[start].Kind, p).Render(run.String()))
		start = i
	}
	return b.String()
}

func styleFor(kind Kind, p Palette) lipgloss.Style {
	switch kind {
	case KindArc:
		return p.Arc
	case KindTrack:
		return p.Track
	case KindTick:
		return p.Tick
	case KindLabel:
		return p.Label
	case KindTime:
		return p.Time
	case KindCaption:
		return p.Caption
	default:
		return lipgloss.NewStyle()
	}
}
