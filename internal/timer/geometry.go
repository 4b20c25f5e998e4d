package timer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

// Arc describes the progress arc for one state of the timer. Lengths are in
// the same units as Radius.
type Arc struct {
	Radius        float64
	Circumference float64
	// TimeRatio is the share of the 60-minute dial the configured duration
	// covers.
	TimeRatio float64
	// MaxLength is the arc length of a full configured duration.
	MaxLength float64
	// Progress is remaining/total, in [0,1].
	Progress float64
	// Drawn is the arc length currently painted.
	Drawn float64
	// Gap is the unpainted remainder of the circumference.
	Gap float64
}

// ArcGeometry maps a configured duration and remaining seconds onto the
// dial. Out-of-range inputs are clamped first.
func ArcGeometry(minutes, remaining int) Arc {
	minutes = ClampMinutes(minutes)
	total := minutes * 60
	remaining = util.Clamp(remaining, 0, total)

	circumference := 2 * math.Pi * config.ArcRadius
	timeRatio := float64(minutes) / config.FullScaleMinutes
	maxLength := circumference * timeRatio
	progress := float64(remaining) / float64(total)
	drawn := maxLength * progress

	return Arc{
		Radius:        config.ArcRadius,
		Circumference: circumference,
		TimeRatio:     timeRatio,
		MaxLength:     maxLength,
		Progress:      progress,
		Drawn:         drawn,
		Gap:           circumference - drawn,
	}
}

// Fraction is the drawn arc as a share of a full turn.
func (a Arc) Fraction() float64 {
	if a.Circumference <= 0 {
		return 0
	}
	return util.ClampFloat(a.Drawn/a.Circumference, 0, 1)
}

// DashArray renders the arc as an SVG stroke-dasharray value.
func (a Arc) DashArray() string {
	return fmt.Sprintf("%g %g", a.Drawn, a.Gap)
}

// DialMark is one minute position on the dial face.
type DialMark struct {
	Position int
	// Angle in degrees, clockwise from 12 o'clock.
	Angle   float64
	Labeled bool
}

// Label is the numeric label for labelled marks and "" otherwise.
func (m DialMark) Label() string {
	if !m.Labeled {
		return ""
	}
	return strconv.Itoa(m.Position)
}

// Point places the mark on a circle of radius r centred on (cx, cy), in
// screen coordinates where y grows downward.
func (m DialMark) Point(cx, cy, r float64) (float64, float64) {
	rad := m.Angle * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

// DialMarks lists the 60 minute positions starting at 12 o'clock.
func DialMarks() []DialMark {
	step := 360.0 / config.DialPositions
	marks := make([]DialMark, 0, config.DialPositions)
	for i := 0; i < config.DialPositions; i++ {
		marks = append(marks, DialMark{
			Position: i,
			Angle:    float64(i) * step,
			Labeled:  i%config.LabelEvery == 0,
		})
	}
	return marks
}
