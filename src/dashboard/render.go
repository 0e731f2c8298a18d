package dashboard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/chrisangelothomas/OpenLCH/src/config"
	"github.com/chrisangelothomas/OpenLCH/src/series"
	"github.com/chrisangelothomas/OpenLCH/src/telemetry"
)

func solidStyle(col drawing.Color) chart.Style {
	return chart.Style{StrokeColor: col, StrokeWidth: 1.5}
}

func dashedStyle(col drawing.Color) chart.Style {
	return chart.Style{StrokeColor: col, StrokeWidth: 1.5, StrokeDashArray: []float64{4.0, 3.0}}
}

// transparent stroke: the series registers with the layout engine without
// drawing anything. Used to anchor the secondary degree axis.
var anchorStyle = chart.Style{StrokeColor: drawing.Color{R: 1, G: 1, B: 1, A: 0}, StrokeWidth: 1}

// padSingle duplicates a lone point slightly later in time. go-chart refuses
// series with fewer than two points.
func padSingle(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1e-3}, []float64{ys[0], ys[0]}
}

// frequencySeries flattens the frequency buffer into plottable x/y slices.
func frequencySeries(r *series.Rolling) ([]float64, []float64) {
	pts := r.Points()
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.T
		ys[i] = p.V
	}
	return xs, ys
}

// RenderFrequencyChart draws the inference-rate panel: a single line over the
// window, a dashed reference line, and a fixed 0..FrequencyYMax scale.
// Returns nil when the buffer is empty so the caller can skip the redraw.
func RenderFrequencyChart(r *series.Rolling, now float64, cfg *config.Config, w, h int, readout bool) image.Image {
	if r.Len() == 0 {
		return nil
	}
	window := cfg.Window.Seconds()
	xs, ys := padSingle(frequencySeries(r))

	ch := chart.Chart{
		Title:      "Inference Speed Over Time",
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  "Time",
			Range: &chart.ContinuousRange{Min: now - window, Max: now},
			Ticks: timeTicks(now, window, 5),
		},
		YAxis: chart.YAxis{
			Name:  "Hz",
			Range: &chart.ContinuousRange{Min: 0, Max: cfg.FrequencyYMax},
			Ticks: valueTicks(0, cfg.FrequencyYMax, 7),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("%.0f Hz Reference", cfg.ReferenceHz),
				XValues: []float64{now - window, now},
				YValues: []float64{cfg.ReferenceHz, cfg.ReferenceHz},
				Style:   dashedStyle(chart.ColorRed),
			},
			chart.ContinuousSeries{
				Name:    "Actual Frequency",
				XValues: xs,
				YValues: ys,
				Style:   solidStyle(chart.ColorBlue),
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	img := renderPNG(ch, "frequency", w, h)
	if readout {
		if last, ok := r.Last(); ok {
			img = drawReadout(img, fmt.Sprintf("%.1f Hz", last.V))
		}
	}
	return img
}

// RenderPositionChart draws per-joint actual (solid) and desired (dashed)
// positions with a tight radian range and a synchronized degree axis.
// Returns nil when the buffers are empty.
func RenderPositionChart(actual, desired *series.VectorRolling, now float64, cfg *config.Config, w, h int) image.Image {
	if actual.Len() == 0 {
		return nil
	}
	window := cfg.Window.Seconds()

	aMin, aMax, _ := actual.MinMax()
	dMin, dMax, haveDesired := desired.MinMax()
	lo, hi := aMin, aMax
	if haveDesired {
		if dMin < lo {
			lo = dMin
		}
		if dMax > hi {
			hi = dMax
		}
	}
	lo, hi = jointAxisRange(lo, hi)

	joints := telemetry.Joints()
	ts := actual.Times()
	ss := make([]chart.Series, 0, 2*telemetry.NumJoints+1)
	for i, j := range joints {
		xs, ys := padSingle(ts, actual.Column(i))
		ss = append(ss, chart.ContinuousSeries{
			Name: j.Name, XValues: xs, YValues: ys, Style: solidStyle(j.Color),
		})
		if desired.Len() == actual.Len() {
			dxs, dys := padSingle(ts, desired.Column(i))
			ss = append(ss, chart.ContinuousSeries{
				XValues: dxs, YValues: dys, Style: dashedStyle(j.Color),
			})
		}
	}
	ss = append(ss, degreeAnchor(now, window, lo, hi))

	ch := chart.Chart{
		Title:      "Joint Positions Over Time",
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28 + legendHeight()}},
		XAxis: chart.XAxis{
			Name:  "Time",
			Range: &chart.ContinuousRange{Min: now - window, Max: now},
			Ticks: timeTicks(now, window, 5),
		},
		YAxis: chart.YAxis{
			Name:  "rad",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks: valueTicks(lo, hi, 5),
		},
		YAxisSecondary: degreeAxis(lo, hi),
		Series:         ss,
	}
	return drawJointLegend(renderPNG(ch, "positions", w, h), joints)
}

// RenderVelocityChart draws per-joint angular rates with the same dual
// radian/degree axis treatment. Returns nil when the buffer is empty.
func RenderVelocityChart(vel *series.VectorRolling, now float64, cfg *config.Config, w, h int) image.Image {
	if vel.Len() == 0 {
		return nil
	}
	window := cfg.Window.Seconds()

	lo, hi, _ := vel.MinMax()
	lo, hi = jointAxisRange(lo, hi)

	joints := telemetry.Joints()
	ts := vel.Times()
	ss := make([]chart.Series, 0, telemetry.NumJoints+1)
	for i, j := range joints {
		xs, ys := padSingle(ts, vel.Column(i))
		ss = append(ss, chart.ContinuousSeries{
			Name: j.Name, XValues: xs, YValues: ys, Style: solidStyle(j.Color),
		})
	}
	ss = append(ss, degreeAnchor(now, window, lo, hi))

	ch := chart.Chart{
		Title:      "Joint Velocities Over Time",
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28 + legendHeight()}},
		XAxis: chart.XAxis{
			Name:  "Time",
			Range: &chart.ContinuousRange{Min: now - window, Max: now},
			Ticks: timeTicks(now, window, 5),
		},
		YAxis: chart.YAxis{
			Name:  "rad/s",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks: valueTicks(lo, hi, 5),
		},
		YAxisSecondary: degreeAxis(lo, hi),
		Series:         ss,
	}
	return drawJointLegend(renderPNG(ch, "velocities", w, h), joints)
}

// degreeAxis expresses the radian range [lo, hi] in degrees. The range is the
// radian range scaled by 180/pi at every redraw, so both scales describe the
// same pixels. Ticks stay implicit: with explicit ticks here, go-chart sizes
// the secondary range from the primary axis ticks instead, which maps the
// degree-valued points far off canvas and stalls rasterization.
func degreeAxis(lo, hi float64) chart.YAxis {
	return chart.YAxis{
		Name:  "deg",
		Range: &chart.ContinuousRange{Min: rad2deg(lo), Max: rad2deg(hi)},
	}
}

// degreeAnchor is an invisible two-point series bound to the secondary axis;
// go-chart only lays out an axis that has at least one series on it.
func degreeAnchor(now, window, lo, hi float64) chart.Series {
	return chart.ContinuousSeries{
		YAxis:   chart.YAxisSecondary,
		XValues: []float64{now - window, now},
		YValues: []float64{rad2deg(lo), rad2deg(hi)},
		Style:   anchorStyle,
	}
}

// renderPNG rasterizes a chart, falling back to a blank panel on error so the
// UI still visibly updates.
func renderPNG(ch chart.Chart, label string, w, h int) image.Image {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		telemetry.Errorf("%s chart render: %v; showing blank panel", label, err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		telemetry.Errorf("%s chart decode: %v; showing blank panel", label, err)
		return blank(w, h)
	}
	return img
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

const (
	legendPerRow    = 5
	legendRowHeight = 16
)

// legendHeight is the bottom band reserved for the joint legend.
func legendHeight() int {
	rows := (telemetry.NumJoints + legendPerRow - 1) / legendPerRow
	return rows*legendRowHeight + 6
}

// drawJointLegend paints a color swatch and name for every joint into the
// band below the plot area. go-chart's built-in legend lists every series,
// which would double the entries with the unnamed dashed lines, so the joint
// charts carry their own.
func drawJointLegend(img image.Image, joints [telemetry.NumJoints]telemetry.Joint) image.Image {
	if img == nil {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 51, G: 51, B: 51, A: 255})
	colW := b.Dx() / legendPerRow
	top := b.Max.Y - legendHeight()
	for i, j := range joints {
		row, col := i/legendPerRow, i%legendPerRow
		x := b.Min.X + col*colW + 16
		y := top + row*legendRowHeight + face.Metrics().Ascent.Ceil()
		swatch := image.NewUniform(color.RGBA{R: j.Color.R, G: j.Color.G, B: j.Color.B, A: 255})
		draw.Draw(rgba, image.Rect(x, y-5, x+12, y-2), swatch, image.Point{}, draw.Src)
		d := &font.Drawer{Dst: rgba, Src: textCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 17), Y: fixed.I(y)}}
		d.DrawString(j.Name)
	}
	return rgba
}

// drawReadout stamps a small status string onto the bottom-left of a chart
// image, with a dark backing box and a drop shadow for contrast.
func drawReadout(img image.Image, text string) image.Image {
	if img == nil || text == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{A: 180})
	drawer := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := drawer.MeasureString(text).Ceil()

	const pad = 6
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)

	shadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	shadow.DrawString(text)
	drawer.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	drawer.DrawString(text)
	return rgba
}
