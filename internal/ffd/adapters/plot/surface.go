package plot

import (
	"fmt"
	"image/color"
	"io"

	"flare-frequency-service/internal/ffd/core/ports"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type SurfaceOptions struct {
	Title  string
	XLabel string
	YLabel string
	// FFDs are conventionally drawn on log-log axes.
	LogLog bool
	// Canvas size in points; zero means 600x400.
	Width  float64
	Height float64
}

// Surface draws step lines onto a gonum/plot canvas. It implements
// ports.PlotSurfacePort; the returned line handle is a *plotter.Line.
type Surface struct {
	p      *plot.Plot
	width  vg.Length
	height vg.Length
}

func NewSurface(opts SurfaceOptions) *Surface {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	if opts.LogLog {
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	width := opts.Width
	if width == 0 {
		width = 600
	}
	height := opts.Height
	if height == 0 {
		height = 400
	}

	return &Surface{
		p:      p,
		width:  vg.Points(width),
		height: vg.Points(height),
	}
}

var _ ports.PlotSurfacePort = (*Surface)(nil)

func (s *Surface) StepLine(x, y []float64, style ports.LineStyle) (ports.Line, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("step line: length mismatch: %d x values, %d y values", len(x), len(y))
	}

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}

	ln, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	ln.StepStyle = plotter.PostStep

	if style.Width > 0 {
		ln.LineStyle.Width = vg.Points(style.Width)
	}
	if style.Color != "" {
		c, err := parseHexColor(style.Color)
		if err != nil {
			return nil, err
		}
		ln.LineStyle.Color = c
	}

	s.p.Add(ln)
	if style.Label != "" {
		s.p.Legend.Add(style.Label, ln)
	}

	return ln, nil
}

// WriteSVG renders the surface as SVG.
func (s *Surface) WriteSVG(w io.Writer) error {
	wt, err := s.p.WriterTo(s.width, s.height, "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func parseHexColor(hex string) (color.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
