package ports

// Line is an opaque handle to a drawn line, owned by the plotting adapter.
// Callers that know the concrete surface may type-assert it for further
// styling.
type Line any

// LineStyle carries pass-through styling for a drawn curve.
type LineStyle struct {
	Label string
	Width float64 // line width in points; 0 means the surface default
	Color string  // hex like "#1f77b4"; empty means the surface default
}

// PlotSurfacePort is a drawing surface that can render a right-continuous
// ("post") step line through equal-length x/y sequences. Errors from the
// underlying plotting library (e.g. mismatched lengths) are returned
// unchanged.
type PlotSurfacePort interface {
	StepLine(x, y []float64, style LineStyle) (Line, error)
}
