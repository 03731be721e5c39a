package main

import "image/color"

// vizOptions is the numeric configuration shared by the visualizers. Options
// not used by a particular visualizer are ignored by it.
type vizOptions struct {
	Bands         int
	LineWidth     float32
	Spacing       float32
	MaxLineLength float64
	BaseRadius    float64
	MaxRadius     float64
	SmoothFactor  float64
	Speed         float64
	Color         color.RGBA
}

// visualizer holds the state shared by both spectrum renderers: target
// surface geometry, line parameters, and the exponentially smoothed per-band
// spectrum persisting across frames.
type visualizer struct {
	width, height float64
	bands         int
	lineWidth     float32
	maxLineLength float64
	smooth        float64
	color         color.RGBA
	spectrum      []float64
}

func newVisualizer(width, height int, opts vizOptions) visualizer {
	return visualizer{
		width:         float64(width),
		height:        float64(height),
		bands:         opts.Bands,
		lineWidth:     opts.LineWidth,
		maxLineLength: opts.MaxLineLength,
		smooth:        opts.SmoothFactor,
		color:         opts.Color,
		spectrum:      make([]float64, opts.Bands),
	}
}

// observeSpectrum folds the track's current spectrum into the smoothed
// per-band state. Bands beyond the track's spectrum length observe zero.
func (v *visualizer) observeSpectrum(t Track) {
	raw := t.CurrentSpectrum()
	for i := range v.spectrum {
		var s float64
		if i < len(raw) {
			s = raw[i]
		}
		v.spectrum[i] = s*v.maxLineLength*(1-v.smooth) + v.spectrum[i]*v.smooth
	}
}

// SetColor changes the draw color; the smoothing state is unaffected.
func (v *visualizer) SetColor(c color.RGBA) { v.color = c }
