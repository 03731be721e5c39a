package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// barVisualizer draws the spectrum as two mirrored bar graphs growing from
// the left and right edges toward the center, anchored just above the bottom
// of the scene.
type barVisualizer struct {
	visualizer
	xLeft  []float32
	xRight []float32
	baseY  float32
}

func newBarVisualizer(width, height int, opts vizOptions) *barVisualizer {
	b := &barVisualizer{
		visualizer: newVisualizer(width, height, opts),
		baseY:      float32(height) - opts.LineWidth,
	}
	pitch := opts.LineWidth + opts.Spacing
	for i := 0; i < opts.Bands; i++ {
		offset := pitch + float32(i)*pitch
		b.xLeft = append(b.xLeft, offset)
		b.xRight = append(b.xRight, float32(width)-offset)
	}
	return b
}

// Draw reads the track once, updates the smoothed spectrum, and strokes one
// vertical bar per band on each side.
func (b *barVisualizer) Draw(dst *ebiten.Image, t Track) {
	b.observeSpectrum(t)

	for i := 0; i < b.bands; i++ {
		top := b.baseY - float32(b.spectrum[i])
		vector.StrokeLine(dst, b.xLeft[i], b.baseY, b.xLeft[i], top, b.lineWidth, b.color, true)
		vector.StrokeLine(dst, b.xRight[i], b.baseY, b.xRight[i], top, b.lineWidth, b.color, true)
	}
}
