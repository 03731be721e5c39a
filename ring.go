package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ringVisualizer draws the spectrum as a rotating ring of lines centered on
// the scene. Each band's line straddles a base circle whose radius swells
// with the track's smoothed power; the rotation advances at a fixed angular
// speed independent of the audio, so the ring keeps turning even over
// silence.
type ringVisualizer struct {
	visualizer
	baseRadius float64
	maxRadius  float64
	speed      float64
	rotation   float64
	power      float64
}

func newRingVisualizer(width, height int, opts vizOptions) *ringVisualizer {
	return &ringVisualizer{
		visualizer: newVisualizer(width, height, opts),
		baseRadius: opts.BaseRadius,
		maxRadius:  opts.MaxRadius,
		speed:      opts.Speed,
	}
}

// observe advances the rotation and folds the track's power and spectrum
// into the smoothed state.
func (r *ringVisualizer) observe(t Track) {
	r.rotation = math.Mod(r.rotation+r.speed, 2*math.Pi)
	r.observeSpectrum(t)
	r.power = t.CurrentPower()*(1-r.smooth) + r.power*r.smooth
}

// radius is the base circle radius for the current frame, swollen toward
// maxRadius by the smoothed power.
func (r *ringVisualizer) radius() float64 {
	return r.baseRadius + (r.maxRadius-r.baseRadius)*r.power
}

// Draw reads the track once, updates the smoothed state, and strokes one
// line per band.
func (r *ringVisualizer) Draw(dst *ebiten.Image, t Track) {
	r.observe(t)

	radius := r.radius()
	cx := r.width / 2
	cy := r.height / 2
	step := 2 * math.Pi / float64(r.bands)
	for i := 0; i < r.bands; i++ {
		angle := r.rotation + step*float64(i)
		ux := math.Cos(angle)
		uy := math.Sin(angle)
		amp := r.spectrum[i]
		vector.StrokeLine(dst,
			float32(cx+ux*(radius+amp)), float32(cy+uy*(radius+amp)),
			float32(cx+ux*(radius-amp)), float32(cy+uy*(radius-amp)),
			r.lineWidth, r.color, true)
	}
}
