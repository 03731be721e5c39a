package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bubble is a decorative particle that drifts, grows, and fades over its
// lifespan, then waits out a downtime before cycling again. Its whole
// timeline is indexed by a frame counter, so it can be stepped forward one
// frame at a time or scrubbed backward several frames at once.
type bubble struct {
	color    color.RGBA
	x, y     float64
	vx, vy   float64
	growth   float64
	lifespan int
	downtime int
	maxAlpha float64
	index    int
}

// newRandomBubbles generates n bubbles with randomized position, drift,
// growth, lifespan, downtime, and opacity, each starting at a random point
// of its cycle.
func newRandomBubbles(n, width, height int, rng *rand.Rand) []*bubble {
	bubbles := make([]*bubble, n)
	for i := range bubbles {
		b := &bubble{
			color:    color.RGBA{255, 255, 255, 255},
			x:        float64(rng.Intn(width)),
			y:        float64(rng.Intn(height)),
			vx:       rng.Float64()*6 - 3,
			vy:       rng.Float64()*6 - 3,
			growth:   rng.Float64()*2 + 1,
			lifespan: 100 + rng.Intn(101),
			downtime: 600 + rng.Intn(601),
			maxAlpha: float64(1 + rng.Intn(100)),
		}
		b.index = rng.Intn(b.period())
		bubbles[i] = b
	}
	return bubbles
}

func (b *bubble) period() int { return b.lifespan + b.downtime }

// SetColor changes the bubble's base color; alpha still fades per frame.
func (b *bubble) SetColor(c color.RGBA) { b.color = c }

// Draw renders the current frame and advances the timeline by one.
func (b *bubble) Draw(dst *ebiten.Image) {
	b.draw(dst)
	b.index = (b.index + 1) % b.period()
}

// Rewind steps the timeline back the given number of frames and renders the
// resulting frame.
func (b *bubble) Rewind(dst *ebiten.Image, frames int) {
	p := b.period()
	b.index = ((b.index-frames)%p + p) % p
	b.draw(dst)
}

func (b *bubble) draw(dst *ebiten.Image) {
	if b.index >= b.lifespan {
		return // downtime
	}
	radius := b.growth * float64(b.index)
	if radius < 1 {
		return
	}
	alpha := b.maxAlpha * (1 - float64(b.index)/float64(b.lifespan))
	a := alpha / 255
	clr := color.RGBA{
		R: uint8(float64(b.color.R) * a),
		G: uint8(float64(b.color.G) * a),
		B: uint8(float64(b.color.B) * a),
		A: uint8(alpha),
	}
	px := b.x + b.vx*float64(b.index)
	py := b.y + b.vy*float64(b.index)
	vector.DrawFilledCircle(dst, float32(px), float32(py), float32(radius), clr, true)
}
