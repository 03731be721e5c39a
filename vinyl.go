package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// vinylSprite is the record image spinning at the center of the scene. It
// turns forward a fixed amount each drawn frame and scrubs backward at a
// faster rate while a rewind is in progress.
type vinylSprite struct {
	image  *ebiten.Image
	scale  float64
	angle  float64 // degrees
	cx, cy float64
}

func loadVinyl(path string, cx, cy float64) (*vinylSprite, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading vinyl image %q: %w", path, err)
	}
	bounds := img.Bounds()
	side := bounds.Dx()
	if bounds.Dy() > side {
		side = bounds.Dy()
	}
	return &vinylSprite{
		image: img,
		scale: vinylSize / float64(side),
		cx:    cx,
		cy:    cy,
	}, nil
}

// Draw renders the record and advances the rotation one step forward.
func (v *vinylSprite) Draw(dst *ebiten.Image) {
	v.angle = math.Mod(v.angle+vinylSpeed, 360)
	v.blit(dst)
}

// Rewind renders the record and steps the rotation backward at the rewind
// scrub rate.
func (v *vinylSprite) Rewind(dst *ebiten.Image) {
	v.angle = math.Mod(v.angle-vinylRewindSpeed+360, 360)
	v.blit(dst)
}

func (v *vinylSprite) blit(dst *ebiten.Image) {
	bounds := v.image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(v.scale, v.scale)
	op.GeoM.Rotate(v.angle * math.Pi / 180)
	op.GeoM.Translate(v.cx, v.cy)
	dst.DrawImage(v.image, op)
}
