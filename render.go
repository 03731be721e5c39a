package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders one frame: background, bubbles, the vinyl record, and the
// visualizers for whatever track is active. During a rewind the decorative
// animations scrub backward instead while the ring follows the cue.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	if g.rewind.scrubbing() {
		for _, b := range g.bubbles {
			b.Rewind(screen, bubbleRewindSpeed)
		}
		g.vinyl.Rewind(screen)
		g.ring.Draw(screen, g.song)
		return
	}

	for _, b := range g.bubbles {
		b.Draw(screen)
	}
	g.vinyl.Draw(screen)

	if g.song.Playing() {
		g.drawVisualizers(screen)
	}

	if g.showingSolution && g.index < len(g.songs) {
		ebitenutil.DebugPrintAt(screen, g.songs[g.index].Name, sceneW/2-4*len(g.songs[g.index].Name), 100)
	}

	if *debugFlag {
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), tps))
	}
}

// drawVisualizers routes each visualizer to its lane: a two-lane track shows
// the base mix on the bars and the vocals on the ring, anything else feeds
// both.
func (g *Game) drawVisualizers(screen *ebiten.Image) {
	if pair, ok := g.song.(*pairTrack); ok {
		g.bars.Draw(screen, pair.Base())
		g.ring.Draw(screen, pair.Vocals())
		return
	}
	g.bars.Draw(screen, g.song)
	g.ring.Draw(screen, g.song)
}
