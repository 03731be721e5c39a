package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives the guessing rounds: it plays each song while the visualizers
// render it, reveals the solution on demand, and advances to the next round.
// Clicking the vinyl record rewinds the current song.
type Game struct {
	songs []songMeta
	index int

	song     Track
	solution Track

	ring *ringVisualizer
	bars *barVisualizer

	vinyl   *vinylSprite
	bubbles []*bubble
	rewind  *rewindController

	background color.RGBA
	foreground color.RGBA

	showingSolution bool

	levelRand *rand.Rand

	// onLevel is notified with the song name whenever a new round starts.
	onLevel func(name string)
}

// newGame loads the shared assets, builds the visualizers, and starts the
// first round. Asset or level load failures are fatal to construction.
func newGame(songs []songMeta, vinylPath, rewindCuePath string, onLevel func(string)) (*Game, error) {
	cue, err := loadTrack(rewindCuePath)
	if err != nil {
		return nil, fmt.Errorf("loading rewind cue: %w", err)
	}
	vinyl, err := loadVinyl(vinylPath, sceneW/2, sceneH/2)
	if err != nil {
		return nil, err
	}

	g := &Game{
		songs: songs,
		index: -1,
		song:  newNullTrack(),
		ring: newRingVisualizer(sceneW, sceneH, vizOptions{
			Bands:         ringBands,
			LineWidth:     ringLineWidth,
			MaxLineLength: ringMaxLineLength,
			BaseRadius:    ringBaseRadius,
			MaxRadius:     ringMaxRadius,
			SmoothFactor:  ringSmoothFactor,
			Speed:         ringSpeed,
			Color:         color.RGBA{255, 255, 255, 255},
		}),
		bars: newBarVisualizer(sceneW, sceneH, vizOptions{
			Bands:         barBands,
			LineWidth:     barLineWidth,
			Spacing:       barLineSpacing,
			MaxLineLength: barMaxLineLength,
			SmoothFactor:  barSmoothFactor,
			Color:         color.RGBA{255, 255, 255, 255},
		}),
		vinyl:      vinyl,
		rewind:     newRewindController(cue),
		background: color.RGBA{0, 0, 0, 255},
		foreground: color.RGBA{255, 255, 255, 255},
		levelRand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		onLevel:    onLevel,
	}
	if err := g.nextLevel(); err != nil {
		return nil, err
	}
	return g, nil
}

// Update handles input and the rewind sequence. Track state itself advances
// on the audio player's goroutine, not here.
func (g *Game) Update() error {
	if g.rewind.active {
		if g.rewind.scrubbing() {
			return nil // Draw keeps scrubbing the animations backward.
		}
		song, err := g.rewind.finish()
		if err != nil {
			return err
		}
		g.song = song
		return nil
	}

	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		if g.showingSolution {
			g.showingSolution = false
			return g.nextLevel()
		}
		g.showingSolution = true
		return g.changeSong(g.solution)
	}

	if !g.showingSolution && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		distance := math.Hypot(float64(x)-sceneW/2, float64(y)-sceneH/2)
		if distance < vinylSize {
			song, err := g.rewind.begin(g.song)
			if err != nil {
				return err
			}
			g.song = song
		}
	}

	return nil
}

// Layout reports the logical scene size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return sceneW, sceneH }

// changeSong stops the active track and starts the given one in its place.
func (g *Game) changeSong(song Track) error {
	g.song.Stop()
	g.song = song
	return g.song.Play()
}

// nextLevel loads the next round's tracks, replaces the current ones, and
// re-rolls the scene's colors and bubbles. Past the last round the game
// terminates.
func (g *Game) nextLevel() error {
	g.index++
	if g.index >= len(g.songs) {
		g.song.Stop()
		log.Printf("End of song game")
		return ebiten.Termination
	}
	meta := g.songs[g.index]
	if g.onLevel != nil {
		g.onLevel(meta.Name)
	}

	var next Track
	var err error
	if meta.Vocals != "" {
		next, err = loadPairTrack(meta.Base, meta.Vocals)
	} else {
		next, err = loadTrack(meta.Base)
	}
	if err != nil {
		return fmt.Errorf("loading round %d (%s): %w", g.index, meta.Name, err)
	}
	solution, err := loadTrack(meta.Solution)
	if err != nil {
		return fmt.Errorf("loading round %d solution (%s): %w", g.index, meta.Name, err)
	}
	g.solution = solution
	if err := g.changeSong(next); err != nil {
		return err
	}

	g.background, g.foreground = randomColors(g.levelRand)
	g.ring.SetColor(g.foreground)
	g.bars.SetColor(g.foreground)
	g.bubbles = newRandomBubbles(bubbleCount, sceneW, sceneH, g.levelRand)
	for _, b := range g.bubbles {
		b.SetColor(g.foreground)
	}
	return nil
}

// randomColors picks a random dark background and its complement for the
// foreground.
func randomColors(rng *rand.Rand) (bg, fg color.RGBA) {
	bg = color.RGBA{uint8(rng.Intn(100)), uint8(rng.Intn(100)), uint8(rng.Intn(100)), 255}
	fg = color.RGBA{255 - bg.R, 255 - bg.G, 255 - bg.B, 255}
	return bg, fg
}
