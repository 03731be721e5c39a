package main

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarVisualizerWithoutSmoothing(t *testing.T) {
	bars := newBarVisualizer(sceneW, sceneH, vizOptions{
		Bands:         4,
		LineWidth:     5,
		Spacing:       1,
		MaxLineLength: 10,
		SmoothFactor:  0,
	})
	track := &fakeTrack{spectrum: []float64{1, 0, 1, 0}}

	bars.observeSpectrum(track)

	assert.Equal(t, []float64{10, 0, 10, 0}, bars.spectrum)
}

func TestBarLayoutIsMirrored(t *testing.T) {
	bars := newBarVisualizer(sceneW, sceneH, vizOptions{
		Bands:     8,
		LineWidth: 7,
		Spacing:   5,
	})

	for i := range bars.xLeft {
		assert.InDelta(t, float64(sceneW), float64(bars.xLeft[i]+bars.xRight[i]), 1e-3)
	}
}

func TestSpectrumSmoothingKeepsInertia(t *testing.T) {
	v := newVisualizer(sceneW, sceneH, vizOptions{
		Bands:         1,
		MaxLineLength: 10,
		SmoothFactor:  0.5,
	})
	track := &fakeTrack{spectrum: []float64{1}}

	v.observeSpectrum(track)
	assert.InDelta(t, 5.0, v.spectrum[0], 1e-9)

	track.spectrum = []float64{0}
	v.observeSpectrum(track)
	assert.InDelta(t, 2.5, v.spectrum[0], 1e-9)
}

func TestSpectrumShorterThanBandsReadsZero(t *testing.T) {
	v := newVisualizer(sceneW, sceneH, vizOptions{
		Bands:         4,
		MaxLineLength: 10,
		SmoothFactor:  0,
	})
	track := &fakeTrack{spectrum: []float64{1}}

	v.observeSpectrum(track)

	assert.Equal(t, []float64{10, 0, 0, 0}, v.spectrum)
}

func TestRingRadiusTracksPower(t *testing.T) {
	ring := newRingVisualizer(sceneW, sceneH, vizOptions{
		Bands:        4,
		BaseRadius:   100,
		MaxRadius:    200,
		SmoothFactor: 0,
	})

	ring.observe(&fakeTrack{power: 1, spectrum: []float64{0, 0, 0, 0}})
	assert.InDelta(t, 200.0, ring.radius(), 1e-9)

	ring.observe(&fakeTrack{power: 0, spectrum: []float64{0, 0, 0, 0}})
	assert.InDelta(t, 100.0, ring.radius(), 1e-9)
}

func TestRingRadiusSmoothsPower(t *testing.T) {
	ring := newRingVisualizer(sceneW, sceneH, vizOptions{
		Bands:        1,
		BaseRadius:   100,
		MaxRadius:    200,
		SmoothFactor: 0.5,
	})

	ring.observe(&fakeTrack{power: 1, spectrum: []float64{0}})
	assert.InDelta(t, 150.0, ring.radius(), 1e-9)
}

func TestRingRotationAdvancesAndWraps(t *testing.T) {
	ring := newRingVisualizer(sceneW, sceneH, vizOptions{
		Bands: 1,
		Speed: math.Pi,
	})
	track := &fakeTrack{spectrum: []float64{0}}

	ring.observe(track)
	assert.InDelta(t, math.Pi, ring.rotation, 1e-9)

	ring.observe(track)
	assert.InDelta(t, 0.0, ring.rotation, 1e-9) // wrapped past 2*pi

	ring.observe(track)
	assert.InDelta(t, math.Pi, ring.rotation, 1e-9)
}

func TestSetColorLeavesStateAlone(t *testing.T) {
	v := newVisualizer(sceneW, sceneH, vizOptions{
		Bands:         2,
		MaxLineLength: 10,
		SmoothFactor:  0,
	})
	v.observeSpectrum(&fakeTrack{spectrum: []float64{1, 1}})
	before := append([]float64(nil), v.spectrum...)

	v.SetColor(color.RGBA{10, 20, 30, 255})

	assert.Equal(t, before, v.spectrum)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, v.color)
}
