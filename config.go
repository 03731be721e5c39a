package main

import (
	"math"
	"time"
)

// Playback, analysis, and presentation constants used throughout the
// application. Chunk sizes are expressed in interleaved 16-bit samples; every
// track is decoded to stereo PCM16 at the engine sample rate before chunking.
const (
	sceneW, sceneH = 1920, 1080
	windowW        = 1280
	windowH        = 720

	sampleRate          = 44100
	audioChannels       = 2
	audioBytesPerSample = 2

	chunkFrames  = 1024
	chunkSamples = chunkFrames * audioChannels
	chunkBytes   = chunkSamples * audioBytesPerSample
	spectrumBins = chunkSamples / 2

	// RMS values above this are treated as full power.
	powerClip = 10000.0

	audioBufferDuration = 80 * time.Millisecond

	ringBands         = 128
	ringLineWidth     = 10
	ringBaseRadius    = 200
	ringMaxRadius     = 300
	ringMaxLineLength = 200
	ringSmoothFactor  = 0.5
	ringSpeed         = 0.5 * math.Pi / 360

	barBands         = 64
	barLineWidth     = 7
	barLineSpacing   = 5
	barMaxLineLength = 500
	barSmoothFactor  = 0.5

	vinylSize        = 380
	vinylSpeed       = 0.5
	vinylRewindSpeed = 15

	bubbleCount       = 16
	bubbleRewindSpeed = 4
)
