package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"
)

func spectrumNorm(spectrum []float64) float64 {
	var sum float64
	for _, m := range spectrum {
		sum += m * m
	}
	return math.Sqrt(sum)
}

func TestChunkPowerSilentChunk(t *testing.T) {
	assert.Equal(t, 0.0, chunkPower(make([]byte, chunkBytes)))
}

func TestChunkPowerConstantAmplitude(t *testing.T) {
	samples := make([]int16, chunkSamples)
	for i := range samples {
		samples[i] = 5000
	}
	assert.InDelta(t, 0.5, chunkPower(pcm16Bytes(samples)), 1e-9)
}

func TestChunkPowerClipsAtFullScale(t *testing.T) {
	samples := make([]int16, chunkSamples)
	for i := range samples {
		samples[i] = 20000
	}
	assert.Equal(t, 1.0, chunkPower(pcm16Bytes(samples)))
}

func TestChunkPowerStaysInUnitRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		samples := make([]int16, chunkSamples)
		for i := range samples {
			samples[i] = int16(rng.Intn(1 << 16))
		}
		p := chunkPower(pcm16Bytes(samples))
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestChunkSpectrumUnitNorm(t *testing.T) {
	plan := fourier.NewFFT(chunkSamples)
	samples := make([]int16, chunkSamples)
	for i := range samples {
		samples[i] = int16(10000 * math.Sin(2*math.Pi*8*float64(i)/chunkSamples))
	}

	spectrum := chunkSpectrum(plan, pcm16Bytes(samples), spectrumBins)

	require.Len(t, spectrum, spectrumBins)
	assert.InDelta(t, 1.0, spectrumNorm(spectrum), 1e-9)
}

func TestChunkSpectrumSilentChunkIsZeroVector(t *testing.T) {
	plan := fourier.NewFFT(chunkSamples)

	spectrum := chunkSpectrum(plan, make([]byte, chunkBytes), spectrumBins)

	require.Len(t, spectrum, spectrumBins)
	for _, m := range spectrum {
		require.False(t, math.IsNaN(m))
		require.Equal(t, 0.0, m)
	}
}

func TestChunkSpectrumScaleInvariant(t *testing.T) {
	plan := fourier.NewFFT(chunkSamples)
	loud := make([]int16, chunkSamples)
	quiet := make([]int16, chunkSamples)
	for i := range loud {
		s := math.Sin(2*math.Pi*5*float64(i)/chunkSamples) + 0.5*math.Cos(2*math.Pi*40*float64(i)/chunkSamples)
		loud[i] = int16(16000 * s)
		quiet[i] = int16(4000 * s)
	}

	loudSpectrum := chunkSpectrum(plan, pcm16Bytes(loud), spectrumBins)
	quietSpectrum := chunkSpectrum(plan, pcm16Bytes(quiet), spectrumBins)

	for i := range loudSpectrum {
		assert.InDelta(t, loudSpectrum[i], quietSpectrum[i], 1e-3)
	}
}

func TestChunkSpectrumPadsWhenTransformIsSmall(t *testing.T) {
	// An 8-point transform yields 5 bins; asking for 16 must right-pad.
	plan := fourier.NewFFT(8)
	samples := []int16{100, 200, -300, 400, -500, 600, -700, 800}

	spectrum := chunkSpectrum(plan, pcm16Bytes(samples), 16)

	require.Len(t, spectrum, 16)
	for i := 5; i < 16; i++ {
		assert.Equal(t, 0.0, spectrum[i])
	}
	assert.InDelta(t, 1.0, spectrumNorm(spectrum), 1e-9)
}

func TestAnalyzeChunksMatchesSerialComputation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	chunks := make([][]byte, 9)
	for i := range chunks {
		samples := make([]int16, chunkSamples)
		for j := range samples {
			samples[j] = int16(rng.Intn(1 << 16))
		}
		chunks[i] = pcm16Bytes(samples)
	}
	// Last chunk short, like the tail of a real file.
	chunks[len(chunks)-1] = chunks[len(chunks)-1][:chunkBytes/4]

	features := analyzeChunks(chunks)

	require.Len(t, features, len(chunks))
	plan := fourier.NewFFT(chunkSamples)
	for i, chunk := range chunks {
		assert.Equal(t, chunkPower(chunk), features[i].power)
		assert.Equal(t, chunkSpectrum(plan, chunk, spectrumBins), features[i].spectrum)
	}
}

func TestChunkSpectrumZeroExtendsShortChunk(t *testing.T) {
	plan := fourier.NewFFT(chunkSamples)
	half := make([]int16, chunkSamples/2)
	for i := range half {
		half[i] = int16(1000 + i)
	}

	spectrum := chunkSpectrum(plan, pcm16Bytes(half), spectrumBins)

	require.Len(t, spectrum, spectrumBins)
	assert.InDelta(t, 1.0, spectrumNorm(spectrum), 1e-9)
}
