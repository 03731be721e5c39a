package main

import (
	"encoding/binary"
	"math"
	"math/cmplx"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// chunkFeatures holds the signal features precomputed for one chunk of PCM
// audio at load time.
type chunkFeatures struct {
	power    float64
	spectrum []float64
}

// pcmSamples decodes little-endian signed 16-bit PCM bytes into float64
// samples.
func pcmSamples(data []byte) []float64 {
	n := len(data) / audioBytesPerSample
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = float64(int16(binary.LittleEndian.Uint16(data[i*audioBytesPerSample:])))
	}
	return samples
}

// chunkPower computes the root-mean-square amplitude of a PCM chunk, clipped
// at powerClip and normalized to [0, 1].
func chunkPower(data []byte) float64 {
	samples := pcmSamples(data)
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	rms := math.Sqrt(sum / float64(len(samples)))
	if rms > powerClip {
		rms = powerClip
	}
	return rms / powerClip
}

// analyzeChunks computes features for every chunk, spreading the transform
// work across worker goroutines with chunks assigned round robin. Each worker
// owns its own FFT plan.
func analyzeChunks(chunks [][]byte) []chunkFeatures {
	features := make([]chunkFeatures, len(chunks))
	workers := runtime.NumCPU()
	if workers > len(chunks) {
		workers = len(chunks)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			plan := fourier.NewFFT(chunkSamples)
			for i := w; i < len(chunks); i += workers {
				features[i] = chunkFeatures{
					power:    chunkPower(chunks[i]),
					spectrum: chunkSpectrum(plan, chunks[i], spectrumBins),
				}
			}
		}(w)
	}
	wg.Wait()
	return features
}

// chunkSpectrum computes the L2-normalized magnitude spectrum of a PCM chunk.
// The chunk is zero-extended to the plan length before the transform, so a
// short final chunk analyzes cleanly with the same plan as full chunks. The
// result always has exactly minBins entries, right-padded with zeros when the
// transform yields fewer. A silent chunk yields an all-zero vector rather
// than NaNs.
func chunkSpectrum(plan *fourier.FFT, data []byte, minBins int) []float64 {
	buf := make([]float64, plan.Len())
	for i, s := range pcmSamples(data) {
		if i >= len(buf) {
			break
		}
		buf[i] = s
	}
	coeffs := plan.Coefficients(nil, buf)

	spectrum := make([]float64, minBins)
	for i := range spectrum {
		if i < len(coeffs) {
			spectrum[i] = cmplx.Abs(coeffs[i])
		}
	}

	var norm float64
	for _, m := range spectrum {
		norm += m * m
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		norm = 1
	}
	for i := range spectrum {
		spectrum[i] /= norm
	}
	return spectrum
}
