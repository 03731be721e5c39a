package main

import "encoding/binary"

// fakeTrack is a scriptable Track (and rewind cue) for exercising the
// visualizers and the rewind controller without touching the audio device.
type fakeTrack struct {
	power    float64
	spectrum []float64
	playing  bool
	end      bool
	plays    int
	stops    int
	playErr  error
}

func (f *fakeTrack) Play() error {
	if f.playErr != nil {
		return f.playErr
	}
	f.plays++
	f.playing = true
	return nil
}

func (f *fakeTrack) Stop() {
	f.stops++
	f.playing = false
}

func (f *fakeTrack) Reset() { f.Stop() }

func (f *fakeTrack) Playing() bool { return f.playing }

func (f *fakeTrack) CurrentData() []byte { return make([]byte, chunkBytes) }

func (f *fakeTrack) CurrentPower() float64 { return f.power }

func (f *fakeTrack) CurrentSpectrum() []float64 { return f.spectrum }

func (f *fakeTrack) atEnd() bool { return f.end }

// pcm16Bytes packs samples as little-endian 16-bit PCM.
func pcm16Bytes(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}

// constChunkPCM builds n full chunks where every sample of chunk i has value
// base*(i+1), so chunk contents are distinguishable by index.
func constChunkPCM(n int, base int16) []byte {
	samples := make([]int16, n*chunkSamples)
	for i := 0; i < n; i++ {
		v := base * int16(i+1)
		for j := 0; j < chunkSamples; j++ {
			samples[i*chunkSamples+j] = v
		}
	}
	return pcm16Bytes(samples)
}
