package main

// nullTrack is the silent placeholder used before the first level loads and
// after the last one ends. It satisfies the full track contract with zero
// features and no-op transport, so the render loop never needs a nil check.
type nullTrack struct {
	data     []byte
	spectrum []float64
}

func newNullTrack() *nullTrack {
	return &nullTrack{
		data:     make([]byte, chunkBytes),
		spectrum: make([]float64, spectrumBins),
	}
}

func (*nullTrack) Play() error { return nil }

func (*nullTrack) Stop() {}

func (*nullTrack) Reset() {}

func (*nullTrack) Playing() bool { return false }

func (t *nullTrack) CurrentData() []byte { return t.data }

func (*nullTrack) CurrentPower() float64 { return 0 }

func (t *nullTrack) CurrentSpectrum() []float64 { return t.spectrum }
