package main

// pairTrack couples a base mix with a separated vocals lane. Only the base
// lane feeds the audio device; a custom producer advances both lanes on each
// device pull so their cursors move in lockstep. The lanes are exposed
// individually so each can drive its own visualizer.
type pairTrack struct {
	base   *chunkedTrack
	vocals *chunkedTrack
}

// loadPairTrack decodes the base and vocals files into a two-lane track. The
// files are not required to match in length; the shorter lane simply clamps
// at its silent chunk while the other continues.
func loadPairTrack(basePath, vocalsPath string) (*pairTrack, error) {
	base, err := loadTrack(basePath)
	if err != nil {
		return nil, err
	}
	vocals, err := loadTrack(vocalsPath)
	if err != nil {
		return nil, err
	}
	return &pairTrack{base: base, vocals: vocals}, nil
}

func (p *pairTrack) Base() Track   { return p.base }
func (p *pairTrack) Vocals() Track { return p.vocals }

// pull feeds the device from the base lane while advancing both lanes.
func (p *pairTrack) pull() []byte {
	data := p.base.CurrentData()
	p.base.advance()
	p.vocals.advance()
	return data
}

func (p *pairTrack) Play() error { return p.base.playWith(p.pull) }

func (p *pairTrack) Playing() bool { return p.base.Playing() }

// Stop stops the base lane's device and resets the vocals lane, so a later
// Play starts both lanes from the beginning.
func (p *pairTrack) Stop() {
	p.base.Stop()
	p.vocals.Reset()
}

func (p *pairTrack) Reset() {
	p.Stop()
	p.base.Reset()
}

func (p *pairTrack) CurrentData() []byte { return p.base.CurrentData() }

func (p *pairTrack) CurrentPower() float64 { return p.base.CurrentPower() }

func (p *pairTrack) CurrentSpectrum() []float64 { return p.base.CurrentSpectrum() }
