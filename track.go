package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	gowav "github.com/go-audio/wav"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Track is the capability set shared by everything that can be played and
// visualized: transport controls plus the per-chunk read accessors consumed
// once per frame by the visualizers.
type Track interface {
	Play() error
	Stop()
	Reset()
	Playing() bool
	CurrentData() []byte
	CurrentPower() float64
	CurrentSpectrum() []float64
}

// trackFormat is the native sample format read from a WAV header, before the
// file is decoded to the engine format for playback.
type trackFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// pullFunc produces the next block of PCM bytes for the audio device. The
// default producer serves the current chunk and advances the cursor; a
// composite track substitutes one that advances both of its lanes per pull.
type pullFunc func() []byte

// chunkStream adapts a pullFunc to the io.Reader drained by the audio
// player. Each exhausted buffer triggers exactly one pull, so the producer
// runs once per chunk regardless of the player's read sizes.
type chunkStream struct {
	pull pullFunc
	rem  []byte
}

func (s *chunkStream) Read(p []byte) (int, error) {
	if len(s.rem) == 0 {
		s.rem = s.pull()
	}
	n := copy(p, s.rem)
	s.rem = s.rem[n:]
	return n, nil
}

var (
	audioCtxOnce sync.Once
	audioCtx     *audio.Context
)

// audioEngine returns the process-wide audio context, creating it on first
// use.
func audioEngine() *audio.Context {
	audioCtxOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// chunkedTrack loads a whole WAV file into fixed-size chunks at construction,
// computing power and spectrum features per chunk, and plays them back by
// handing one chunk at a time to the audio device. A mutex guards the cursor:
// the device pulls advance it from the player's goroutine while the render
// loop reads the current chunk's data and features every frame.
type chunkedTrack struct {
	format   trackFormat
	chunks   [][]byte
	features []chunkFeatures

	mu     sync.Mutex
	cursor int

	player *audio.Player
}

// readWaveInfo validates the WAV header at path and reports its native
// sample format.
func readWaveInfo(path string) (trackFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return trackFormat{}, err
	}
	defer f.Close()

	decoder := gowav.NewDecoder(f)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return trackFormat{}, errors.New("invalid WAV file format")
	}
	duration, err := decoder.Duration()
	if err != nil {
		return trackFormat{}, fmt.Errorf("reading WAV duration: %w", err)
	}
	return trackFormat{
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
		Duration:   duration,
	}, nil
}

// loadTrack decodes the WAV at path into a chunked track. Any open, header,
// or decode failure aborts the load and surfaces to the caller.
func loadTrack(path string) (*chunkedTrack, error) {
	format, err := readWaveInfo(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	return newChunkedTrack(pcm, format), nil
}

// newChunkedTrack chunks decoded PCM and eagerly computes per-chunk features.
// A full-length silent chunk is appended so playback holds silence at the end
// instead of wrapping or stopping on its own.
func newChunkedTrack(pcm []byte, format trackFormat) *chunkedTrack {
	t := &chunkedTrack{format: format}
	for start := 0; start < len(pcm); start += chunkBytes {
		end := start + chunkBytes
		if end > len(pcm) {
			end = len(pcm)
		}
		t.chunks = append(t.chunks, pcm[start:end])
	}
	t.features = analyzeChunks(t.chunks)
	t.chunks = append(t.chunks, make([]byte, chunkBytes))
	t.features = append(t.features, chunkFeatures{spectrum: make([]float64, spectrumBins)})
	return t
}

// Format reports the native sample format of the source file.
func (t *chunkedTrack) Format() trackFormat { return t.format }

// CurrentData returns the PCM bytes of the current chunk.
func (t *chunkedTrack) CurrentData() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.chunks[t.cursor]
}

// CurrentPower returns the current chunk's normalized power.
func (t *chunkedTrack) CurrentPower() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.features[t.cursor].power
}

// CurrentSpectrum returns the current chunk's normalized magnitude spectrum.
func (t *chunkedTrack) CurrentSpectrum() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.features[t.cursor].spectrum
}

// advance moves the cursor to the next chunk, clamping at the trailing
// silent chunk.
func (t *chunkedTrack) advance() {
	t.mu.Lock()
	if t.cursor < len(t.chunks)-1 {
		t.cursor++
	}
	t.mu.Unlock()
}

// atEnd reports whether the cursor has reached the trailing silent chunk,
// meaning all real audio has been handed to the device.
func (t *chunkedTrack) atEnd() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor == len(t.chunks)-1
}

// Play starts playback from the first chunk. Starting an already-playing
// track has no effect.
func (t *chunkedTrack) Play() error { return t.playWith(nil) }

// playWith opens an audio player fed by pull, or by the default
// chunk-then-advance producer when pull is nil. A device failure surfaces to
// the caller; nothing is retried.
func (t *chunkedTrack) playWith(pull pullFunc) error {
	if t.player != nil {
		return nil
	}
	t.mu.Lock()
	t.cursor = 0
	t.mu.Unlock()

	if pull == nil {
		pull = func() []byte {
			data := t.CurrentData()
			t.advance()
			return data
		}
	}
	player, err := audioEngine().NewPlayer(&chunkStream{pull: pull})
	if err != nil {
		return fmt.Errorf("opening audio player: %w", err)
	}
	player.SetBufferSize(audioBufferDuration)
	t.player = player
	player.Play()
	return nil
}

// Playing reports whether an audio player is open and actively pulling.
func (t *chunkedTrack) Playing() bool {
	return t.player != nil && t.player.IsPlaying()
}

// Stop closes the audio player if one is open.
func (t *chunkedTrack) Stop() {
	if t.player == nil {
		return
	}
	t.player.Close()
	t.player = nil
}

// Reset stops playback and rewinds the cursor to the first chunk.
func (t *chunkedTrack) Reset() {
	t.Stop()
	t.mu.Lock()
	t.cursor = 0
	t.mu.Unlock()
}
