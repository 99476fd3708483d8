// Package audio plays the audible alert. It synthesizes a short tone through
// oto and falls back to the terminal bell when no output device is available.
package audio

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/pthm-cable/harbor/config"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Alert plays the configured beep.
type Alert struct {
	ctx    *oto.Context
	ready  chan struct{}
	bell   io.Writer
	tone   []byte
	volume float64

	playing atomic.Int32
}

// NewAlert prepares the tone. Until Open succeeds every Beep rings the bell
// on the given writer.
func NewAlert(cfg config.AudioConfig, bell io.Writer) *Alert {
	dur := time.Duration(cfg.BeepDurationMS) * time.Millisecond
	return &Alert{
		bell:   bell,
		tone:   Tone(cfg.BeepFrequency, dur),
		volume: clampF(cfg.Volume, 0, 1),
	}
}

// Open creates the audio context.
func (a *Alert) Open() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return fmt.Errorf("opening audio context: %w", err)
	}
	a.ctx = ctx
	a.ready = ready
	return nil
}

// Ready reports whether the audio device can play.
func (a *Alert) Ready() bool {
	if a.ctx == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// Beep plays the tone without blocking, or rings the bell. A beep requested
// while one is still sounding is dropped. It reports whether the tone path
// was used.
func (a *Alert) Beep() bool {
	if !a.Ready() || len(a.tone) == 0 {
		a.ring()
		return false
	}
	if !a.playing.CompareAndSwap(0, 1) {
		return true
	}

	go func() {
		defer a.playing.Store(0)
		player := a.ctx.NewPlayer(&soundReader{data: a.tone})
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			slog.Warn("closing audio player", "error", err)
		}
	}()
	return true
}

func (a *Alert) ring() {
	if a.bell == nil {
		return
	}
	if _, err := io.WriteString(a.bell, "\a"); err != nil {
		slog.Warn("ringing bell", "error", err)
	}
	if f, ok := a.bell.(interface{ Sync() error }); ok {
		_ = f.Sync()
	}
}

// Tone synthesizes a stereo float32 sine of the given frequency and length
// with a short attack and release so it does not click.
func Tone(freq float64, dur time.Duration) []byte {
	n := SampleRate * int(dur/time.Millisecond) / 1000
	if n <= 0 || freq <= 0 {
		return nil
	}
	buf := make([]byte, n*ChannelCount*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.1, 0.8, 0.1)
		putStereoF32(buf, i, math.Sin(2*math.Pi*freq*t)*env*0.5)
	}
	return buf
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
