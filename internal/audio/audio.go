package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"

	"github.com/ebitengine/oto/v3"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	SampleRate   = 44100
	channelCount = 2
)

// Manager plays one-shot reports through a shared oto context.
type Manager struct {
	mu       sync.Mutex
	ctx      *oto.Context
	listener rl.Vector3
	players  []*oto.Player
	cache    map[int][]byte
}

var (
	globalManager *Manager
	initOnce      sync.Once
	initErr       error
)

// Init opens the audio device. Calling it again returns the first result.
func Init() error {
	initOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			initErr = fmt.Errorf("open audio device: %w", err)
			return
		}
		<-ready
		globalManager = &Manager{ctx: ctx, cache: make(map[int][]byte)}
		log.Printf("Audio: oto context ready (%d Hz)", SampleRate)
	})
	return initErr
}

// Ready reports whether Init succeeded.
func Ready() bool {
	return globalManager != nil
}

// SetListener moves the point reports are attenuated against.
func SetListener(pos rl.Vector3) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	globalManager.listener = pos
	globalManager.mu.Unlock()
}

// PlayReport plays a gunshot-like burst of the given length at pos. Volume
// falls off linearly to zero at maxDistance. Without an audio device this is
// a no-op.
func PlayReport(pos rl.Vector3, volume, maxDistance, seconds float32) {
	m := globalManager
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	gain := Attenuate(volume, rl.Vector3Distance(pos, m.listener), maxDistance)
	if gain <= 0 {
		return
	}

	m.prune()
	p := m.ctx.NewPlayer(bytes.NewReader(m.report(seconds)))
	p.SetVolume(float64(gain))
	p.Play()
	m.players = append(m.players, p)
}

// Attenuate scales volume by distance, reaching zero at maxDistance. A
// non-positive maxDistance disables falloff.
func Attenuate(volume, distance, maxDistance float32) float32 {
	if maxDistance <= 0 {
		return volume
	}
	f := 1 - distance/maxDistance
	if f <= 0 {
		return 0
	}
	return volume * f
}

// prune drops players that finished. Caller holds mu.
func (m *Manager) prune() {
	live := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	m.players = live
}

// report returns the PCM bytes for a burst, cached per length in ms.
// Caller holds mu.
func (m *Manager) report(seconds float32) []byte {
	ms := int(seconds * 1000)
	if data, ok := m.cache[ms]; ok {
		return data
	}
	data := SynthesizeReport(seconds, rand.New(rand.NewSource(int64(ms))))
	m.cache[ms] = data
	return data
}

// SynthesizeReport renders exponentially decaying noise as interleaved
// stereo float32 little-endian PCM.
func SynthesizeReport(seconds float32, rng *rand.Rand) []byte {
	n := int(float32(SampleRate) * seconds)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, 0, n*channelCount*4)
	decay := 6.0 / float64(n)
	var sample [4]byte
	for i := 0; i < n; i++ {
		amp := math.Exp(-decay * float64(i))
		v := float32((rng.Float64()*2 - 1) * amp)
		binary.LittleEndian.PutUint32(sample[:], math.Float32bits(v))
		for c := 0; c < channelCount; c++ {
			buf = append(buf, sample[:]...)
		}
	}
	return buf
}
