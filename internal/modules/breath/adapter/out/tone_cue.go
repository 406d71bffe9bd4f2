package out

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"calm/internal/modules/breath/domain"
	breathout "calm/internal/modules/breath/port/out"
)

const (
	toneSampleRate = 22050
	toneLength     = 0.65
	toneRamp       = 0.2
	toneAttack     = 0.05
	toneStartHz    = 440.0
	toneEndHz      = 660.0
	tonePeak       = 0.06
)

// ToneCue plays a short sine chirp through the platform audio player. The
// WAV is synthesized once and cached under dir.
type ToneCue struct {
	dir    string
	player func(path string) *exec.Cmd

	once sync.Once
	path string
	err  error
}

func NewToneCue(dir string) breathout.CuePlayer {
	return &ToneCue{dir: dir, player: platformPlayer}
}

func platformPlayer(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("afplay", path)
	case "linux":
		return exec.Command("aplay", "-q", path)
	default:
		return nil
	}
}

func (c *ToneCue) Cue(_ context.Context, _ domain.Phase) error {
	c.once.Do(func() { c.path, c.err = c.writeTone() })
	if c.err != nil {
		return c.err
	}
	cmd := c.player(c.path)
	if cmd == nil {
		return fmt.Errorf("no audio player on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start audio player: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func (c *ToneCue) writeTone() (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create tone dir: %w", err)
	}
	path := filepath.Join(c.dir, "chime.wav")
	if err := os.WriteFile(path, SynthesizeChime(), 0o644); err != nil {
		return "", fmt.Errorf("write tone: %w", err)
	}
	return path, nil
}

// SynthesizeChime renders a mono 16-bit WAV: a sine sweeping 440→660 Hz over
// the first 0.2 s, a 50 ms attack, then an exponential fade.
func SynthesizeChime() []byte {
	n := int(math.Round(toneSampleRate * toneLength))
	samples := make([]int16, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / toneSampleRate
		freq := toneEndHz
		if t < toneRamp {
			freq = toneStartHz + (toneEndHz-toneStartHz)*t/toneRamp
		}
		phase += 2 * math.Pi * freq / toneSampleRate
		gain := tonePeak * math.Exp(-8*(t-toneAttack))
		if t < toneAttack {
			gain = tonePeak * t / toneAttack
		}
		samples[i] = int16(math.Sin(phase) * gain * 4 * math.MaxInt16)
	}

	buf := bytes.Buffer{}
	dataLen := uint32(n * 2)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVEfmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(toneSampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(toneSampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}
