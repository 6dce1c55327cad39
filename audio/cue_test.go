package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain counts samples and tracks the peak amplitude of a finite stream
func drain(t *testing.T, c CueType, volume float64) (int, float64) {
	t.Helper()
	s := cueStreamer(c, volume)
	require.NotNil(t, s)

	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestCueStreamer_Length(t *testing.T) {
	n, _ := drain(t, CueSelect, 1)
	assert.Equal(t, sampleRate.N(40*time.Millisecond)+sampleRate.N(60*time.Millisecond), n)

	n, _ = drain(t, CueClear, 1)
	assert.Equal(t, sampleRate.N(80*time.Millisecond), n)
}

func TestCueStreamer_Volume(t *testing.T) {
	_, loud := drain(t, CueClear, 1)
	_, quiet := drain(t, CueClear, 0.25)
	assert.LessOrEqual(t, loud, 1.0)
	assert.InDelta(t, loud*0.25, quiet, 1e-6)

	assert.Nil(t, cueStreamer(CueClear, 0), "silent volume plays nothing")
	assert.Nil(t, cueStreamer(CueType(99), 1))
}

func TestFade_EndsSilent(t *testing.T) {
	s := cueStreamer(CueInspect, 1)
	require.NotNil(t, s)
	n := sampleRate.N(30 * time.Millisecond)
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	require.Equal(t, n, got)
	assert.Less(t, math.Abs(buf[n-1][0]), 0.01)
}

func TestPlayer_WithoutDevice(t *testing.T) {
	p := NewPlayer(0.5)
	assert.False(t, p.Available())
	assert.False(t, p.Play(CueSelect), "no speaker, nothing plays")
	p.Close()
}

func TestPlayer_Mute(t *testing.T) {
	p := NewPlayer(0.5)
	assert.False(t, p.Muted())
	assert.True(t, p.ToggleMute())
	assert.True(t, p.Muted())
	assert.False(t, p.Play(CueSelect))
	assert.False(t, p.ToggleMute())
}
