package out_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	breathout "calm/internal/modules/breath/adapter/out"
	"calm/internal/modules/breath/domain"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBellCueWritesBEL(t *testing.T) {
	t.Parallel()
	buf := bytes.Buffer{}
	cue := breathout.NewBellCue(&buf)
	require.NoError(t, cue.Cue(context.Background(), domain.Phase{Label: domain.InhaleLabel}))
	require.Equal(t, "\a", buf.String())

	require.Error(t, breathout.NewBellCue(brokenWriter{}).Cue(context.Background(), domain.Phase{}))
}

func TestSynthesizeChimeIsValidWAV(t *testing.T) {
	t.Parallel()
	wav := breathout.SynthesizeChime()
	require.Equal(t, "RIFF", string(wav[0:4]))
	require.Equal(t, "WAVE", string(wav[8:12]))
	require.Equal(t, "data", string(wav[36:40]))

	dataLen := binary.LittleEndian.Uint32(wav[40:44])
	require.Equal(t, int(dataLen), len(wav)-44)
	require.Equal(t, uint32(14333*2), dataLen, "0.65 s of 16-bit mono at 22050 Hz")
	require.Equal(t, uint32(len(wav)-8), binary.LittleEndian.Uint32(wav[4:8]))

	var peak int16
	for i := 44; i+1 < len(wav); i += 2 {
		s := int16(binary.LittleEndian.Uint16(wav[i : i+2]))
		if s > peak {
			peak = s
		}
	}
	require.Greater(t, peak, int16(0), "tone must not be silent")
}
