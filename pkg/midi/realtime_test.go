package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRealTime(t *testing.T) {
	tests := map[byte]RealTimeKind{
		0xF8: TimingClock,
		0xF9: Start,
		0xFA: Continue,
		0xFC: Stop,
		0xFE: ActiveSensing,
		0xFF: Reset,
	}

	for status, kind := range tests {
		m, err := Classify([]byte{status})
		require.NoError(t, err, "%#x", status)
		assert.Equal(t, RealTime{Kind: kind}, m, "%#x", status)
	}
}

func TestDecodeRealTime_Undefined(t *testing.T) {
	for _, status := range []byte{0xFB, 0xFD} {
		_, err := DecodeRealTime([]byte{status})
		assert.Equal(t, ErrNoMatch, err)

		m, err := Classify([]byte{status})
		assert.Nil(t, m)
		assert.True(t, IsUnrecognized(err), "%#x: %v", status, err)
		assert.False(t, IsMalformed(err))
	}
}

func TestDecodeRealTime_NoMatch(t *testing.T) {
	for _, b := range [][]byte{{}, {0xF7}, {0xB0, 120, 0}, {0x78}} {
		_, err := DecodeRealTime(b)
		assert.Equal(t, ErrNoMatch, err, "% x", b)
	}
}
