package midi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestDecodeSystemCommon_QuarterFrame(t *testing.T) {
	m, err := Classify([]byte{0xF1, 0b01100011})
	require.NoError(t, err)
	assert.Equal(t, SystemCommon{Kind: TimeCodeQuarterFrame, Frame: QuarterFrame{Kind: HourLSBs, Value: 3}}, m)
}

func TestDecodeSystemCommon_QuarterFrameAllDataBytes(t *testing.T) {
	for d := 0; d < 128; d++ {
		m, err := DecodeSystemCommon([]byte{0xF1, byte(d)})
		require.NoError(t, err)

		qf := m.(SystemCommon).Frame
		assert.Equal(t, QuarterFrameKind(d>>4), qf.Kind, "data %#x", d)
		assert.Equal(t, uint8(d&0x0F), qf.Value, "data %#x", d)
		assert.Less(t, qf.Value, uint8(16))
		assert.NotContains(t, qf.Kind.String(), "QuarterFrameKind(")
	}
}

func TestDecodeSystemCommon_SongPosition(t *testing.T) {
	m, err := Classify([]byte{0xF2, 0x10, 0x02})
	require.NoError(t, err)
	assert.Equal(t, SystemCommon{Kind: SongPositionPointer, SongPosition: 0x110}, m)
}

// encodeSongPosition splits a 14-bit beat count into two 7-bit groups, low first.
func encodeSongPosition(beats uint16) []byte {
	return []byte{0xF2, byte(beats & 0x7F), byte(beats >> 7 & 0x7F)}
}

func TestDecodeSystemCommon_SongPositionRoundTrip(t *testing.T) {
	for _, beats := range []uint16{0, 1, 127, 128, 0x110, 0x1234, 0x3FFF} {
		raw := encodeSongPosition(beats)
		m, err := DecodeSystemCommon(raw)
		require.NoError(t, err)
		assert.Equal(t, beats, m.(SystemCommon).SongPosition)
		assert.Equal(t, raw, encodeSongPosition(m.(SystemCommon).SongPosition))
	}
}

// gomidi writes the most significant group first, the reverse of the wire order.
func TestDecodeSystemCommon_SongPositionGomidiOrder(t *testing.T) {
	for _, beats := range []uint16{1, 127, 128, 0x110, 0x1234, 0x3FFF} {
		raw := encodeSongPosition(beats)
		assert.Equal(t, []byte{0xF2, raw[2], raw[1]}, []byte(gomidi.SPP(beats)), "%#x", beats)
	}
}

func TestDecodeSystemCommon_StatusOnly(t *testing.T) {
	m, err := Classify([]byte(gomidi.Tune()))
	require.NoError(t, err)
	assert.Equal(t, SystemCommon{Kind: TuneRequest}, m)

	m, err = Classify([]byte{0xF7})
	require.NoError(t, err)
	assert.Equal(t, SystemCommon{Kind: EndOfExclusive}, m)
}

func TestDecodeSystemCommon_SongSelect(t *testing.T) {
	m, err := Classify([]byte(gomidi.SongSelect(9)))
	require.NoError(t, err)
	assert.Equal(t, SystemCommon{Kind: SongSelect, Song: 9}, m)
}

func TestDecodeSystemCommon_SysEx(t *testing.T) {
	b := []byte{0xF0, 0x7E, 0x7F, 0x09, 0x01, 0xF7, 0xF8}

	m, err := Classify(b)
	require.NoError(t, err)
	assert.Equal(t, SystemCommon{Kind: SystemExclusive, SysEx: []byte{0x7E, 0x7F, 0x09, 0x01}}, m)

	// the payload is a copy
	b[1] = 0x00
	assert.Equal(t, byte(0x7E), m.(SystemCommon).SysEx[0])

	m, err = Classify([]byte{0xF0, 0xF7})
	require.NoError(t, err)
	assert.Empty(t, m.(SystemCommon).SysEx)
}

func TestDecodeSystemCommon_Malformed(t *testing.T) {
	for _, b := range [][]byte{
		{0xF0},                   // bare start marker
		{0xF0, 0x01, 0x02},       // no terminator
		{0xF0, 0x01, 0x90, 0xF7}, // status inside payload
		{0xF1},
		{0xF1, 0x80},
		{0xF2, 0x10},
		{0xF3},
		{0xF4},
		{0xF5, 0x00},
	} {
		m, err := DecodeSystemCommon(b)
		assert.Nil(t, m)
		assert.True(t, IsMalformed(err), "% x: %v", b, err)

		m, err = Classify(b)
		assert.Nil(t, m)
		assert.True(t, IsMalformed(err), "% x: %v", b, err)
	}
}

func TestDecodeSystemCommon_UndefinedIsNotReinterpreted(t *testing.T) {
	_, err := Classify([]byte{0b11110100})

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, byte(0xF4), de.Status)
	assert.Equal(t, ErrMalformed, de.Err)
	assert.False(t, IsUnrecognized(err))
}

func TestDecodeSystemCommon_NoMatch(t *testing.T) {
	for _, b := range [][]byte{
		{},
		{0x00, 0x01},
		{0x07},
		{0x90, 0x40, 0x40},
		{0xF8},
		{0xFF},
	} {
		_, err := DecodeSystemCommon(b)
		assert.Equal(t, ErrNoMatch, err, "% x", b)
	}
}
