package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChannelMode(t *testing.T) {
	tests := []struct {
		controller byte
		value      byte
		want       ChannelMode
	}{
		{120, 0, ChannelMode{Kind: AllSoundOff, Channel: 5}},
		{121, 0, ChannelMode{Kind: ResetAllControllers, Channel: 5}},
		{122, 127, ChannelMode{Kind: LocalControl, Channel: 5, LocalOn: true}},
		{122, 0, ChannelMode{Kind: LocalControl, Channel: 5, LocalOn: false}},
		{122, 64, ChannelMode{Kind: LocalControl, Channel: 5, LocalOn: false}},
		{123, 0, ChannelMode{Kind: AllNotesOff, Channel: 5}},
		{124, 0, ChannelMode{Kind: AllNotesOff, Channel: 5, Mode: ModeChange{Kind: OmniMode, Omni: false}}},
		{125, 4, ChannelMode{Kind: AllNotesOff, Channel: 5, Mode: ModeChange{Kind: MonoMode, Channels: 4}}},
		{126, 0, ChannelMode{Kind: AllNotesOff, Channel: 5, Mode: ModeChange{Kind: OmniMode, Omni: true}}},
		{127, 0, ChannelMode{Kind: AllNotesOff, Channel: 5, Mode: ModeChange{Kind: PolyMode}}},
	}

	for _, tt := range tests {
		b := []byte{0xB5, tt.controller, tt.value}

		m, err := DecodeChannelMode(b)
		require.NoError(t, err, "% x", b)
		assert.Equal(t, tt.want, m, "% x", b)

		m, err = Classify(b)
		require.NoError(t, err, "% x", b)
		assert.Equal(t, tt.want, m, "% x", b)
	}
}

func TestDecodeChannelMode_MonoChannelCount(t *testing.T) {
	for n := 0; n < 128; n++ {
		m, err := Classify([]byte{0xB0, 125, byte(n)})
		require.NoError(t, err)

		cm, ok := m.(ChannelMode)
		require.True(t, ok, "decoded as %T", m)
		assert.Equal(t, AllNotesOff, cm.Kind)
		assert.Equal(t, ModeChange{Kind: MonoMode, Channels: uint8(n)}, cm.Mode)
	}
}

func TestDecodeChannelMode_NoMatch(t *testing.T) {
	for _, b := range [][]byte{
		{0xB0, 7, 100},
		{0xB0, 119, 0},
		{0x90, 123, 0},
		{0xB0},
		{0xF8}, // timing clock, not a channel mode message
	} {
		_, err := DecodeChannelMode(b)
		assert.Equal(t, ErrNoMatch, err, "% x", b)
	}
}

func TestDecodeChannelMode_Malformed(t *testing.T) {
	for _, b := range [][]byte{
		{0xB0, 122},
		{0xB1, 125, 0x80},
		{0xBF, 120, 0xF7},
	} {
		_, err := DecodeChannelMode(b)
		assert.True(t, IsMalformed(err), "% x: %v", b, err)

		// the classifier must stop here instead of trying later families
		m, err := Classify(b)
		assert.Nil(t, m)
		assert.True(t, IsMalformed(err), "% x: %v", b, err)
	}
}
