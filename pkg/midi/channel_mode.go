package midi

const localControlOn = 127

// DecodeChannelMode decodes a Control Change whose controller is in the
// reserved mode range 120-127. Once the controller is recognized a missing
// or invalid value byte is malformed, never a fall-through.
func DecodeChannelMode(b []byte) (Message, error) {
	if len(b) < 2 || VoiceKind(b[0]>>4) != ControlChange || !isModeController(b[1]) {
		return nil, ErrNoMatch
	}

	if len(b) < 3 {
		return nil, malformed(b[0], "mode controller %d without value byte", b[1])
	}
	value := b[2]
	if !isDataByte(value) {
		return nil, malformed(b[0], "mode controller %d value is %#02x", b[1], value)
	}

	m := ChannelMode{Channel: b[0] & channelMask}

	switch b[1] {
	case 120:
		m.Kind = AllSoundOff
	case 121:
		m.Kind = ResetAllControllers
	case 122:
		m.Kind = LocalControl
		m.LocalOn = value == localControlOn
	case 123:
		m.Kind = AllNotesOff
	case 124:
		m.Kind = AllNotesOff
		m.Mode = ModeChange{Kind: OmniMode, Omni: false}
	case 125:
		m.Kind = AllNotesOff
		m.Mode = ModeChange{Kind: MonoMode, Channels: value}
	case 126:
		m.Kind = AllNotesOff
		m.Mode = ModeChange{Kind: OmniMode, Omni: true}
	case 127:
		m.Kind = AllNotesOff
		m.Mode = ModeChange{Kind: PolyMode}
	}

	return m, nil
}
