package midi

// DecodeVoice decodes a channel voice message. The channel in the low
// nibble of the status byte never takes part in matching.
//
// A Control Change on controllers 120-127 is left to DecodeChannelMode.
func DecodeVoice(b []byte) (Message, error) {
	if len(b) == 0 {
		return nil, ErrNoMatch
	}

	kind := VoiceKind(b[0] >> 4)
	if !isVoiceKind(kind) {
		return nil, ErrNoMatch
	}

	d, err := dataBytes(b, 1, kind.String())
	if err != nil {
		return nil, err
	}

	if kind == ControlChange && isModeController(d[0]) {
		return nil, ErrNoMatch
	}

	return Voice{Kind: kind, Channel: b[0] & channelMask, Data: d[0]}, nil
}
