package midi

const (
	statusMask  = 0xF0
	channelMask = 0x0F
	dataMask    = 0x7F

	systemStatus = 0xF0
	endOfSysEx   = 0xF7

	firstModeController = 120
)

func isDataByte(b byte) bool {
	return b&^dataMask == 0
}

func isVoiceKind(k VoiceKind) bool {
	switch k {
	case NoteOff, NoteOn, Aftertouch, ControlChange, ProgramChange, PitchBend:
		return true
	}
	return false
}

func isModeController(c byte) bool {
	return firstModeController <= c && c <= dataMask
}

// dataBytes returns the n data bytes following the status byte.
func dataBytes(b []byte, n int, what string) ([]byte, error) {
	if len(b) < n+1 {
		return nil, malformed(b[0], "%s needs %d data bytes, window has %d", what, n, len(b)-1)
	}
	d := b[1 : n+1]
	for i, c := range d {
		if !isDataByte(c) {
			return nil, malformed(b[0], "%s data byte %d is %#02x", what, i+1, c)
		}
	}
	return d, nil
}
