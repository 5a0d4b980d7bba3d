package midi

// indexed by the low 3 bits of 0xF8-0xFF; zero entries are undefined codes
var realTimeKinds = [8]RealTimeKind{
	TimingClock,   // 0xF8
	Start,         // 0xF9
	Continue,      // 0xFA
	0,             // 0xFB
	Stop,          // 0xFC
	0,             // 0xFD
	ActiveSensing, // 0xFE
	Reset,         // 0xFF
}

// DecodeRealTime decodes a single-byte system real-time message (0xF8-0xFF).
// The undefined codes 0xFB and 0xFD return ErrNoMatch.
func DecodeRealTime(b []byte) (Message, error) {
	if len(b) == 0 || b[0] < 0xF8 {
		return nil, ErrNoMatch
	}

	kind := realTimeKinds[b[0]&0x07]
	if kind == 0 {
		return nil, ErrNoMatch
	}

	return RealTime{Kind: kind}, nil
}
