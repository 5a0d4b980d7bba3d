package midi

import "bytes"

// DecodeSystemCommon decodes status bytes 0xF0-0xF7. The undefined codes
// 0xF4 and 0xF5 are malformed rather than left for another family.
//
// A System Exclusive window must already be delimited by the caller: the
// payload runs up to the first End of Exclusive byte, and a window
// without one is malformed.
func DecodeSystemCommon(b []byte) (Message, error) {
	// a zero top nibble is a data byte, never a status
	if len(b) == 0 || b[0]&statusMask != systemStatus {
		return nil, ErrNoMatch
	}

	kind := SystemCommonKind(b[0] & channelMask)
	if kind > EndOfExclusive {
		return nil, ErrNoMatch
	}

	switch kind {
	case SystemExclusive:
		return decodeSysEx(b)

	case TimeCodeQuarterFrame:
		d, err := dataBytes(b, 1, kind.String())
		if err != nil {
			return nil, err
		}
		return SystemCommon{Kind: kind, Frame: QuarterFrame{
			Kind:  quarterFrameKinds[d[0]>>4&0x7],
			Value: d[0] & 0x0F,
		}}, nil

	case SongPositionPointer:
		d, err := dataBytes(b, 2, kind.String())
		if err != nil {
			return nil, err
		}
		return SystemCommon{Kind: kind, SongPosition: uint16(d[0]) | uint16(d[1])<<7}, nil

	case SongSelect:
		d, err := dataBytes(b, 1, kind.String())
		if err != nil {
			return nil, err
		}
		return SystemCommon{Kind: kind, Song: d[0]}, nil

	case TuneRequest, EndOfExclusive:
		return SystemCommon{Kind: kind}, nil
	}

	return nil, malformed(b[0], "undefined system common status")
}

func decodeSysEx(b []byte) (Message, error) {
	end := bytes.IndexByte(b[1:], endOfSysEx)
	if end < 0 {
		return nil, malformed(b[0], "system exclusive without end of exclusive")
	}

	payload := make([]byte, end)
	copy(payload, b[1:1+end])

	for i, c := range payload {
		if !isDataByte(c) {
			return nil, malformed(b[0], "status byte %#02x inside system exclusive at %d", c, i+1)
		}
	}

	return SystemCommon{Kind: SystemExclusive, SysEx: payload}, nil
}
